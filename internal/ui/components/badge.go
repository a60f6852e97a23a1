package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

// Badge is a short bracketed label coloured by a merge outcome.
type Badge struct {
	BaseComponent
	text    string
	outcome twmerge.Outcome
}

// NewBadge creates a badge showing text in the colour of outcome.
func NewBadge(text string, outcome twmerge.Outcome) *Badge {
	b := &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		outcome:       outcome,
	}
	b.SetAppliers(Bold(), Foreground(OutcomeSlot(outcome)))
	return b
}

// OutcomeBadge creates a badge labelled with the outcome itself.
func OutcomeBadge(outcome twmerge.Outcome) *Badge {
	return NewBadge(string(outcome), outcome)
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.ComputeStyle(ctx.Theme).Render("[" + b.text + "]")
}

// WithStyle sets the badge style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// WithAppliers adds theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Outcome returns the outcome the badge is coloured by.
func (b *Badge) Outcome() twmerge.Outcome {
	return b.outcome
}
