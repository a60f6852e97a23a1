package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/twmerge/internal/ui/components"
	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

// View renders the input, the merged output and the per-token trace.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.DefaultContext().WithTheme(m.theme).WithWidth(m.width)
	render := func(style lipgloss.Style, s string) string {
		if m.theme.Plain {
			return s
		}
		return style.Render(s)
	}

	sections := []string{
		render(titleStyle, "twmerge playground"),
		m.input.View(),
		render(sectionStyle, "Merged"),
		m.trace.Output,
	}

	if len(m.trace.Decisions) > 0 {
		sections = append(sections,
			render(sectionStyle, "Tokens "+summary(m.trace)),
			components.NewTraceTable(m.trace).WithoutHeader().ViewWithContext(ctx),
		)
	}

	sections = append(sections, render(helpStyle, "esc quit • ctrl+l clear"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func summary(trace twmerge.Trace) string {
	var parts []string
	for _, outcome := range []twmerge.Outcome{twmerge.OutcomeKept, twmerge.OutcomeOverridden, twmerge.OutcomeRejected} {
		if n := len(trace.Filter(outcome)); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, outcome))
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
