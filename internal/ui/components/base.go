package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderable is anything that can draw itself as a string.
type Renderable interface {
	View() string
	ViewWithContext(ctx RenderContext) string
}

// StyleFunc applies theme data to a lipgloss style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent carries the style appliers shared by all components.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the style for theme. Plain themes always get an
// empty style so output carries no escape sequences.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if theme.Plain {
		return lipgloss.NewStyle()
	}
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the style appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = appliers
}

// AddAppliers appends style appliers without touching existing ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	merged := make([]StyleFunc, 0, len(b.appliers)+len(appliers))
	merged = append(merged, b.appliers...)
	b.appliers = append(merged, appliers...)
}

// RenderContext carries the theme and the available width.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext returns a context with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// PlainContext returns a context that renders without styling.
func PlainContext() RenderContext {
	return RenderContext{Theme: PlainTheme()}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a copy of the context limited to width columns.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// padRight pads s with spaces to width visible columns.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// truncate cuts s to at most width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width == 1 {
		return "…"
	}
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	return string(runes) + "…"
}
