package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

// PaletteSlot names a semantic colour in the theme.
type PaletteSlot int

const (
	PaletteAccent PaletteSlot = iota
	PaletteMuted
	PaletteKept
	PaletteOverridden
	PaletteRejected
)

// ColorPalette holds the adaptive colours used by every component.
type ColorPalette struct {
	Accent     lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Kept       lipgloss.AdaptiveColor
	Overridden lipgloss.AdaptiveColor
	Rejected   lipgloss.AdaptiveColor
}

// Color returns the colour for slot. Unknown slots fall back to Muted.
func (p ColorPalette) Color(slot PaletteSlot) lipgloss.AdaptiveColor {
	switch slot {
	case PaletteAccent:
		return p.Accent
	case PaletteKept:
		return p.Kept
	case PaletteOverridden:
		return p.Overridden
	case PaletteRejected:
		return p.Rejected
	default:
		return p.Muted
	}
}

// Theme is an immutable set of rendering choices. A plain theme renders no
// colour or emphasis, which is what non-terminal output wants.
type Theme struct {
	Plain   bool
	Palette ColorPalette
}

// DefaultTheme returns the colour theme used on terminals.
func DefaultTheme() Theme {
	return Theme{
		Palette: ColorPalette{
			Accent:     lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"},
			Muted:      lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"},
			Kept:       lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"},
			Overridden: lipgloss.AdaptiveColor{Light: "#a16207", Dark: "#facc15"},
			Rejected:   lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"},
		},
	}
}

// PlainTheme returns a theme without styling.
func PlainTheme() Theme {
	theme := DefaultTheme()
	theme.Plain = true
	return theme
}

// ThemeFor picks DefaultTheme for terminals and PlainTheme otherwise.
func ThemeFor(isTerminal bool) Theme {
	if isTerminal {
		return DefaultTheme()
	}
	return PlainTheme()
}

// OutcomeSlot maps a merge outcome to its palette slot.
func OutcomeSlot(outcome twmerge.Outcome) PaletteSlot {
	switch outcome {
	case twmerge.OutcomeKept:
		return PaletteKept
	case twmerge.OutcomeOverridden:
		return PaletteOverridden
	case twmerge.OutcomeRejected:
		return PaletteRejected
	default:
		return PaletteMuted
	}
}

// Foreground colours text with the given slot.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Foreground(theme.Palette.Color(slot))
	}
}

// Bold renders text in bold.
func Bold() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Bold(true)
	}
}

// Faint renders text dimmed.
func Faint() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Faint(true)
	}
}

// Strikethrough crosses text out.
func Strikethrough() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Strikethrough(true)
	}
}
