package playground

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/twmerge/internal/ui/components"
	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

const defaultWidth = 80

// Model is the Bubbletea state of the interactive merge playground.
type Model struct {
	merger   *twmerge.Merger
	input    textinput.Model
	trace    twmerge.Trace
	theme    components.Theme
	width    int
	quitting bool
}

// NewModel creates a playground that merges with merger, starting from
// initial. A nil merger selects twmerge.Default.
func NewModel(merger *twmerge.Merger, initial string) Model {
	if merger == nil {
		merger = twmerge.Default()
	}

	input := textinput.New()
	input.Prompt = "class> "
	input.Placeholder = "px-4 py-2 px-8"
	input.Width = defaultWidth - len(input.Prompt) - 1
	input.SetValue(initial)
	input.Focus()

	m := Model{
		merger: merger,
		input:  input,
		theme:  components.DefaultTheme(),
		width:  defaultWidth,
	}
	m.refresh()
	return m
}

// WithTheme returns a copy of the model that renders with theme.
func (m Model) WithTheme(theme components.Theme) Model {
	m.theme = theme
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the current class list.
func (m Model) Value() string {
	return m.input.Value()
}

// Trace returns the trace of the current class list.
func (m Model) Trace() twmerge.Trace {
	return m.trace
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) refresh() {
	m.trace = m.merger.Explain(strings.Fields(m.input.Value()))
}

// Run starts the playground on the given terminal streams and blocks until
// the user quits or ctx is cancelled. It returns the final class list.
func Run(ctx context.Context, merger *twmerge.Merger, initial string, in io.Reader, out io.Writer) (string, error) {
	program := tea.NewProgram(
		NewModel(merger, initial),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.trace.Output, nil
	}
	return "", nil
}
