package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

const maxTokenColumn = 40

// TraceTable renders a merge trace as one row per input token.
type TraceTable struct {
	trace      twmerge.Trace
	hideHeader bool
}

// NewTraceTable creates a table for trace.
func NewTraceTable(trace twmerge.Trace) *TraceTable {
	return &TraceTable{trace: trace}
}

// WithoutHeader drops the "merged:" line above the rows.
func (t *TraceTable) WithoutHeader() *TraceTable {
	t.hideHeader = true
	return t
}

// View renders the table.
func (t *TraceTable) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the table with the given theme context.
func (t *TraceTable) ViewWithContext(ctx RenderContext) string {
	var lines []string
	if !t.hideHeader {
		lines = append(lines, TitleText("merged:").ViewWithContext(ctx)+" "+t.trace.Output)
	}
	if len(t.trace.Decisions) == 0 {
		return strings.Join(lines, "\n")
	}

	columns := []string{"#", "token", "group", "outcome", "note"}
	rows := make([][]string, 0, len(t.trace.Decisions))
	for _, d := range t.trace.Decisions {
		rows = append(rows, []string{
			strconv.Itoa(d.Index),
			truncate(displayToken(d), maxTokenColumn),
			string(d.Group),
			"[" + string(d.Outcome) + "]",
			note(d, t.trace.Decisions),
		})
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len([]rune(cell)))
		}
	}

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = padRight(MutedText(c).ViewWithContext(ctx), widths[i])
	}
	lines = append(lines, strings.TrimRight(strings.Join(header, "  "), " "))

	for r, row := range rows {
		d := t.trace.Decisions[r]
		cells := make([]string, len(row))
		for i, cell := range row {
			switch i {
			case 1:
				text := NewText(cell)
				if d.Outcome != twmerge.OutcomeKept {
					text.WithAppliers(Strikethrough(), Faint())
				}
				cell = text.ViewWithContext(ctx)
			case 3:
				cell = OutcomeBadge(d.Outcome).ViewWithContext(ctx)
			case 4:
				cell = MutedText(cell).ViewWithContext(ctx)
			}
			cells[i] = padRight(cell, widths[i])
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, "  "), " "))
	}

	return strings.Join(lines, "\n")
}

func displayToken(d twmerge.Decision) string {
	if d.Token != "" {
		return d.Token
	}
	return strconv.Quote(d.Raw)
}

func note(d twmerge.Decision, all []twmerge.Decision) string {
	switch d.Outcome {
	case twmerge.OutcomeOverridden:
		if d.OverriddenBy == nil {
			return ""
		}
		by := *d.OverriddenBy
		if by >= 0 && by < len(all) {
			return fmt.Sprintf("by #%d %s", by, all[by].Token)
		}
		return fmt.Sprintf("by #%d", by)
	case twmerge.OutcomeRejected:
		return string(d.Reason)
	default:
		return ""
	}
}
