package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/twmerge/internal/audit"
	"github.com/alexisbeaulieu97/twmerge/pkg/diff"
	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

// FindingList renders an audit report.
type FindingList struct {
	report audit.Report
}

// NewFindingList creates a list for report.
func NewFindingList(report audit.Report) *FindingList {
	return &FindingList{report: report}
}

// View renders the list.
func (f *FindingList) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every finding followed by a summary line.
func (f *FindingList) ViewWithContext(ctx RenderContext) string {
	var blocks []string
	for _, finding := range f.report.Findings {
		blocks = append(blocks, f.renderFinding(ctx, finding))
	}
	blocks = append(blocks, f.summary())
	return strings.Join(blocks, "\n\n")
}

func (f *FindingList) renderFinding(ctx RenderContext, finding audit.Finding) string {
	location := fmt.Sprintf("%s:%d", finding.Path, finding.Line)
	lines := []string{
		TitleText(location).ViewWithContext(ctx) + " " + MutedText("("+string(finding.Kind)+")").ViewWithContext(ctx),
		"  " + NewText("- "+finding.Original).WithAppliers(Foreground(PaletteRejected)).ViewWithContext(ctx),
		"  " + NewText("+ "+finding.Merged).WithAppliers(Foreground(PaletteKept)).ViewWithContext(ctx),
	}
	if inline := diff.Inline(finding.Original, finding.Merged); inline != "" {
		lines = append(lines, "  "+MutedText("diff: "+inline).ViewWithContext(ctx))
	}
	if len(finding.Overridden) > 0 {
		lines = append(lines, "  "+OutcomeBadge(twmerge.OutcomeOverridden).ViewWithContext(ctx)+" "+strings.Join(finding.Overridden, " "))
	}
	if len(finding.Rejected) > 0 {
		lines = append(lines, "  "+OutcomeBadge(twmerge.OutcomeRejected).ViewWithContext(ctx)+" "+strings.Join(finding.Rejected, " "))
	}
	return strings.Join(lines, "\n")
}

func (f *FindingList) summary() string {
	return fmt.Sprintf("%s in %s (%s scanned)",
		plural(len(f.report.Findings), "finding"),
		plural(f.report.Files, "file"),
		plural(f.report.ClassLists, "class list"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
