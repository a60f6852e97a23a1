package audit

import (
	"cmp"
	"context"
	"path"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/twmerge/internal/logger"
	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

// Options selects the files a Scanner reads.
type Options struct {
	Extensions []string
	Ignore     []string
}

// Finding is a class list that the merger would rewrite.
type Finding struct {
	Path       string   `json:"path"`
	Line       int      `json:"line"`
	Kind       Kind     `json:"kind"`
	Original   string   `json:"original"`
	Merged     string   `json:"merged"`
	Overridden []string `json:"overridden,omitempty"`
	Rejected   []string `json:"rejected,omitempty"`
}

// Report summarises a scan.
type Report struct {
	Source     string    `json:"source"`
	Files      int       `json:"files"`
	ClassLists int       `json:"class_lists"`
	Findings   []Finding `json:"findings"`
}

// Scanner finds class lists whose merged form differs from what is written.
type Scanner struct {
	merger *twmerge.Merger
	opts   Options
	log    *logger.Logger
}

// NewScanner creates a Scanner. A nil merger selects twmerge.Default and a
// nil logger discards output.
func NewScanner(merger *twmerge.Merger, opts Options, log *logger.Logger) *Scanner {
	if merger == nil {
		merger = twmerge.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Scanner{merger: merger, opts: opts, log: log.Component("audit")}
}

// Scan reads every accepted file of src and reports the class lists that
// would change when merged.
func (s *Scanner) Scan(ctx context.Context, src Source) (Report, error) {
	report := Report{Source: src.Name(), Findings: []Finding{}}

	err := src.Files(ctx, s.accept, func(file string, content []byte) error {
		report.Files++
		occurrences := Extract(content)
		report.ClassLists += len(occurrences)

		for _, occ := range occurrences {
			if finding, ok := s.check(file, occ); ok {
				report.Findings = append(report.Findings, finding)
			}
		}

		s.log.WithFields(map[string]any{"path": file, "class_lists": len(occurrences)}).Debug("scanned file")
		return nil
	})
	if err != nil {
		return report, err
	}

	slices.SortStableFunc(report.Findings, func(a, b Finding) int {
		if c := cmp.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return cmp.Compare(a.Line, b.Line)
	})
	return report, nil
}

func (s *Scanner) check(file string, occ Occurrence) (Finding, bool) {
	tokens := strings.Fields(occ.Value)
	trace := s.merger.Explain(tokens)
	if trace.Output == strings.Join(tokens, " ") {
		return Finding{}, false
	}

	finding := Finding{
		Path:     file,
		Line:     occ.Line,
		Kind:     occ.Kind,
		Original: occ.Value,
		Merged:   trace.Output,
	}
	for _, d := range trace.Filter(twmerge.OutcomeOverridden) {
		finding.Overridden = append(finding.Overridden, d.Token)
	}
	for _, d := range trace.Filter(twmerge.OutcomeRejected) {
		finding.Rejected = append(finding.Rejected, d.Token)
	}
	return finding, true
}

// accept reports whether a slash separated path should be scanned.
// Directory paths end in a slash and are only checked against Ignore.
func (s *Scanner) accept(p string) bool {
	for _, prefix := range s.opts.Ignore {
		if strings.HasPrefix(p, prefix) || strings.Contains(p, "/"+prefix) {
			return false
		}
	}
	if strings.HasSuffix(p, "/") {
		return true
	}
	if len(s.opts.Extensions) == 0 {
		return true
	}
	return slices.Contains(s.opts.Extensions, path.Ext(p))
}
