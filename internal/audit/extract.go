package audit

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// Kind tells where a class list was found.
type Kind string

const (
	KindAttribute Kind = "attribute"
	KindCall      Kind = "call"
)

// Occurrence is a literal class list found in a source file.
type Occurrence struct {
	Line  int
	Kind  Kind
	Value string
}

var (
	attributePattern = regexp.MustCompile(`\b(?:class|className|Class)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	callPattern      = regexp.MustCompile(`\b(?:cn|Cn|CN)\(([^()]*)\)`)
	literalPattern   = regexp.MustCompile(`^(?:"([^"\\]*)"|'([^'\\]*)'|` + "`([^`]*)`" + `)$`)
	razorPattern     = regexp.MustCompile(`(?:^|\s)@[A-Za-z(]`)
)

// Extract returns every literal class list in content, in file order.
// Attribute values and cn calls that contain template expressions are
// skipped because their runtime value is unknown.
func Extract(content []byte) []Occurrence {
	var out []Occurrence
	lines := newLineIndex(content)

	for _, m := range attributePattern.FindAllSubmatchIndex(content, -1) {
		value := submatch(content, m, 1)
		if m[2] < 0 {
			value = submatch(content, m, 2)
		}
		if isTemplated(value) {
			continue
		}
		out = append(out, Occurrence{Line: lines.lineAt(m[0]), Kind: KindAttribute, Value: value})
	}

	for _, m := range callPattern.FindAllSubmatchIndex(content, -1) {
		args := splitArgs(submatch(content, m, 1))
		var literals []string
		for _, arg := range args {
			lm := literalPattern.FindStringSubmatch(arg)
			if lm == nil {
				continue
			}
			literals = append(literals, lm[1]+lm[2]+lm[3])
		}
		value := strings.Join(literals, " ")
		if strings.TrimSpace(value) == "" || isTemplated(value) {
			continue
		}
		out = append(out, Occurrence{Line: lines.lineAt(m[0]), Kind: KindCall, Value: value})
	}

	sortOccurrences(out)
	return out
}

func sortOccurrences(occ []Occurrence) {
	slices.SortStableFunc(occ, func(a, b Occurrence) int {
		return cmp.Compare(a.Line, b.Line)
	})
}

func submatch(content []byte, m []int, group int) string {
	start, end := m[2*group], m[2*group+1]
	if start < 0 {
		return ""
	}
	return string(content[start:end])
}

// splitArgs splits a call argument list on commas outside string literals.
func splitArgs(args string) []string {
	var out []string
	var quote rune
	start := 0
	for i, r := range args {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'' || r == '`':
			quote = r
		case r == ',':
			out = append(out, strings.TrimSpace(args[start:i]))
			start = i + 1
		}
	}
	return append(out, strings.TrimSpace(args[start:]))
}

func isTemplated(value string) bool {
	return strings.ContainsAny(value, "{}") ||
		strings.Contains(value, "<%") ||
		razorPattern.MatchString(value)
}

type lineIndex []int

func newLineIndex(content []byte) lineIndex {
	idx := lineIndex{0}
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// lineAt converts a byte offset into a 1-based line number.
func (li lineIndex) lineAt(offset int) int {
	lo, hi := 0, len(li)
	for lo < hi {
		mid := (lo + hi) / 2
		if li[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
