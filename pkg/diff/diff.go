package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffTokens   = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 tokens) ..."
)

// Kind classifies a token in a class diff.
type Kind int

const (
	Equal Kind = iota
	Removed
	Added
)

// Change is one token of a class diff.
type Change struct {
	Kind  Kind
	Token string
}

// Classes compares two class lists token by token. Both inputs are split on
// whitespace; the result lists every token of both in diff order.
func Classes(before, after string) []Change {
	a := tokenLines(before)
	b := tokenLines(after)
	if a == b {
		return equalChanges(before)
	}

	dmp := diffmatchpatch.New()
	charsA, charsB, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lines)

	var changes []Change
	for _, d := range diffs {
		kind := Equal
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = Removed
		case diffmatchpatch.DiffInsert:
			kind = Added
		}
		for _, token := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if token == "" {
				continue
			}
			changes = append(changes, Change{Kind: kind, Token: token})
		}
	}
	return changes
}

// Inline renders a class diff on one line, prefixing removed tokens with '-'
// and added tokens with '+'. It returns an empty string when the class lists
// are identical.
func Inline(before, after string) string {
	changes := Classes(before, after)
	if !hasChanges(changes) {
		return ""
	}

	parts := make([]string, len(changes))
	for i, c := range changes {
		parts[i] = prefix(c.Kind) + c.Token
	}
	return strings.Join(parts, " ")
}

// Unified renders a class diff in unified format with one token per line.
// Returns an empty string when the class lists are identical and truncates
// diffs longer than 10,000 tokens.
func Unified(before, after, beforeLabel, afterLabel string) string {
	changes := Classes(before, after)
	if !hasChanges(changes) {
		return ""
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(strings.Fields(before)), len(strings.Fields(after)))

	for i, c := range changes {
		if i == maxDiffTokens {
			buf.WriteString(truncateMessage)
			buf.WriteString("\n")
			break
		}
		p := prefix(c.Kind)
		if p == "" {
			p = " "
		}
		buf.WriteString(p)
		buf.WriteString(c.Token)
		buf.WriteString("\n")
	}

	return buf.String()
}

func tokenLines(classes string) string {
	fields := strings.Fields(classes)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, "\n") + "\n"
}

func equalChanges(classes string) []Change {
	fields := strings.Fields(classes)
	changes := make([]Change, len(fields))
	for i, f := range fields {
		changes[i] = Change{Kind: Equal, Token: f}
	}
	return changes
}

func hasChanges(changes []Change) bool {
	for _, c := range changes {
		if c.Kind != Equal {
			return true
		}
	}
	return false
}

func prefix(kind Kind) string {
	switch kind {
	case Removed:
		return "-"
	case Added:
		return "+"
	default:
		return ""
	}
}
