package classnames

import "github.com/alexisbeaulieu97/twmerge/pkg/twmerge"

// Tokens flattens inputs into individual class names in declaration order
// without resolving conflicts.
func Tokens(inputs ...any) []string {
	var tokens []string
	w := &walk{}
	for _, in := range inputs {
		tokens = from(in, w).appendTokens(tokens, w)
	}
	return tokens
}

// Cn flattens inputs and merges them with the default merger. Later
// utilities override earlier ones of the same group; unknown classes are
// kept and unsafe ones dropped.
func Cn(inputs ...any) string {
	return twmerge.Merge(Tokens(inputs...))
}

// Joiner runs Cn against a specific merger, for callers that need their own
// cache size or observer.
type Joiner struct {
	merger *twmerge.Merger
}

// NewJoiner returns a Joiner backed by merger. A nil merger selects the
// default one.
func NewJoiner(merger *twmerge.Merger) Joiner {
	if merger == nil {
		merger = twmerge.Default()
	}
	return Joiner{merger: merger}
}

// Cn flattens inputs and merges them with the joiner's merger.
func (j Joiner) Cn(inputs ...any) string {
	merger := j.merger
	if merger == nil {
		merger = twmerge.Default()
	}
	return merger.Merge(Tokens(inputs...))
}
