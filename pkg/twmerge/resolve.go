package twmerge

import (
	"cmp"
	"slices"
	"strings"
)

// Outcome is the fate of a single token in a merge.
type Outcome string

const (
	OutcomeKept       Outcome = "kept"
	OutcomeOverridden Outcome = "overridden"
	OutcomeRejected   Outcome = "rejected"
)

// Decision records what happened to one input token.
type Decision struct {
	Index        int     `json:"index"`
	Raw          string  `json:"raw"`
	Token        string  `json:"token,omitempty"`
	Group        Group   `json:"group,omitempty"`
	Outcome      Outcome `json:"outcome"`
	OverriddenBy *int    `json:"overridden_by,omitempty"`
	Reason       Reason  `json:"reason,omitempty"`
}

// Trace is the per-token account of a merge. Output always equals the result
// of Merge for the same tokens.
type Trace struct {
	Output    string     `json:"output"`
	Decisions []Decision `json:"decisions"`
}

// Filter returns the decisions with the given outcome, in input order.
func (t Trace) Filter(outcome Outcome) []Decision {
	var out []Decision
	for _, d := range t.Decisions {
		if d.Outcome == outcome {
			out = append(out, d)
		}
	}
	return out
}

// Changed reports whether the merge dropped any token.
func (t Trace) Changed() bool {
	for _, d := range t.Decisions {
		if d.Outcome != OutcomeKept {
			return true
		}
	}
	return false
}

// Explain merges tokens and returns the decision taken for each of them.
func (m *Merger) Explain(tokens []string) Trace {
	decisions := make([]Decision, len(tokens))
	output := m.resolve(tokens, decisions)
	return Trace{Output: output, Decisions: decisions}
}

type survivor struct {
	token string
	index int
	// uncovered holds the sides not yet rewritten by a later token of an
	// overlapping group.
	uncovered side
}

// resolve implements Merge. When decisions is non-nil it must have the same
// length as tokens and is filled with one entry per token.
func (m *Merger) resolve(tokens []string, decisions []Decision) string {
	tracing := decisions != nil
	grouped := make(map[Group]survivor)
	var ungrouped []survivor
	stats := Stats{Tokens: len(tokens)}

	override := func(prev survivor, by int) {
		stats.Overridden++
		if tracing {
			decisions[prev.index].Outcome = OutcomeOverridden
			decisions[prev.index].OverriddenBy = &by
		}
	}

	for i, raw := range tokens {
		token, reason := Validate(raw)
		if tracing {
			decisions[i] = Decision{Index: i, Raw: raw, Token: token, Outcome: OutcomeKept}
		}
		if reason != ReasonNone {
			stats.Rejected++
			if tracing {
				decisions[i].Outcome = OutcomeRejected
				decisions[i].Reason = reason
			}
			continue
		}

		group, ok := m.classify(token)
		if !ok {
			ungrouped = append(ungrouped, survivor{token: token, index: i})
			continue
		}
		if tracing {
			decisions[i].Group = group
		}

		if prev, exists := grouped[group]; exists {
			override(prev, i)
		}
		sides := groupSides[group].sides
		for _, other := range overlaps[group] {
			prev, exists := grouped[other]
			if !exists {
				continue
			}
			prev.uncovered &^= sides
			if prev.uncovered == 0 {
				delete(grouped, other)
				override(prev, i)
				continue
			}
			grouped[other] = prev
		}
		grouped[group] = survivor{token: token, index: i, uncovered: sides}
	}

	survivors := make([]survivor, 0, len(grouped)+len(ungrouped))
	for _, s := range grouped {
		survivors = append(survivors, s)
	}
	survivors = append(survivors, ungrouped...)
	slices.SortFunc(survivors, func(a, b survivor) int {
		return cmp.Compare(a.index, b.index)
	})

	stats.Kept = len(survivors)
	if m.observer != nil {
		m.observer.ObserveMerge(stats)
	}

	parts := make([]string, len(survivors))
	for i, s := range survivors {
		parts[i] = s.token
	}
	return strings.Join(parts, " ")
}
