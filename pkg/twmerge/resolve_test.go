package twmerge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	t.Parallel()

	tokens := []string{"px-4", "foo", "px-8", "javascript:x", "p-2", "py-1"}
	trace := New().Explain(tokens)

	require.Equal(t, "foo p-2 py-1", trace.Output)
	require.Equal(t, Merge(tokens), trace.Output)
	require.Len(t, trace.Decisions, len(tokens))

	two, four := 2, 4
	require.Equal(t, Decision{Index: 0, Raw: "px-4", Token: "px-4", Group: GroupPaddingX, Outcome: OutcomeOverridden, OverriddenBy: &two}, trace.Decisions[0])
	require.Equal(t, Decision{Index: 1, Raw: "foo", Token: "foo", Outcome: OutcomeKept}, trace.Decisions[1])
	require.Equal(t, Decision{Index: 2, Raw: "px-8", Token: "px-8", Group: GroupPaddingX, Outcome: OutcomeOverridden, OverriddenBy: &four}, trace.Decisions[2])
	require.Equal(t, Decision{Index: 3, Raw: "javascript:x", Token: "javascript:x", Outcome: OutcomeRejected, Reason: ReasonForbiddenSubstring}, trace.Decisions[3])
	require.Equal(t, Decision{Index: 4, Raw: "p-2", Token: "p-2", Group: GroupPadding, Outcome: OutcomeKept}, trace.Decisions[4])
	require.Equal(t, Decision{Index: 5, Raw: "py-1", Token: "py-1", Group: GroupPaddingY, Outcome: OutcomeKept}, trace.Decisions[5])

	require.Len(t, trace.Filter(OutcomeOverridden), 2)
	require.Len(t, trace.Filter(OutcomeRejected), 1)
	require.True(t, trace.Changed())
}

func TestExplainUnchanged(t *testing.T) {
	t.Parallel()

	trace := Explain([]string{"flex", "gap-2"})
	require.Equal(t, "flex gap-2", trace.Output)
	require.False(t, trace.Changed())

	empty := Explain(nil)
	require.Equal(t, "", empty.Output)
	require.Empty(t, empty.Decisions)
}

func TestOverlapsAreSymmetric(t *testing.T) {
	t.Parallel()

	for g, others := range overlaps {
		for _, h := range others {
			require.Contains(t, overlaps[h], g, "%s overlaps %s", g, h)
		}
	}
	require.NotContains(t, overlaps[GroupPaddingX], GroupPaddingY)
	require.NotContains(t, overlaps[GroupMarginTop], GroupMarginX)
}

func TestExplainCoveredShorthand(t *testing.T) {
	t.Parallel()

	trace := New().Explain([]string{"p-4", "px-2", "py-6"})
	require.Equal(t, "px-2 py-6", trace.Output)

	// p-4 is dropped only when py-6 rewrites its last remaining sides.
	two := 2
	require.Equal(t, OutcomeOverridden, trace.Decisions[0].Outcome)
	require.Equal(t, &two, trace.Decisions[0].OverriddenBy)

	partial := New().Explain([]string{"gap-2", "gap-x-4"})
	require.Equal(t, "gap-2 gap-x-4", partial.Output)
	require.False(t, partial.Changed())
}
