package twmerge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		token  string
		want   string
		reason Reason
	}{
		{name: "plain utility", token: "px-4", want: "px-4"},
		{name: "variant", token: "hover:bg-blue-500", want: "hover:bg-blue-500"},
		{name: "fraction", token: "w-1/2", want: "w-1/2"},
		{name: "data attribute", token: "data-[state=open]:block", want: "data-[state=open]:block"},
		{name: "arbitrary value", token: "text-[14px]", want: "text-[14px]"},
		{name: "child selector", token: "[&>svg]:absolute", want: "[&>svg]:absolute"},
		{name: "important modifier", token: "!mt-0", want: "!mt-0"},
		{name: "peer selector", token: "peer-[.is-dirty]:peer-required:block", want: "peer-[.is-dirty]:peer-required:block"},
		{name: "trimmed", token: "  flex\t", want: "flex"},
		{name: "blank", token: "   ", reason: ReasonBlank},
		{name: "empty", token: "", reason: ReasonBlank},
		{name: "too long", token: strings.Repeat("a", 250), want: strings.Repeat("a", 250), reason: ReasonTooLong},
		{name: "exactly max length", token: strings.Repeat("a", MaxTokenLength), want: strings.Repeat("a", MaxTokenLength)},
		{name: "javascript", token: "javascript:alert(1)", want: "javascript:alert(1)", reason: ReasonForbiddenSubstring},
		{name: "javascript upper case", token: "JavaScript", want: "JavaScript", reason: ReasonForbiddenSubstring},
		{name: "expression", token: "w-[expression(1)]", want: "w-[expression(1)]", reason: ReasonForbiddenSubstring},
		{name: "url", token: "bg-[URL(x.png)]", want: "bg-[URL(x.png)]", reason: ReasonForbiddenSubstring},
		{name: "import", token: "@import", want: "@import", reason: ReasonForbiddenSubstring},
		{name: "backtick", token: "bg-`red`", want: "bg-`red`", reason: ReasonInvalidCharacter},
		{name: "quote", token: `x"y`, want: `x"y`, reason: ReasonInvalidCharacter},
		{name: "semicolon", token: "a;b", want: "a;b", reason: ReasonInvalidCharacter},
		{name: "inner space", token: "px-4 py-2", want: "px-4 py-2", reason: ReasonInvalidCharacter},
		{name: "non ascii", token: "café", want: "café", reason: ReasonInvalidCharacter},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, reason := Validate(tc.token)
			require.Equal(t, tc.reason, reason)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMergeDropsInjectionAnywhere(t *testing.T) {
	t.Parallel()

	bad := []string{"javascript:x", "EXPRESSION", "bg-[url(a)]", "Import", strings.Repeat("b", 250), "a`b"}
	for _, b := range bad {
		for pos := 0; pos < 3; pos++ {
			tokens := []string{"px-4", "custom"}
			tokens = append(tokens[:pos], append([]string{b}, tokens[pos:]...)...)
			require.Equal(t, "px-4 custom", Merge(tokens), "token %q at %d", b, pos)
		}
	}
}
