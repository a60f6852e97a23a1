package twmerge

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxTokenLength is the longest class name accepted by the merger.
const MaxTokenLength = 200

// Reason explains why a token was dropped before classification.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonBlank              Reason = "blank"
	ReasonTooLong            Reason = "too-long"
	ReasonForbiddenSubstring Reason = "forbidden-substring"
	ReasonInvalidCharacter   Reason = "invalid-character"
)

var (
	// forbiddenSubstrings are matched against the lower-cased token.
	forbiddenSubstrings = []string{"expression", "javascript", "url(", "import"}

	allowedTokenPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_:/.%\[\]()!@#&>+~=]+$`)
)

// Validate trims token and reports whether it may appear in a class
// attribute. The returned reason is ReasonNone for accepted tokens.
func Validate(token string) (string, Reason) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ReasonBlank
	}
	if utf8.RuneCountInString(token) > MaxTokenLength {
		return token, ReasonTooLong
	}

	lowered := strings.ToLower(token)
	for _, s := range forbiddenSubstrings {
		if strings.Contains(lowered, s) {
			return token, ReasonForbiddenSubstring
		}
	}

	if !allowedTokenPattern.MatchString(token) {
		return token, ReasonInvalidCharacter
	}

	return token, ReasonNone
}
