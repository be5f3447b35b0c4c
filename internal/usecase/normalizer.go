package usecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokens is an ordered sequence of normalized query fragments
type Tokens []string

// Compiled regex patterns for normalization
var (
	// Anything outside letters, digits, apostrophe, currency, decimal point,
	// hyphen, comparison symbols and whitespace becomes a separator.
	disallowedCharPattern = regexp.MustCompile(`[^\p{L}\p{N}'$.\-+<>=\s]`)

	// Symbolic comparators typed against a number ("<=50") become their own token
	comparatorPattern = regexp.MustCompile(`(<=|>=)`)

	// Multiple spaces cleanup
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// apostropheReplacer folds typographic and mis-encoded apostrophes into '.
// The mojibake sequences are listed first so they are consumed whole.
var apostropheReplacer = strings.NewReplacer(
	"â€™", "'",
	"â€˜", "'",
	"’", "'",
	"‘", "'",
	"ʼ", "'",
	"′", "'",
	"´", "'",
	"`", "'",
)

// Normalize lowercases and tokenizes raw query text.
// Empty or whitespace-only input yields no tokens.
func Normalize(text string) Tokens {
	if strings.TrimSpace(text) == "" {
		return Tokens{}
	}

	// cases.Caser is stateful, so one is built per call
	cleaned := cases.Lower(language.Und).String(text)
	cleaned = apostropheReplacer.Replace(cleaned)
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = disallowedCharPattern.ReplaceAllString(cleaned, " ")
	cleaned = comparatorPattern.ReplaceAllString(cleaned, " $1 ")

	return Tokens(strings.Fields(cleaned))
}

// Text rejoins the tokens with single spaces
func (t Tokens) Text() string {
	return strings.Join(t, " ")
}

// IsEmpty reports whether there are no tokens
func (t Tokens) IsEmpty() bool {
	return len(t) == 0
}

// ContainsPhrase reports whether the whitespace-separated phrase occurs as a
// contiguous run of whole tokens
func (t Tokens) ContainsPhrase(phrase string) bool {
	words := strings.Fields(phrase)
	if len(words) == 0 || len(words) > len(t) {
		return false
	}

	for i := 0; i+len(words) <= len(t); i++ {
		matched := true
		for j, w := range words {
			if t[i+j] != w {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// ContainsAnyPhrase reports whether any of the phrases occurs in the tokens
func (t Tokens) ContainsAnyPhrase(phrases []string) bool {
	for _, p := range phrases {
		if t.ContainsPhrase(p) {
			return true
		}
	}
	return false
}
