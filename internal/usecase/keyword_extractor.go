package usecase

import (
	"regexp"
	"unicode/utf8"
)

// minKeywordLength is the shortest token kept as a keyword
const minKeywordLength = 3

// numericTokenPattern matches tokens that are only a number, optionally
// prefixed with a comparator or currency marker and suffixed with "+"
// ("50", "19.99", "$50", "$100+", "<50")
var numericTokenPattern = regexp.MustCompile(`^(?:<=|>=|<|>)?\$?[0-9.]+\+?$`)

// StopwordSet is a read-only set of tokens excluded from keywords
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from the given words
func NewStopwordSet(words ...string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is a stopword
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// DefaultStopwords returns connectors, articles, quality adjectives and
// rating vocabulary that carry no product meaning on their own
func DefaultStopwords() StopwordSet {
	return NewStopwordSet(
		// Filler and articles
		"show", "me", "with", "and", "or", "the", "a", "an", "for", "to", "of",
		// Price connectors
		"under", "over", "between", "from", "below", "above", "than", "less", "greater",
		"budget", "cheap", "affordable",
		// Quality adjectives
		"good", "great", "best", "high",
		// Rating vocabulary
		"reviews", "review", "reviewed", "star", "stars", "five", "rated", "rating", "ratings",
		"highly",
	)
}

// KeywordExtractor derives residual free-text keywords from query tokens
type KeywordExtractor struct {
	stopwords StopwordSet
}

// NewKeywordExtractor creates an extractor. A nil set uses DefaultStopwords.
func NewKeywordExtractor(stopwords StopwordSet) *KeywordExtractor {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	return &KeywordExtractor{stopwords: stopwords}
}

// Extract keeps tokens that are not stopwords, not numeric literals and at
// least three characters long. Order and duplicates are preserved.
func (e *KeywordExtractor) Extract(tokens Tokens) []string {
	keywords := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if e.stopwords.Contains(token) {
			continue
		}
		if numericTokenPattern.MatchString(token) {
			continue
		}
		if utf8.RuneCountInString(token) < minKeywordLength {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}
