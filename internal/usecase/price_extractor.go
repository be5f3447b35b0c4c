package usecase

import (
	"regexp"
	"strconv"
)

// priceLiteralPattern matches "$50", "$ 50", "19.99"; at most two decimals
var priceLiteralPattern = regexp.MustCompile(`\$?\s*([0-9]+(?:\.[0-9]{1,2})?)`)

// PriceVocabulary holds the connector words that decide how price literals
// become bounds. Entries may be multi-word phrases ("less than").
type PriceVocabulary struct {
	Range  []string
	Upper  []string
	Lower  []string
	Budget []string
}

// DefaultPriceVocabulary returns the built-in connector words
func DefaultPriceVocabulary() PriceVocabulary {
	return PriceVocabulary{
		Range:  []string{"between", "from"},
		Upper:  []string{"under", "below", "less than", "<="},
		Lower:  []string{"over", "above", "greater than", ">="},
		Budget: []string{"budget", "cheap", "affordable"},
	}
}

// PriceRange is an optional pair of price bounds
type PriceRange struct {
	Min *float64
	Max *float64
}

// PriceRangeExtractor derives price bounds from numeric literals and connectors
type PriceRangeExtractor struct {
	vocab PriceVocabulary
}

// NewPriceRangeExtractor creates an extractor using the given vocabulary
func NewPriceRangeExtractor(vocab PriceVocabulary) *PriceRangeExtractor {
	return &PriceRangeExtractor{vocab: vocab}
}

// Extract applies the first matching rule, in order: range connector with two
// numbers, upper-bound connector, lower-bound connector, budget word with a
// single number. Anything else leaves both bounds absent.
func (e *PriceRangeExtractor) Extract(tokens Tokens) PriceRange {
	nums := extractPriceLiterals(tokens.Text())

	switch {
	case tokens.ContainsAnyPhrase(e.vocab.Range) && len(nums) >= 2:
		lo, hi := nums[0], nums[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		return PriceRange{Min: &lo, Max: &hi}
	case tokens.ContainsAnyPhrase(e.vocab.Upper) && len(nums) >= 1:
		hi := nums[0]
		return PriceRange{Max: &hi}
	case tokens.ContainsAnyPhrase(e.vocab.Lower) && len(nums) >= 1:
		lo := nums[0]
		return PriceRange{Min: &lo}
	case len(nums) == 1 && tokens.ContainsAnyPhrase(e.vocab.Budget):
		hi := nums[0]
		return PriceRange{Max: &hi}
	}
	return PriceRange{}
}

// extractPriceLiterals returns parsed numbers in order of appearance.
// Literals that fail to parse are skipped.
func extractPriceLiterals(text string) []float64 {
	matches := priceLiteralPattern.FindAllStringSubmatch(text, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	return nums
}
