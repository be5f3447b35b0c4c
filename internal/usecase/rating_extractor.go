package usecase

import (
	"regexp"
	"strconv"
)

// DefaultHighRatingThreshold is the minimum rating implied by qualitative
// phrasing such as "good reviews" or "five star"
const DefaultHighRatingThreshold = 4.2

// maxRating is the top of the 0-5 rating scale
const maxRating = 5.0

var (
	// Matches "good reviews", "highly reviewed", "great product with high review scores", "4+", "five star(s)"
	qualitativeRatingPattern = regexp.MustCompile(`\b(?:great|good|high)\w*\b.*\breview\w*|\b4\+|\bfive stars?\b`)

	// Matches "4 stars", "3.5 star", "4stars"
	explicitRatingPattern = regexp.MustCompile(`\b(\d(?:\.\d)?)\s*stars?\b`)
)

// RatingThresholdExtractor derives a minimum rating from query phrasing
type RatingThresholdExtractor struct {
	highThreshold float64
}

// NewRatingThresholdExtractor creates an extractor. A threshold outside (0, 5]
// falls back to DefaultHighRatingThreshold.
func NewRatingThresholdExtractor(highThreshold float64) *RatingThresholdExtractor {
	if highThreshold <= 0 || highThreshold > maxRating {
		highThreshold = DefaultHighRatingThreshold
	}
	return &RatingThresholdExtractor{highThreshold: highThreshold}
}

// Extract checks qualitative phrasing first, then an explicit "<n> stars".
// Explicit values outside the 0-5 scale are ignored.
func (e *RatingThresholdExtractor) Extract(tokens Tokens) *float64 {
	text := tokens.Text()
	if text == "" {
		return nil
	}

	if qualitativeRatingPattern.MatchString(text) {
		v := e.highThreshold
		return &v
	}

	m := explicitRatingPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v < 0 || v > maxRating {
		return nil
	}
	return &v
}
