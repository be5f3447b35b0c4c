package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingThresholdExtractor_Extract(t *testing.T) {
	e := NewRatingThresholdExtractor(0)

	testCases := []struct {
		name  string
		query string
		want  *float64
	}{
		{name: "good reviews", query: "dress with good reviews", want: ptr(4.2)},
		{name: "great review", query: "great review headphones", want: ptr(4.2)},
		{name: "high with distant reviews", query: "high quality bags with reviews", want: ptr(4.2)},
		{name: "highly reviewed", query: "highly reviewed headphones", want: ptr(4.2)},
		{name: "good reviewed", query: "good reviewed bags", want: ptr(4.2)},
		{name: "five star", query: "five star jacket", want: ptr(4.2)},
		{name: "five stars", query: "Five Stars only", want: ptr(4.2)},
		{name: "four plus", query: "4+ rated backpacks", want: ptr(4.2)},
		{name: "explicit integer stars", query: "4 stars", want: ptr(4.0)},
		{name: "explicit decimal star", query: "at least 3.5 star", want: ptr(3.5)},
		{name: "explicit without space", query: "2stars", want: ptr(2.0)},
		{name: "explicit out of scale", query: "9 stars", want: nil},
		{name: "multi-digit is not a rating", query: "10 stars", want: nil},
		{name: "reviews without sentiment", query: "shoes with reviews", want: nil},
		{name: "sentiment without reviews", query: "good shoes", want: nil},
		{name: "nothing", query: "cotton shirt", want: nil},
		{name: "empty", query: "", want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Extract(Normalize(tc.query))
			assert.Equal(t, tc.want, got, "Extract(%q)", tc.query)
		})
	}
}

func TestRatingThresholdExtractor_QualitativeTakesPrecedence(t *testing.T) {
	e := NewRatingThresholdExtractor(0)

	got := e.Extract(Normalize("3 stars or good reviews"))
	assert.Equal(t, ptr(4.2), got)
}

func TestNewRatingThresholdExtractor_Threshold(t *testing.T) {
	assert.Equal(t, DefaultHighRatingThreshold, NewRatingThresholdExtractor(0).highThreshold)
	assert.Equal(t, DefaultHighRatingThreshold, NewRatingThresholdExtractor(7).highThreshold)
	assert.Equal(t, 4.5, NewRatingThresholdExtractor(4.5).highThreshold)

	got := NewRatingThresholdExtractor(4.5).Extract(Normalize("five star"))
	assert.Equal(t, ptr(4.5), got)
}
