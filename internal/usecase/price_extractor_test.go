package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestPriceRangeExtractor_Extract(t *testing.T) {
	e := NewPriceRangeExtractor(DefaultPriceVocabulary())

	testCases := []struct {
		name    string
		query   string
		wantMin *float64
		wantMax *float64
	}{
		{name: "under with currency", query: "under $50", wantMax: ptr(50)},
		{name: "currency with space", query: "shirts below $ 25", wantMax: ptr(25)},
		{name: "less than phrase", query: "less than 19.99", wantMax: ptr(19.99)},
		{name: "symbolic upper bound", query: "price <= 30", wantMax: ptr(30)},
		{name: "over", query: "jackets over 100", wantMin: ptr(100)},
		{name: "greater than phrase", query: "greater than 15.5", wantMin: ptr(15.5)},
		{name: "symbolic lower bound", query: "price >= 12", wantMin: ptr(12)},
		{name: "symbolic upper bound attached", query: "headphones <=50", wantMax: ptr(50)},
		{name: "symbolic lower bound attached", query: "price >=20", wantMin: ptr(20)},
		{name: "plus suffix without connector", query: "jackets $100+", wantMin: nil, wantMax: nil},
		{name: "between ascending", query: "between 20 and 80", wantMin: ptr(20), wantMax: ptr(80)},
		{name: "between descending", query: "between 80 and 20", wantMin: ptr(20), wantMax: ptr(80)},
		{name: "from to", query: "from $10 to $30", wantMin: ptr(10), wantMax: ptr(30)},
		{name: "budget with one number", query: "budget 40 headphones", wantMax: ptr(40)},
		{name: "cheap with one number", query: "cheap rings 15", wantMax: ptr(15)},
		{name: "budget with two numbers", query: "budget 40 or 60", wantMin: nil, wantMax: nil},
		{name: "number without connector", query: "size 42 shoes", wantMin: nil, wantMax: nil},
		{name: "connector without number", query: "under budget", wantMin: nil, wantMax: nil},
		{name: "between with one number", query: "between 20 and more", wantMin: nil, wantMax: nil},
		{name: "only two decimals parsed", query: "under 9.999", wantMax: ptr(9.99)},
		{name: "empty", query: "", wantMin: nil, wantMax: nil},
		{name: "connector inside word ignored", query: "overcoat 90", wantMin: nil, wantMax: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Extract(Normalize(tc.query))
			assert.Equal(t, tc.wantMin, got.Min, "min for %q", tc.query)
			assert.Equal(t, tc.wantMax, got.Max, "max for %q", tc.query)
		})
	}
}

func TestPriceRangeExtractor_RulePrecedence(t *testing.T) {
	e := NewPriceRangeExtractor(DefaultPriceVocabulary())

	t.Run("range beats upper and lower", func(t *testing.T) {
		got := e.Extract(Normalize("between 30 and 10 but under 25 over 5"))
		assert.Equal(t, ptr(10), got.Min)
		assert.Equal(t, ptr(30), got.Max)
	})

	t.Run("upper beats lower", func(t *testing.T) {
		got := e.Extract(Normalize("over 10 under 50"))
		assert.Nil(t, got.Min)
		assert.Equal(t, ptr(10), got.Max, "first number becomes the upper bound")
	})

	t.Run("range with one number falls through to upper", func(t *testing.T) {
		got := e.Extract(Normalize("from under 50"))
		assert.Nil(t, got.Min)
		assert.Equal(t, ptr(50), got.Max)
	})

	t.Run("lower beats budget", func(t *testing.T) {
		got := e.Extract(Normalize("affordable above 20"))
		assert.Equal(t, ptr(20), got.Min)
		assert.Nil(t, got.Max)
	})
}

func TestPriceRangeExtractor_CustomVocabulary(t *testing.T) {
	e := NewPriceRangeExtractor(PriceVocabulary{
		Upper: []string{"max"},
	})

	got := e.Extract(Normalize("max 25"))
	assert.Equal(t, ptr(25), got.Max)

	got = e.Extract(Normalize("under 25"))
	assert.Nil(t, got.Max)
}

func TestExtractPriceLiterals(t *testing.T) {
	assert.Equal(t, []float64{50, 19.99, 3}, extractPriceLiterals("$50 then 19.99 and $ 3"))
	assert.Empty(t, extractPriceLiterals("no numbers here"))
}
