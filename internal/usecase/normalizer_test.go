package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Tokens
	}{
		{name: "empty input", input: "", want: Tokens{}},
		{name: "whitespace only", input: " \t\n  ", want: Tokens{}},
		{name: "lowercases", input: "Women's CLOTHING", want: Tokens{"women's", "clothing"}},
		{name: "collapses whitespace", input: "  running \t  shoes\n", want: Tokens{"running", "shoes"}},
		{name: "curly apostrophe", input: "women’s clothing", want: Tokens{"women's", "clothing"}},
		{name: "left single quote", input: "men‘s", want: Tokens{"men's"}},
		{name: "mis-encoded apostrophe", input: "womenâ€™s jackets", want: Tokens{"women's", "jackets"}},
		{name: "backtick apostrophe", input: "men`s", want: Tokens{"men's"}},
		{name: "keeps currency and decimals", input: "under $49.99", want: Tokens{"under", "$49.99"}},
		{name: "keeps hyphen", input: "t-shirt", want: Tokens{"t-shirt"}},
		{name: "keeps comparison symbols", input: "price <= 30", want: Tokens{"price", "<=", "30"}},
		{name: "keeps plus marker", input: "4+ stars", want: Tokens{"4+", "stars"}},
		{name: "splits comparator from number", input: "headphones <=50", want: Tokens{"headphones", "<=", "50"}},
		{name: "splits comparator after number", input: "20>=price", want: Tokens{"20", ">=", "price"}},
		{name: "punctuation becomes separator", input: "shoes,bags!socks?", want: Tokens{"shoes", "bags", "socks"}},
		{name: "drops empty fragments", input: "!!! ###", want: Tokens{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			assert.Equal(t, tc.want, got, "Normalize(%q)", tc.input)
		})
	}
}

func TestNormalize_ApostropheVariantsAgree(t *testing.T) {
	want := Normalize("women's clothing")
	for _, variant := range []string{"women’s clothing", "WOMEN'S Clothing", "womenâ€™s clothing", "women´s  clothing"} {
		assert.Equal(t, want, Normalize(variant), variant)
	}
}

func TestTokens_Text(t *testing.T) {
	assert.Equal(t, "", Tokens{}.Text())
	assert.Equal(t, "between 20 and 80", Tokens{"between", "20", "and", "80"}.Text())
}

func TestTokens_ContainsPhrase(t *testing.T) {
	tokens := Normalize("shirts less than 30 dollars")

	testCases := []struct {
		phrase string
		want   bool
	}{
		{"less than", true},
		{"less", true},
		{"than 30", true},
		{"than less", false},
		{"les", false},
		{"", false},
		{"shirts less than 30 dollars today", false},
	}

	for _, tc := range testCases {
		t.Run(tc.phrase, func(t *testing.T) {
			assert.Equal(t, tc.want, tokens.ContainsPhrase(tc.phrase))
		})
	}
}

func TestTokens_ContainsPhrase_WholeTokensOnly(t *testing.T) {
	tokens := Normalize("overall underwear fromage")

	assert.False(t, tokens.ContainsAnyPhrase([]string{"over", "under", "from"}))
}
