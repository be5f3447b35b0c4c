package usecase

import "github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/domain"

// CategoryMatcher resolves a canonical category from query tokens
type CategoryMatcher struct {
	lexicon *domain.CategoryLexicon
}

// NewCategoryMatcher creates a matcher over the given lexicon.
// A nil lexicon falls back to the built-in storefront lexicon.
func NewCategoryMatcher(lexicon *domain.CategoryLexicon) *CategoryMatcher {
	if lexicon == nil {
		lexicon = domain.DefaultCategoryLexicon()
	}
	return &CategoryMatcher{lexicon: lexicon}
}

// Match returns the first category, in lexicon order, with a synonym equal to
// one of the tokens. Position in the text does not matter.
func (m *CategoryMatcher) Match(tokens Tokens) (domain.Category, bool) {
	if tokens.IsEmpty() {
		return "", false
	}

	for _, label := range m.lexicon.Labels() {
		for _, token := range tokens {
			if m.lexicon.HasSynonym(label, token) {
				return label, true
			}
		}
	}
	return "", false
}
