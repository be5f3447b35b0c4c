package usecase

import (
	"strings"

	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/domain"
)

// ApplyFilters returns the products satisfying every present constraint of q,
// in their original order. Products are never modified.
func ApplyFilters(products []domain.Product, q domain.ParsedQuery) []domain.Product {
	if q.IsEmpty() {
		return products
	}

	keywords := make([]string, len(q.Keywords))
	for i, k := range q.Keywords {
		keywords[i] = strings.ToLower(k)
	}

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesQuery(p, q, keywords) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matchesQuery(p domain.Product, q domain.ParsedQuery, keywords []string) bool {
	if q.HasCategory() && p.Category != q.Category.String() {
		return false
	}
	if q.MinPrice != nil && p.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && p.Price > *q.MaxPrice {
		return false
	}
	if q.MinRating != nil && p.Rating.Value() < *q.MinRating {
		return false
	}

	if len(keywords) > 0 {
		haystack := strings.ToLower(p.DisplayName() + " " + p.Description)
		for _, k := range keywords {
			if !strings.Contains(haystack, k) {
				return false
			}
		}
	}
	return true
}
