package domain

import (
	"fmt"
	"strings"
)

// Category is a canonical category label, matched exactly against catalog data
type Category string

// Canonical labels used by the storefront catalog
const (
	CategoryMensClothing   Category = "men's clothing"
	CategoryWomensClothing Category = "women's clothing"
	CategoryJewelery       Category = "jewelery"
	CategoryElectronics    Category = "electronics"
)

// NewCategory validates a canonical label. Labels are kept verbatim because
// they are compared byte-for-byte with product categories.
func NewCategory(label string) (Category, error) {
	if strings.TrimSpace(label) == "" {
		return "", fmt.Errorf("%w: category label is empty", ErrInvalidLexicon)
	}
	if label != strings.TrimSpace(label) {
		return "", fmt.Errorf("%w: category label %q has surrounding whitespace", ErrInvalidLexicon, label)
	}
	return Category(label), nil
}

// String returns the raw label
func (c Category) String() string {
	return string(c)
}

// ParsedQuery is the structured form of a free-text shopping request.
// Nil pointers and an empty category mean the constraint is absent.
type ParsedQuery struct {
	Category  Category `json:"category,omitempty"`
	MinPrice  *float64 `json:"minPrice,omitempty"`
	MaxPrice  *float64 `json:"maxPrice,omitempty"`
	MinRating *float64 `json:"minRating,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
}

// HasCategory reports whether a category constraint is present
func (q ParsedQuery) HasCategory() bool {
	return q.Category != ""
}

// IsEmpty reports whether the query carries no constraints at all
func (q ParsedQuery) IsEmpty() bool {
	return !q.HasCategory() &&
		q.MinPrice == nil &&
		q.MaxPrice == nil &&
		q.MinRating == nil &&
		len(q.Keywords) == 0
}
