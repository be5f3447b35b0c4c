package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Product represents a catalog item as served by the storefront catalog.
// The search core only reads products; it never mutates them.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      Rating  `json:"rating"`
	Image       string  `json:"image,omitempty"`
}

// DisplayName returns the title, falling back to the name
func (p Product) DisplayName() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

type ratingKind uint8

const (
	ratingAbsent ratingKind = iota
	ratingFlat
	ratingStructured
)

// Rating is either a flat score or a structured {rate, count} pair.
// The zero value is an absent rating and resolves to 0.
type Rating struct {
	kind  ratingKind
	rate  float64
	count int
}

// FlatRating builds a rating from a bare number
func FlatRating(value float64) Rating {
	return Rating{kind: ratingFlat, rate: value}
}

// StructuredRating builds a rating carrying a review count
func StructuredRating(rate float64, count int) Rating {
	return Rating{kind: ratingStructured, rate: rate, count: count}
}

// Value resolves the numeric rating used for threshold comparisons
func (r Rating) Value() float64 {
	return r.rate
}

// Count returns the review count when the rating is structured
func (r Rating) Count() (int, bool) {
	return r.count, r.kind == ratingStructured
}

// IsStructured reports whether the rating came with a review count
func (r Rating) IsStructured() bool {
	return r.kind == ratingStructured
}

// IsAbsent reports whether no rating was supplied
func (r Rating) IsAbsent() bool {
	return r.kind == ratingAbsent
}

type structuredRatingJSON struct {
	Rate  *float64 `json:"rate"`
	Count int      `json:"count"`
}

// UnmarshalJSON accepts null, a number, or an object with rate/count fields
func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*r = Rating{}
		return nil
	}

	if data[0] == '{' {
		var s structuredRatingJSON
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode structured rating: %w", err)
		}
		rate := 0.0
		if s.Rate != nil {
			rate = *s.Rate
		}
		*r = StructuredRating(rate, s.Count)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("rating must be a number or {rate, count} object, got %s", strings.TrimSpace(string(data)))
	}
	*r = FlatRating(v)
	return nil
}

// MarshalJSON writes the rating back in the shape it was read in
func (r Rating) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case ratingFlat:
		return json.Marshal(r.rate)
	case ratingStructured:
		return json.Marshal(structuredRatingJSON{Rate: &r.rate, Count: r.count})
	default:
		return []byte("null"), nil
	}
}
