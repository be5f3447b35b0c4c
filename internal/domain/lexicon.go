package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// LexiconEntry declares one canonical category and its synonym tokens
type LexiconEntry struct {
	Label    Category
	Synonyms []string
}

type lexiconEntry struct {
	label    Category
	synonyms map[string]struct{}
}

// CategoryLexicon is an immutable, ordered mapping of canonical categories to
// synonym tokens. Declaration order defines match precedence.
type CategoryLexicon struct {
	entries []lexiconEntry
}

// NewCategoryLexicon validates entries and freezes them in the given order.
// Synonyms are lower-cased and must be single tokens.
func NewCategoryLexicon(entries ...LexiconEntry) (*CategoryLexicon, error) {
	seen := make(map[Category]bool, len(entries))
	lex := &CategoryLexicon{entries: make([]lexiconEntry, 0, len(entries))}

	for _, e := range entries {
		label, err := NewCategory(string(e.Label))
		if err != nil {
			return nil, err
		}
		if seen[label] {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidLexicon, label)
		}
		seen[label] = true

		if len(e.Synonyms) == 0 {
			return nil, fmt.Errorf("%w: category %q has no synonyms", ErrInvalidLexicon, label)
		}

		synonyms := make(map[string]struct{}, len(e.Synonyms))
		for _, s := range e.Synonyms {
			token := strings.ToLower(strings.TrimSpace(s))
			if token == "" {
				return nil, fmt.Errorf("%w: category %q has an empty synonym", ErrInvalidLexicon, label)
			}
			if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
				return nil, fmt.Errorf("%w: synonym %q of %q is not a single token", ErrInvalidLexicon, s, label)
			}
			synonyms[token] = struct{}{}
		}

		lex.entries = append(lex.entries, lexiconEntry{label: label, synonyms: synonyms})
	}

	return lex, nil
}

// Labels returns the canonical labels in declaration order
func (l *CategoryLexicon) Labels() []Category {
	labels := make([]Category, len(l.entries))
	for i, e := range l.entries {
		labels[i] = e.label
	}
	return labels
}

// HasSynonym reports whether token is a synonym of the given category
func (l *CategoryLexicon) HasSynonym(label Category, token string) bool {
	for _, e := range l.entries {
		if e.label == label {
			_, ok := e.synonyms[token]
			return ok
		}
	}
	return false
}

// Len returns the number of categories
func (l *CategoryLexicon) Len() int {
	return len(l.entries)
}

// DefaultCategoryLexicon returns the storefront's built-in lexicon, declared in
// the same order as the catalog's category buttons.
func DefaultCategoryLexicon() *CategoryLexicon {
	lex, err := NewCategoryLexicon(
		LexiconEntry{
			Label:    CategoryMensClothing,
			Synonyms: []string{"mens", "men", "men's", "male", "guys"},
		},
		LexiconEntry{
			Label:    CategoryWomensClothing,
			Synonyms: []string{"womens", "women", "women's", "female", "ladies"},
		},
		LexiconEntry{
			Label:    CategoryJewelery,
			Synonyms: []string{"jewelry", "jewelery", "ring", "necklace", "bracelet", "earrings"},
		},
		LexiconEntry{
			Label:    CategoryElectronics,
			Synonyms: []string{"electronics", "phone", "smartphone", "laptop", "headphone", "headphones", "earbuds", "camera", "tv"},
		},
	)
	if err != nil {
		panic(fmt.Sprintf("default category lexicon: %v", err))
	}
	return lex
}
