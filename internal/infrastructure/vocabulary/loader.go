// Package vocabulary loads query parser vocabulary overrides from YAML.
package vocabulary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/domain"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/usecase"
)

// File is the on-disk vocabulary format. Omitted sections keep the defaults.
//
//	categories:
//	  - label: electronics
//	    synonyms: [phone, laptop, tablet]
//	extra_stopwords: [please]
//	price:
//	  upper: [under, below, "less than", "<=", max]
//	high_rating_threshold: 4.5
type File struct {
	Categories          []CategoryEntry `yaml:"categories"`
	Stopwords           []string        `yaml:"stopwords"`
	ExtraStopwords      []string        `yaml:"extra_stopwords"`
	Price               *PriceEntry     `yaml:"price"`
	HighRatingThreshold float64         `yaml:"high_rating_threshold"`
}

// CategoryEntry is one lexicon row. Order in the file is match precedence.
type CategoryEntry struct {
	Label    string   `yaml:"label"`
	Synonyms []string `yaml:"synonyms"`
}

// PriceEntry overrides individual connector lists
type PriceEntry struct {
	Range  []string `yaml:"range"`
	Upper  []string `yaml:"upper"`
	Lower  []string `yaml:"lower"`
	Budget []string `yaml:"budget"`
}

// Load reads a vocabulary file and returns the parser configuration it
// describes. An empty path returns the zero config, which selects defaults.
func Load(path string) (usecase.QueryParserConfig, error) {
	if path == "" {
		return usecase.QueryParserConfig{}, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return usecase.QueryParserConfig{}, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return usecase.QueryParserConfig{}, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML vocabulary data into a parser configuration
func Parse(data []byte) (usecase.QueryParserConfig, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return usecase.QueryParserConfig{}, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	return file.ParserConfig()
}

// ParserConfig validates the file and converts it for usecase.NewQueryParser
func (f File) ParserConfig() (usecase.QueryParserConfig, error) {
	var cfg usecase.QueryParserConfig

	if len(f.Categories) > 0 {
		entries := make([]domain.LexiconEntry, len(f.Categories))
		for i, c := range f.Categories {
			entries[i] = domain.LexiconEntry{Label: domain.Category(c.Label), Synonyms: c.Synonyms}
		}
		lex, err := domain.NewCategoryLexicon(entries...)
		if err != nil {
			return usecase.QueryParserConfig{}, err
		}
		cfg.Lexicon = lex
	}

	if len(f.Stopwords) > 0 || len(f.ExtraStopwords) > 0 {
		set := usecase.NewStopwordSet(lowerAll(f.Stopwords)...)
		if len(f.Stopwords) == 0 {
			set = usecase.DefaultStopwords()
		}
		for _, w := range lowerAll(f.ExtraStopwords) {
			set[w] = struct{}{}
		}
		cfg.Stopwords = set
	}

	if f.Price != nil {
		vocab := usecase.DefaultPriceVocabulary()
		if len(f.Price.Range) > 0 {
			vocab.Range = f.Price.Range
		}
		if len(f.Price.Upper) > 0 {
			vocab.Upper = f.Price.Upper
		}
		if len(f.Price.Lower) > 0 {
			vocab.Lower = f.Price.Lower
		}
		if len(f.Price.Budget) > 0 {
			vocab.Budget = f.Price.Budget
		}
		cfg.PriceVocabulary = &vocab
	}

	if f.HighRatingThreshold != 0 {
		if f.HighRatingThreshold < 0 || f.HighRatingThreshold > 5 {
			return usecase.QueryParserConfig{}, fmt.Errorf("high_rating_threshold must be within [0, 5], got %v", f.HighRatingThreshold)
		}
		cfg.HighRatingThreshold = f.HighRatingThreshold
	}

	return cfg, nil
}

// lowerAll folds words the same way the normalizer folds query tokens
func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}
