package usecase

import "github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/domain"

// QueryParserConfig holds the static vocabulary injected into the parser.
// Zero-valued fields fall back to the built-in defaults.
type QueryParserConfig struct {
	Lexicon             *domain.CategoryLexicon
	Stopwords           StopwordSet
	PriceVocabulary     *PriceVocabulary
	HighRatingThreshold float64
}

// QueryParser turns free text into a structured ParsedQuery.
// It holds only read-only configuration and is safe for concurrent use.
type QueryParser struct {
	categories *CategoryMatcher
	prices     *PriceRangeExtractor
	ratings    *RatingThresholdExtractor
	keywords   *KeywordExtractor
}

// NewQueryParser creates a parser from the given configuration
func NewQueryParser(cfg QueryParserConfig) *QueryParser {
	vocab := DefaultPriceVocabulary()
	if cfg.PriceVocabulary != nil {
		vocab = *cfg.PriceVocabulary
	}

	return &QueryParser{
		categories: NewCategoryMatcher(cfg.Lexicon),
		prices:     NewPriceRangeExtractor(vocab),
		ratings:    NewRatingThresholdExtractor(cfg.HighRatingThreshold),
		keywords:   NewKeywordExtractor(cfg.Stopwords),
	}
}

var defaultParser = NewQueryParser(QueryParserConfig{})

// ParseQuery parses text with the built-in vocabulary
func ParseQuery(text string) domain.ParsedQuery {
	return defaultParser.Parse(text)
}

// Parse normalizes text once and runs every extractor over the same tokens.
// Blank input returns an empty query without running any extractor.
func (p *QueryParser) Parse(text string) domain.ParsedQuery {
	tokens := Normalize(text)
	if tokens.IsEmpty() {
		return domain.ParsedQuery{}
	}

	var parsed domain.ParsedQuery
	if category, ok := p.categories.Match(tokens); ok {
		parsed.Category = category
	}

	prices := p.prices.Extract(tokens)
	parsed.MinPrice = prices.Min
	parsed.MaxPrice = prices.Max

	parsed.MinRating = p.ratings.Extract(tokens)

	if keywords := p.keywords.Extract(tokens); len(keywords) > 0 {
		parsed.Keywords = keywords
	}

	return parsed
}
