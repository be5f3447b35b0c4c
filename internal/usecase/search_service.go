package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/domain"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/metrics"
)

// catalogCacheKey is the cache slot holding the encoded product catalog
const catalogCacheKey = "catalog:products"

// defaultCatalogTTL applies when no TTL is configured
const defaultCatalogTTL = 10 * time.Minute

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CatalogTTL time.Duration
	Logger     *zap.Logger
}

// SearchService answers free-text product searches over the catalog
type SearchService struct {
	cache      domain.CacheRepository
	client     domain.CatalogClient
	parser     *QueryParser
	catalogTTL time.Duration
	logger     *zap.Logger
}

// NewSearchService creates a new search service with dependencies.
// cache may be nil, in which case every search fetches the catalog.
func NewSearchService(
	cache domain.CacheRepository,
	client domain.CatalogClient,
	parser *QueryParser,
	config SearchServiceConfig,
) *SearchService {
	if parser == nil {
		parser = defaultParser
	}

	catalogTTL := config.CatalogTTL
	if catalogTTL == 0 {
		catalogTTL = defaultCatalogTTL
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SearchService{
		cache:      cache,
		client:     client,
		parser:     parser,
		catalogTTL: catalogTTL,
		logger:     logger,
	}
}

// Parse reads a query without touching the catalog
func (s *SearchService) Parse(text string) domain.ParsedQuery {
	return s.parser.Parse(text)
}

// Search filters the catalog by the optional quick-filter category and then by
// the constraints parsed from the query text.
// Flow: catalog (cache -> upstream) -> category button -> parse -> filter
func (s *SearchService) Search(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResult, error) {
	if request == nil {
		metrics.SearchRequestsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidRequest
	}

	catalog, err := s.Catalog(ctx)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	products := catalog
	if request.Category != "" {
		products = filterByCategory(products, request.Category)
	}

	parsed := s.parser.Parse(request.Query)
	metrics.ObserveParsedQuery(parsed)

	matched := ApplyFilters(products, parsed)
	if matched == nil {
		matched = []domain.Product{}
	}
	metrics.SearchResultsCount.Observe(float64(len(matched)))
	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()

	s.logger.Debug("search completed",
		zap.String("query", request.Query),
		zap.String("category_filter", request.Category),
		zap.Any("parsed", parsed),
		zap.Int("catalog_size", len(catalog)),
		zap.Int("matched", len(matched)),
	)

	return &domain.SearchResult{
		Query:    request.Query,
		Parsed:   parsed,
		Products: matched,
		Total:    len(matched),
	}, nil
}

// Catalog returns the product catalog, serving from cache when possible.
// Cache failures are logged and never fail the request.
func (s *SearchService) Catalog(ctx context.Context) ([]domain.Product, error) {
	if products, err := s.getFromCache(ctx); err == nil {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return products, nil
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("catalog cache read failed", zap.Error(err))
	}
	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()

	start := time.Now()
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		metrics.CatalogFetchDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	metrics.CatalogFetchDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	if err := s.setInCache(ctx, products); err != nil {
		s.logger.Warn("catalog cache write failed", zap.Error(err))
	}

	return products, nil
}

// InvalidateCatalog drops the cached catalog so the next search refetches it
func (s *SearchService) InvalidateCatalog(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, catalogCacheKey); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// getFromCache retrieves and decodes the catalog from cache
func (s *SearchService) getFromCache(ctx context.Context) ([]domain.Product, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}

	data, err := s.cache.Get(ctx, catalogCacheKey)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode cached catalog: %w", err)
	}
	return products, nil
}

// setInCache encodes and stores the catalog
func (s *SearchService) setInCache(ctx context.Context, products []domain.Product) error {
	if s.cache == nil {
		return nil
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return s.cache.Set(ctx, catalogCacheKey, data, s.catalogTTL)
}

// filterByCategory keeps products whose category equals the button label
func filterByCategory(products []domain.Product, category string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
