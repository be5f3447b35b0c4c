package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrCatalogUnavailable is returned when the product catalog cannot be fetched
	ErrCatalogUnavailable = errors.New("product catalog unavailable")

	// ErrCatalogNotFound is returned when the catalog endpoint does not exist
	ErrCatalogNotFound = errors.New("product catalog not found")

	// ErrInvalidLexicon is returned when a category lexicon fails validation
	ErrInvalidLexicon = errors.New("invalid category lexicon")
)
