package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/domain"
)

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "search_requests_total",
			Help:      "Total number of product searches",
		},
		[]string{"status"},
	)

	SearchConstraintsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "search_constraints_total",
			Help:      "Constraints extracted from search queries, by kind",
		},
		[]string{"constraint"},
	)

	SearchResultsCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "search_results_count",
			Help:      "Number of products returned per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	CatalogCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "catalog_cache_total",
			Help:      "Catalog cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	CatalogFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "catalog_fetch_duration_seconds",
			Help:      "Upstream catalog fetch duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchConstraintsTotal)
	prometheus.MustRegister(SearchResultsCount)
	prometheus.MustRegister(CatalogCacheTotal)
	prometheus.MustRegister(CatalogFetchDuration)
}

// ObserveParsedQuery counts which constraints a parsed query carries
func ObserveParsedQuery(q domain.ParsedQuery) {
	if q.HasCategory() {
		SearchConstraintsTotal.WithLabelValues("category").Inc()
	}
	if q.MinPrice != nil {
		SearchConstraintsTotal.WithLabelValues("min_price").Inc()
	}
	if q.MaxPrice != nil {
		SearchConstraintsTotal.WithLabelValues("max_price").Inc()
	}
	if q.MinRating != nil {
		SearchConstraintsTotal.WithLabelValues("min_rating").Inc()
	}
	if len(q.Keywords) > 0 {
		SearchConstraintsTotal.WithLabelValues("keywords").Inc()
	}
}
