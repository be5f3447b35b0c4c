package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/config"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/domain"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/infrastructure/cache"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubCatalogClient serves a fixed catalog or a fixed error
type stubCatalogClient struct {
	mu       sync.Mutex
	products []domain.Product
	err      error
	calls    int
}

func (s *stubCatalogClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Mens Casual Slim Fit", Description: "Cotton shirt", Category: "men's clothing", Price: 15.99, Rating: domain.StructuredRating(2.1, 430)},
		{ID: 2, Title: "Women's Cotton Cardigan", Description: "Soft knit", Category: "women's clothing", Price: 49.99, Rating: domain.StructuredRating(4.3, 20)},
		{ID: 3, Title: "Women's Rain Jacket", Description: "Lightweight windbreaker", Category: "women's clothing", Price: 39.99, Rating: domain.FlatRating(3.8)},
		{ID: 4, Title: "SanDisk SSD PLUS 1TB", Description: "Internal solid state drive", Category: "electronics", Price: 109, Rating: domain.StructuredRating(2.9, 470)},
		{ID: 5, Title: "Samsung Galaxy Phone", Description: "Unlocked smartphone", Category: "electronics", Price: 599, Rating: domain.FlatRating(4.4)},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:3000", "https://storefront-*"},
		},
		Cache: config.CacheConfig{Type: "memory"},
	}
}

// setupTestRouter wires the real search service over an in-memory cache
func setupTestRouter(t *testing.T, client *stubCatalogClient) *gin.Engine {
	t.Helper()

	memCache := cache.NewMemoryCache()
	t.Cleanup(func() { memCache.Close() })

	service := usecase.NewSearchService(memCache, client, nil, usecase.SearchServiceConfig{})
	return SetupRouter(testConfig(), NewHandler(service), nil)
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func searchPath(q, category string) string {
	values := url.Values{}
	if q != "" {
		values.Set("q", q)
	}
	if category != "" {
		values.Set("category", category)
	}
	return "/api/v1/products/search?" + values.Encode()
}

func resultIDs(t *testing.T, w *httptest.ResponseRecorder) []int {
	t.Helper()

	var result domain.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, len(result.Products), result.Total)

	ids := make([]int, len(result.Products))
	for i, p := range result.Products {
		ids[i] = p.ID
	}
	return ids
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := setupTestRouter(t, &stubCatalogClient{})

		w := doRequest(router, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response["status"])
		assert.Equal(t, "storefront-search", response["service"])
		assert.Equal(t, Version, response["version"])
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router := setupTestRouter(t, &stubCatalogClient{})

		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			w := doRequest(router, method, "/health", "")
			assert.Equal(t, http.StatusNotFound, w.Code, "method %s", method)
		}
	})
}

func TestSearchEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		wantIDs  []int
	}{
		{"empty query returns whole catalog", "", "", []int{1, 2, 3, 4, 5}},
		{"category and price bound", "women's jacket under 45", "", []int{3}},
		{"qualitative rating", "phone with good reviews", "", []int{5}},
		{"price range", "between 10 and 50", "", []int{1, 2, 3}},
		{"quick filter button alone", "", "women's clothing", []int{2, 3}},
		{"quick filter combined with text", "cotton", "women's clothing", []int{2}},
		{"quick filter excludes parsed category", "phone", "men's clothing", []int{}},
		{"no matches yields empty list", "tuxedo", "", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(t, &stubCatalogClient{products: testCatalog()})

			w := doRequest(router, http.MethodGet, searchPath(tt.query, tt.category), "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.wantIDs, resultIDs(t, w))
		})
	}
}

func TestSearchEndpoint_ResponseShape(t *testing.T) {
	router := setupTestRouter(t, &stubCatalogClient{products: testCatalog()})

	w := doRequest(router, http.MethodGet, searchPath("phone under 700 with 4 stars", ""), "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "phone under 700 with 4 stars", body["query"])
	parsed, ok := body["parsed"].(map[string]interface{})
	require.True(t, ok, "parsed should be an object")
	assert.Equal(t, "electronics", parsed["category"])
	assert.Equal(t, 700.0, parsed["maxPrice"])
	assert.Equal(t, 4.0, parsed["minRating"])
	assert.NotContains(t, parsed, "minPrice")
	assert.Equal(t, []interface{}{"phone"}, parsed["keywords"])

	products, ok := body["products"].([]interface{})
	require.True(t, ok)
	require.Len(t, products, 1)
	rating := products[0].(map[string]interface{})["rating"]
	assert.Equal(t, 4.4, rating, "flat ratings keep their shape")
}

func TestSearchEndpoint_UsesCatalogCache(t *testing.T) {
	client := &stubCatalogClient{products: testCatalog()}
	router := setupTestRouter(t, client)

	for i := 0; i < 3; i++ {
		w := doRequest(router, http.MethodGet, searchPath("jacket", ""), "")
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 1, client.calls)

	w := doRequest(router, http.MethodPost, "/api/v1/catalog/refresh", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, searchPath("jacket", ""), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, client.calls)
}

func TestSearchEndpoint_CatalogFailure(t *testing.T) {
	client := &stubCatalogClient{err: errors.New("connection refused")}
	router := setupTestRouter(t, client)

	w := doRequest(router, http.MethodGet, searchPath("phone", ""), "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "product catalog unavailable")
}

func TestParseEndpoint(t *testing.T) {
	router := setupTestRouter(t, &stubCatalogClient{})

	t.Run("parses a query without touching the catalog", func(t *testing.T) {
		client := &stubCatalogClient{}
		router := setupTestRouter(t, client)

		w := doRequest(router, http.MethodPost, "/api/v1/query/parse", `{"query":"laptop between 500 and 1000"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var parsed domain.ParsedQuery
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
		assert.Equal(t, domain.CategoryElectronics, parsed.Category)
		require.NotNil(t, parsed.MinPrice)
		require.NotNil(t, parsed.MaxPrice)
		assert.Equal(t, 500.0, *parsed.MinPrice)
		assert.Equal(t, 1000.0, *parsed.MaxPrice)
		assert.Equal(t, []string{"laptop"}, parsed.Keywords)
		assert.Zero(t, client.calls)
	})

	t.Run("empty query parses to empty object", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/query/parse", `{"query":"   "}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())
	})

	t.Run("returns 400 for invalid JSON", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/query/parse", `{"query":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 for missing body", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/query/parse", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandlerWithoutService(t *testing.T) {
	router := SetupRouter(testConfig(), NewHandler(nil), nil)

	paths := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/products/search?q=phone", ""},
		{http.MethodPost, "/api/v1/query/parse", `{"query":"phone"}`},
		{http.MethodPost, "/api/v1/catalog/refresh", ""},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := doRequest(router, p.method, p.path, p.body)
			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		})
	}
}

func TestCORSIntegration(t *testing.T) {
	router := setupTestRouter(t, &stubCatalogClient{products: testCatalog()})

	t.Run("exact origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("wildcard origin on search", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, searchPath("phone", ""), nil)
		req.Header.Set("Origin", "https://storefront-preview.vercel.app")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://storefront-preview.vercel.app", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	router := setupTestRouter(t, &stubCatalogClient{})
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := doRequest(router, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestAPIVersioning(t *testing.T) {
	router := setupTestRouter(t, &stubCatalogClient{products: testCatalog()})

	t.Run("v1 routes are accessible", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/products/search", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-versioned routes return 404", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/products/search", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(t, &stubCatalogClient{products: testCatalog()})

	doRequest(router, http.MethodGet, searchPath("phone", ""), "")
	w := doRequest(router, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "storefront_http_requests_total")
	assert.Contains(t, w.Body.String(), "storefront_search_requests_total")
}

func TestJSONResponses(t *testing.T) {
	router := setupTestRouter(t, &stubCatalogClient{products: testCatalog()})

	endpoints := []struct {
		method string
		path   string
		body   string
	}{
		{"GET", "/health", ""},
		{"GET", "/api/v1/products/search?q=jacket", ""},
		{"POST", "/api/v1/query/parse", `{"query":"jacket"}`},
		{"POST", "/api/v1/query/parse", `not json`},
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint.method+" "+endpoint.path, func(t *testing.T) {
			w := doRequest(router, endpoint.method, endpoint.path, endpoint.body)

			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.True(t, json.Valid(w.Body.Bytes()), "response should be valid JSON")
		})
	}
}
