package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/domain"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/logger"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SearchUsecase is the application behavior the handlers depend on
type SearchUsecase interface {
	Search(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResult, error)
	Parse(text string) domain.ParsedQuery
	InvalidateCatalog(ctx context.Context) error
}

// ParseRequest is the body of POST /api/v1/query/parse
type ParseRequest struct {
	Query string `json:"query"`
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search SearchUsecase
}

// NewHandler creates a new HTTP handler
func NewHandler(search SearchUsecase) *Handler {
	return &Handler{search: search}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "storefront-search",
		"version": Version,
	})
}

// SearchProducts handles GET /api/v1/products/search?q=...&category=...
func (h *Handler) SearchProducts(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req domain.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	result, err := h.search.Search(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ParseQuery handles POST /api/v1/query/parse and returns only the parsed constraints
func (h *Handler) ParseQuery(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.search.Parse(req.Query))
}

// RefreshCatalog handles POST /api/v1/catalog/refresh by dropping the cached catalog
func (h *Handler) RefreshCatalog(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	if err := h.search.InvalidateCatalog(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "catalog cache cleared"})
}

func (h *Handler) ready(c *gin.Context) bool {
	if h.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search service not configured"})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCatalogUnavailable),
		errors.Is(err, domain.ErrCatalogNotFound),
		errors.Is(err, domain.ErrCacheUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		logger.FromContext(c.Request.Context()).Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
