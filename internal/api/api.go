package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"relic-search/internal/models"
	"relic-search/internal/services/relic"

	"github.com/gin-gonic/gin"
)

// RelicService is the read side the handlers depend on.
type RelicService interface {
	ListRelics(ctx context.Context) ([]models.RelicSummary, error)
	Search(ctx context.Context, term string) (*relic.SearchResponse, error)
	AdvancedSearch(ctx context.Context, term string, field relic.SearchField) (*relic.SearchResponse, error)
}

type APIHandler struct {
	relics RelicService
}

// NewRouter builds the gin engine with middleware, routes and the JSON 404 fallback.
func NewRouter(svc RelicService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), RequestID(), Recovery(), CORS())
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	SetupRoutes(r, svc)
	return r
}

func SetupRoutes(r *gin.Engine, svc RelicService) *APIHandler {
	handler := &APIHandler{relics: svc}

	r.GET("/relics", handler.ListRelics)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/search", handler.Search)
		apiGroup.GET("/search/advanced", handler.AdvancedSearch)
		apiGroup.GET("/health", handler.Health)
	}

	return handler
}

// ListRelics: GET /relics
func (h *APIHandler) ListRelics(c *gin.Context) {
	relics, err := h.relics.ListRelics(c.Request.Context())
	if err != nil {
		var qerr *relic.QueryError
		if errors.As(err, &qerr) {
			// List failures expose the driver message.
			log.Printf("[%s] list relics: %v", requestIDFrom(c), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": qerr.Err.Error()})
			return
		}
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, relics)
}

// Search: GET /api/search?q=meso
func (h *APIHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No search query provided"})
		return
	}

	resp, err := h.relics.Search(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdvancedSearch: GET /api/search/advanced?q=7&field=id
// field=id compares q as text, so q=007 or q=7.0 matches nothing.
func (h *APIHandler) AdvancedSearch(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	field := relic.ParseSearchField(c.DefaultQuery("field", "name"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No search query provided"})
		return
	}

	resp, err := h.relics.AdvancedSearch(c.Request.Context(), q, field)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Health: GET /api/health. Static, never touches the database.
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Warframe Relic Search API is running",
		"endpoints": gin.H{
			"search":          "/api/search?q=search_term",
			"advanced_search": "/api/search/advanced?q=search_term&field=name",
			"all_relics":      "/relics",
		},
	})
}

func (h *APIHandler) writeError(c *gin.Context, err error) {
	log.Printf("[%s] Database error: %v", requestIDFrom(c), err)

	var qerr *relic.QueryError
	switch {
	case errors.Is(err, relic.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No search query provided"})
	case errors.Is(err, relic.ErrConnection):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
	case errors.As(err, &qerr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
