package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Rhoda-NM/OneStopShop-Project/business/search"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	SearchHandler struct {
		searchService SearchService
		timeout       time.Duration
	}

	SearchService interface {
		Search(ctx context.Context, query string, userID uint) (search.SearchResult, error)
		FuzzySearch(ctx context.Context, query string, threshold int) ([]search.MatchResult, error)
	}
)

func NewSearchHandler(searchService SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		timeout:       10 * time.Second,
	}
}

// Search answers GET /search?q=. An empty query is a 400. When the caller
// is authenticated the query lands in their search history.
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "no search query provided"})
	}

	userID, _ := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.searchService.Search(ctx, query, userID)
	if err != nil {
		logger.Error("Failed to search products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// FuzzySearch answers GET /search/details?query=&threshold=. Scores the
// whole catalog with the partial ratio matcher.
func (h *SearchHandler) FuzzySearch(c echo.Context) error {
	start := time.Now()
	metrics.FuzzySearchRequests.Inc()
	defer func() {
		metrics.FuzzySearchLatency.Observe(time.Since(start).Seconds())
	}()

	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "no search query provided"})
	}

	threshold := 0
	if thresholdParam := c.QueryParam("threshold"); thresholdParam != "" {
		parsed, err := strconv.Atoi(thresholdParam)
		if err != nil || parsed < 0 || parsed > 100 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid threshold parameter"})
		}
		threshold = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	results, err := h.searchService.FuzzySearch(ctx, query, threshold)
	if err != nil {
		logger.Error("Failed to fuzzy search products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(results))
}
