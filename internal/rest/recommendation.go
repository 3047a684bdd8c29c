package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

// defaultRecommendations is how many products the storefront carousel shows.
const defaultRecommendations = 4

type (
	RecommendationHandler struct {
		recommendService RecommendService
		timeout          time.Duration
	}

	RecommendService interface {
		Recommend(ctx context.Context, userID uint, limit int, backfill bool) ([]domain.Product, error)
	}
)

func NewRecommendationHandler(recommendService RecommendService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendService: recommendService,
		timeout:          10 * time.Second,
	}
}

// GetRecommendations serves personalized products for the logged-in user.
// Query params: n (result count, default 4) and backfill (default true;
// pads thin histories with random catalog products).
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	start := time.Now()
	metrics.RecommendRequests.Inc()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()

	userID := c.Get("user_id").(uint)

	n := defaultRecommendations
	if nParam := c.QueryParam("n"); nParam != "" {
		parsed, err := strconv.Atoi(nParam)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid n parameter"})
		}
		n = parsed
	}

	backfill := true
	if backfillParam := c.QueryParam("backfill"); backfillParam != "" {
		parsed, err := strconv.ParseBool(backfillParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid backfill parameter"})
		}
		backfill = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.recommendService.Recommend(ctx, userID, n, backfill)
	if err != nil {
		logger.Error("Failed to get recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}
