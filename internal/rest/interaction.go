package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	InteractionHandler struct {
		interactionService InteractionService
		validate           *validator.Validate
		timeout            time.Duration
	}

	InteractionService interface {
		RecordView(ctx context.Context, userID uint, productID uint64) error
		RecordEngagement(ctx context.Context, userID uint, productID uint64, watchTime int) error
		GetViewingHistory(ctx context.Context, userID uint, limit int) ([]domain.ViewingHistory, error)
	}

	ViewInput struct {
		ProductID uint64 `json:"product_id" validate:"required"`
	}

	EngagementInput struct {
		ProductID uint64 `json:"product_id" validate:"required"`
		WatchTime int    `json:"watch_time" validate:"gte=0"`
	}
)

func NewInteractionHandler(interactionService InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		validate:           validator.New(),
		timeout:            10 * time.Second,
	}
}

func (h *InteractionHandler) RecordView(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var request ViewInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate view request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.interactionService.RecordView(ctx, userID, request.ProductID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "View recorded",
	})
}

func (h *InteractionHandler) RecordEngagement(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var request EngagementInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate engagement request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.interactionService.RecordEngagement(ctx, userID, request.ProductID, request.WatchTime); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Engagement recorded",
	})
}

func (h *InteractionHandler) GetViewingHistory(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	views, err := h.interactionService.GetViewingHistory(ctx, userID, 50)
	if err != nil {
		logger.Error("Failed to get viewing history", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(views))
}
