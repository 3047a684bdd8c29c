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
	PaymentsHandler struct {
		paymentsService PaymentsService
		validate        *validator.Validate
		timeout         time.Duration
	}

	PaymentsService interface {
		InitiateSTKPush(ctx context.Context, userID uint, orderID uint64, phone string) (domain.STKPushResponse, error)
		HandleCallback(ctx context.Context, envelope domain.MpesaCallbackEnvelope) error
	}

	STKPushInput struct {
		OrderID uint64 `json:"order_id" validate:"required"`
		Phone   string `json:"phone" validate:"required"`
	}
)

func NewPaymentsHandler(paymentsService PaymentsService) *PaymentsHandler {
	return &PaymentsHandler{
		paymentsService: paymentsService,
		validate:        validator.New(),
		timeout:         30 * time.Second,
	}
}

func (h *PaymentsHandler) STKPush(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var request STKPushInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate STK push request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	resp, err := h.paymentsService.InitiateSTKPush(ctx, userID, request.OrderID, request.Phone)
	if err != nil {
		logger.Error("Failed to initiate STK push", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "unauthorized") {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}

// MpesaCallback receives the asynchronous Daraja result. Always answers
// 200 so Daraja does not retry.
func (h *PaymentsHandler) MpesaCallback(c echo.Context) error {
	var envelope domain.MpesaCallbackEnvelope
	if err := c.Bind(&envelope); err != nil {
		logger.Error("Invalid callback body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.paymentsService.HandleCallback(ctx, envelope); err != nil {
		logger.Error("Failed to process payment callback", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ResultCode": 0,
		"ResultDesc": "Accepted",
	})
}
