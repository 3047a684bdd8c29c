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
	BillingHandler struct {
		billingService BillingService
		validate       *validator.Validate
		timeout        time.Duration
	}

	BillingService interface {
		GetBillingDetails(ctx context.Context, userID uint) (domain.BillingDetail, error)
		SaveBillingDetails(ctx context.Context, userID uint, detail *domain.BillingDetail) (domain.BillingDetail, error)
		DeleteBillingDetails(ctx context.Context, userID uint) error
	}

	BillingInput struct {
		FullName     string `json:"full_name" validate:"required"`
		AddressLine1 string `json:"address_line_1" validate:"required"`
		AddressLine2 string `json:"address_line_2"`
		City         string `json:"city" validate:"required"`
		State        string `json:"state" validate:"required"`
		PostalCode   string `json:"postal_code" validate:"required"`
		Country      string `json:"country" validate:"required"`
		PhoneNumber  string `json:"phone_number" validate:"required"`
		Email        string `json:"email" validate:"required,email"`
	}
)

func NewBillingHandler(billingService BillingService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		validate:       validator.New(),
		timeout:        10 * time.Second,
	}
}

func (h *BillingHandler) GetBillingDetails(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	detail, err := h.billingService.GetBillingDetails(ctx, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(detail))
}

func (h *BillingHandler) SaveBillingDetails(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var request BillingInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate billing request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	detail, err := h.billingService.SaveBillingDetails(ctx, userID, &domain.BillingDetail{
		FullName:     request.FullName,
		AddressLine1: request.AddressLine1,
		AddressLine2: request.AddressLine2,
		City:         request.City,
		State:        request.State,
		PostalCode:   request.PostalCode,
		Country:      request.Country,
		PhoneNumber:  request.PhoneNumber,
		Email:        request.Email,
	})
	if err != nil {
		logger.Error("Failed to save billing details", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(detail))
}

func (h *BillingHandler) DeleteBillingDetails(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.billingService.DeleteBillingDetails(ctx, userID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Billing details deleted successfully",
	})
}
