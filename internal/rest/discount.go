package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	DiscountHandler struct {
		discountService DiscountService
		validate        *validator.Validate
		timeout         time.Duration
	}

	DiscountService interface {
		GetAllDiscounts(ctx context.Context) ([]domain.Discount, error)
		GetProductDiscounts(ctx context.Context, productID uint64) ([]domain.Discount, error)
		CreateDiscount(ctx context.Context, discount *domain.Discount) (*domain.Discount, error)
		UpdateDiscount(ctx context.Context, discount *domain.Discount) (*domain.Discount, error)
		DeleteDiscount(ctx context.Context, id uint64) error
	}

	DiscountInput struct {
		ProductID          uint64    `json:"product_id" validate:"required"`
		DiscountPercentage float64   `json:"discount_percentage" validate:"required,gt=0,lte=100"`
		StartDate          time.Time `json:"start_date" validate:"required"`
		EndDate            time.Time `json:"end_date" validate:"required"`
	}
)

func NewDiscountHandler(discountService DiscountService) *DiscountHandler {
	return &DiscountHandler{
		discountService: discountService,
		validate:        validator.New(),
		timeout:         10 * time.Second,
	}
}

func (h *DiscountHandler) GetAllDiscounts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	discounts, err := h.discountService.GetAllDiscounts(ctx)
	if err != nil {
		logger.Error("Failed to get all discounts", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(discounts))
}

func (h *DiscountHandler) GetProductDiscounts(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	discounts, err := h.discountService.GetProductDiscounts(ctx, productID)
	if err != nil {
		logger.Error("Failed to get product discounts", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(discounts))
}

func (h *DiscountHandler) CreateDiscount(c echo.Context) error {
	var request DiscountInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate discount request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.discountService.CreateDiscount(ctx, &domain.Discount{
		ProductID:          request.ProductID,
		DiscountPercentage: request.DiscountPercentage,
		StartDate:          request.StartDate,
		EndDate:            request.EndDate,
	})
	if err != nil {
		logger.Error("Failed to create discount", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *DiscountHandler) UpdateDiscount(c echo.Context) error {
	discountID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid discount ID"})
	}

	var request DiscountInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate discount request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.discountService.UpdateDiscount(ctx, &domain.Discount{
		ID:                 discountID,
		ProductID:          request.ProductID,
		DiscountPercentage: request.DiscountPercentage,
		StartDate:          request.StartDate,
		EndDate:            request.EndDate,
	})
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

func (h *DiscountHandler) DeleteDiscount(c echo.Context) error {
	discountID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid discount ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.discountService.DeleteDiscount(ctx, discountID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Discount deleted successfully",
	})
}
