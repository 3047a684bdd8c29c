package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Rhoda-NM/OneStopShop-Project/business/product"
	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProductService interface {
	GetAllProducts(ctx context.Context, limit int) ([]domain.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID uint64) ([]domain.Product, error)
	GetProductsBySeller(ctx context.Context, sellerID uint) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	GetProductDetail(ctx context.Context, id uint64) (*product.ProductDetail, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product, actorID uint, actorRole string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64, actorID uint, actorRole string) error
}

// ViewRecorder logs product page views for the recommendation signals.
type ViewRecorder interface {
	RecordView(ctx context.Context, userID uint, productID uint64) error
}

type ProductHandler struct {
	productService ProductService
	viewRecorder   ViewRecorder
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService, viewRecorder ViewRecorder) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		viewRecorder:   viewRecorder,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	CategoryID  uint64  `json:"category_id" validate:"required"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	// Optional category filter
	if categoryParam := c.QueryParam("category_id"); categoryParam != "" {
		categoryID, err := strconv.ParseUint(categoryParam, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid category ID"})
		}

		products, err := h.productService.GetProductsByCategory(ctx, categoryID)
		if err != nil {
			logger.Error("Failed to get products by category", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
	}

	limit := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit parameter"})
		}
		limit = parsed
	}

	products, err := h.productService.GetAllProducts(ctx, limit)
	if err != nil {
		logger.Error("Failed to get all products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

// GetProductByID returns the aggregated product detail and, for logged-in
// users, records the view into the interaction history.
func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	detail, err := h.productService.GetProductDetail(ctx, productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if userID, ok := c.Get("user_id").(uint); ok && userID > 0 {
		if err := h.viewRecorder.RecordView(ctx, userID, productID); err != nil {
			logger.Warn("Failed to record product view", err)
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(detail))
}

func (h *ProductHandler) GetSellerProducts(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetProductsBySeller(ctx, userID)
	if err != nil {
		logger.Error("Failed to get seller products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.productService.CreateProduct(ctx, &domain.Product{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Description: req.Description,
		SKU:         req.SKU,
		Stock:       req.Stock,
		UserID:      userID,
	})
	if err != nil {
		logger.Error("Failed to create product", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}
	role, _ := c.Get("role").(string)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.productService.UpdateProduct(ctx, &domain.Product{
		ID:          productID,
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Description: req.Description,
		Stock:       req.Stock,
	}, userID, role)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "unauthorized") {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}
	role, _ := c.Get("role").(string)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, productID, userID, role); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "unauthorized") {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}
