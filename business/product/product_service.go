package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"

	"github.com/google/uuid"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindAll(ctx context.Context, limit int) ([]domain.Product, error)
	FindByCategoryID(ctx context.Context, categoryID uint64) ([]domain.Product, error)
	FindBySellerID(ctx context.Context, sellerID uint) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

// RatingRepository contract interface
type RatingRepository interface {
	FindByProductID(ctx context.Context, productID uint64) ([]domain.Rating, error)
}

// DiscountRepository contract interface
type DiscountRepository interface {
	FindByProductID(ctx context.Context, productID uint64) ([]domain.Discount, error)
}

type productService struct {
	productRepo  ProductRepository
	ratingRepo   RatingRepository
	discountRepo DiscountRepository
}

func NewProductService(productRepo ProductRepository, ratingRepo RatingRepository, discountRepo DiscountRepository) *productService {
	return &productService{
		productRepo:  productRepo,
		ratingRepo:   ratingRepo,
		discountRepo: discountRepo,
	}
}

// ProductDetail is the aggregated read shape: the product plus its ratings,
// active discount, and the price after that discount.
type ProductDetail struct {
	domain.Product
	Ratings         []domain.RatingWithUser `json:"ratings"`
	AverageRating   float64                 `json:"average_rating"`
	ActiveDiscount  *domain.Discount        `json:"active_discount"`
	DiscountedPrice float64                 `json:"discounted_price"`
}

// GetAllProducts lists the catalog. A limit <= 0 returns everything.
func (s *productService) GetAllProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx, limit)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductsByCategory(ctx context.Context, categoryID uint64) ([]domain.Product, error) {
	if categoryID == 0 {
		logger.Error("invalid category id")
		return nil, errors.New("invalid category id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindByCategoryID(ctx, categoryID)
	if err != nil {
		logger.Error("Failed to find products by category", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductsBySeller(ctx context.Context, sellerID uint) ([]domain.Product, error) {
	if sellerID == 0 {
		logger.Error("invalid seller id")
		return nil, errors.New("invalid seller id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindBySellerID(ctx, sellerID)
	if err != nil {
		logger.Error("Failed to find products by seller", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err.Error())
		return nil, err
	}

	return &product, nil
}

// GetProductDetail aggregates the product with its ratings and the discount
// in effect right now. Rating or discount lookup failures degrade to an
// empty section instead of failing the whole read.
func (s *productService) GetProductDetail(ctx context.Context, id uint64) (*ProductDetail, error) {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := ProductDetail{
		Product:         *product,
		Ratings:         []domain.RatingWithUser{},
		DiscountedPrice: product.Price,
	}

	ratings, err := s.ratingRepo.FindByProductID(ctx, id)
	if err != nil {
		logger.Warn("Failed to load product ratings", err)
	} else {
		total := 0
		for _, rating := range ratings {
			detail.Ratings = append(detail.Ratings, domain.RatingWithUser{
				ID:        rating.ID,
				ProductID: rating.ProductID,
				UserID:    rating.UserID,
				Username:  rating.User.Username,
				Rating:    rating.Rating,
				Comment:   rating.Comment,
				CreatedAt: rating.CreatedAt,
			})
			total += rating.Rating
		}
		if len(ratings) > 0 {
			detail.AverageRating = float64(total) / float64(len(ratings))
		}
	}

	discounts, err := s.discountRepo.FindByProductID(ctx, id)
	if err != nil {
		logger.Warn("Failed to load product discounts", err)
	} else {
		now := time.Now()
		for i := range discounts {
			discount := discounts[i]
			if !now.Before(discount.StartDate) && !now.After(discount.EndDate) {
				detail.ActiveDiscount = &discount
				detail.DiscountedPrice = product.Price * (1 - discount.DiscountPercentage/100)
				break
			}
		}
	}

	return &detail, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if product.Name == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if product.CategoryID == 0 {
		logger.Error("Invalid product data: category is required")
		return nil, errors.New("category is required")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if product.Stock < 0 {
		logger.Error("Invalid product data: stock cannot be negative")
		return nil, errors.New("stock cannot be negative")
	}

	if product.UserID == 0 {
		logger.Error("Invalid product data: seller is required")
		return nil, errors.New("seller is required")
	}

	if strings.TrimSpace(product.SKU) == "" {
		product.SKU = generateSKU(product.Name)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created successfully")

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product, actorID uint, actorRole string) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == 0 {
		logger.Error("Invalid product data: ID is required")
		return nil, errors.New("product ID is required")
	}

	// Validation
	if product.Name == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if product.Stock < 0 {
		logger.Error("Invalid product data: stock cannot be negative")
		return nil, errors.New("stock cannot be negative")
	}

	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("product not found", err)
		return nil, errors.New("product not found")
	}

	if !canManage(existing, actorID, actorRole) {
		logger.Error("unauthorized product update attempt", actorID)
		return nil, errors.New("unauthorized")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// Get updated product from database
	updatedProduct, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated success")

	return &updatedProduct, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint64, actorID uint, actorRole string) error {
	if id == 0 {
		logger.Error("Invalid product id when deleting product")
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("product not found", err)
		return errors.New("product not found")
	}

	if !canManage(existing, actorID, actorRole) {
		logger.Error("unauthorized product delete attempt", actorID)
		return errors.New("unauthorized")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("product deleted success")

	return nil
}

// canManage applies the ownership rule: admins manage any product, sellers
// only their own.
func canManage(product domain.Product, actorID uint, actorRole string) bool {
	if actorRole == domain.RoleAdmin {
		return true
	}
	return product.UserID == actorID
}

// generateSKU derives a unique SKU from the product name prefix plus a
// random suffix.
func generateSKU(name string) string {
	prefix := strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	if len(prefix) > 6 {
		prefix = prefix[:6]
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("%s-%s", prefix, suffix)
}
