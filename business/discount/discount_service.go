package discount

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
)

// DiscountRepository contract interface
type DiscountRepository interface {
	Create(ctx context.Context, discount *domain.Discount) error
	FindByID(ctx context.Context, id uint64) (domain.Discount, error)
	FindAll(ctx context.Context) ([]domain.Discount, error)
	FindByProductID(ctx context.Context, productID uint64) ([]domain.Discount, error)
	Update(ctx context.Context, discount *domain.Discount) error
	Delete(ctx context.Context, id uint64) error
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type discountService struct {
	discountRepo DiscountRepository
	productRepo  ProductRepository
}

func NewDiscountService(discountRepo DiscountRepository, productRepo ProductRepository) *discountService {
	return &discountService{
		discountRepo: discountRepo,
		productRepo:  productRepo,
	}
}

func (s *discountService) GetAllDiscounts(ctx context.Context) ([]domain.Discount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	discounts, err := s.discountRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all discounts", err)
		return nil, err
	}

	return discounts, nil
}

func (s *discountService) GetProductDiscounts(ctx context.Context, productID uint64) ([]domain.Discount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	discounts, err := s.discountRepo.FindByProductID(ctx, productID)
	if err != nil {
		logger.Error("Failed to find product discounts", err)
		return nil, err
	}

	return discounts, nil
}

func (s *discountService) CreateDiscount(ctx context.Context, discount *domain.Discount) (*domain.Discount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if discount.DiscountPercentage <= 0 || discount.DiscountPercentage > 100 {
		logger.Error("Discount percentage out of range", discount.DiscountPercentage)
		return nil, errors.New("discount percentage must be between 0 and 100")
	}

	if !discount.EndDate.After(discount.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	if _, err := s.productRepo.FindByID(ctx, discount.ProductID); err != nil {
		logger.Error("Product not found for discount", err)
		return nil, errors.New("product not found")
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		logger.Error("Failed to create discount", err)
		return nil, err
	}

	return discount, nil
}

func (s *discountService) UpdateDiscount(ctx context.Context, discount *domain.Discount) (*domain.Discount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if discount.DiscountPercentage <= 0 || discount.DiscountPercentage > 100 {
		return nil, errors.New("discount percentage must be between 0 and 100")
	}

	if !discount.EndDate.After(discount.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	if _, err := s.discountRepo.FindByID(ctx, discount.ID); err != nil {
		logger.Error("Discount not found for update", err)
		return nil, err
	}

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		logger.Error("Failed to update discount", err)
		return nil, err
	}

	updated, err := s.discountRepo.FindByID(ctx, discount.ID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *discountService) DeleteDiscount(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.discountRepo.FindByID(ctx, id); err != nil {
		logger.Error("Discount not found for deletion", err)
		return err
	}

	if err := s.discountRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete discount", err)
		return err
	}

	return nil
}
