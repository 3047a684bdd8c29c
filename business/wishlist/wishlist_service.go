package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
)

// WishlistRepository contract interface
type WishlistRepository interface {
	FindByUserID(ctx context.Context, userID uint) ([]domain.Product, error)
	Contains(ctx context.Context, userID uint, productID uint64) (bool, error)
	Add(ctx context.Context, userID uint, productID uint64) error
	Remove(ctx context.Context, userID uint, productID uint64) error
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type wishlistService struct {
	wishlistRepo WishlistRepository
	productRepo  ProductRepository
}

func NewWishlistService(wishlistRepo WishlistRepository, productRepo ProductRepository) *wishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (s *wishlistService) GetWishlist(ctx context.Context, userID uint) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.wishlistRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load wishlist", err)
		return nil, err
	}

	return products, nil
}

// AddToWishlist is idempotent: adding a product already on the list is a
// no-op success.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID uint, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		logger.Error("Product not found for wishlist add", err)
		return errors.New("product not found")
	}

	exists, err := s.wishlistRepo.Contains(ctx, userID, productID)
	if err != nil {
		logger.Error("Failed to check wishlist", err)
		return err
	}
	if exists {
		return nil
	}

	if err := s.wishlistRepo.Add(ctx, userID, productID); err != nil {
		logger.Error("Failed to add to wishlist", err)
		return err
	}

	return nil
}

// RemoveFromWishlist fails when the product is not on the list, so the
// handler can answer 404.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID uint, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	exists, err := s.wishlistRepo.Contains(ctx, userID, productID)
	if err != nil {
		logger.Error("Failed to check wishlist", err)
		return err
	}
	if !exists {
		return errors.New("product not in wishlist")
	}

	if err := s.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		logger.Error("Failed to remove from wishlist", err)
		return err
	}

	return nil
}
