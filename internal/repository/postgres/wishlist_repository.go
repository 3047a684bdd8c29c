package postgres

import (
	"context"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"gorm.io/gorm"
)

type WishlistRepository struct {
	DB *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{
		DB: db,
	}
}

func (r *WishlistRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Preload("Category.Tags").
		Preload("Tags").
		Preload("Images").
		Joins("JOIN wishlist_items ON wishlist_items.product_id = products.id").
		Where("wishlist_items.user_id = ?", userID).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find wishlist: %w", err)
	}

	return products, nil
}

func (r *WishlistRepository) Contains(ctx context.Context, userID uint, productID uint64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Table("wishlist_items").
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check wishlist: %w", err)
	}

	return count > 0, nil
}

func (r *WishlistRepository) Add(ctx context.Context, userID uint, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	user := domain.User{ID: userID}
	product := domain.Product{ID: productID}

	if err := r.DB.WithContext(ctx).Model(&user).Association("Wishlist").Append(&product); err != nil {
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}

	return nil
}

func (r *WishlistRepository) Remove(ctx context.Context, userID uint, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	user := domain.User{ID: userID}
	product := domain.Product{ID: productID}

	if err := r.DB.WithContext(ctx).Model(&user).Association("Wishlist").Delete(&product); err != nil {
		return fmt.Errorf("failed to remove from wishlist: %w", err)
	}

	return nil
}
