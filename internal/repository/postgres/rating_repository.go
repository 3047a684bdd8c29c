package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{
		DB: db,
	}
}

func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(rating).Error; err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}

	return nil
}

func (r *RatingRepository) FindByID(ctx context.Context, id uint64) (domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return domain.Rating{}, fmt.Errorf("context error: %w", err)
	}

	var rating domain.Rating

	err := r.DB.WithContext(ctx).Preload("User").First(&rating, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Rating{}, errors.New("rating not found")
		}
		return domain.Rating{}, fmt.Errorf("failed to find rating: %w", err)
	}

	return rating, nil
}

func (r *RatingRepository) FindAll(ctx context.Context) ([]domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ratings []domain.Rating
	err := r.DB.WithContext(ctx).Preload("User").Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find ratings: %w", err)
	}

	return ratings, nil
}

func (r *RatingRepository) FindByProductID(ctx context.Context, productID uint64) ([]domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ratings []domain.Rating
	err := r.DB.WithContext(ctx).Preload("User").Where("product_id = ?", productID).Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find ratings by product: %w", err)
	}

	return ratings, nil
}

func (r *RatingRepository) Update(ctx context.Context, rating *domain.Rating) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Rating{}).Where("id = ?", rating.ID).Updates(map[string]interface{}{
		"rating":  rating.Rating,
		"comment": rating.Comment,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("rating not found")
	}

	return nil
}

func (r *RatingRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Rating{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("rating not found or already deleted")
	}

	return nil
}
