package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"gorm.io/gorm"
)

type DiscountRepository struct {
	DB *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) *DiscountRepository {
	return &DiscountRepository{
		DB: db,
	}
}

func (r *DiscountRepository) Create(ctx context.Context, discount *domain.Discount) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(discount).Error; err != nil {
		return fmt.Errorf("failed to create discount: %w", err)
	}

	return nil
}

func (r *DiscountRepository) FindByID(ctx context.Context, id uint64) (domain.Discount, error) {
	if err := ctx.Err(); err != nil {
		return domain.Discount{}, fmt.Errorf("context error: %w", err)
	}

	var discount domain.Discount

	err := r.DB.WithContext(ctx).First(&discount, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Discount{}, errors.New("discount not found")
		}
		return domain.Discount{}, fmt.Errorf("failed to find discount: %w", err)
	}

	return discount, nil
}

func (r *DiscountRepository) FindAll(ctx context.Context) ([]domain.Discount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var discounts []domain.Discount
	err := r.DB.WithContext(ctx).Find(&discounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find discounts: %w", err)
	}

	return discounts, nil
}

func (r *DiscountRepository) FindByProductID(ctx context.Context, productID uint64) ([]domain.Discount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var discounts []domain.Discount
	err := r.DB.WithContext(ctx).Where("product_id = ?", productID).Find(&discounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find discounts by product: %w", err)
	}

	return discounts, nil
}

func (r *DiscountRepository) Update(ctx context.Context, discount *domain.Discount) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Discount{}).Where("id = ?", discount.ID).Updates(map[string]interface{}{
		"discount_percentage": discount.DiscountPercentage,
		"start_date":          discount.StartDate,
		"end_date":            discount.EndDate,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update discount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("discount not found")
	}

	return nil
}

func (r *DiscountRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Discount{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete discount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("discount not found or already deleted")
	}

	return nil
}
