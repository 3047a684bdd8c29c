package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"gorm.io/gorm"
)

type BillingRepository struct {
	DB *gorm.DB
}

func NewBillingRepository(db *gorm.DB) *BillingRepository {
	return &BillingRepository{
		DB: db,
	}
}

func (r *BillingRepository) Create(ctx context.Context, detail *domain.BillingDetail) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(detail).Error; err != nil {
		return fmt.Errorf("failed to create billing detail: %w", err)
	}

	return nil
}

func (r *BillingRepository) FindByUserID(ctx context.Context, userID uint) (domain.BillingDetail, error) {
	if err := ctx.Err(); err != nil {
		return domain.BillingDetail{}, fmt.Errorf("context error: %w", err)
	}

	var detail domain.BillingDetail

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BillingDetail{}, errors.New("billing details not found")
		}
		return domain.BillingDetail{}, fmt.Errorf("failed to find billing detail: %w", err)
	}

	return detail, nil
}

func (r *BillingRepository) Update(ctx context.Context, detail *domain.BillingDetail) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.BillingDetail{}).Where("id = ?", detail.ID).Updates(map[string]interface{}{
		"full_name":      detail.FullName,
		"address_line_1": detail.AddressLine1,
		"address_line_2": detail.AddressLine2,
		"city":           detail.City,
		"state":          detail.State,
		"postal_code":    detail.PostalCode,
		"country":        detail.Country,
		"phone_number":   detail.PhoneNumber,
		"email":          detail.Email,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update billing detail: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("billing details not found")
	}

	return nil
}

func (r *BillingRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.BillingDetail{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete billing detail: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("billing details not found")
	}

	return nil
}
