package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// BillingRepository contract interface
type BillingRepository interface {
	Create(ctx context.Context, detail *domain.BillingDetail) error
	FindByUserID(ctx context.Context, userID uint) (domain.BillingDetail, error)
	Update(ctx context.Context, detail *domain.BillingDetail) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type billingService struct {
	billingRepo BillingRepository
	validate    *validator.Validate
}

func NewBillingService(billingRepo BillingRepository, validate *validator.Validate) *billingService {
	return &billingService{
		billingRepo: billingRepo,
		validate:    validate,
	}
}

func (s *billingService) GetBillingDetails(ctx context.Context, userID uint) (domain.BillingDetail, error) {
	if err := ctx.Err(); err != nil {
		return domain.BillingDetail{}, fmt.Errorf("context error: %w", err)
	}

	detail, err := s.billingRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to find billing details", err)
		return domain.BillingDetail{}, err
	}

	return detail, nil
}

// SaveBillingDetails upserts the user's single billing record: create on
// first save, overwrite afterwards.
func (s *billingService) SaveBillingDetails(ctx context.Context, userID uint, detail *domain.BillingDetail) (domain.BillingDetail, error) {
	if err := ctx.Err(); err != nil {
		return domain.BillingDetail{}, fmt.Errorf("context error: %w", err)
	}

	if detail.FullName == "" || detail.AddressLine1 == "" || detail.City == "" ||
		detail.State == "" || detail.PostalCode == "" || detail.Country == "" ||
		detail.PhoneNumber == "" {
		logger.Error("Incomplete billing details")
		return domain.BillingDetail{}, errors.New("all billing fields are required")
	}

	if err := s.validate.Var(detail.Email, "required,email"); err != nil {
		logger.Error("Invalid billing email", err)
		return domain.BillingDetail{}, errors.New("invalid email format")
	}

	detail.UserID = userID

	existing, err := s.billingRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err.Error() != "billing details not found" {
			logger.Error("Failed to load billing details", err)
			return domain.BillingDetail{}, err
		}
		if err := s.billingRepo.Create(ctx, detail); err != nil {
			logger.Error("Failed to create billing details", err)
			return domain.BillingDetail{}, err
		}
		return *detail, nil
	}

	detail.ID = existing.ID
	if err := s.billingRepo.Update(ctx, detail); err != nil {
		logger.Error("Failed to update billing details", err)
		return domain.BillingDetail{}, err
	}

	return *detail, nil
}

func (s *billingService) DeleteBillingDetails(ctx context.Context, userID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.billingRepo.FindByUserID(ctx, userID); err != nil {
		logger.Error("Billing details not found for deletion", err)
		return err
	}

	if err := s.billingRepo.DeleteByUserID(ctx, userID); err != nil {
		logger.Error("Failed to delete billing details", err)
		return err
	}

	return nil
}
