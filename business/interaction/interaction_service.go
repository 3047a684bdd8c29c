package interaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
)

// InteractionRepository contract interface
type InteractionRepository interface {
	RecordView(ctx context.Context, view *domain.ViewingHistory) error
	RecordEngagement(ctx context.Context, engagement *domain.Engagement) error
	RecentViews(ctx context.Context, userID uint, limit int) ([]domain.ViewingHistory, error)
	RecentEngagements(ctx context.Context, userID uint, limit int) ([]domain.Engagement, error)
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type interactionService struct {
	interactionRepo InteractionRepository
	productRepo     ProductRepository
}

func NewInteractionService(interactionRepo InteractionRepository, productRepo ProductRepository) *interactionService {
	return &interactionService{
		interactionRepo: interactionRepo,
		productRepo:     productRepo,
	}
}

// RecordView logs that a user looked at a product page.
func (s *interactionService) RecordView(ctx context.Context, userID uint, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		logger.Error("Product not found for view event", err)
		return errors.New("product not found")
	}

	view := domain.ViewingHistory{UserID: userID, ProductID: productID}
	if err := s.interactionRepo.RecordView(ctx, &view); err != nil {
		logger.Error("Failed to record view", err)
		return err
	}

	return nil
}

// RecordEngagement logs watch time, in seconds, spent on a product.
func (s *interactionService) RecordEngagement(ctx context.Context, userID uint, productID uint64, watchTime int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if watchTime < 0 {
		return errors.New("watch time cannot be negative")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		logger.Error("Product not found for engagement event", err)
		return errors.New("product not found")
	}

	engagement := domain.Engagement{UserID: userID, ProductID: productID, WatchTime: watchTime}
	if err := s.interactionRepo.RecordEngagement(ctx, &engagement); err != nil {
		logger.Error("Failed to record engagement", err)
		return err
	}

	return nil
}

func (s *interactionService) GetViewingHistory(ctx context.Context, userID uint, limit int) ([]domain.ViewingHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	views, err := s.interactionRepo.RecentViews(ctx, userID, limit)
	if err != nil {
		logger.Error("Failed to load viewing history", err)
		return nil, err
	}

	return views, nil
}
