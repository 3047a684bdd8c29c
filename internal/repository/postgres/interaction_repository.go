package postgres

import (
	"context"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"gorm.io/gorm"
)

// InteractionRepository stores and reads the immutable interaction events
// behind the recommendation scorer. Reads return fully materialized slices
// ordered most recent first so the scorer never touches the database.
type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{
		DB: db,
	}
}

func (r *InteractionRepository) RecordView(ctx context.Context, view *domain.ViewingHistory) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(view).Error; err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}

	return nil
}

func (r *InteractionRepository) RecordSearch(ctx context.Context, search *domain.SearchQuery) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(search).Error; err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}

	return nil
}

func (r *InteractionRepository) RecordEngagement(ctx context.Context, engagement *domain.Engagement) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(engagement).Error; err != nil {
		return fmt.Errorf("failed to record engagement: %w", err)
	}

	return nil
}

func (r *InteractionRepository) RecentViews(ctx context.Context, userID uint, limit int) ([]domain.ViewingHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var views []domain.ViewingHistory
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Limit(limit).
		Find(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find viewing history: %w", err)
	}

	return views, nil
}

func (r *InteractionRepository) RecentSearches(ctx context.Context, userID uint, limit int) ([]domain.SearchQuery, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var searches []domain.SearchQuery
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("searched_at DESC").
		Limit(limit).
		Find(&searches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find search history: %w", err)
	}

	return searches, nil
}

func (r *InteractionRepository) RecentEngagements(ctx context.Context, userID uint, limit int) ([]domain.Engagement, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var engagements []domain.Engagement
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("engaged_at DESC").
		Limit(limit).
		Find(&engagements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find engagements: %w", err)
	}

	return engagements, nil
}
