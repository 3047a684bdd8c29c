package recommend

import (
	"context"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
)

// recentEventWindow caps how much history feeds one recommendation request.
const recentEventWindow = 10

// InteractionRepository contract interface
type InteractionRepository interface {
	RecentViews(ctx context.Context, userID uint, limit int) ([]domain.ViewingHistory, error)
	RecentSearches(ctx context.Context, userID uint, limit int) ([]domain.SearchQuery, error)
	RecentEngagements(ctx context.Context, userID uint, limit int) ([]domain.Engagement, error)
}

// ProductRepository contract interface
type ProductRepository interface {
	CatalogLookup
	FindRandomExcluding(ctx context.Context, exclude []uint64, limit int) ([]domain.Product, error)
}

type RecommendService struct {
	interactionRepo InteractionRepository
	productRepo     ProductRepository
}

func NewRecommendService(interactionRepo InteractionRepository, productRepo ProductRepository) *RecommendService {
	return &RecommendService{
		interactionRepo: interactionRepo,
		productRepo:     productRepo,
	}
}

// Recommend fetches the user's recent interaction history, scores it, and
// resolves the ranked identifiers against the catalog. Products referenced
// by stale events disappear at resolution, never as an error. When backfill
// is requested and fewer than limit products are found, random catalog
// products (excluding those already selected) pad the result.
func (s *RecommendService) Recommend(ctx context.Context, userID uint, limit int, backfill bool) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	views, err := s.interactionRepo.RecentViews(ctx, userID, recentEventWindow)
	if err != nil {
		logger.Error("Failed to load viewing history", err)
		return nil, err
	}

	searches, err := s.interactionRepo.RecentSearches(ctx, userID, recentEventWindow)
	if err != nil {
		logger.Error("Failed to load search history", err)
		return nil, err
	}

	engagements, err := s.interactionRepo.RecentEngagements(ctx, userID, recentEventWindow)
	if err != nil {
		logger.Error("Failed to load engagements", err)
		return nil, err
	}

	ranked, err := Score(ctx, views, searches, engagements, s.productRepo, limit)
	if err != nil {
		logger.Error("Failed to score interactions", err)
		return nil, err
	}

	products, err := s.resolve(ctx, ranked)
	if err != nil {
		logger.Error("Failed to resolve recommended products", err)
		return nil, err
	}

	if backfill && limit > 0 && len(products) < limit {
		products, err = s.backfill(ctx, products, limit)
		if err != nil {
			logger.Error("Failed to backfill recommendations", err)
			return nil, err
		}
	}

	return products, nil
}

// resolve maps ranked identifiers back to catalog records, preserving rank
// order and dropping identifiers the catalog no longer knows.
func (s *RecommendService) resolve(ctx context.Context, ranked []ScoredProduct) ([]domain.Product, error) {
	if len(ranked) == 0 {
		return []domain.Product{}, nil
	}

	ids := make([]uint64, 0, len(ranked))
	for _, sp := range ranked {
		ids = append(ids, sp.ProductID)
	}

	found, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]domain.Product, len(found))
	for _, product := range found {
		byID[product.ID] = product
	}

	products := make([]domain.Product, 0, len(found))
	for _, sp := range ranked {
		if product, ok := byID[sp.ProductID]; ok {
			products = append(products, product)
		}
	}

	return products, nil
}

// backfill pads the result with random catalog products. Fallback policy
// only: it never reorders the ranked head.
func (s *RecommendService) backfill(ctx context.Context, products []domain.Product, limit int) ([]domain.Product, error) {
	exclude := make([]uint64, 0, len(products))
	for _, product := range products {
		exclude = append(exclude, product.ID)
	}

	extra, err := s.productRepo.FindRandomExcluding(ctx, exclude, limit-len(products))
	if err != nil {
		return nil, err
	}

	return append(products, extra...), nil
}
