package recommend

import (
	"context"
	"testing"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInteractionRepo struct {
	views       []domain.ViewingHistory
	searches    []domain.SearchQuery
	engagements []domain.Engagement
}

func (f *fakeInteractionRepo) RecentViews(ctx context.Context, userID uint, limit int) ([]domain.ViewingHistory, error) {
	return f.views, nil
}

func (f *fakeInteractionRepo) RecentSearches(ctx context.Context, userID uint, limit int) ([]domain.SearchQuery, error) {
	return f.searches, nil
}

func (f *fakeInteractionRepo) RecentEngagements(ctx context.Context, userID uint, limit int) ([]domain.Engagement, error) {
	return f.engagements, nil
}

// fakeProductRepo wraps fakeCatalog with a deterministic backfill.
type fakeProductRepo struct {
	fakeCatalog
	backfillPool []domain.Product
}

func (f *fakeProductRepo) FindRandomExcluding(ctx context.Context, exclude []uint64, limit int) ([]domain.Product, error) {
	excluded := make(map[uint64]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	var out []domain.Product
	for _, p := range f.backfillPool {
		if len(out) >= limit {
			break
		}
		if !excluded[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestRecommend_RankOrderPreserved(t *testing.T) {
	productRepo := &fakeProductRepo{
		fakeCatalog: fakeCatalog{products: []domain.Product{
			{ID: 1, Name: "Laptop"},
			{ID: 2, Name: "Phone"},
			{ID: 3, Name: "Tablet"},
		}},
	}
	interactionRepo := &fakeInteractionRepo{
		views: []domain.ViewingHistory{
			{UserID: 1, ProductID: 2},
			{UserID: 1, ProductID: 2},
			{UserID: 1, ProductID: 3},
		},
	}

	svc := NewRecommendService(interactionRepo, productRepo)

	products, err := svc.Recommend(context.Background(), 1, 10, false)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, uint64(2), products[0].ID)
	assert.Equal(t, uint64(3), products[1].ID)
}

func TestRecommend_DanglingIDsDropped(t *testing.T) {
	productRepo := &fakeProductRepo{
		fakeCatalog: fakeCatalog{products: []domain.Product{
			{ID: 1, Name: "Laptop"},
		}},
	}
	interactionRepo := &fakeInteractionRepo{
		views: []domain.ViewingHistory{
			{UserID: 1, ProductID: 1},
			{UserID: 1, ProductID: 999},
		},
	}

	svc := NewRecommendService(interactionRepo, productRepo)

	products, err := svc.Recommend(context.Background(), 1, 10, false)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, uint64(1), products[0].ID)
}

func TestRecommend_NoHistoryNoBackfill(t *testing.T) {
	productRepo := &fakeProductRepo{
		backfillPool: []domain.Product{{ID: 1}, {ID: 2}},
	}
	interactionRepo := &fakeInteractionRepo{}

	svc := NewRecommendService(interactionRepo, productRepo)

	products, err := svc.Recommend(context.Background(), 1, 4, false)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestRecommend_BackfillPadsToLimit(t *testing.T) {
	productRepo := &fakeProductRepo{
		fakeCatalog: fakeCatalog{products: []domain.Product{
			{ID: 1, Name: "Laptop"},
		}},
		backfillPool: []domain.Product{
			{ID: 1, Name: "Laptop"},
			{ID: 2, Name: "Phone"},
			{ID: 3, Name: "Tablet"},
			{ID: 4, Name: "Camera"},
		},
	}
	interactionRepo := &fakeInteractionRepo{
		views: []domain.ViewingHistory{{UserID: 1, ProductID: 1}},
	}

	svc := NewRecommendService(interactionRepo, productRepo)

	products, err := svc.Recommend(context.Background(), 1, 3, true)
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Ranked head stays first; padding never repeats it.
	assert.Equal(t, uint64(1), products[0].ID)
	seen := map[uint64]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestRecommend_BackfillIgnoredWithoutLimit(t *testing.T) {
	productRepo := &fakeProductRepo{
		backfillPool: []domain.Product{{ID: 2}},
	}
	interactionRepo := &fakeInteractionRepo{}

	svc := NewRecommendService(interactionRepo, productRepo)

	products, err := svc.Recommend(context.Background(), 1, 0, true)
	require.NoError(t, err)
	assert.Empty(t, products)
}
