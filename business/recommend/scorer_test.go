package recommend

import (
	"context"
	"strings"
	"testing"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog serves a fixed product list for scorer tests.
type fakeCatalog struct {
	products []domain.Product
}

func (f *fakeCatalog) FindByNameSubstring(ctx context.Context, name string) ([]domain.Product, error) {
	var matches []domain.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (f *fakeCatalog) FindByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error) {
	byID := make(map[uint64]domain.Product)
	for _, p := range f.products {
		byID[p.ID] = p
	}
	var out []domain.Product
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestScore_EmptyHistory(t *testing.T) {
	catalog := &fakeCatalog{}

	ranked, err := Score(context.Background(), nil, nil, nil, catalog, 10)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestScore_ViewsAddOne(t *testing.T) {
	catalog := &fakeCatalog{}
	views := []domain.ViewingHistory{
		{UserID: 1, ProductID: 7},
		{UserID: 1, ProductID: 7},
		{UserID: 1, ProductID: 9},
	}

	ranked, err := Score(context.Background(), views, nil, nil, catalog, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, uint64(7), ranked[0].ProductID)
	assert.InDelta(t, 2.0, ranked[0].Score, 1e-9)
	assert.Equal(t, uint64(9), ranked[1].ProductID)
	assert.InDelta(t, 1.0, ranked[1].Score, 1e-9)
}

func TestScore_SearchMatchesAddTwoPerProduct(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.Product{
		{ID: 1, Name: "Apple iPhone"},
		{ID: 2, Name: "Apple MacBook"},
		{ID: 3, Name: "Dog Food"},
	}}
	searches := []domain.SearchQuery{
		{UserID: 1, SearchQuery: "apple"},
	}

	ranked, err := Score(context.Background(), nil, searches, nil, catalog, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	for _, sp := range ranked {
		assert.InDelta(t, 2.0, sp.Score, 1e-9)
	}
}

func TestScore_BlankSearchQuerySkipped(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.Product{
		{ID: 1, Name: "Apple iPhone"},
	}}
	searches := []domain.SearchQuery{
		{UserID: 1, SearchQuery: "   "},
		{UserID: 1, SearchQuery: ""},
	}

	ranked, err := Score(context.Background(), nil, searches, nil, catalog, 0)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestScore_EngagementIsFractionalMinutes(t *testing.T) {
	catalog := &fakeCatalog{}
	engagements := []domain.Engagement{
		{UserID: 1, ProductID: 5, WatchTime: 90},
		{UserID: 1, ProductID: 5, WatchTime: 30},
	}

	ranked, err := Score(context.Background(), nil, nil, engagements, catalog, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 1)

	assert.InDelta(t, 2.0, ranked[0].Score, 1e-9)
}

func TestScore_SignalsAccumulateAcrossTypes(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.Product{
		{ID: 4, Name: "Gaming Mouse"},
	}}
	views := []domain.ViewingHistory{{UserID: 1, ProductID: 4}}
	searches := []domain.SearchQuery{{UserID: 1, SearchQuery: "mouse"}}
	engagements := []domain.Engagement{{UserID: 1, ProductID: 4, WatchTime: 30}}

	ranked, err := Score(context.Background(), views, searches, engagements, catalog, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 1)

	// 1.0 view + 2.0 search match + 0.5 engagement
	assert.InDelta(t, 3.5, ranked[0].Score, 1e-9)
}

func TestScore_TieBreakByProductID(t *testing.T) {
	catalog := &fakeCatalog{}
	views := []domain.ViewingHistory{
		{UserID: 1, ProductID: 42},
		{UserID: 1, ProductID: 7},
		{UserID: 1, ProductID: 19},
	}

	ranked, err := Score(context.Background(), views, nil, nil, catalog, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, uint64(7), ranked[0].ProductID)
	assert.Equal(t, uint64(19), ranked[1].ProductID)
	assert.Equal(t, uint64(42), ranked[2].ProductID)
}

func TestScore_Deterministic(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.Product{
		{ID: 1, Name: "Apple iPhone"},
		{ID: 2, Name: "Apple MacBook"},
	}}
	views := []domain.ViewingHistory{{UserID: 1, ProductID: 2}}
	searches := []domain.SearchQuery{{UserID: 1, SearchQuery: "apple"}}

	first, err := Score(context.Background(), views, searches, nil, catalog, 0)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Score(context.Background(), views, searches, nil, catalog, 0)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestScore_LimitTruncates(t *testing.T) {
	catalog := &fakeCatalog{}
	views := []domain.ViewingHistory{
		{UserID: 1, ProductID: 1},
		{UserID: 1, ProductID: 1},
		{UserID: 1, ProductID: 2},
		{UserID: 1, ProductID: 3},
	}

	ranked, err := Score(context.Background(), views, nil, nil, catalog, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, uint64(1), ranked[0].ProductID)

	unlimited, err := Score(context.Background(), views, nil, nil, catalog, 0)
	require.NoError(t, err)
	assert.Len(t, unlimited, 3)
}
