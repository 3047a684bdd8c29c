package search

import (
	"context"
	"strings"
	"testing"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products []domain.Product
}

func (f *fakeProductRepo) FindAll(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit > 0 && len(f.products) > limit {
		return f.products[:limit], nil
	}
	return f.products, nil
}

func (f *fakeProductRepo) SearchCatalog(ctx context.Context, term string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) ||
			strings.Contains(strings.ToLower(p.Description), strings.ToLower(term)) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeInteractionRepo struct {
	recorded []domain.SearchQuery
}

func (f *fakeInteractionRepo) RecordSearch(ctx context.Context, search *domain.SearchQuery) error {
	f.recorded = append(f.recorded, *search)
	return nil
}

func TestSearch_EmptyQueryRejected(t *testing.T) {
	svc := NewSearchService(&fakeProductRepo{}, &fakeInteractionRepo{})

	_, err := svc.Search(context.Background(), "   ", 1)
	require.Error(t, err)
	assert.Equal(t, "no search query provided", err.Error())
}

func TestSearch_LogsQueryForLoggedInUser(t *testing.T) {
	interactionRepo := &fakeInteractionRepo{}
	svc := NewSearchService(&fakeProductRepo{products: []domain.Product{
		{ID: 1, Name: "Apple iPhone"},
	}}, interactionRepo)

	result, err := svc.Search(context.Background(), "apple", 7)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)

	require.Len(t, interactionRepo.recorded, 1)
	assert.Equal(t, uint(7), interactionRepo.recorded[0].UserID)
	assert.Equal(t, "apple", interactionRepo.recorded[0].SearchQuery)
}

func TestSearch_AnonymousNotLogged(t *testing.T) {
	interactionRepo := &fakeInteractionRepo{}
	svc := NewSearchService(&fakeProductRepo{}, interactionRepo)

	_, err := svc.Search(context.Background(), "apple", 0)
	require.NoError(t, err)
	assert.Empty(t, interactionRepo.recorded)
}

func TestFuzzySearch_DefaultThreshold(t *testing.T) {
	svc := NewSearchService(&fakeProductRepo{products: []domain.Product{
		{ID: 1, Name: "Apple iPhone"},
		{ID: 2, Name: "Dog Food"},
	}}, &fakeInteractionRepo{})

	results, err := svc.FuzzySearch(context.Background(), "apple", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, uint64(1), results[0].ID)
}

func TestSuggestions_DropOneWord(t *testing.T) {
	suggestions := Suggestions("red running shoes")

	assert.Equal(t, []string{
		"running shoes",
		"red shoes",
		"red running",
	}, suggestions)
}

func TestSuggestions_SingleWordHasNone(t *testing.T) {
	assert.Empty(t, Suggestions("shoes"))
}
