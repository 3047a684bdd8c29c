package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rhoda-NM/OneStopShop-Project/business/search"
	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearchService struct {
	lastQuery     string
	lastUserID    uint
	lastThreshold int
}

func (f *fakeSearchService) Search(ctx context.Context, query string, userID uint) (search.SearchResult, error) {
	f.lastQuery = query
	f.lastUserID = userID
	return search.SearchResult{
		Results:     []domain.Product{{ID: 1, Name: "Apple iPhone"}},
		Suggestions: []string{},
	}, nil
}

func (f *fakeSearchService) FuzzySearch(ctx context.Context, query string, threshold int) ([]search.MatchResult, error) {
	f.lastQuery = query
	f.lastThreshold = threshold
	return []search.MatchResult{
		{Product: domain.Product{ID: 1, Name: "Apple iPhone"}, SimilarityScore: 100},
	}, nil
}

func TestSearchHandler_EmptyQuery(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewSearchHandler(&fakeSearchService{})
	require.NoError(t, handler.Search(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandler_PassesIdentityThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search?q=apple", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))

	svc := &fakeSearchService{}
	handler := NewSearchHandler(svc)
	require.NoError(t, handler.Search(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "apple", svc.lastQuery)
	assert.Equal(t, uint(7), svc.lastUserID)
}

func TestSearchHandler_AnonymousDefaultsToZeroUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search?q=apple", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	svc := &fakeSearchService{lastUserID: 99}
	handler := NewSearchHandler(svc)
	require.NoError(t, handler.Search(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(0), svc.lastUserID)
}

func TestFuzzySearchHandler_InvalidThreshold(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search/details?query=apple&threshold=150", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewSearchHandler(&fakeSearchService{})
	require.NoError(t, handler.FuzzySearch(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFuzzySearchHandler_ThresholdForwarded(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search/details?query=apple&threshold=85", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	svc := &fakeSearchService{}
	handler := NewSearchHandler(svc)
	require.NoError(t, handler.FuzzySearch(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 85, svc.lastThreshold)
}
