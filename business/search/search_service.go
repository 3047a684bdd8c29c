package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	FindAll(ctx context.Context, limit int) ([]domain.Product, error)
	SearchCatalog(ctx context.Context, term string) ([]domain.Product, error)
}

// InteractionRepository contract interface. Search queries are logged so the
// recommendation scorer can pick them up later.
type InteractionRepository interface {
	RecordSearch(ctx context.Context, search *domain.SearchQuery) error
}

type SearchService struct {
	productRepo     ProductRepository
	interactionRepo InteractionRepository
}

func NewSearchService(productRepo ProductRepository, interactionRepo InteractionRepository) *SearchService {
	return &SearchService{
		productRepo:     productRepo,
		interactionRepo: interactionRepo,
	}
}

type SearchResult struct {
	Results     []domain.Product `json:"results"`
	Suggestions []string         `json:"suggestions"`
}

// Search runs the substring catalog search over name, description and
// category name and attaches drop-one-word suggestion variants. When a
// user ID is present the query is logged into the search history; a
// logging failure never fails the search itself.
func (s *SearchService) Search(ctx context.Context, query string, userID uint) (SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return SearchResult{}, errors.New("no search query provided")
	}

	if err := ctx.Err(); err != nil {
		return SearchResult{}, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.SearchCatalog(ctx, query)
	if err != nil {
		logger.Error("Failed to search catalog", err)
		return SearchResult{}, err
	}

	if userID > 0 {
		record := domain.SearchQuery{UserID: userID, SearchQuery: query}
		if err := s.interactionRepo.RecordSearch(ctx, &record); err != nil {
			logger.Warn("Failed to record search query", err)
		}
	}

	return SearchResult{
		Results:     products,
		Suggestions: Suggestions(query),
	}, nil
}

// FuzzySearch scores the whole catalog against the query with the partial
// ratio matcher. A threshold <= 0 falls back to the default.
func (s *SearchService) FuzzySearch(ctx context.Context, query string, threshold int) ([]MatchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("no search query provided")
	}

	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	candidates, err := s.productRepo.FindAll(ctx, 0)
	if err != nil {
		logger.Error("Failed to load catalog for fuzzy search", err)
		return nil, err
	}

	return Match(query, candidates, threshold), nil
}

// Suggestions builds query variants by dropping one word at a time.
// Single-word queries have no variants.
func Suggestions(query string) []string {
	words := strings.Fields(query)
	suggestions := []string{}
	if len(words) <= 1 {
		return suggestions
	}

	for i := range words {
		variant := make([]string, 0, len(words)-1)
		variant = append(variant, words[:i]...)
		variant = append(variant, words[i+1:]...)
		suggestions = append(suggestions, strings.Join(variant, " "))
	}

	return suggestions
}
