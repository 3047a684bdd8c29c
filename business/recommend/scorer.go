package recommend

import (
	"context"
	"sort"
	"strings"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
)

// Signal weights. A search match counts double a passive view; watch time
// contributes fractional minutes.
const (
	viewWeight        = 1.0
	searchMatchWeight = 2.0
	secondsPerMinute  = 60.0
)

// CatalogLookup is the read capability the caller hands the scorer. The
// scorer never touches storage directly.
type CatalogLookup interface {
	FindByNameSubstring(ctx context.Context, name string) ([]domain.Product, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error)
}

type ScoredProduct struct {
	ProductID uint64  `json:"product_id"`
	Score     float64 `json:"score"`
}

// Score turns a user's recent interactions into a ranked candidate list.
// Views add 1.0, each product whose name contains a search query
// (case-insensitive) adds 2.0, engagements add watch seconds / 60.0.
// Ranking is score descending with product ID ascending as the tie-break,
// so identical inputs always produce identical output. A limit <= 0 means
// no truncation. A user with no history yields an empty slice.
func Score(
	ctx context.Context,
	views []domain.ViewingHistory,
	searches []domain.SearchQuery,
	engagements []domain.Engagement,
	catalog CatalogLookup,
	limit int,
) ([]ScoredProduct, error) {
	scores := make(map[uint64]float64)

	for _, view := range views {
		scores[view.ProductID] += viewWeight
	}

	for _, search := range searches {
		if strings.TrimSpace(search.SearchQuery) == "" {
			continue
		}
		matches, err := catalog.FindByNameSubstring(ctx, search.SearchQuery)
		if err != nil {
			return nil, err
		}
		for _, product := range matches {
			scores[product.ID] += searchMatchWeight
		}
	}

	for _, engagement := range engagements {
		scores[engagement.ProductID] += float64(engagement.WatchTime) / secondsPerMinute
	}

	ranked := make([]ScoredProduct, 0, len(scores))
	for productID, score := range scores {
		ranked = append(ranked, ScoredProduct{ProductID: productID, Score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}
