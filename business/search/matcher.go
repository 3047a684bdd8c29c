package search

import (
	"sort"
	"strings"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum similarity (0-100) a product must reach
// to appear in fuzzy search results.
const DefaultThreshold = 70

type MatchResult struct {
	domain.Product
	SimilarityScore int `json:"similarity_score"`
}

// Match ranks candidates by approximate textual relevance to the query.
// Per candidate the partial ratio of the lower-cased query against the
// lower-cased name, description, and each tag name is computed; the overall
// score is the maximum of the three. Candidates scoring at or above the
// threshold are returned sorted by score descending; equal scores keep
// their original candidate order. An empty candidate set yields an empty
// result. Query validation happens at the caller; Match assumes a
// non-empty query.
func Match(query string, candidates []domain.Product, threshold int) []MatchResult {
	loweredQuery := strings.ToLower(query)

	results := make([]MatchResult, 0)
	for _, product := range candidates {
		nameSimilarity := fuzzy.PartialRatio(loweredQuery, strings.ToLower(product.Name))
		descriptionSimilarity := fuzzy.PartialRatio(loweredQuery, strings.ToLower(product.Description))

		tagSimilarity := 0
		for _, tag := range product.Tags {
			if s := fuzzy.PartialRatio(loweredQuery, strings.ToLower(tag.Name)); s > tagSimilarity {
				tagSimilarity = s
			}
		}

		overall := nameSimilarity
		if descriptionSimilarity > overall {
			overall = descriptionSimilarity
		}
		if tagSimilarity > overall {
			overall = tagSimilarity
		}

		if overall >= threshold {
			results = append(results, MatchResult{
				Product:         product,
				SimilarityScore: overall,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	return results
}
