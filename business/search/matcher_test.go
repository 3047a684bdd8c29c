package search

import (
	"testing"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Apple iPhone", Description: "Smartphone with retina display"},
		{ID: 2, Name: "Apple MacBook", Description: "Laptop for professionals"},
		{ID: 3, Name: "Dog Food", Description: "Premium kibble for large breeds"},
	}
}

func TestMatch_ExactSubstringScoresFull(t *testing.T) {
	results := Match("apple", sampleCatalog(), DefaultThreshold)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, 100, r.SimilarityScore)
	}
	assert.NotEqual(t, uint64(3), results[0].ID)
	assert.NotEqual(t, uint64(3), results[1].ID)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	lower := Match("macbook", sampleCatalog(), DefaultThreshold)
	upper := Match("MACBOOK", sampleCatalog(), DefaultThreshold)

	assert.Equal(t, lower, upper)
}

func TestMatch_DescriptionContributes(t *testing.T) {
	results := Match("kibble", sampleCatalog(), DefaultThreshold)

	require.Len(t, results, 1)
	assert.Equal(t, uint64(3), results[0].ID)
	assert.Equal(t, 100, results[0].SimilarityScore)
}

func TestMatch_TagContributes(t *testing.T) {
	candidates := []domain.Product{
		{ID: 9, Name: "Mystery Box", Tags: []domain.Tag{{Name: "electronics"}}},
	}

	results := Match("electronics", candidates, DefaultThreshold)

	require.Len(t, results, 1)
	assert.Equal(t, 100, results[0].SimilarityScore)
}

func TestMatch_ThresholdIsInclusive(t *testing.T) {
	// An exact substring hit scores 100, so a threshold of exactly 100
	// must still include it.
	results := Match("dog food", sampleCatalog(), 100)

	require.Len(t, results, 1)
	assert.Equal(t, uint64(3), results[0].ID)
}

func TestMatch_BelowThresholdExcluded(t *testing.T) {
	results := Match("zzzzqqqq", sampleCatalog(), DefaultThreshold)

	assert.Empty(t, results)
}

func TestMatch_SortedByScoreDescending(t *testing.T) {
	results := Match("apple iphone", sampleCatalog(), 50)

	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].SimilarityScore, results[i].SimilarityScore)
	}
	assert.Equal(t, uint64(1), results[0].ID)
}

func TestMatch_EqualScoresKeepCandidateOrder(t *testing.T) {
	candidates := []domain.Product{
		{ID: 5, Name: "Red Apple"},
		{ID: 2, Name: "Green Apple"},
		{ID: 8, Name: "Apple Pie"},
	}

	results := Match("apple", candidates, DefaultThreshold)

	require.Len(t, results, 3)
	assert.Equal(t, uint64(5), results[0].ID)
	assert.Equal(t, uint64(2), results[1].ID)
	assert.Equal(t, uint64(8), results[2].ID)
}

func TestMatch_EmptyCandidates(t *testing.T) {
	results := Match("anything", nil, DefaultThreshold)

	assert.Empty(t, results)
}

func TestMatch_Idempotent(t *testing.T) {
	first := Match("apple", sampleCatalog(), DefaultThreshold)
	second := Match("apple", sampleCatalog(), DefaultThreshold)

	assert.Equal(t, first, second)
}
