package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchQueryNoFilters(t *testing.T) {
	query, args := buildSearchQuery(SearchParams{})

	assert.Empty(t, args)
	assert.Contains(t, query, "UNION ALL")
	assert.Contains(t, query, "ORDER BY provider_rating DESC")
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, 1, strings.Count(query, "FROM products p"))
	assert.Equal(t, 1, strings.Count(query, "FROM services s"))
}

func TestBuildSearchQueryCommonFilters(t *testing.T) {
	query, args := buildSearchQuery(SearchParams{
		Query:      "tomato",
		Category:   "VEGETABLES",
		Location:   "Pune",
		ProviderID: "FARMER001",
		Limit:      10,
	})

	// common filters apply to both branches, plus the trailing limit
	assert.Equal(t, 2, strings.Count(query, ".category = ?"))
	assert.Equal(t, 2, strings.Count(query, "f.city = ?"))
	assert.Equal(t, 2, strings.Count(query, "f.id = ?"))
	assert.Contains(t, query, "p.name ILIKE ?")
	assert.Contains(t, query, "s.name ILIKE ?")
	assert.Contains(t, query, "LIMIT ?")

	// 3 like + category + city + provider per branch, then the limit
	assert.Len(t, args, 13)
	assert.Equal(t, "%tomato%", args[0])
	assert.Equal(t, 10, args[len(args)-1])
}

func TestBuildSearchQueryOrganicOnlyOnProducts(t *testing.T) {
	organic := true
	query, args := buildSearchQuery(SearchParams{Organic: &organic})

	assert.Equal(t, 1, strings.Count(query, "p.organic = ?"))
	assert.NotContains(t, query, "s.organic")
	assert.Equal(t, []interface{}{true}, args)

	// the organic clause must sit in the product branch
	union := strings.Index(query, "UNION ALL")
	assert.Less(t, strings.Index(query, "p.organic = ?"), union)
}

func TestBuildSearchQueryArgOrder(t *testing.T) {
	organic := false
	_, args := buildSearchQuery(SearchParams{
		Category: "SEEDS",
		Organic:  &organic,
		Limit:    5,
	})

	// product branch category, organic, service branch category, limit
	assert.Equal(t, []interface{}{"SEEDS", false, "SEEDS", 5}, args)
}
