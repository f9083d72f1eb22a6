package matching

import (
	"testing"

	"invoice-recon/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	products := []entities.Product{
		{ID: "prod-002", Name: "Sunflower Oil", Brand: "Acme", Category: "Oil"},
		{ID: "prod-001", Name: "Olive Oil", Brand: "Acme", Category: "Oil"},
		{ID: "prod-003", Name: "Whole Milk", Brand: "Mother Dairy", Category: "Milk"},
		{ID: "prod-004", Name: "Butter", Brand: "Mother Dairy", Category: "Dairy"},
	}
	aliases := []entities.ProductAlias{
		{Alias: "EVOO", ProductID: "prod-001"},
		{Alias: "Full Cream Milk", ProductID: "prod-003"},
	}
	return NewCatalog(products, aliases)
}

func TestMatcherCascade(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	c := testCatalog()

	t.Run("exact match", func(t *testing.T) {
		res := m.Match("Olive Oil", c)
		require.True(t, res.Matched)
		assert.Equal(t, "prod-001", res.ProductID)
		assert.Equal(t, StrategyExact, res.Strategy)
		assert.Equal(t, 1.0, res.Confidence)
	})

	t.Run("exact ignores case and punctuation", func(t *testing.T) {
		res := m.Match("  OLIVE-oil ", c)
		require.True(t, res.Matched)
		assert.Equal(t, "prod-001", res.ProductID)
		assert.Equal(t, StrategyExact, res.Strategy)
	})

	t.Run("alias match", func(t *testing.T) {
		res := m.Match("EVOO", c)
		require.True(t, res.Matched)
		assert.Equal(t, "prod-001", res.ProductID)
		assert.Equal(t, StrategyAlias, res.Strategy)
		assert.Equal(t, 0.95, res.Confidence)
	})

	t.Run("fuzzy match above threshold", func(t *testing.T) {
		res := m.Match("Olive Oil 1L", c)
		require.True(t, res.Matched)
		assert.Equal(t, "prod-001", res.ProductID)
		assert.Equal(t, StrategyFuzzy, res.Strategy)
		assert.GreaterOrEqual(t, res.Confidence, DefaultFuzzyThreshold)
		assert.Less(t, res.Confidence, 1.0)
	})

	t.Run("brand fuzzy rescues below global threshold", func(t *testing.T) {
		res := m.Match("Mother Dairy Whole Milk 1L", c)
		require.True(t, res.Matched)
		assert.Equal(t, "prod-003", res.ProductID)
		assert.Equal(t, StrategyBrandFuzzy, res.Strategy)
		assert.Less(t, res.Confidence, 1.0)
	})

	t.Run("unmatched", func(t *testing.T) {
		res := m.Match("Turbo Widget 9000", c)
		assert.False(t, res.Matched)
		assert.Equal(t, StrategyUnmatched, res.Strategy)
		assert.Equal(t, 0.0, res.Confidence)
		assert.Empty(t, res.ProductID)
	})

	t.Run("empty name", func(t *testing.T) {
		res := m.Match("   ", c)
		assert.False(t, res.Matched)
	})

	t.Run("nil catalog", func(t *testing.T) {
		res := m.Match("Olive Oil", nil)
		assert.False(t, res.Matched)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		first := m.Match("Oliv Oil", c)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, m.Match("Oliv Oil", c))
		}
	})
}

func TestMatcherExactTieBreaksOnSmallestID(t *testing.T) {
	products := []entities.Product{
		{ID: "prod-b", Name: "Olive Oil"},
		{ID: "prod-a", Name: "Olive Oil"},
	}
	c := NewCatalog(products, nil)
	m := NewMatcher(DefaultConfig())

	res := m.Match("Olive Oil", c)
	require.True(t, res.Matched)
	assert.Equal(t, "prod-a", res.ProductID)
}

func TestMatcherFuzzyTieBreaksOnSmallestID(t *testing.T) {
	// Two candidates at identical similarity; the lexicographically smaller
	// id must win regardless of input or store order.
	products := []entities.Product{
		{ID: "prod-z", Name: "Olive Oil A"},
		{ID: "prod-a", Name: "Olive Oil B"},
	}
	c := NewCatalog(products, nil)
	m := NewMatcher(DefaultConfig())

	res := m.Match("Olive Oil", c)
	require.True(t, res.Matched)
	assert.Equal(t, StrategyFuzzy, res.Strategy)
	assert.Equal(t, "prod-a", res.ProductID)
}

func TestMatcherScoreBelowThresholdIsUnmatched(t *testing.T) {
	products := []entities.Product{
		{ID: "prod-001", Name: "Olive Oil"},
	}
	c := NewCatalog(products, nil)
	// With an impossible threshold even a near-identical name must not match.
	m := NewMatcher(Config{FuzzyThreshold: 1.01, BrandFuzzyThreshold: 1.01})

	res := m.Match("Olive Oil 1L", c)
	assert.False(t, res.Matched)
	assert.Equal(t, StrategyUnmatched, res.Strategy)
}

func TestMatcherBrandFuzzyConfidenceCappedBelowExact(t *testing.T) {
	products := []entities.Product{
		{ID: "prod-003", Name: "Whole Milk", Brand: "Mother Dairy", Category: "Milk"},
	}
	c := NewCatalog(products, nil)
	m := NewMatcher(Config{FuzzyThreshold: 1.01, BrandFuzzyThreshold: 0.10})

	res := m.Match("Mother Dairy Whole Milk", c)
	require.True(t, res.Matched)
	assert.Equal(t, StrategyBrandFuzzy, res.Strategy)
	assert.Less(t, res.Confidence, 1.0)
}

func TestCatalogAliasFirstWins(t *testing.T) {
	products := []entities.Product{
		{ID: "prod-001", Name: "Olive Oil"},
		{ID: "prod-002", Name: "Sunflower Oil"},
	}
	aliases := []entities.ProductAlias{
		{Alias: "EVOO", ProductID: "prod-001"},
		{Alias: "EVOO", ProductID: "prod-002"},
	}
	c := NewCatalog(products, aliases)

	p, ok := c.ResolveAlias("EVOO")
	require.True(t, ok)
	assert.Equal(t, "prod-001", p.ID)
}

func TestCatalogAliasToMissingProduct(t *testing.T) {
	aliases := []entities.ProductAlias{{Alias: "GHOST", ProductID: "prod-gone"}}
	c := NewCatalog(nil, aliases)

	_, ok := c.ResolveAlias("GHOST")
	assert.False(t, ok)
}

func TestCatalogParseBrandLongestFirst(t *testing.T) {
	products := []entities.Product{
		{ID: "prod-001", Name: "Whole Milk", Brand: "Mother Dairy"},
		{ID: "prod-002", Name: "Spice Mix", Brand: "Mother"},
	}
	c := NewCatalog(products, nil)

	assert.Equal(t, "MOTHER DAIRY", c.ParseBrand("MOTHER DAIRY WHOLE MILK"))
	assert.Equal(t, "MOTHER", c.ParseBrand("MOTHER SPICE MIX"))
	assert.Equal(t, "", c.ParseBrand("MOTHERLY LOVE"))
}
