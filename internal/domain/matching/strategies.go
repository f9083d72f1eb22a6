package matching

import (
	"strings"

	"invoice-recon/internal/domain/entities"
)

// brandFuzzyCap keeps brand-scoped fuzzy confidence strictly below an exact
// match even when the scoped similarity saturates.
const brandFuzzyCap = 0.99

type strategy interface {
	attempt(norm string, c *Catalog) (Result, bool)
}

// exactStrategy: case/whitespace-normalized name equality, confidence 1.0.
type exactStrategy struct{}

func (exactStrategy) attempt(norm string, c *Catalog) (Result, bool) {
	hits := c.LookupExact(norm)
	if len(hits) == 0 {
		return Result{}, false
	}
	// Catalog keeps id order; first hit is the deterministic winner.
	p := hits[0]
	return Result{
		Matched:     true,
		ProductID:   p.ID,
		ProductName: p.Name,
		Strategy:    StrategyExact,
		Confidence:  1.0,
	}, true
}

// aliasStrategy: known alternate spellings resolve at fixed 0.95 confidence.
type aliasStrategy struct{}

func (aliasStrategy) attempt(norm string, c *Catalog) (Result, bool) {
	p, ok := c.ResolveAlias(norm)
	if !ok {
		return Result{}, false
	}
	return Result{
		Matched:     true,
		ProductID:   p.ID,
		ProductName: p.Name,
		Strategy:    StrategyAlias,
		Confidence:  0.95,
	}, true
}

// fuzzyStrategy: best similarity over the whole catalog, accepted only at or
// above the configured threshold.
type fuzzyStrategy struct {
	threshold float64
}

func (s fuzzyStrategy) attempt(norm string, c *Catalog) (Result, bool) {
	best, score := bestCandidate(norm, c.Products(), nil)
	if score < s.threshold {
		return Result{}, false
	}
	return Result{
		Matched:     true,
		ProductID:   best.ID,
		ProductName: best.Name,
		Strategy:    StrategyFuzzy,
		Confidence:  score,
	}, true
}

// brandFuzzyStrategy: when the name leads with a known brand, retry the
// similarity search against that brand's products only, with a lower
// threshold. The narrower candidate set justifies accepting weaker scores; a
// shared category token nudges the score further.
type brandFuzzyStrategy struct {
	threshold float64
}

func (s brandFuzzyStrategy) attempt(norm string, c *Catalog) (Result, bool) {
	brand := c.ParseBrand(norm)
	if brand == "" {
		return Result{}, false
	}
	candidates := c.CandidatesByBrand(brand)
	if len(candidates) == 0 {
		return Result{}, false
	}
	best, score := bestCandidate(norm, candidates, func(p entities.Product, base float64) float64 {
		if cat := NormalizeName(p.Category); cat != "" && containsToken(norm, cat) {
			base += 0.05
		}
		if base > brandFuzzyCap {
			base = brandFuzzyCap
		}
		return base
	})
	if score < s.threshold {
		return Result{}, false
	}
	if score > brandFuzzyCap {
		score = brandFuzzyCap
	}
	return Result{
		Matched:     true,
		ProductID:   best.ID,
		ProductName: best.Name,
		Strategy:    StrategyBrandFuzzy,
		Confidence:  score,
	}, true
}

// bestCandidate scores every candidate and picks the winner: higher score
// first, then lexicographically smallest product id. Candidates arrive in id
// order, so keeping the first strictly-better score preserves the tie-break.
func bestCandidate(norm string, candidates []entities.Product, adjust func(entities.Product, float64) float64) (entities.Product, float64) {
	var best entities.Product
	bestScore := -1.0
	for _, p := range candidates {
		score := Similarity(norm, NormalizeName(p.Name))
		if adjust != nil {
			score = adjust(p, score)
		}
		if score > bestScore {
			bestScore = score
			best = p
		}
	}
	if bestScore < 0 {
		bestScore = 0
	}
	return best, bestScore
}

func containsToken(norm, token string) bool {
	for _, t := range strings.Fields(norm) {
		if t == token {
			return true
		}
	}
	return false
}
