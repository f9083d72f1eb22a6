package matching

// Strategy labels recorded on matched invoice items.
const (
	StrategyExact      = "exact"
	StrategyAlias      = "alias"
	StrategyFuzzy      = "fuzzy"
	StrategyBrandFuzzy = "brand_fuzzy"
	StrategyUnmatched  = "unmatched"
)

const (
	DefaultFuzzyThreshold      = 0.80
	DefaultBrandFuzzyThreshold = 0.60
)

// Result is the outcome of one cascade run. Either Matched is true and
// ProductID/Confidence are set, or the item is unmatched with confidence 0;
// there is no partial-credit middle ground.
type Result struct {
	Matched     bool
	ProductID   string
	ProductName string
	Strategy    string
	Confidence  float64
}

func Unmatched() Result {
	return Result{Strategy: StrategyUnmatched}
}

// Config carries the acceptance thresholds of the similarity strategies.
// These were inferred from observed check tolerances, not an authoritative
// source, so they stay configurable.
type Config struct {
	FuzzyThreshold      float64
	BrandFuzzyThreshold float64
}

func DefaultConfig() Config {
	return Config{
		FuzzyThreshold:      DefaultFuzzyThreshold,
		BrandFuzzyThreshold: DefaultBrandFuzzyThreshold,
	}
}

// Matcher resolves a raw invoice product name against a catalog snapshot by
// walking an ordered strategy cascade. The first strategy that clears its own
// acceptance threshold wins; a score above zero but below threshold counts as
// no match at all. The list is append-only: new strategies go after the
// existing ones so established match behavior never reorders.
type Matcher struct {
	strategies []strategy
}

func NewMatcher(cfg Config) *Matcher {
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if cfg.BrandFuzzyThreshold <= 0 {
		cfg.BrandFuzzyThreshold = DefaultBrandFuzzyThreshold
	}
	return &Matcher{
		strategies: []strategy{
			exactStrategy{},
			aliasStrategy{},
			fuzzyStrategy{threshold: cfg.FuzzyThreshold},
			brandFuzzyStrategy{threshold: cfg.BrandFuzzyThreshold},
		},
	}
}

// Match runs the cascade. Same name + same catalog always yields the same
// result.
func (m *Matcher) Match(name string, c *Catalog) Result {
	norm := NormalizeName(name)
	if norm == "" || c == nil {
		return Unmatched()
	}
	for _, s := range m.strategies {
		if res, ok := s.attempt(norm, c); ok {
			return res
		}
	}
	return Unmatched()
}
