package matching

import (
	"sort"
	"strings"
	"unicode"
)

// NormalizeName canonicalizes a raw product name for comparison: uppercase,
// non-alphanumerics collapsed to single spaces, surrounding space trimmed.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToUpper(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Similarity scores two normalized names in [0,1]. It blends plain edit
// distance with partial, token-sort and token-set ratios, weighted toward the
// token variants so word order and packaging noise ("12 X", "CASE OF") hurt
// less than actual word differences.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	return 0.2*ratio(a, b) + 0.2*partialRatio(a, b) + 0.3*tokenSortRatio(a, b) + 0.3*tokenSetRatio(a, b)
}

func ratio(a, b string) float64 {
	la, lb := len(a), len(b)
	if la == 0 && lb == 0 {
		return 1
	}
	max := la
	if lb > max {
		max = lb
	}
	return 1 - float64(levenshtein(a, b))/float64(max)
}

// partialRatio is the best ratio of the shorter string against any
// equal-length window of the longer one.
func partialRatio(a, b string) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return 0
	}
	best := 0.0
	for i := 0; i+len(a) <= len(b); i++ {
		if r := ratio(a, b[i:i+len(a)]); r > best {
			best = r
		}
	}
	return best
}

func tokenSortRatio(a, b string) float64 {
	return ratio(sortedTokens(a), sortedTokens(b))
}

// tokenSetRatio compares the shared token core of the two names, so a name
// that is a strict superset of the other still scores high.
func tokenSetRatio(a, b string) float64 {
	sa, sb := tokenSet(a), tokenSet(b)
	var common, onlyA, onlyB []string
	for t := range sa {
		if sb[t] {
			common = append(common, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range sb {
		if !sa[t] {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	ab := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	ba := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := ratio(base, ab)
	if r := ratio(base, ba); r > best {
		best = r
	}
	if r := ratio(ab, ba); r > best {
		best = r
	}
	return best
}

func sortedTokens(s string) string {
	parts := strings.Fields(s)
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

func tokenSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, t := range strings.Fields(s) {
		set[t] = true
	}
	return set
}

func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
