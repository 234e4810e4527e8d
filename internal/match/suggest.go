package match

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultMinSimilarity is the lowest normalized similarity Suggest accepts.
const DefaultMinSimilarity = 0.6

// Suggest returns the candidate closest to name, or false when none is
// similar enough. Ties are broken by candidate order after sorting, so the
// result does not depend on the order of the input slice.
func Suggest(name string, candidates []string) (string, bool) {
	ranked := Rank(name, candidates)
	if len(ranked) == 0 || ranked[0].Score < DefaultMinSimilarity {
		return "", false
	}

	return ranked[0].Name, true
}

// Suggestion is a candidate name with its similarity to the query.
type Suggestion struct {
	Name  string
	Score float64 // 1.0 means identical after normalization
}

// Rank scores every candidate against name, best first.
func Rank(name string, candidates []string) []Suggestion {
	query := normalizeIdent(name)

	out := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Suggestion{Name: c, Score: similarity(query, normalizeIdent(c))})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// similarity is 1 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshtein(a, b))/float64(max(len(a), len(b)))
}

// levenshtein computes the edit distance between two strings using two rows
// of the dynamic-programming matrix.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// normalizeIdent case-folds an identifier and drops separators, so that
// "not_null", "NotNull" and "not-null" compare equal.
func normalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
