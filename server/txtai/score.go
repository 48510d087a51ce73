package txtai

import (
	"slices"
	"strings"
	"unicode"
)

// rank scores every text against query and orders the results by score,
// keeping input order for ties.
func rank(query string, texts []string) []IndexResult {
	q := tokens(query)

	results := make([]IndexResult, len(texts))

	for i, text := range texts {
		results[i] = IndexResult{
			ID:    i,
			Score: overlap(q, tokens(text)),
		}
	}

	slices.SortStableFunc(results, func(a, b IndexResult) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return results
}

func tokens(text string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	set := make(map[string]bool, len(words))

	for _, w := range words {
		set[w] = true
	}

	return set
}

// overlap is the jaccard index of two token sets.
func overlap(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	shared := 0

	for t := range a {
		if b[t] {
			shared++
		}
	}

	return float64(shared) / float64(len(a)+len(b)-shared)
}
