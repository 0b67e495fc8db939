package seo

import "sort"

// Rank orders scored keywords by opportunity descending with the
// documented tie-break chain: higher search volume wins, then lower
// difficulty, then first-seen order. The sort is stable so fully tied
// entries keep their original positions. The input slice is not
// modified; the result is a permutation of it.
func Rank(keywords []ScoredKeyword) []ScoredKeyword {
	ranked := make([]ScoredKeyword, len(keywords))
	copy(ranked, keywords)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.OpportunityScore != b.OpportunityScore {
			return a.OpportunityScore > b.OpportunityScore
		}
		if a.SearchVolume != b.SearchVolume {
			return a.SearchVolume > b.SearchVolume
		}
		if a.DifficultyScore != b.DifficultyScore {
			return a.DifficultyScore < b.DifficultyScore
		}
		return false // stable sort preserves first-seen order
	})

	return ranked
}

// TopN returns the first n entries of an already ranked set, or fewer
// when the set is smaller. An empty set yields an empty slice, never an
// error.
func TopN(ranked []ScoredKeyword, n int) []ScoredKeyword {
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	top := make([]ScoredKeyword, n)
	copy(top, ranked[:n])
	return top
}
