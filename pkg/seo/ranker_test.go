package seo

import (
	"math/rand"
	"testing"
)

func scoredKW(term string, opportunity float64, volume int, difficulty float64, rank int) ScoredKeyword {
	return ScoredKeyword{
		KeywordRecord:    KeywordRecord{Term: term, SearchVolume: volume, Rank: rank},
		DifficultyScore:  difficulty,
		OpportunityScore: opportunity,
	}
}

func TestRankByOpportunityDesc(t *testing.T) {
	input := []ScoredKeyword{
		scoredKW("c", 30, 100, 50, 0),
		scoredKW("a", 90, 100, 50, 1),
		scoredKW("b", 60, 100, 50, 2),
	}
	ranked := Rank(input)

	want := []string{"a", "b", "c"}
	for i, term := range want {
		if ranked[i].Term != term {
			t.Errorf("position %d = %q, want %q", i, ranked[i].Term, term)
		}
	}
}

func TestRankTieBreakChain(t *testing.T) {
	// Equal opportunity: higher volume wins. Equal volume too: lower
	// difficulty wins. Full tie: first-seen order holds.
	input := []ScoredKeyword{
		scoredKW("low-volume", 50, 100, 30, 0),
		scoredKW("high-volume", 50, 9000, 30, 1),
		scoredKW("hard", 50, 9000, 80, 2),
		scoredKW("tied-first", 50, 9000, 80, 3),
	}
	ranked := Rank(input)

	want := []string{"high-volume", "hard", "tied-first", "low-volume"}
	for i, term := range want {
		if ranked[i].Term != term {
			t.Fatalf("order = %v, want %v", terms(ranked), want)
		}
	}
}

func TestRankIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	input := make([]ScoredKeyword, 50)
	for i := range input {
		input[i] = scoredKW(
			string(rune('a'+i%26))+string(rune('a'+i/26)),
			float64(rng.Intn(1000))/10,
			rng.Intn(100000),
			float64(rng.Intn(1000))/10,
			i,
		)
	}
	ranked := Rank(input)

	if len(ranked) != len(input) {
		t.Fatalf("got %d entries, want %d", len(ranked), len(input))
	}
	counts := make(map[string]int)
	for _, kw := range input {
		counts[kw.Term]++
	}
	for _, kw := range ranked {
		counts[kw.Term]--
	}
	for term, n := range counts {
		if n != 0 {
			t.Errorf("term %q count mismatch: %d", term, n)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].OpportunityScore > ranked[i-1].OpportunityScore {
			t.Fatalf("not sorted at %d: %v after %v", i, ranked[i].OpportunityScore, ranked[i-1].OpportunityScore)
		}
	}
}

func TestRankDeterministic(t *testing.T) {
	input := []ScoredKeyword{
		scoredKW("a", 50, 100, 30, 0),
		scoredKW("b", 50, 100, 30, 1),
		scoredKW("c", 70, 200, 10, 2),
		scoredKW("d", 50, 100, 30, 3),
	}
	first := Rank(input)
	second := Rank(input)
	for i := range first {
		if first[i].Term != second[i].Term {
			t.Fatalf("rank not deterministic: %v vs %v", terms(first), terms(second))
		}
	}
	// Fully tied a, b, d must keep input order.
	if first[1].Term != "a" || first[2].Term != "b" || first[3].Term != "d" {
		t.Errorf("stable order broken: %v", terms(first))
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	input := []ScoredKeyword{
		scoredKW("z", 10, 1, 90, 0),
		scoredKW("y", 99, 1000, 5, 1),
	}
	Rank(input)
	if input[0].Term != "z" || input[1].Term != "y" {
		t.Errorf("input slice mutated: %v", terms(input))
	}
}

func TestTopN(t *testing.T) {
	ranked := []ScoredKeyword{
		scoredKW("a", 90, 1, 1, 0),
		scoredKW("b", 80, 1, 1, 1),
		scoredKW("c", 70, 1, 1, 2),
	}

	if got := TopN(ranked, 2); len(got) != 2 || got[0].Term != "a" || got[1].Term != "b" {
		t.Errorf("TopN(2) = %v", terms(got))
	}
	if got := TopN(ranked, 10); len(got) != 3 {
		t.Errorf("TopN(10) len = %d, want 3", len(got))
	}
	if got := TopN(ranked, 0); len(got) != 0 {
		t.Errorf("TopN(0) len = %d, want 0", len(got))
	}
	if got := TopN(ranked, -1); len(got) != 0 {
		t.Errorf("TopN(-1) len = %d, want 0", len(got))
	}
	if got := TopN(nil, 3); len(got) != 0 {
		t.Errorf("TopN(nil) len = %d, want 0", len(got))
	}
}

func terms(kws []ScoredKeyword) []string {
	out := make([]string, len(kws))
	for i, kw := range kws {
		out[i] = kw.Term
	}
	return out
}
