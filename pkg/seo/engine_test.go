package seo

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreBounds(t *testing.T) {
	engine := NewEngine(DefaultScoringConfig())

	records := []KeywordRecord{
		{Term: "a", SearchVolume: 0, Competition: 0, CPC: 0},
		{Term: "b", SearchVolume: 1, Competition: 0.5, CPC: 1.5},
		{Term: "c", SearchVolume: 1000000000, Competition: 1, CPC: 50},
		{Term: "d", SearchVolume: 368000, Competition: 0.15, CPC: 2.58},
		{Term: "e", SearchVolume: 42, Competition: 2.5, CPC: -3}, // out-of-range inputs clamp
	}

	for _, rec := range records {
		scored := engine.Score(rec)
		if scored.DifficultyScore < 0 || scored.DifficultyScore > 100 {
			t.Errorf("difficulty out of bounds for %q: %v", rec.Term, scored.DifficultyScore)
		}
		if scored.OpportunityScore < 0 || scored.OpportunityScore > 100 {
			t.Errorf("opportunity out of bounds for %q: %v", rec.Term, scored.OpportunityScore)
		}
		if math.IsNaN(scored.DifficultyScore) || math.IsNaN(scored.OpportunityScore) {
			t.Errorf("NaN score for %q", rec.Term)
		}
	}
}

// The documented sample report keyword must keep scoring the same way:
// low-30s difficulty and a >85 opportunity for a 368K-volume,
// low-competition keyword.
func TestGoldenKeyword(t *testing.T) {
	engine := NewEngine(DefaultScoringConfig())

	rec := KeywordRecord{
		Term:             "ai humanizer",
		SearchVolume:     368000,
		Competition:      0.15,
		CompetitionLevel: CompetitionLow,
		CPC:              2.58,
	}
	scored := engine.Score(rec)

	if !almostEqual(scored.DifficultyScore, 34.8) {
		t.Errorf("difficulty = %v, want 34.8", scored.DifficultyScore)
	}
	if !almostEqual(scored.OpportunityScore, 90.7) {
		t.Errorf("opportunity = %v, want 90.7", scored.OpportunityScore)
	}
	if scored.OpportunityScore <= 85 {
		t.Errorf("opportunity = %v, want > 85", scored.OpportunityScore)
	}
	if scored.DifficultyScore < 30 || scored.DifficultyScore >= 40 {
		t.Errorf("difficulty = %v, want low-to-mid 30s", scored.DifficultyScore)
	}
}

func TestZeroVolumeAlwaysZeroOpportunity(t *testing.T) {
	engine := NewEngine(DefaultScoringConfig())

	for _, comp := range []float64{0, 0.15, 0.5, 0.85, 1} {
		rec := KeywordRecord{Term: "x", SearchVolume: 0, Competition: comp, CPC: 9}
		if got := engine.OpportunityScore(rec); got != 0 {
			t.Errorf("opportunity = %v for zero volume at competition %v, want 0", got, comp)
		}
	}
}

func TestMaxDifficultyZeroOpportunity(t *testing.T) {
	engine := NewEngine(DefaultScoringConfig())

	rec := KeywordRecord{Term: "x", SearchVolume: 5000000, Competition: 1, CPC: 100}
	if got := engine.DifficultyScore(rec); got != 100 {
		t.Fatalf("difficulty = %v, want 100", got)
	}
	if got := engine.OpportunityScore(rec); got != 0 {
		t.Errorf("opportunity = %v at difficulty 100, want 0", got)
	}
}

func TestVolumeMonotonicity(t *testing.T) {
	engine := NewEngine(DefaultScoringConfig())

	prev := -1.0
	for _, volume := range []int{0, 1, 10, 100, 1000, 10000, 368000, 5000000, 100000000} {
		rec := KeywordRecord{Term: "x", SearchVolume: volume, Competition: 0.5, CPC: 1.2}
		got := engine.OpportunityScore(rec)
		if got < prev {
			t.Errorf("opportunity decreased from %v to %v at volume %d", prev, got, volume)
		}
		prev = got
	}
}

func TestCompetitionAndCPCMonotonicity(t *testing.T) {
	engine := NewEngine(DefaultScoringConfig())

	prevDiff, prevOpp := -1.0, 101.0
	for _, comp := range []float64{0, 0.15, 0.3, 0.5, 0.7, 0.85, 1} {
		rec := KeywordRecord{Term: "x", SearchVolume: 20000, Competition: comp, CPC: 1.2}
		diff := engine.DifficultyScore(rec)
		opp := engine.OpportunityScore(rec)
		if diff < prevDiff {
			t.Errorf("difficulty decreased to %v at competition %v", diff, comp)
		}
		if opp > prevOpp {
			t.Errorf("opportunity increased to %v at competition %v", opp, comp)
		}
		prevDiff, prevOpp = diff, opp
	}

	prevDiff, prevOpp = -1.0, 101.0
	for _, cpc := range []float64{0, 0.5, 1, 2.58, 4, 8, 25} {
		rec := KeywordRecord{Term: "x", SearchVolume: 20000, Competition: 0.5, CPC: cpc}
		diff := engine.DifficultyScore(rec)
		opp := engine.OpportunityScore(rec)
		if diff < prevDiff {
			t.Errorf("difficulty decreased to %v at cpc %v", diff, cpc)
		}
		if opp > prevOpp {
			t.Errorf("opportunity increased to %v at cpc %v", opp, cpc)
		}
		prevDiff, prevOpp = diff, opp
	}
}

func TestScoreIsPurePerRecord(t *testing.T) {
	engine := NewEngine(DefaultScoringConfig())

	rec := KeywordRecord{Term: "x", SearchVolume: 12000, Competition: 0.4, CPC: 2}
	first := engine.Score(rec)

	// Scoring other records in between must not change the result.
	engine.Score(KeywordRecord{Term: "y", SearchVolume: 99, Competition: 0.9, CPC: 7})
	second := engine.Score(rec)

	if first.DifficultyScore != second.DifficultyScore || first.OpportunityScore != second.OpportunityScore {
		t.Errorf("scores changed between identical calls: %+v vs %+v", first, second)
	}
}

func TestOpportunityRoundedToOneDecimal(t *testing.T) {
	engine := NewEngine(DefaultScoringConfig())

	rec := KeywordRecord{Term: "x", SearchVolume: 777, Competition: 0.33, CPC: 1.11}
	got := engine.OpportunityScore(rec)
	if !almostEqual(got*10, math.Round(got*10)) {
		t.Errorf("opportunity %v not rounded to one decimal", got)
	}
}

func TestSanitizedConfigNeverDividesByZero(t *testing.T) {
	engine := NewEngine(ScoringConfig{}) // all zero values

	rec := KeywordRecord{Term: "x", SearchVolume: 1000, Competition: 0.5, CPC: 2}
	diff := engine.DifficultyScore(rec)
	opp := engine.OpportunityScore(rec)
	if math.IsNaN(diff) || math.IsInf(diff, 0) || math.IsNaN(opp) || math.IsInf(opp, 0) {
		t.Fatalf("zero config produced undefined scores: %v / %v", diff, opp)
	}
}
