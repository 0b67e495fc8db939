package seo

import "math"

// Engine computes difficulty and opportunity scores for keyword records.
// Scores are pure functions of a single record and the fixed constant
// table: no state is kept between calls and no record influences
// another, so an engine is safe for concurrent use.
type Engine struct {
	cfg ScoringConfig
}

// NewEngine creates a scoring engine with the given constant table.
func NewEngine(cfg ScoringConfig) *Engine {
	return &Engine{cfg: cfg.sanitize()}
}

// Config returns the constant table the engine was built with.
func (e *Engine) Config() ScoringConfig {
	return e.cfg
}

// Score derives both scores and the insight list for one record.
func (e *Engine) Score(rec KeywordRecord) ScoredKeyword {
	difficulty := e.DifficultyScore(rec)
	return ScoredKeyword{
		KeywordRecord:    rec,
		DifficultyScore:  difficulty,
		OpportunityScore: e.opportunityFor(rec, difficulty),
		Insights:         e.Insights(rec, difficulty),
	}
}

// ScoreAll scores every record, preserving input order.
func (e *Engine) ScoreAll(records []KeywordRecord) []ScoredKeyword {
	scored := make([]ScoredKeyword, len(records))
	for i, rec := range records {
		scored[i] = e.Score(rec)
	}
	return scored
}

// DifficultyScore estimates organic-ranking contestedness on a 0-100
// scale. Competition is the primary driver; CPC contributes as a
// secondary signal of commercial contestedness.
func (e *Engine) DifficultyScore(rec KeywordRecord) float64 {
	comp := clamp01(rec.Competition)
	cpc := clamp01(math.Min(rec.CPC, e.cfg.CPCCeiling) / e.cfg.CPCCeiling)
	score := 100 * (e.cfg.CompetitionWeight*comp + e.cfg.CPCWeight*cpc)
	return round1(clampScore(score))
}

// OpportunityScore estimates strategic attractiveness on a 0-100 scale:
// inverse difficulty scaled by saturating-normalized search volume.
// Zero volume always yields zero opportunity, as does difficulty 100.
func (e *Engine) OpportunityScore(rec KeywordRecord) float64 {
	return e.opportunityFor(rec, e.DifficultyScore(rec))
}

func (e *Engine) opportunityFor(rec KeywordRecord, difficulty float64) float64 {
	if rec.SearchVolume <= 0 {
		return 0
	}
	score := e.volumeNorm(rec.SearchVolume) * (100 - difficulty)
	return round1(clampScore(score))
}

// volumeNorm maps search volume through a saturating log transform
// anchored at the reference volume: the reference maps to 1.0 and larger
// volumes contribute with diminishing returns. The ratio may exceed 1;
// the final opportunity value is clamped to the score range.
func (e *Engine) volumeNorm(volume int) float64 {
	if volume <= 0 {
		return 0
	}
	return math.Log10(1+float64(volume)) / math.Log10(1+float64(e.cfg.VolumeReference))
}

func clampScore(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
