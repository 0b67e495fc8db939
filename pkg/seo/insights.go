package seo

import "fmt"

// Insight texts follow the wording of the analysis reports this engine
// produces. Rules are independent: a keyword can earn several at once.
const (
	insightHighVolume    = "High search volume - excellent traffic potential"
	insightLowDifficulty = "Low competition - favorable ranking conditions"
	insightMediumCPC     = "Medium commercial value - decent revenue opportunity"
	insightHighCPC       = "High commercial value - strong monetization potential"
)

// insightRule is one row of the deterministic rule table.
type insightRule struct {
	matches func(cfg ScoringConfig, rec KeywordRecord, difficulty float64) bool
	text    string
}

// The rule table is evaluated in a fixed order so the insight sequence
// is deterministic for a given record.
var insightRules = []insightRule{
	{
		matches: func(cfg ScoringConfig, rec KeywordRecord, _ float64) bool {
			return rec.SearchVolume >= cfg.HighVolumeThreshold
		},
		text: insightHighVolume,
	},
	{
		matches: func(cfg ScoringConfig, _ KeywordRecord, difficulty float64) bool {
			return difficulty <= cfg.LowDifficultyThreshold
		},
		text: insightLowDifficulty,
	},
	{
		matches: func(cfg ScoringConfig, rec KeywordRecord, _ float64) bool {
			return rec.CPC >= cfg.MediumCPCThreshold && rec.CPC < cfg.HighCPCThreshold
		},
		text: insightMediumCPC,
	},
	{
		matches: func(cfg ScoringConfig, rec KeywordRecord, _ float64) bool {
			return rec.CPC >= cfg.HighCPCThreshold
		},
		text: insightHighCPC,
	},
}

// Insights evaluates the rule table against a record and its difficulty
// score. The result is deterministic given the record and never nil.
func (e *Engine) Insights(rec KeywordRecord, difficulty float64) []string {
	insights := make([]string, 0, len(insightRules))
	for _, rule := range insightRules {
		if rule.matches(e.cfg, rec, difficulty) {
			insights = append(insights, rule.text)
		}
	}
	return insights
}

// DescribeThresholds renders the active insight thresholds, used by the
// report footer so readers can interpret the insight lines.
func (e *Engine) DescribeThresholds() string {
	return fmt.Sprintf("volume>=%d, difficulty<=%.0f, cpc bands [%.2f, %.2f)",
		e.cfg.HighVolumeThreshold, e.cfg.LowDifficultyThreshold,
		e.cfg.MediumCPCThreshold, e.cfg.HighCPCThreshold)
}
