package seo

// Summarize folds a ranked keyword set into the report summary. The
// fold is order-independent for the counters; only TopRecommendations
// depends on the ranking, so callers pass the ranked set. Volumes are
// accumulated in int64 so realistic totals well past 10^9 keep exact
// precision. An empty set yields a zero-valued summary.
func Summarize(ranked []ScoredKeyword, cfg ScoringConfig) AnalysisSummary {
	cfg = cfg.sanitize()

	summary := AnalysisSummary{
		TotalKeywords:      len(ranked),
		TopRecommendations: TopN(ranked, cfg.TopRecommendations),
	}
	for _, kw := range ranked {
		if kw.OpportunityScore > cfg.HighOpportunityThreshold {
			summary.HighOpportunityCount++
		}
		summary.TotalMonthlySearches += int64(kw.SearchVolume)
	}
	return summary
}
