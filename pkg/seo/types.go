package seo

// Competition levels as reported by keyword data providers.
const (
	CompetitionLow    = "LOW"
	CompetitionMedium = "MEDIUM"
	CompetitionHigh   = "HIGH"
)

// Metrics is the enrichment payload for one keyword as returned by the
// search-data service. A nil *Metrics means the service had no data for
// the term (or was unavailable) and documented defaults apply.
type Metrics struct {
	SearchVolume     int     `json:"search_volume"`
	Competition      string  `json:"competition"`       // LOW/MEDIUM/HIGH, may be empty
	CompetitionIndex float64 `json:"competition_index"` // 0-100 scale, negative when absent
	CPC              float64 `json:"cpc"`
}

// KeywordRecord is the normalized, immutable per-keyword input to the
// scoring engine. Records are created once per unique term by the
// RecordBuilder and never mutated; derived scores live on ScoredKeyword.
type KeywordRecord struct {
	Term             string  `json:"term"`
	SearchVolume     int     `json:"search_volume"`
	Competition      float64 `json:"competition"`       // [0,1]
	CompetitionLevel string  `json:"competition_level"` // LOW/MEDIUM/HIGH
	CPC              float64 `json:"cpc"`
	Rank             int     `json:"rank"` // first-seen position in the candidate list
	Enriched         bool    `json:"enriched"`
}

// ScoredKeyword pairs a record with its derived scores and insights.
// Both scores are pure functions of the record fields.
type ScoredKeyword struct {
	KeywordRecord
	DifficultyScore  float64  `json:"difficulty_score"`
	OpportunityScore float64  `json:"opportunity_score"`
	Insights         []string `json:"insights"`
}

// AnalysisSummary aggregates a full scored keyword set. It is recomputed
// from scratch on every run.
type AnalysisSummary struct {
	TotalKeywords        int             `json:"total_keywords"`
	HighOpportunityCount int             `json:"high_opportunity_count"`
	TotalMonthlySearches int64           `json:"total_monthly_searches"`
	TopRecommendations   []ScoredKeyword `json:"top_recommendations"`
}

// SiteProfile is the website overview produced by the generation stage.
type SiteProfile struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Niche       string   `json:"niche"`
	Keywords    []string `json:"keywords"`
}

// AnalysisResult is the single structure handed to report renderers and
// API consumers. Every numeric score in it is finite and within its
// documented bound.
type AnalysisResult struct {
	SiteURL  string          `json:"site_url"`
	Profile  SiteProfile     `json:"profile"`
	Keywords []ScoredKeyword `json:"keywords"`
	Summary  AnalysisSummary `json:"summary"`
	Enriched bool            `json:"enriched"` // false = basic mode, all metrics defaulted
}
