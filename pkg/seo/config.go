package seo

// ScoringConfig holds every constant the scoring engine uses. The values
// are fixed for the duration of a run so scores and insights stay
// comparable within one report. Callers wanting different thresholds
// construct an engine with their own config instead of mutating globals.
type ScoringConfig struct {
	// Difficulty: weighted blend of normalized competition and CPC.
	// CompetitionWeight + CPCWeight must equal 1, competition dominant.
	CompetitionWeight float64 `mapstructure:"competition_weight" json:"competition_weight"`
	CPCWeight         float64 `mapstructure:"cpc_weight" json:"cpc_weight"`

	// CPCCeiling is the reference ceiling for CPC normalization: values
	// are clamped to the ceiling and divided by it. Must be positive.
	CPCCeiling float64 `mapstructure:"cpc_ceiling" json:"cpc_ceiling"`

	// Categorical competition mapping.
	CompetitionLowValue    float64 `mapstructure:"competition_low_value" json:"competition_low_value"`
	CompetitionMediumValue float64 `mapstructure:"competition_medium_value" json:"competition_medium_value"`
	CompetitionHighValue   float64 `mapstructure:"competition_high_value" json:"competition_high_value"`

	// VolumeReference anchors the saturating log transform for search
	// volume: a keyword at the reference volume has a normalized volume
	// of 1.0, with diminishing contribution above it. Must be positive.
	VolumeReference int `mapstructure:"volume_reference" json:"volume_reference"`

	// Insight thresholds.
	HighVolumeThreshold    int     `mapstructure:"high_volume_threshold" json:"high_volume_threshold"`
	LowDifficultyThreshold float64 `mapstructure:"low_difficulty_threshold" json:"low_difficulty_threshold"`
	MediumCPCThreshold     float64 `mapstructure:"medium_cpc_threshold" json:"medium_cpc_threshold"`
	HighCPCThreshold       float64 `mapstructure:"high_cpc_threshold" json:"high_cpc_threshold"`

	// Summary thresholds.
	HighOpportunityThreshold float64 `mapstructure:"high_opportunity_threshold" json:"high_opportunity_threshold"`
	TopRecommendations       int     `mapstructure:"top_recommendations" json:"top_recommendations"`
}

// DefaultScoringConfig returns the documented default constant table.
// With these values the reference keyword {volume 368000, LOW, cpc 2.58}
// scores difficulty 34.8 and opportunity 90.7.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		CompetitionWeight:        0.6,
		CPCWeight:                0.4,
		CPCCeiling:               4.0,
		CompetitionLowValue:      0.15,
		CompetitionMediumValue:   0.5,
		CompetitionHighValue:     0.85,
		VolumeReference:          10000,
		HighVolumeThreshold:      5000,
		LowDifficultyThreshold:   40,
		MediumCPCThreshold:       1.0,
		HighCPCThreshold:         5.0,
		HighOpportunityThreshold: 70,
		TopRecommendations:       3,
	}
}

// sanitize fills in unusable values with defaults so score computations
// are defined by construction (non-zero denominators, weights summing
// to 1).
func (c ScoringConfig) sanitize() ScoringConfig {
	def := DefaultScoringConfig()
	if c.CPCCeiling <= 0 {
		c.CPCCeiling = def.CPCCeiling
	}
	if c.VolumeReference <= 0 {
		c.VolumeReference = def.VolumeReference
	}
	if c.CompetitionWeight <= 0 || c.CPCWeight < 0 || c.CompetitionWeight+c.CPCWeight == 0 {
		c.CompetitionWeight = def.CompetitionWeight
		c.CPCWeight = def.CPCWeight
	}
	total := c.CompetitionWeight + c.CPCWeight
	c.CompetitionWeight /= total
	c.CPCWeight /= total
	if c.TopRecommendations <= 0 {
		c.TopRecommendations = def.TopRecommendations
	}
	return c
}
