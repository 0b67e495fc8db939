package seo

import (
	"strings"

	"seoscan-go/pkg/logger"
)

// RecordBuilder turns raw candidate terms plus optional enrichment data
// into uniform KeywordRecords. Missing enrichment is not an error: the
// record gets documented defaults and the analysis proceeds in basic
// mode.
type RecordBuilder struct {
	cfg ScoringConfig
	log *logger.Logger
}

// NewRecordBuilder creates a builder using the given scoring config for
// the categorical competition mapping.
func NewRecordBuilder(cfg ScoringConfig) *RecordBuilder {
	return &RecordBuilder{
		cfg: cfg.sanitize(),
		log: logger.GetLogger().WithField("component", "record_builder"),
	}
}

// NormalizeTerm trims surrounding whitespace, lowercases and collapses
// internal whitespace runs to single spaces. An empty result means the
// candidate carries no usable term.
func NormalizeTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

// Build produces one record per unique normalized term, in first-seen
// order. Candidates that normalize to the empty string are dropped and
// logged as skipped. Duplicate terms are merged keeping the first
// occurrence's ordinal rank; since enrichment is keyed by normalized
// term, the first non-missing payload wins by construction.
func (b *RecordBuilder) Build(candidates []string, enrichment map[string]*Metrics) []KeywordRecord {
	records := make([]KeywordRecord, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	skipped := 0

	for _, raw := range candidates {
		term := NormalizeTerm(raw)
		if term == "" {
			skipped++
			continue
		}
		if seen[term] {
			continue
		}
		seen[term] = true

		var m *Metrics
		if enrichment != nil {
			m = enrichment[term]
		}
		records = append(records, b.buildOne(term, len(records), m))
	}

	if skipped > 0 {
		b.log.WithField("skipped", skipped).Debug("Dropped empty candidate terms")
	}
	b.log.WithFields(map[string]interface{}{
		"candidates": len(candidates),
		"records":    len(records),
	}).Debug("Keyword records built")

	return records
}

// buildOne applies defaults for missing enrichment and clamps malformed
// numeric values so invalid data never reaches the scoring engine.
func (b *RecordBuilder) buildOne(term string, rank int, m *Metrics) KeywordRecord {
	rec := KeywordRecord{
		Term:             term,
		Competition:      b.cfg.CompetitionMediumValue,
		CompetitionLevel: CompetitionMedium,
		Rank:             rank,
	}
	if m == nil {
		return rec
	}

	rec.Enriched = true
	if m.SearchVolume > 0 {
		rec.SearchVolume = m.SearchVolume
	}
	if m.CPC > 0 {
		rec.CPC = m.CPC
	}
	rec.Competition, rec.CompetitionLevel = b.resolveCompetition(m)
	return rec
}

// resolveCompetition prefers the numeric competition index when the
// provider supplies one, falling back to the categorical level, then to
// the medium default. The returned value is always in [0,1].
func (b *RecordBuilder) resolveCompetition(m *Metrics) (float64, string) {
	if m.CompetitionIndex >= 0 {
		v := clamp01(m.CompetitionIndex / 100)
		return v, levelForValue(v, b.cfg)
	}
	switch strings.ToUpper(strings.TrimSpace(m.Competition)) {
	case CompetitionLow:
		return b.cfg.CompetitionLowValue, CompetitionLow
	case CompetitionHigh:
		return b.cfg.CompetitionHighValue, CompetitionHigh
	case CompetitionMedium:
		return b.cfg.CompetitionMediumValue, CompetitionMedium
	}
	return b.cfg.CompetitionMediumValue, CompetitionMedium
}

// levelForValue buckets a numeric competition value into the categorical
// level used for display.
func levelForValue(v float64, cfg ScoringConfig) string {
	switch {
	case v < (cfg.CompetitionLowValue+cfg.CompetitionMediumValue)/2:
		return CompetitionLow
	case v >= (cfg.CompetitionMediumValue+cfg.CompetitionHighValue)/2:
		return CompetitionHigh
	default:
		return CompetitionMedium
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
