package analyzer

import (
	"context"
	"fmt"

	"seoscan-go/pkg/ai"
	"seoscan-go/pkg/logger"
	"seoscan-go/pkg/seo"
	"seoscan-go/pkg/seodata"
	"seoscan-go/pkg/storage"
)

// ContentExtractor turns a page URL into clean analysis text.
type ContentExtractor interface {
	Extract(ctx context.Context, pageURL string) (string, error)
}

// Analyzer composes the full keyword-opportunity pipeline: content
// extraction, AI keyword generation, enrichment (cache-first), then the
// pure scoring core. Each AnalyzeSite call is independent and stateless
// apart from the shared metrics cache, so concurrent runs need no
// locking.
type Analyzer struct {
	extractor ContentExtractor
	generator ai.ProfileGenerator
	data      seodata.Client // nil = basic mode, all metrics defaulted
	cache     *storage.MetricsCache
	builder   *seo.RecordBuilder
	engine    *seo.Engine
	log       *logger.Logger
}

// New creates an analyzer. The data client may be nil: enrichment is
// then skipped entirely and every keyword scores with documented
// defaults. The cache may be nil to disable enrichment caching.
func New(extractor ContentExtractor, generator ai.ProfileGenerator, data seodata.Client, cache *storage.MetricsCache, scoring seo.ScoringConfig) (*Analyzer, error) {
	if extractor == nil {
		return nil, fmt.Errorf("content extractor is required")
	}
	if generator == nil {
		return nil, fmt.Errorf("profile generator is required")
	}
	return &Analyzer{
		extractor: extractor,
		generator: generator,
		data:      data,
		cache:     cache,
		builder:   seo.NewRecordBuilder(scoring),
		engine:    seo.NewEngine(scoring),
		log:       logger.GetLogger().WithField("component", "analyzer"),
	}, nil
}

// Engine exposes the scoring engine, used by report renderers for the
// threshold footer.
func (a *Analyzer) Engine() *seo.Engine {
	return a.engine
}

// AnalyzeSite runs the full pipeline for one website. Enrichment
// failures degrade the run to basic mode instead of aborting it; only
// extraction and generation failures are fatal for the run.
func (a *Analyzer) AnalyzeSite(ctx context.Context, siteURL string) (*seo.AnalysisResult, error) {
	log := a.log.WithField("site", logger.MaskURL(siteURL))
	log.Info("Starting site analysis")

	text, err := a.extractor.Extract(ctx, siteURL)
	if err != nil {
		return nil, fmt.Errorf("content extraction failed: %w", err)
	}
	if text == "" {
		return nil, fmt.Errorf("page yielded no analyzable content")
	}

	profile, err := a.generator.GenerateProfile(ctx, siteURL, text)
	if err != nil {
		return nil, fmt.Errorf("keyword generation failed: %w", err)
	}

	result := &seo.AnalysisResult{SiteURL: siteURL, Profile: profile}
	if len(profile.Keywords) == 0 {
		log.Warn("No candidate keywords generated")
		result.Summary = seo.Summarize(nil, a.engine.Config())
		result.Keywords = []seo.ScoredKeyword{}
		return result, nil
	}

	enrichment := a.enrich(ctx, profile.Keywords)

	records := a.builder.Build(profile.Keywords, enrichment)
	ranked := seo.Rank(a.engine.ScoreAll(records))

	result.Keywords = ranked
	result.Summary = seo.Summarize(ranked, a.engine.Config())
	for _, kw := range ranked {
		if kw.Enriched {
			result.Enriched = true
			break
		}
	}

	log.WithFields(map[string]interface{}{
		"keywords":         result.Summary.TotalKeywords,
		"high_opportunity": result.Summary.HighOpportunityCount,
		"enriched":         result.Enriched,
	}).Info("Site analysis completed")
	return result, nil
}

// enrich resolves metrics for the candidate terms, consulting the cache
// first and querying the data service only for cache misses. Service
// failure is logged and tolerated: the affected terms keep defaults.
func (a *Analyzer) enrich(ctx context.Context, candidates []string) map[string]*seo.Metrics {
	if a.data == nil {
		a.log.Debug("No search data client configured, running basic analysis")
		return nil
	}

	enrichment := make(map[string]*seo.Metrics)
	var missing []string
	seen := make(map[string]bool)

	for _, raw := range candidates {
		term := seo.NormalizeTerm(raw)
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true

		if a.cache != nil {
			if m, ok := a.cache.Get(term); ok {
				enrichment[term] = m
				continue
			}
		}
		missing = append(missing, term)
	}

	if len(missing) == 0 {
		return enrichment
	}

	fetched, err := a.data.SearchVolume(ctx, missing)
	if err != nil {
		a.log.WithError(err).Warn("Search data unavailable, continuing with defaults")
		return enrichment
	}

	for _, term := range missing {
		m := fetched[term] // nil when the provider had no match
		enrichment[term] = m
		if a.cache != nil {
			a.cache.Set(term, m)
		}
	}
	return enrichment
}
