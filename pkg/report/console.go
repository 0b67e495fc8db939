package report

import (
	"fmt"
	"io"
	"strings"

	"seoscan-go/pkg/seo"
)

const lineWidth = 78

// Console renders analysis results as a plain-text report in the layout
// of the professional SEO report: site overview, keyword analysis,
// per-keyword detail and top recommendations.
type Console struct {
	w io.Writer
}

// NewConsole creates a console renderer writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Render writes the full report for one analysis result.
func (c *Console) Render(result *seo.AnalysisResult) {
	c.rule("=")
	c.line("KEYWORD OPPORTUNITY ANALYSIS REPORT")
	c.rule("=")

	c.line("")
	c.line("WEBSITE OVERVIEW")
	c.rule("-")
	c.linef("URL:         %s", result.SiteURL)
	c.linef("Company:     %s", orNA(result.Profile.Name))
	c.linef("Industry:    %s", orNA(result.Profile.Niche))
	c.linef("Description: %s", orNA(result.Profile.Description))
	if !result.Enriched {
		c.line("")
		c.line("NOTE: search data unavailable - metrics use documented defaults (basic mode)")
	}

	c.line("")
	c.line("KEYWORD OPPORTUNITY SUMMARY")
	c.rule("-")
	c.linef("Total keywords analyzed:            %d", result.Summary.TotalKeywords)
	c.linef("High-opportunity keywords (>70):    %d", result.Summary.HighOpportunityCount)
	c.linef("Combined monthly search volume:     %s", formatCount(result.Summary.TotalMonthlySearches))

	if len(result.Keywords) > 0 {
		c.line("")
		c.line("DETAILED KEYWORD ANALYSIS")
		c.rule("-")
		for i, kw := range result.Keywords {
			c.renderKeyword(i+1, kw)
		}
	}

	if len(result.Summary.TopRecommendations) > 0 {
		c.line("")
		c.linef("TOP %d STRATEGIC RECOMMENDATIONS", len(result.Summary.TopRecommendations))
		c.rule("-")
		for i, kw := range result.Summary.TopRecommendations {
			c.linef("%d. %s (opportunity %.1f/100)", i+1, strings.ToUpper(kw.Term), kw.OpportunityScore)
			c.linef("   %s monthly searches, $%.2f CPC", formatCount(int64(kw.SearchVolume)), kw.CPC)
		}
	}

	c.line("")
	c.rule("=")
}

func (c *Console) renderKeyword(position int, kw seo.ScoredKeyword) {
	marker := "[-]"
	switch {
	case kw.OpportunityScore > 70:
		marker = "[+]"
	case kw.OpportunityScore > 50:
		marker = "[~]"
	}

	c.line("")
	c.linef("%s %d. %s", marker, position, strings.ToUpper(kw.Term))
	c.linef("    Monthly searches:  %s", formatCount(int64(kw.SearchVolume)))
	c.linef("    Cost per click:    $%.2f", kw.CPC)
	c.linef("    Competition:       %s (%.0f/100)", kw.CompetitionLevel, kw.Competition*100)
	c.linef("    Difficulty score:  %.1f/100", kw.DifficultyScore)
	c.linef("    Opportunity score: %.1f/100", kw.OpportunityScore)
	if len(kw.Insights) > 0 {
		c.line("    Strategic insights:")
		for _, insight := range kw.Insights {
			c.linef("      - %s", insight)
		}
	}
}

func (c *Console) line(s string) {
	fmt.Fprintln(c.w, s)
}

func (c *Console) linef(format string, args ...interface{}) {
	fmt.Fprintf(c.w, format+"\n", args...)
}

func (c *Console) rule(ch string) {
	fmt.Fprintln(c.w, strings.Repeat(ch, lineWidth))
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// formatCount renders an integer with thousands separators.
func formatCount(n int64) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return s
	}
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}
