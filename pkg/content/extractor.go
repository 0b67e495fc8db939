package content

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"seoscan-go/pkg/logger"
)

// minReadableChars is the point below which a readability result is
// considered too thin (navigation-only pages, consent walls) and the
// whole-document fallback is used instead.
const minReadableChars = 200

// Extractor fetches a page and reduces it to clean analysis text.
type Extractor struct {
	fetcher Fetcher
	log     *logger.Logger
}

// NewExtractor creates a content extractor with a default fetcher.
func NewExtractor(timeout time.Duration) *Extractor {
	return NewExtractorWithFetcher(NewFetcher(timeout))
}

// NewExtractorWithFetcher allows injecting a fetcher, used by tests.
func NewExtractorWithFetcher(fetcher Fetcher) *Extractor {
	return &Extractor{
		fetcher: fetcher,
		log:     logger.GetLogger().WithField("component", "content_extractor"),
	}
}

// Extract downloads a page and returns its readable text content with
// whitespace collapsed.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (string, error) {
	raw, contentType, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}

	text, err := ExtractText(pageURL, decodeToUTF8(raw, contentType))
	if err != nil {
		return "", err
	}

	e.log.WithFields(map[string]interface{}{
		"url":   logger.MaskURL(pageURL),
		"chars": len(text),
	}).Info("Extracted page content")
	return text, nil
}

// ExtractText reduces an HTML document to whitespace-collapsed readable
// text. The main article is located with readability; documents where
// that yields too little text (storefronts, landing pages) fall back to
// the full document body with script and style subtrees removed.
func ExtractText(pageURL, html string) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page URL: %w", err)
	}

	if article, err := readability.NewParser().Parse(strings.NewReader(html), parsedURL); err == nil {
		text := collapseWhitespace(article.TextContent)
		if len(text) >= minReadableChars {
			return text, nil
		}
	}

	return extractBodyText(html)
}

func extractBodyText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, iframe, svg").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}
	return collapseWhitespace(root.Text()), nil
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
