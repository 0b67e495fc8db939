package content

import (
	"context"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"seoscan-go/pkg/logger"
)

const fetchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// maxPageBytes bounds how much of a page we keep; keyword analysis does
// not need more than the leading content.
const maxPageBytes = 2 << 20

// Fetcher downloads raw page bytes with browser-like headers.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (body []byte, contentType string, err error)
}

type httpFetcher struct {
	client  *fasthttp.Client
	timeout time.Duration
	log     *logger.Logger
}

// NewFetcher creates a pooled fasthttp page fetcher.
func NewFetcher(timeout time.Duration) Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpFetcher{
		client: &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxPageBytes,
		},
		timeout: timeout,
		log:     logger.GetLogger().WithField("component", "content_fetcher"),
	}
}

// Fetch downloads a page and returns its (possibly compressed-decoded)
// body and the Content-Type header for charset sniffing.
func (f *httpFetcher) Fetch(ctx context.Context, pageURL string) ([]byte, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", ctx.Err()
	default:
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(pageURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(fetchUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	if err := f.client.DoTimeout(req, resp, f.timeout); err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, "", fmt.Errorf("HTTP %d fetching page", resp.StatusCode())
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		body = resp.Body()
	}

	// The response buffers are pooled, keep our own copy.
	pageBytes := make([]byte, len(body))
	copy(pageBytes, body)

	f.log.WithFields(map[string]interface{}{
		"url":   logger.MaskURL(pageURL),
		"bytes": len(pageBytes),
	}).Debug("Page downloaded")

	return pageBytes, string(resp.Header.ContentType()), nil
}
