package seodata

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"seoscan-go/pkg/logger"
	"seoscan-go/pkg/seo"
)

// maxKeywordsPerRequest is the provider's per-task keyword limit.
const maxKeywordsPerRequest = 1000

// Client looks up search-volume metrics for candidate keywords. A nil
// result map with a nil error never happens: lookup failures surface as
// errors and the caller decides whether to degrade to basic mode.
type Client interface {
	SearchVolume(ctx context.Context, keywords []string) (map[string]*seo.Metrics, error)
}

type httpClient struct {
	cfg       Config
	client    *fasthttp.Client
	retry     *retrier
	authToken string
	log       *logger.Logger
}

// NewClient creates a search-volume client. Login and password are
// required; the provider authenticates with HTTP basic auth.
func NewClient(cfg Config) (Client, error) {
	if cfg.Login == "" || cfg.Password == "" {
		return nil, fmt.Errorf("search data credentials are required")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultConfig().Endpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.LocationCode == 0 {
		cfg.LocationCode = DefaultConfig().LocationCode
	}

	return &httpClient{
		cfg: cfg,
		client: &fasthttp.Client{
			ReadTimeout:         cfg.Timeout,
			WriteTimeout:        cfg.Timeout,
			MaxConnsPerHost:     16,
			MaxIdleConnDuration: 90 * time.Second,
		},
		retry:     newRetrier(cfg.MaxRetries, cfg.RetryDelay),
		authToken: base64.StdEncoding.EncodeToString([]byte(cfg.Login + ":" + cfg.Password)),
		log:       logger.GetLogger().WithField("component", "seodata_client"),
	}, nil
}

// SearchVolume queries the live search-volume endpoint for up to 1000
// keywords and returns metrics keyed by normalized term. Keywords the
// provider has no data for are simply absent from the map.
func (c *httpClient) SearchVolume(ctx context.Context, keywords []string) (map[string]*seo.Metrics, error) {
	if len(keywords) == 0 {
		return map[string]*seo.Metrics{}, nil
	}
	if len(keywords) > maxKeywordsPerRequest {
		keywords = keywords[:maxKeywordsPerRequest]
	}

	c.log.WithField("keywords_count", len(keywords)).Debug("Fetching search volume data")

	var result map[string]*seo.Metrics
	err := c.retry.execute(ctx, func() error {
		var queryErr error
		result, queryErr = c.doQuery(keywords)
		return queryErr
	})
	if err != nil {
		c.log.WithError(err).Error("Search volume lookup failed")
		return nil, err
	}

	c.log.WithFields(map[string]interface{}{
		"requested": len(keywords),
		"matched":   len(result),
	}).Debug("Search volume data retrieved")
	return result, nil
}

func (c *httpClient) doQuery(keywords []string) (map[string]*seo.Metrics, error) {
	body, err := json.Marshal([]searchVolumeTask{{
		LocationCode:   c.cfg.LocationCode,
		Keywords:       keywords,
		DateFrom:       c.cfg.DateFrom,
		SearchPartners: true,
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search volume request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.cfg.Endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Basic "+c.authToken)
	req.SetBody(body)

	if err := c.client.DoTimeout(req, resp, c.cfg.Timeout); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("search data API returned status %d: %s", resp.StatusCode(), resp.Body())
	}

	return decodeMetrics(resp.Body())
}

// decodeMetrics converts the provider's response envelope into the
// enrichment map consumed by the record builder. Absent numeric fields
// become the sentinel values the builder expects (-1 competition index,
// zero volume and CPC).
func decodeMetrics(body []byte) (map[string]*seo.Metrics, error) {
	var envelope searchVolumeResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if envelope.StatusCode != statusOK {
		return nil, fmt.Errorf("search data API error %d: %s", envelope.StatusCode, envelope.StatusMessage)
	}

	metrics := make(map[string]*seo.Metrics)
	for _, task := range envelope.Tasks {
		for _, row := range task.Result {
			term := seo.NormalizeTerm(row.Keyword)
			if term == "" {
				continue
			}
			m := &seo.Metrics{CompetitionIndex: -1}
			if row.SearchVolume != nil {
				m.SearchVolume = *row.SearchVolume
			}
			if row.Competition != nil {
				m.Competition = *row.Competition
			}
			if row.CompetitionIndex != nil {
				m.CompetitionIndex = *row.CompetitionIndex
			}
			if row.CPC != nil {
				m.CPC = *row.CPC
			}
			metrics[term] = m
		}
	}
	return metrics, nil
}
