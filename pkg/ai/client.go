package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"seoscan-go/pkg/logger"
	"seoscan-go/pkg/seo"
)

// maxContentChars caps how much extracted page text goes into the
// prompt; anything past this adds cost without improving the keyword
// set.
const maxContentChars = 12000

const systemPrompt = "You are a professional SEO analyst with expertise in keyword research " +
	"and content strategy. Analyze websites with precision and provide actionable insights."

// Config holds connection settings for the chat-completions service.
// Endpoint is any OpenAI-compatible completions URL.
type Config struct {
	Endpoint    string        `json:"endpoint"`
	APIKey      string        `json:"api_key"`
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Timeout     time.Duration `json:"timeout"`
}

// DefaultConfig returns the standard OpenAI endpoint settings.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "https://api.openai.com/v1/chat/completions",
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		Timeout:     60 * time.Second,
	}
}

// ProfileGenerator derives a site profile with candidate keywords from
// extracted page content.
type ProfileGenerator interface {
	GenerateProfile(ctx context.Context, siteURL, content string) (seo.SiteProfile, error)
}

type client struct {
	cfg    Config
	client *fasthttp.Client
	log    *logger.Logger
}

// NewClient creates a chat-completions client. The API key is required.
func NewClient(cfg Config) (ProfileGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI API key is required")
	}
	def := DefaultConfig()
	if cfg.Endpoint == "" {
		cfg.Endpoint = def.Endpoint
	}
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	return &client{
		cfg: cfg,
		client: &fasthttp.Client{
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		},
		log: logger.GetLogger().WithField("component", "ai_client"),
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateProfile asks the model for a JSON site profile and parses it.
// A malformed model reply degrades to an empty profile rather than
// failing the run; transport and API errors are returned.
func (c *client) GenerateProfile(ctx context.Context, siteURL, content string) (seo.SiteProfile, error) {
	if len(content) > maxContentChars {
		content = content[:maxContentChars]
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(siteURL, content)},
		},
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return seo.SiteProfile{}, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	select {
	case <-ctx.Done():
		return seo.SiteProfile{}, ctx.Err()
	default:
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.cfg.Endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.SetBody(body)

	start := time.Now()
	if err := c.client.DoTimeout(req, resp, c.cfg.Timeout); err != nil {
		return seo.SiteProfile{}, fmt.Errorf("completion request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return seo.SiteProfile{}, fmt.Errorf("AI API returned status %d: %s", resp.StatusCode(), resp.Body())
	}

	var completion chatResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return seo.SiteProfile{}, fmt.Errorf("failed to decode completion response: %w", err)
	}
	if completion.Error != nil {
		return seo.SiteProfile{}, fmt.Errorf("AI API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return seo.SiteProfile{}, fmt.Errorf("AI API returned no choices")
	}

	profile, ok := ParseProfile(completion.Choices[0].Message.Content)
	if !ok {
		c.log.Warn("Model reply was not valid profile JSON, continuing with empty profile")
	}
	c.log.WithFields(map[string]interface{}{
		"keywords":    len(profile.Keywords),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Site profile generated")
	return profile, nil
}

func buildUserPrompt(siteURL, content string) string {
	var b strings.Builder
	b.WriteString("Analyze this website content and provide a comprehensive SEO assessment.\n\n")
	b.WriteString("Respond with JSON in exactly this format:\n")
	b.WriteString(`{"name": "Website/Company name", "description": "Professional description (2-3 sentences)", "niche": "Primary business category/industry", "keywords": ["list", "of", "relevant", "SEO", "keywords"]}`)
	b.WriteString("\n\nFocus on high-value commercial keywords, long-tail opportunities, ")
	b.WriteString("industry-specific terminology and user intent alignment.\n\n")
	b.WriteString("Website URL: " + siteURL + "\n")
	b.WriteString("Website content:\n" + content)
	return b.String()
}

// ParseProfile extracts the profile JSON from a model reply, tolerating
// markdown code fences around the payload. The second return value is
// false when the reply could not be parsed; the returned profile is then
// empty and usable as-is.
func ParseProfile(reply string) (seo.SiteProfile, bool) {
	cleaned := strings.TrimSpace(reply)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var profile seo.SiteProfile
	if err := json.Unmarshal([]byte(cleaned), &profile); err != nil {
		return seo.SiteProfile{}, false
	}
	return profile, true
}
