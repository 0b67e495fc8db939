package handler

import (
	"context"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"seoscan-go/pkg/analyzer"
	"seoscan-go/pkg/logger"
)

// Controller exposes the analysis pipeline over HTTP.
type Controller struct {
	analyzer *analyzer.Analyzer
	timeout  time.Duration
	log      *logger.Logger
}

// NewController creates the HTTP controller. The timeout bounds one
// analysis request end to end.
func NewController(a *analyzer.Analyzer, timeout time.Duration) *Controller {
	if timeout <= 0 {
		timeout = 3 * time.Minute
	}
	return &Controller{
		analyzer: a,
		timeout:  timeout,
		log:      logger.GetLogger().WithField("component", "http_controller"),
	}
}

// Register mounts the API routes on the fiber app.
func (c *Controller) Register(app *fiber.App) {
	api := app.Group("/api/v1")
	api.Get("/health", c.health)
	api.Post("/analyze", c.analyze)
}

func (c *Controller) health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

type analyzeRequest struct {
	URL string `json:"url"`
}

func (c *Controller) analyze(ctx *fiber.Ctx) error {
	var req analyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "request body must be JSON with a url field")
	}

	parsed, err := url.Parse(req.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fiber.NewError(fiber.StatusBadRequest, "url must be an absolute http(s) URL")
	}

	runCtx, cancel := context.WithTimeout(ctx.Context(), c.timeout)
	defer cancel()

	start := time.Now()
	result, err := c.analyzer.AnalyzeSite(runCtx, req.URL)
	if err != nil {
		c.log.WithError(err).WithField("site", logger.MaskURL(req.URL)).Error("Analysis request failed")
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	c.log.WithFields(map[string]interface{}{
		"site":        logger.MaskURL(req.URL),
		"keywords":    result.Summary.TotalKeywords,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Analysis request completed")
	return ctx.JSON(result)
}
