package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"seoscan-go/internal/config"
	"seoscan-go/internal/handler"
	"seoscan-go/pkg/ai"
	"seoscan-go/pkg/analyzer"
	"seoscan-go/pkg/content"
	"seoscan-go/pkg/logger"
	"seoscan-go/pkg/seodata"
	"seoscan-go/pkg/storage"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/example.yaml", "Configuration file path")
	flag.Parse()

	if err := run(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.NewManager().Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	logger.SetLogger(log)
	log = log.WithField("component", "server")

	a, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:      "seoscan-go",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: time.Duration(cfg.Worker.AnalysisLimit+30) * time.Second,
	})

	controller := handler.NewController(a, time.Duration(cfg.Worker.AnalysisLimit)*time.Second)
	controller.Register(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.WithField("addr", addr).Info("Starting analysis API server")

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Listen(addr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Warn("Server did not shut down cleanly")
		}
	}

	log.Info("Server stopped")
	return nil
}

func buildAnalyzer(cfg *config.Config) (*analyzer.Analyzer, error) {
	log := logger.GetLogger().WithField("component", "server")

	extractor := content.NewExtractor(time.Duration(cfg.Worker.FetchTimeout) * time.Second)

	generator, err := ai.NewClient(ai.Config{
		Endpoint:    cfg.AI.Endpoint,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     time.Duration(cfg.AI.TimeoutSec) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	var data seodata.Client
	if cfg.SearchData.Login != "" && cfg.SearchData.Password != "" {
		data, err = seodata.NewClient(seodata.Config{
			Endpoint:     cfg.SearchData.Endpoint,
			Login:        cfg.SearchData.Login,
			Password:     cfg.SearchData.Password,
			LocationCode: cfg.SearchData.LocationCode,
			DateFrom:     cfg.SearchData.DateFrom,
			Timeout:      time.Duration(cfg.SearchData.TimeoutSec) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		log.WithField("login", logger.MaskCredential(cfg.SearchData.Login)).Info("Search data enrichment enabled")
	} else {
		log.Warn("Search data credentials not configured, analyses run in basic mode")
	}

	cache := storage.NewMetricsCache(cfg.Cache.MaxTerms, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)

	return analyzer.New(extractor, generator, data, cache, cfg.Scoring)
}
