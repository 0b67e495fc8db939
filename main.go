package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"seoscan-go/internal/config"
	"seoscan-go/pkg/ai"
	"seoscan-go/pkg/analyzer"
	"seoscan-go/pkg/content"
	"seoscan-go/pkg/logger"
	"seoscan-go/pkg/report"
	"seoscan-go/pkg/seo"
	"seoscan-go/pkg/seodata"
	"seoscan-go/pkg/storage"
)

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "CRITICAL ERROR: application panic recovered: %v\n", r)
			os.Exit(1)
		}
	}()

	// Environment variable defaults (CI friendly)
	defaultSites := getEnvOrDefault("SITE_URLS", "")
	defaultWorkers := getEnvIntOrDefault("ANALYSIS_WORKERS", 4)
	defaultOpenAIKey := getEnvOrDefault("OPENAI_API_KEY", "")
	defaultModel := getEnvOrDefault("OPENAI_MODEL", "")
	defaultDataLogin := getEnvOrDefault("DATAFORSEO_LOGIN", "")
	defaultDataPassword := getEnvOrDefault("DATAFORSEO_PASSWORD", "")

	var (
		sites        = flag.String("sites", defaultSites, "Comma-separated website URLs to analyze (env: SITE_URLS)")
		workers      = flag.Int("workers", defaultWorkers, "Concurrent site analyses (env: ANALYSIS_WORKERS)")
		debug        = flag.Bool("debug", false, "Enable debug logging (env: DEBUG)")
		jsonOut      = flag.Bool("json", false, "Print results as JSON instead of a console report")
		configPath   = flag.String("config", "", "Optional YAML config file (overrides env credentials)")
		openAIKey    = flag.String("openai-key", defaultOpenAIKey, "OpenAI-compatible API key (env: OPENAI_API_KEY)")
		model        = flag.String("model", defaultModel, "Completion model name (env: OPENAI_MODEL)")
		dataLogin    = flag.String("data-login", defaultDataLogin, "Search data API login (env: DATAFORSEO_LOGIN)")
		dataPassword = flag.String("data-password", defaultDataPassword, "Search data API password (env: DATAFORSEO_PASSWORD)")
		help         = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		printUsage()
		return
	}

	level := "info"
	if *debug || os.Getenv("DEBUG") == "true" {
		level = "debug"
	}
	logger.SetLogger(logger.New(logger.Config{Level: level, Format: "console", Output: "stderr"}))
	log := logger.GetLogger().WithField("component", "main")

	cfg := resolveConfig(*configPath, *openAIKey, *model, *dataLogin, *dataPassword)

	if cfg.AI.APIKey == "" {
		fmt.Println("ERROR: An OpenAI-compatible API key is required for keyword generation.")
		fmt.Println("Use -openai-key flag or OPENAI_API_KEY environment variable.")
		fmt.Println("")
		printUsage()
		os.Exit(1)
	}

	var siteURLs []string
	for _, s := range strings.Split(*sites, ",") {
		if s = strings.TrimSpace(s); s != "" {
			siteURLs = append(siteURLs, s)
		}
	}
	if len(siteURLs) == 0 {
		fmt.Println("ERROR: At least one website URL is required.")
		fmt.Println("Use -sites flag or SITE_URLS environment variable.")
		fmt.Println("")
		printUsage()
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"sites":           len(siteURLs),
		"workers":         *workers,
		"search_data_set": cfg.SearchData.Login != "",
	}).Info("Configuration loaded")

	a, err := buildAnalyzer(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to build analyzer")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	start := time.Now()
	results := a.AnalyzeSites(ctx, siteURLs, *workers)
	duration := time.Since(start)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.WithError(err).Fatal("Failed to encode results")
		}
	} else {
		console := report.NewConsole(os.Stdout)
		for _, res := range results {
			if res.Success {
				console.Render(res.Result)
			}
		}
	}

	successCount := 0
	for _, res := range results {
		if res.Success {
			successCount++
		}
	}

	log.WithFields(map[string]interface{}{
		"total_sites":   len(results),
		"success_count": successCount,
		"failure_count": len(results) - successCount,
		"duration":      duration.String(),
	}).Info("Analysis completed")

	if !*jsonOut {
		fmt.Printf("\n=== Analysis Run Summary ===\n")
		fmt.Printf("Total Sites: %d\n", len(results))
		fmt.Printf("Successful: %d\n", successCount)
		fmt.Printf("Failed: %d\n", len(results)-successCount)
		fmt.Printf("Duration: %s\n", duration.String())
		for _, res := range results {
			if !res.Success && res.Error != "" {
				fmt.Printf("  FAILED %s: %s\n", res.SiteURL, res.Error)
			}
		}
	}

	if successCount == 0 {
		os.Exit(1)
	}
}

// resolveConfig builds the effective configuration: a YAML file when
// given, otherwise defaults overlaid with the CLI/env credentials.
func resolveConfig(configPath, openAIKey, model, dataLogin, dataPassword string) *config.Config {
	if configPath != "" {
		cfg, err := config.NewManager().Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: failed to load config %s: %v\n", configPath, err)
			os.Exit(1)
		}
		return cfg
	}

	cfg := &config.Config{
		Scoring: seo.DefaultScoringConfig(),
		Cache:   config.CacheConfig{MaxTerms: 2048, TTLMinutes: 60},
		Worker:  config.WorkerConfig{MaxWorkers: 4, FetchTimeout: 30, AnalysisLimit: 180},
	}
	cfg.AI.APIKey = openAIKey
	cfg.AI.Model = model
	cfg.AI.Temperature = 0.3
	cfg.AI.TimeoutSec = 60
	cfg.SearchData.Login = dataLogin
	cfg.SearchData.Password = dataPassword
	cfg.SearchData.TimeoutSec = 30
	return cfg
}

func buildAnalyzer(cfg *config.Config) (*analyzer.Analyzer, error) {
	log := logger.GetLogger().WithField("component", "main")

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
		log.Warn("Search data credentials not provided, running basic analysis with default metrics")
	}

	cache := storage.NewMetricsCache(cfg.Cache.MaxTerms, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)

	return analyzer.New(extractor, generator, data, cache, cfg.Scoring)
}

func printUsage() {
	fmt.Println("seoscan-go - Keyword Opportunity Analyzer")
	fmt.Println("")
	fmt.Println("USAGE:")
	fmt.Println("    ./seoscan-go -sites <URL>[,<URL>...] -openai-key <KEY> [OPTIONS]")
	fmt.Println("    ./seoscan-go  # Uses environment variables")
	fmt.Println("")
	fmt.Println("REQUIRED:")
	fmt.Println("    -sites string        Comma-separated website URLs (env: SITE_URLS)")
	fmt.Println("    -openai-key string   OpenAI-compatible API key (env: OPENAI_API_KEY)")
	fmt.Println("")
	fmt.Println("OPTIONS:")
	fmt.Println("    -workers int         Concurrent site analyses (default: 4, env: ANALYSIS_WORKERS)")
	fmt.Println("    -model string        Completion model name (env: OPENAI_MODEL)")
	fmt.Println("    -data-login string   Search data API login (env: DATAFORSEO_LOGIN)")
	fmt.Println("    -data-password string Search data API password (env: DATAFORSEO_PASSWORD)")
	fmt.Println("    -config string       YAML config file (overrides env credentials)")
	fmt.Println("    -json                Print results as JSON")
	fmt.Println("    -debug               Enable debug logging (env: DEBUG)")
	fmt.Println("    -help                Show this help message")
	fmt.Println("")
	fmt.Println("Without search data credentials the analyzer still runs: every keyword")
	fmt.Println("gets the documented default metrics and the report is marked basic mode.")
}
