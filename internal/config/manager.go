package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"seoscan-go/pkg/seo"
)

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setupViper(configPath)

	if err := m.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := m.validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.viper == nil {
		return fmt.Errorf("config not loaded")
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := m.validateConfig(&config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setupViper(configPath string) {
	m.viper.SetConfigFile(configPath)

	m.viper.SetEnvPrefix("SEOSCAN")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()

	m.viper.SetDefault("server.host", "0.0.0.0")
	m.viper.SetDefault("server.port", 8080)
	m.viper.SetDefault("ai.model", "gpt-4o-mini")
	m.viper.SetDefault("ai.temperature", 0.3)
	m.viper.SetDefault("ai.timeout_sec", 60)
	m.viper.SetDefault("search_data.location_code", 2840)
	m.viper.SetDefault("search_data.timeout_sec", 30)
	m.viper.SetDefault("cache.max_terms", 2048)
	m.viper.SetDefault("cache.ttl_minutes", 60)
	m.viper.SetDefault("worker.max_workers", 4)
	m.viper.SetDefault("worker.fetch_timeout_sec", 30)
	m.viper.SetDefault("worker.analysis_timeout_sec", 180)
	m.viper.SetDefault("logger.level", "info")
	m.viper.SetDefault("logger.format", "console")
	m.viper.SetDefault("logger.output", "stderr")

	def := seo.DefaultScoringConfig()
	m.viper.SetDefault("scoring.competition_weight", def.CompetitionWeight)
	m.viper.SetDefault("scoring.cpc_weight", def.CPCWeight)
	m.viper.SetDefault("scoring.cpc_ceiling", def.CPCCeiling)
	m.viper.SetDefault("scoring.competition_low_value", def.CompetitionLowValue)
	m.viper.SetDefault("scoring.competition_medium_value", def.CompetitionMediumValue)
	m.viper.SetDefault("scoring.competition_high_value", def.CompetitionHighValue)
	m.viper.SetDefault("scoring.volume_reference", def.VolumeReference)
	m.viper.SetDefault("scoring.high_volume_threshold", def.HighVolumeThreshold)
	m.viper.SetDefault("scoring.low_difficulty_threshold", def.LowDifficultyThreshold)
	m.viper.SetDefault("scoring.medium_cpc_threshold", def.MediumCPCThreshold)
	m.viper.SetDefault("scoring.high_cpc_threshold", def.HighCPCThreshold)
	m.viper.SetDefault("scoring.high_opportunity_threshold", def.HighOpportunityThreshold)
	m.viper.SetDefault("scoring.top_recommendations", def.TopRecommendations)
}

func (m *manager) validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Worker.MaxWorkers <= 0 {
		return fmt.Errorf("max_workers must be positive")
	}

	if config.AI.APIKey == "" {
		return fmt.Errorf("ai.api_key is required (env: SEOSCAN_AI_API_KEY)")
	}

	if config.Scoring.CPCCeiling <= 0 {
		return fmt.Errorf("scoring.cpc_ceiling must be positive")
	}

	if config.Scoring.VolumeReference <= 0 {
		return fmt.Errorf("scoring.volume_reference must be positive")
	}

	return nil
}
