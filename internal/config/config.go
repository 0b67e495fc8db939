package config

import "seoscan-go/pkg/seo"

type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	AI         AIConfig          `mapstructure:"ai"`
	SearchData SearchDataConfig  `mapstructure:"search_data"`
	Scoring    seo.ScoringConfig `mapstructure:"scoring"`
	Cache      CacheConfig       `mapstructure:"cache"`
	Worker     WorkerConfig      `mapstructure:"worker"`
	Logger     LoggerConfig      `mapstructure:"logger"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type AIConfig struct {
	Endpoint    string  `mapstructure:"endpoint"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	TimeoutSec  int     `mapstructure:"timeout_sec"`
}

type SearchDataConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	Login        string `mapstructure:"login"`
	Password     string `mapstructure:"password"`
	LocationCode int    `mapstructure:"location_code"`
	DateFrom     string `mapstructure:"date_from"`
	TimeoutSec   int    `mapstructure:"timeout_sec"`
}

type CacheConfig struct {
	MaxTerms   int `mapstructure:"max_terms"`
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

type WorkerConfig struct {
	MaxWorkers    int `mapstructure:"max_workers"`
	FetchTimeout  int `mapstructure:"fetch_timeout_sec"`
	AnalysisLimit int `mapstructure:"analysis_timeout_sec"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

type Manager interface {
	Load(configPath string) (*Config, error)
	Reload() error
	GetConfig() *Config
}
