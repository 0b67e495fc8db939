package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

const minimalConfig = `
ai:
  api_key: "sk-test"
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := NewManager().Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.AI.Model != "gpt-4o-mini" {
		t.Errorf("default model = %q", cfg.AI.Model)
	}
	if cfg.SearchData.LocationCode != 2840 {
		t.Errorf("default location code = %d, want 2840", cfg.SearchData.LocationCode)
	}
	if cfg.Worker.MaxWorkers != 4 {
		t.Errorf("default max workers = %d, want 4", cfg.Worker.MaxWorkers)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("default log level = %q", cfg.Logger.Level)
	}
}

func TestLoadScoringDefaults(t *testing.T) {
	cfg, err := NewManager().Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := cfg.Scoring
	if s.CompetitionWeight != 0.6 || s.CPCWeight != 0.4 {
		t.Errorf("weights = %v/%v, want 0.6/0.4", s.CompetitionWeight, s.CPCWeight)
	}
	if s.CPCCeiling != 4.0 {
		t.Errorf("cpc ceiling = %v, want 4.0", s.CPCCeiling)
	}
	if s.CompetitionLowValue != 0.15 || s.CompetitionMediumValue != 0.5 || s.CompetitionHighValue != 0.85 {
		t.Errorf("competition mapping = %v/%v/%v", s.CompetitionLowValue, s.CompetitionMediumValue, s.CompetitionHighValue)
	}
	if s.VolumeReference != 10000 {
		t.Errorf("volume reference = %d, want 10000", s.VolumeReference)
	}
	if s.HighOpportunityThreshold != 70 || s.TopRecommendations != 3 {
		t.Errorf("summary thresholds = %v/%d", s.HighOpportunityThreshold, s.TopRecommendations)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := NewManager().Load(writeConfig(t, `
server:
  port: 9090
ai:
  api_key: "sk-test"
  model: "gpt-4o"
scoring:
  cpc_ceiling: 8.0
  top_recommendations: 5
`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.AI.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.AI.Model)
	}
	if cfg.Scoring.CPCCeiling != 8.0 {
		t.Errorf("cpc ceiling = %v, want 8.0", cfg.Scoring.CPCCeiling)
	}
	if cfg.Scoring.TopRecommendations != 5 {
		t.Errorf("top recommendations = %d, want 5", cfg.Scoring.TopRecommendations)
	}
	// Untouched scoring fields keep their defaults.
	if cfg.Scoring.CompetitionWeight != 0.6 {
		t.Errorf("competition weight = %v, want default 0.6", cfg.Scoring.CompetitionWeight)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing api key",
			content: `server: {port: 8080}`,
			wantErr: "ai.api_key",
		},
		{
			name: "invalid port",
			content: `
server:
  port: 99999
ai:
  api_key: "sk-test"
`,
			wantErr: "port",
		},
		{
			name: "non-positive cpc ceiling",
			content: `
ai:
  api_key: "sk-test"
scoring:
  cpc_ceiling: -1
`,
			wantErr: "cpc_ceiling",
		},
		{
			name: "non-positive volume reference",
			content: `
ai:
  api_key: "sk-test"
scoring:
  volume_reference: 0
`,
			wantErr: "volume_reference",
		},
		{
			name: "non-positive workers",
			content: `
ai:
  api_key: "sk-test"
worker:
  max_workers: -2
`,
			wantErr: "max_workers",
		},
	}

	for _, tc := range cases {
		_, err := NewManager().Load(writeConfig(t, tc.content))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.wantErr)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewManager().Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestGetConfigAndReload(t *testing.T) {
	path := writeConfig(t, minimalConfig)
	m := NewManager()

	if m.GetConfig() != nil {
		t.Error("GetConfig should be nil before Load")
	}

	loaded, err := m.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.GetConfig() != loaded {
		t.Error("GetConfig does not return the loaded config")
	}

	if err := os.WriteFile(path, []byte(minimalConfig+"\nserver:\n  port: 9191\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}
	if err := m.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if m.GetConfig().Server.Port != 9191 {
		t.Errorf("reloaded port = %d, want 9191", m.GetConfig().Server.Port)
	}
}
