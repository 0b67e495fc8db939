package seodata

import "time"

// statusOK is the provider's status code for a successful request.
const statusOK = 20000

// Config holds connection settings for the search-volume data service.
type Config struct {
	Endpoint     string        `json:"endpoint"`
	Login        string        `json:"login"`
	Password     string        `json:"password"`
	LocationCode int           `json:"location_code"`
	DateFrom     string        `json:"date_from"`
	Timeout      time.Duration `json:"timeout"`
	MaxRetries   int           `json:"max_retries"`
	RetryDelay   time.Duration `json:"retry_delay"`
}

// DefaultConfig returns settings matching the provider's live
// search-volume endpoint, US location, with modest retry.
func DefaultConfig() Config {
	return Config{
		Endpoint:     "https://api.dataforseo.com/v3/keywords_data/google_ads/search_volume/live",
		LocationCode: 2840,
		DateFrom:     "2021-08-01",
		Timeout:      30 * time.Second,
		MaxRetries:   3,
		RetryDelay:   time.Second,
	}
}

// searchVolumeTask is one task object in the request body.
type searchVolumeTask struct {
	LocationCode   int      `json:"location_code"`
	Keywords       []string `json:"keywords"`
	DateFrom       string   `json:"date_from,omitempty"`
	SearchPartners bool     `json:"search_partners"`
}

// searchVolumeResponse mirrors the provider's response envelope. Metric
// fields are pointers because the provider reports null for keywords it
// has no data on.
type searchVolumeResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Tasks         []struct {
		StatusCode    int    `json:"status_code"`
		StatusMessage string `json:"status_message"`
		Result        []struct {
			Keyword          string   `json:"keyword"`
			SearchVolume     *int     `json:"search_volume"`
			Competition      *string  `json:"competition"`
			CompetitionIndex *float64 `json:"competition_index"`
			CPC              *float64 `json:"cpc"`
		} `json:"result"`
	} `json:"tasks"`
}
