package conf

import (
	"os"
	"strconv"
	"strings"
)

// defaultFeedURLs are the published feed endpoints, tried in order: the
// "latest" summary first, the full data snapshot as fallback.
var defaultFeedURLs = []string{
	"https://rodyd137.github.io/ScraperLoteriasDominicanas/public/feed/latest.json",
	"https://rodyd137.github.io/ScraperLoteriasDominicanas/public/data.json",
}

// Config represents application configuration
type Config struct {
	// OneSignal configuration
	OneSignal OneSignalConfig

	// Feed source configuration
	Feed FeedConfig

	// State persistence configuration
	State StateConfig

	// IANA timezone the feed's dates are interpreted in
	Timezone string

	// Optional path to the canonicalization rules YAML
	RulesPath string

	// Debug mode
	Debug bool
}

// OneSignalConfig contains OneSignal configuration
type OneSignalConfig struct {
	AppID    string
	RESTKey  string
	Endpoint string
}

// FeedConfig contains feed source configuration
type FeedConfig struct {
	URLs           []string
	TimeoutSeconds int
}

// StateConfig contains persistence configuration
type StateConfig struct {
	Path          string // JSON state file (identity key -> last date)
	HistoryDBPath string // SQLite push history database
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	feedURLs := defaultFeedURLs
	if val := os.Getenv("FEED_URLS"); val != "" {
		var urls []string
		for _, u := range strings.Split(val, ",") {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}
		if len(urls) > 0 {
			feedURLs = urls
		}
	}

	timeoutSec := 12
	if val := os.Getenv("FEED_TIMEOUT_SECONDS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	statePath := os.Getenv("STATE_PATH")
	if statePath == "" {
		statePath = ".botstate/lastDates.json"
	}

	historyDBPath := os.Getenv("HISTORY_DB_PATH")
	if historyDBPath == "" {
		historyDBPath = ".botstate/pushes.db"
	}

	timezone := os.Getenv("TIMEZONE")
	if timezone == "" {
		timezone = "America/Santo_Domingo"
	}

	endpoint := os.Getenv("ONESIGNAL_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://onesignal.com/api/v1/notifications"
	}

	return &Config{
		OneSignal: OneSignalConfig{
			AppID:    os.Getenv("ONESIGNAL_APP_ID"),
			RESTKey:  os.Getenv("ONESIGNAL_REST_API_KEY"),
			Endpoint: endpoint,
		},
		Feed: FeedConfig{
			URLs:           feedURLs,
			TimeoutSeconds: timeoutSec,
		},
		State: StateConfig{
			Path:          statePath,
			HistoryDBPath: historyDBPath,
		},
		Timezone:  timezone,
		RulesPath: os.Getenv("RULES_CONFIG_PATH"),
		Debug:     os.Getenv("DEBUG") == "true",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.OneSignal.AppID == "" || c.OneSignal.RESTKey == "" {
		return &ConfigError{Field: "ONESIGNAL_APP_ID/ONESIGNAL_REST_API_KEY", Message: "required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
