package conf

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ONESIGNAL_APP_ID", "ONESIGNAL_REST_API_KEY", "ONESIGNAL_ENDPOINT",
		"FEED_URLS", "FEED_TIMEOUT_SECONDS", "STATE_PATH", "HISTORY_DB_PATH",
		"TIMEZONE", "RULES_CONFIG_PATH", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadFromEnv()

	if len(cfg.Feed.URLs) != 2 {
		t.Errorf("Feed.URLs = %v, want the two published endpoints", cfg.Feed.URLs)
	}
	if cfg.Feed.TimeoutSeconds != 12 {
		t.Errorf("TimeoutSeconds = %d, want 12", cfg.Feed.TimeoutSeconds)
	}
	if cfg.State.Path != ".botstate/lastDates.json" {
		t.Errorf("State.Path = %q", cfg.State.Path)
	}
	if cfg.State.HistoryDBPath != ".botstate/pushes.db" {
		t.Errorf("State.HistoryDBPath = %q", cfg.State.HistoryDBPath)
	}
	if cfg.Timezone != "America/Santo_Domingo" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.OneSignal.Endpoint != "https://onesignal.com/api/v1/notifications" {
		t.Errorf("Endpoint = %q", cfg.OneSignal.Endpoint)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ONESIGNAL_APP_ID", "app-123")
	t.Setenv("ONESIGNAL_REST_API_KEY", "rest-key")
	t.Setenv("FEED_URLS", " https://example.com/a.json , https://example.com/b.json ,")
	t.Setenv("FEED_TIMEOUT_SECONDS", "5")
	t.Setenv("STATE_PATH", "/var/lib/loteria/state.json")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("DEBUG", "true")

	cfg := LoadFromEnv()

	if cfg.OneSignal.AppID != "app-123" || cfg.OneSignal.RESTKey != "rest-key" {
		t.Errorf("OneSignal = %+v", cfg.OneSignal)
	}
	if len(cfg.Feed.URLs) != 2 || cfg.Feed.URLs[0] != "https://example.com/a.json" || cfg.Feed.URLs[1] != "https://example.com/b.json" {
		t.Errorf("Feed.URLs = %v", cfg.Feed.URLs)
	}
	if cfg.Feed.TimeoutSeconds != 5 {
		t.Errorf("TimeoutSeconds = %d", cfg.Feed.TimeoutSeconds)
	}
	if cfg.State.Path != "/var/lib/loteria/state.json" {
		t.Errorf("State.Path = %q", cfg.State.Path)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadFromEnvBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("FEED_TIMEOUT_SECONDS", "not-a-number")

	if cfg := LoadFromEnv(); cfg.Feed.TimeoutSeconds != 12 {
		t.Errorf("TimeoutSeconds = %d, want default 12", cfg.Feed.TimeoutSeconds)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error for missing credentials")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("err type = %T, want *ConfigError", err)
	}

	cfg.OneSignal.AppID = "app-123"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error when REST key is still missing")
	}

	cfg.OneSignal.RESTKey = "rest-key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}
