package conf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRulesConfigDefaults(t *testing.T) {
	// A path that cannot exist forces the built-in tables.
	config, err := LoadRulesConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadRulesConfig: %v", err)
	}

	if len(config.Games) == 0 || len(config.Editions) == 0 {
		t.Fatalf("defaults empty: %+v", config)
	}
	if config.Games[2].From != "quiniela leidsa" || config.Games[2].To != "quiniela" {
		t.Errorf("Games[2] = %+v", config.Games[2])
	}
}

func TestLoadRulesConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
games:
  - { from: "quiniela nueva", to: "quiniela" }
editions:
  - canonical: "dia"
    aliases: ["mediodia", "dia"]
  - canonical: "noche"
    aliases: ["noche"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadRulesConfig(path)
	if err != nil {
		t.Fatalf("LoadRulesConfig: %v", err)
	}

	if len(config.Games) != 1 || config.Games[0].From != "quiniela nueva" {
		t.Errorf("Games = %+v", config.Games)
	}
	if len(config.Editions) != 2 || config.Editions[0].Canonical != "dia" {
		t.Errorf("Editions = %+v", config.Editions)
	}
}

func TestLoadRulesConfigFillsMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
games:
  - { from: "quiniela nueva", to: "quiniela" }
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadRulesConfig(path)
	if err != nil {
		t.Fatalf("LoadRulesConfig: %v", err)
	}

	if len(config.Games) != 1 {
		t.Errorf("Games = %+v, want only the file's rule", config.Games)
	}
	if len(config.Editions) == 0 {
		t.Error("Editions should fall back to the built-in table")
	}
}

func TestLoadRulesConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("games: {not: [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRulesConfig(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestToKeyRules(t *testing.T) {
	rules := DefaultRulesConfig().ToKeyRules()

	if len(rules.Games) != 6 {
		t.Errorf("Games = %d rules, want 6", len(rules.Games))
	}
	if len(rules.Editions) != 4 {
		t.Errorf("Editions = %d rules, want 4", len(rules.Editions))
	}
	if rules.Editions[0].Canonical != "dia" || len(rules.Editions[0].Aliases) != 5 {
		t.Errorf("Editions[0] = %+v", rules.Editions[0])
	}
}
