package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rodyd137/loteria-push/internal/biz/domain"
)

// RulesConfig contains the key canonicalization rule tables loaded from YAML.
// Keeping the synonym tables as data means adding a newly observed spelling
// is a config change, not a code change.
type RulesConfig struct {
	Games    []GameRule    `yaml:"games"`
	Editions []EditionRule `yaml:"editions"`
}

// GameRule is one literal substitution applied to normalized game names.
// Rules run in file order.
type GameRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// EditionRule maps a set of edition aliases onto one canonical edition.
type EditionRule struct {
	Canonical string   `yaml:"canonical"`
	Aliases   []string `yaml:"aliases"`
}

// LoadRulesConfig loads the rule tables from a YAML file
func LoadRulesConfig(configPath string) (*RulesConfig, error) {
	// Try multiple paths
	paths := []string{configPath}
	if configPath == "" {
		paths = []string{
			"configs/rules.yaml",
			"./configs/rules.yaml",
			"/etc/loteria-push/rules.yaml",
		}
		if execPath, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Join(filepath.Dir(execPath), "configs", "rules.yaml"))
		}
	}

	var data []byte
	var err error
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}

	if data == nil {
		// Return default config if no file found
		return DefaultRulesConfig(), nil
	}

	var config RulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse rules.yaml: %w", err)
	}

	config.fillDefaults()
	return &config, nil
}

// fillDefaults fills in default tables for empty sections
func (c *RulesConfig) fillDefaults() {
	defaults := DefaultRulesConfig()

	if len(c.Games) == 0 {
		c.Games = defaults.Games
	}
	if len(c.Editions) == 0 {
		c.Editions = defaults.Editions
	}
}

// ToKeyRules converts to the domain rule table
func (c *RulesConfig) ToKeyRules() domain.KeyRules {
	rules := domain.KeyRules{
		Games:    make([]domain.GameSubstitution, 0, len(c.Games)),
		Editions: make([]domain.EditionAlias, 0, len(c.Editions)),
	}
	for _, g := range c.Games {
		rules.Games = append(rules.Games, domain.GameSubstitution{From: g.From, To: g.To})
	}
	for _, e := range c.Editions {
		rules.Editions = append(rules.Editions, domain.EditionAlias{Canonical: e.Canonical, Aliases: e.Aliases})
	}
	return rules
}

// DefaultRulesConfig returns the built-in rule tables. They cover the
// spellings the Dominican feed has actually produced so far.
func DefaultRulesConfig() *RulesConfig {
	return &RulesConfig{
		Games: []GameRule{
			{From: "loto-super loto mas", To: "loto super loto mas"},
			{From: "loto - super loto mas", To: "loto super loto mas"},
			{From: "quiniela leidsa", To: "quiniela"},
			{From: "quiniela loteka", To: "quiniela"},
			{From: "quiniela real", To: "quiniela"},
			{From: "quiniela lotedom", To: "quiniela"},
		},
		Editions: []EditionRule{
			{Canonical: "dia", Aliases: []string{"mediodia", "medio dia", "medio-dia", "dia", "d"}},
			{Canonical: "noche", Aliases: []string{"noche", "n"}},
			{Canonical: "18:00", Aliases: []string{"tarde", "18:00", "1800"}},
			{Canonical: "12:30", Aliases: []string{"12:30", "1230"}},
		},
	}
}
