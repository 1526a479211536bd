// Package config loads the injected business vocabulary (project types,
// per-type status lists, sentinel statuses) and the dashboard metric
// exclusion sets. Everything here is data the business may change without
// touching code, which is why none of it is hard-coded in the domain
// package.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rferraz/clientdesk/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration schema.
type Config struct {
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Dashboard  DashboardConfig  `yaml:"dashboard"`
}

// VocabularyConfig mirrors domain.Vocabulary in YAML form.
type VocabularyConfig struct {
	NotStartedStatus string       `yaml:"not_started_status"`
	CompletedStatus  string       `yaml:"completed_status"`
	Types            []TypeConfig `yaml:"types"`
}

type TypeConfig struct {
	Name     string   `yaml:"name"`
	Statuses []string `yaml:"statuses"`
}

// DashboardConfig holds per-metric sets of client/project display names
// excluded from aggregation. Keys are metric names such as "top_clients"
// and "monthly_value".
type DashboardConfig struct {
	Exclusions map[string][]string `yaml:"exclusions"`
}

// Excluded reports whether name is excluded from the given metric.
// Comparison ignores surrounding whitespace and case, since the names
// arrive from hand-edited configuration.
func (d DashboardConfig) Excluded(metric, name string) bool {
	for _, n := range d.Exclusions[metric] {
		if strings.EqualFold(strings.TrimSpace(n), strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

// Default returns the built-in configuration used when no config file
// exists.
func Default() Config {
	return Config{
		Vocabulary: VocabularyConfig{
			NotStartedStatus: "not-started",
			CompletedStatus:  "completed",
			Types: []TypeConfig{
				{Name: "development", Statuses: []string{"not-started", "planning", "in-progress", "review", "completed"}},
				{Name: "design", Statuses: []string{"not-started", "briefing", "drafting", "feedback", "completed"}},
				{Name: "marketing", Statuses: []string{"not-started", "strategy", "running", "reporting", "completed"}},
				{Name: "maintenance", Statuses: []string{"not-started", "scheduled", "in-progress", "completed"}},
			},
		},
		Dashboard: DashboardConfig{
			Exclusions: map[string][]string{},
		},
	}
}

// Load reads configuration from path, falling back to Default when the
// file does not exist. A file that exists but cannot be parsed or fails
// validation is an error; silently ignoring a typo in the vocabulary
// would corrupt status validation everywhere downstream.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks structural requirements of the vocabulary.
func (c Config) Validate() error {
	v := c.Vocabulary
	if v.NotStartedStatus == "" {
		return fmt.Errorf("vocabulary.not_started_status is required")
	}
	if v.CompletedStatus == "" {
		return fmt.Errorf("vocabulary.completed_status is required")
	}
	if len(v.Types) == 0 {
		return fmt.Errorf("vocabulary.types must list at least one project type")
	}
	seen := make(map[string]bool, len(v.Types))
	for _, t := range v.Types {
		if t.Name == "" {
			return fmt.Errorf("vocabulary.types: type name is required")
		}
		if seen[t.Name] {
			return fmt.Errorf("vocabulary.types: duplicate type %q", t.Name)
		}
		seen[t.Name] = true
		if len(t.Statuses) == 0 {
			return fmt.Errorf("vocabulary.types: type %q has no statuses", t.Name)
		}
	}
	return nil
}

// ToVocabulary converts the YAML schema into the domain value consumed by
// the pure functions.
func (c Config) ToVocabulary() *domain.Vocabulary {
	types := make([]domain.ProjectType, len(c.Vocabulary.Types))
	for i, t := range c.Vocabulary.Types {
		types[i] = domain.ProjectType{Name: t.Name, Statuses: t.Statuses}
	}
	return &domain.Vocabulary{
		Types:            types,
		NotStartedStatus: c.Vocabulary.NotStartedStatus,
		CompletedStatus:  c.Vocabulary.CompletedStatus,
	}
}
