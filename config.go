package guitarfest

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/viant/afs"
	"github.com/viant/guitarfest/internal/envexpr"
	"github.com/viant/guitarfest/policy"
	"github.com/viant/guitarfest/service/event"
	"github.com/viant/guitarfest/service/preference"
	"github.com/viant/guitarfest/service/report"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the engine configuration. It can
// be populated from YAML or JSON and overlaid with GUITARFEST_* environment
// variables.
type Config struct {
	Allocation  policy.Config     `json:"allocation" yaml:"allocation"`
	Priority    PriorityConfig    `json:"priority" yaml:"priority"`
	Preferences PreferencesConfig `json:"preferences" yaml:"preferences"`
	Report      ReportConfig      `json:"report" yaml:"report"`
	Events      event.Config      `json:"events" yaml:"events"`
}

type PriorityConfig struct {
	VIPs []string `json:"vips,omitempty" yaml:"vips,omitempty" env:"GUITARFEST_VIPS" envSeparator:","`
	// Seed drives the permutation of non-VIP persons, 0 draws a fresh one.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty" env:"GUITARFEST_SEED"`
}

type PreferencesConfig struct {
	URL    string `json:"url,omitempty" yaml:"url,omitempty" env:"GUITARFEST_PREFERENCES_URL"`
	Format string `json:"format,omitempty" yaml:"format,omitempty" env:"GUITARFEST_PREFERENCES_FORMAT"`
	Header bool   `json:"header,omitempty" yaml:"header,omitempty" env:"GUITARFEST_PREFERENCES_HEADER"`
}

type ReportConfig struct {
	URL    string `json:"url,omitempty" yaml:"url,omitempty" env:"GUITARFEST_REPORT_URL"`
	Format string `json:"format,omitempty" yaml:"format,omitempty" env:"GUITARFEST_REPORT_FORMAT"`
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() *Config {
	return &Config{
		Allocation: policy.Config{
			RoundTwoScope: policy.ScopeWinningPairs,
			MaxRanking:    policy.DefaultMaxRanking,
		},
		Report: ReportConfig{Format: report.FormatText},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if err := policy.FromConfig(&c.Allocation).Validate(); err != nil {
		return fmt.Errorf("allocation: %w", err)
	}
	seen := map[string]bool{}
	for _, vip := range c.Priority.VIPs {
		if vip == "" {
			return fmt.Errorf("priority.vips: blank person")
		}
		if seen[vip] {
			return fmt.Errorf("priority.vips: %v listed twice", vip)
		}
		seen[vip] = true
	}
	if c.Preferences.Format != "" {
		if _, err := preference.ParseFormat(c.Preferences.Format); err != nil {
			return fmt.Errorf("preferences: %w", err)
		}
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := c.Events.Validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}
	return nil
}

// expand resolves ${env.KEY} expressions in locations.
func (c *Config) expand() {
	c.Preferences.URL = envexpr.Expand(c.Preferences.URL)
	c.Report.URL = envexpr.Expand(c.Report.URL)
	c.Events.URL = envexpr.Expand(c.Events.URL)
}

// LoadConfig reads the YAML config at URL (when not empty) over the defaults
// and applies environment overrides.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	cfg := DefaultConfig()
	if URL != "" {
		data, err := fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.expand()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
