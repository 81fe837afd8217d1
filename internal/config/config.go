// Package config loads tracker configuration from an optional config file
// and environment variables via viper. Credentials only ever come from the
// environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pfrederiksen/meet-tracker/internal/scrape"
	"github.com/pfrederiksen/meet-tracker/internal/scoring"
)

// Config is the full tracker configuration.
type Config struct {
	MeetURL            string        `mapstructure:"meet_url"`
	RequestDelay       time.Duration `mapstructure:"request_delay"`
	HTTPTimeout        time.Duration `mapstructure:"http_timeout"`
	FetchRetries       int           `mapstructure:"fetch_retries"`
	MonteCarloTrials   int           `mapstructure:"monte_carlo_trials"`
	DataDir            string        `mapstructure:"data_dir"`
	RefreshInterval    time.Duration `mapstructure:"refresh_interval"`
	LogLevel           string        `mapstructure:"log_level"`
	AllCapsTeams       []string      `mapstructure:"all_caps_teams"`
	CombinedEventCodes []string      `mapstructure:"combined_event_codes"`
	Email              EmailConfig   `mapstructure:"email"`
}

// EmailConfig carries SMTP delivery settings. Notification is disabled when
// Sender is empty.
type EmailConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Sender    string `mapstructure:"sender"`
	Password  string `mapstructure:"password"`
	Recipient string `mapstructure:"recipient"`
}

// Load reads configuration: defaults, then an optional meet-tracker.yaml in
// the working directory, then MEET_* environment variables (MEET_MEET_URL,
// MEET_EMAIL_SENDER, ...).
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("meet_url", "https://flashresults.com/2026_Meets/Indoor/02-26_ACC")
	v.SetDefault("request_delay", scrape.DefaultDelay)
	v.SetDefault("http_timeout", scrape.DefaultTimeout)
	v.SetDefault("fetch_retries", scrape.DefaultRetries)
	v.SetDefault("monte_carlo_trials", scoring.DefaultTrials)
	v.SetDefault("data_dir", "~/.local/share/meet-tracker")
	v.SetDefault("refresh_interval", 5*time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("all_caps_teams", scrape.DefaultAllCapsTeams)
	v.SetDefault("combined_event_codes", scrape.DefaultCombinedEventCodes)
	v.SetDefault("email.host", "smtp.gmail.com")
	v.SetDefault("email.port", 587)
	v.SetDefault("email.sender", "")
	v.SetDefault("email.password", "")
	v.SetDefault("email.recipient", "")

	v.SetConfigName("meet-tracker")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("MEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.MeetURL = strings.TrimRight(cfg.MeetURL, "/")
	return &cfg, nil
}
