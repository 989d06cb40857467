package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Geocode    GeocodeConfig    `yaml:"geocode" mapstructure:"geocode"`
	Solar      SolarConfig      `yaml:"solar" mapstructure:"solar"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Webhooks   []WebhookConfig  `yaml:"webhooks" mapstructure:"webhooks"`
	Notion     NotionConfig     `yaml:"notion" mapstructure:"notion"`
	Salesforce SalesforceConfig `yaml:"salesforce" mapstructure:"salesforce"`
	Tracking   TrackingConfig   `yaml:"tracking" mapstructure:"tracking"`
	Retry      RetryConfig      `yaml:"retry" mapstructure:"retry"`
	DLQ        DLQConfig        `yaml:"dlq" mapstructure:"dlq"`
	Monitoring MonitoringConfig `yaml:"monitoring" mapstructure:"monitoring"`
	Costs      CostsConfig      `yaml:"costs" mapstructure:"costs"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port            int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins  []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	ReadTimeoutSecs int      `yaml:"read_timeout_secs" mapstructure:"read_timeout_secs"`
	// WriteTimeoutSecs also bounds handler run time.
	WriteTimeoutSecs int `yaml:"write_timeout_secs" mapstructure:"write_timeout_secs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// StoreConfig configures the lead log and dead-letter queue.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// GeocodeConfig configures address geocoding. Census needs no key; Google is
// used as a fallback when a key is set.
type GeocodeConfig struct {
	GoogleAPIKey string  `yaml:"google_api_key" mapstructure:"google_api_key"`
	RateLimit    float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// SolarConfig configures the building insights API.
type SolarConfig struct {
	APIKey          string  `yaml:"api_key" mapstructure:"api_key"`
	BaseURL         string  `yaml:"base_url" mapstructure:"base_url"`
	RequiredQuality string  `yaml:"required_quality" mapstructure:"required_quality"`
	RateLimit       float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// AnthropicConfig configures the roof summary. No key, no summary.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// WebhookConfig is one generic webhook lead sink.
type WebhookConfig struct {
	Name   string `yaml:"name" mapstructure:"name"`
	URL    string `yaml:"url" mapstructure:"url"`
	Secret string `yaml:"secret" mapstructure:"secret"`
}

// NotionConfig configures the Notion lead sink.
type NotionConfig struct {
	Token     string  `yaml:"token" mapstructure:"token"`
	LeadDB    string  `yaml:"lead_db" mapstructure:"lead_db"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// SalesforceConfig configures the Salesforce lead sink (JWT bearer flow).
type SalesforceConfig struct {
	ClientID   string  `yaml:"client_id" mapstructure:"client_id"`
	Username   string  `yaml:"username" mapstructure:"username"`
	KeyPath    string  `yaml:"key_path" mapstructure:"key_path"`
	LoginURL   string  `yaml:"login_url" mapstructure:"login_url"`
	LeadObject string  `yaml:"lead_object" mapstructure:"lead_object"`
	RateLimit  float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// TrackingConfig configures server-side conversion events.
type TrackingConfig struct {
	PixelID     string `yaml:"pixel_id" mapstructure:"pixel_id"`
	AccessToken string `yaml:"access_token" mapstructure:"access_token"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
}

// RetryConfig configures in-request retries of outbound calls.
type RetryConfig struct {
	MaxAttempts      int `yaml:"max_attempts" mapstructure:"max_attempts"`
	InitialBackoffMs int `yaml:"initial_backoff_ms" mapstructure:"initial_backoff_ms"`
	MaxBackoffMs     int `yaml:"max_backoff_ms" mapstructure:"max_backoff_ms"`
}

// DLQConfig configures dead-letter replays.
type DLQConfig struct {
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`
}

// MonitoringConfig configures background delivery health checks and
// dead-letter replays run by the API server.
type MonitoringConfig struct {
	Enabled              bool    `yaml:"enabled" mapstructure:"enabled"`
	WebhookURL           string  `yaml:"webhook_url" mapstructure:"webhook_url"`
	CheckIntervalSecs    int     `yaml:"check_interval_secs" mapstructure:"check_interval_secs"`
	LookbackWindowHours  int     `yaml:"lookback_window_hours" mapstructure:"lookback_window_hours"`
	FailureRateThreshold float64 `yaml:"failure_rate_threshold" mapstructure:"failure_rate_threshold"`
	DLQDepthThreshold    int     `yaml:"dlq_depth_threshold" mapstructure:"dlq_depth_threshold"`
	MinLeads             int     `yaml:"min_leads" mapstructure:"min_leads"`
}

// CostsConfig overrides the paid-API rates used to price roof analyses.
// Models not listed keep their built-in rates.
type CostsConfig struct {
	Anthropic       map[string]ModelCost `yaml:"anthropic" mapstructure:"anthropic"`
	SolarPerRequest float64              `yaml:"solar_per_request" mapstructure:"solar_per_request"`
}

// ModelCost holds per-model token pricing (USD per million tokens).
type ModelCost struct {
	Input  float64 `yaml:"input" mapstructure:"input"`
	Output float64 `yaml:"output" mapstructure:"output"`
}

// NotionEnabled reports whether the Notion sink is configured.
func (c *Config) NotionEnabled() bool { return c.Notion.Token != "" }

// SalesforceEnabled reports whether the Salesforce sink is configured.
func (c *Config) SalesforceEnabled() bool { return c.Salesforce.ClientID != "" }

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ROOFQUOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.read_timeout_secs", 15)
	v.SetDefault("server.write_timeout_secs", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "roofquote.db")
	v.SetDefault("geocode.rate_limit", 10)
	v.SetDefault("solar.base_url", "https://solar.googleapis.com/v1")
	v.SetDefault("solar.required_quality", "MEDIUM")
	v.SetDefault("solar.rate_limit", 5)
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 300)
	v.SetDefault("notion.rate_limit", 3)
	v.SetDefault("salesforce.login_url", "https://login.salesforce.com")
	v.SetDefault("salesforce.lead_object", "Lead")
	v.SetDefault("salesforce.rate_limit", 5)
	v.SetDefault("tracking.base_url", "https://graph.facebook.com/v19.0")
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.initial_backoff_ms", 500)
	v.SetDefault("retry.max_backoff_ms", 10000)
	v.SetDefault("dlq.max_retries", 5)
	v.SetDefault("monitoring.enabled", true)
	v.SetDefault("monitoring.check_interval_secs", 300)
	v.SetDefault("monitoring.lookback_window_hours", 24)
	v.SetDefault("monitoring.failure_rate_threshold", 0.2)
	v.SetDefault("monitoring.dlq_depth_threshold", 25)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the fields the given command mode needs. Modes: serve,
// leads, migrate, cli.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "cli":
		return nil
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, "server.port must be > 0 and <= 65535")
		}
		problems = append(problems, c.sinkProblems()...)
		problems = append(problems, c.storeProblems()...)
	case "leads":
		problems = append(problems, c.sinkProblems()...)
		problems = append(problems, c.storeProblems()...)
	case "migrate":
		problems = append(problems, c.storeProblems()...)
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Retry.MaxAttempts < 0 {
		problems = append(problems, "retry.max_attempts must be >= 0")
	}
	if c.Retry.MaxBackoffMs > 0 && c.Retry.InitialBackoffMs > c.Retry.MaxBackoffMs {
		problems = append(problems, "retry.initial_backoff_ms must be <= retry.max_backoff_ms")
	}

	if c.Costs.SolarPerRequest < 0 {
		problems = append(problems, "costs.solar_per_request must be >= 0")
	}
	for model, r := range c.Costs.Anthropic {
		if r.Input < 0 || r.Output < 0 {
			problems = append(problems, fmt.Sprintf("costs.anthropic.%s rates must be >= 0", model))
		}
	}
	if c.Monitoring.FailureRateThreshold < 0 || c.Monitoring.FailureRateThreshold > 1 {
		problems = append(problems, "monitoring.failure_rate_threshold must be between 0 and 1")
	}

	if len(problems) > 0 {
		return eris.Errorf("config: invalid for %s: %s", mode, strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) storeProblems() []string {
	switch c.Store.Driver {
	case "sqlite", "postgres":
	default:
		return []string{fmt.Sprintf("store.driver must be sqlite or postgres, got %q", c.Store.Driver)}
	}
	if c.Store.DatabaseURL == "" {
		return []string{"store.database_url is required"}
	}
	return nil
}

func (c *Config) sinkProblems() []string {
	var problems []string
	names := make(map[string]bool)
	for i, w := range c.Webhooks {
		if w.URL == "" {
			problems = append(problems, fmt.Sprintf("webhooks[%d].url is required", i))
		}
		name := w.Name
		if name == "" {
			name = "webhook"
		}
		if names[name] || name == "notion" || name == "salesforce" {
			problems = append(problems, fmt.Sprintf("webhooks[%d].name %q is not unique", i, name))
		}
		names[name] = true
	}
	if c.NotionEnabled() && c.Notion.LeadDB == "" {
		problems = append(problems, "notion.lead_db is required when notion.token is set")
	}
	if c.SalesforceEnabled() {
		if c.Salesforce.Username == "" {
			problems = append(problems, "salesforce.username is required when salesforce.client_id is set")
		}
		if c.Salesforce.KeyPath == "" {
			problems = append(problems, "salesforce.key_path is required when salesforce.client_id is set")
		}
	}
	return problems
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
