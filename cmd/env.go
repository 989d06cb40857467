package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/roofquote/internal/config"
	"github.com/sells-group/roofquote/internal/cost"
	"github.com/sells-group/roofquote/internal/lead"
	"github.com/sells-group/roofquote/internal/resilience"
	"github.com/sells-group/roofquote/internal/roof"
	"github.com/sells-group/roofquote/internal/store"
	anthropicpkg "github.com/sells-group/roofquote/pkg/anthropic"
	"github.com/sells-group/roofquote/pkg/geocode"
	"github.com/sells-group/roofquote/pkg/notion"
	"github.com/sells-group/roofquote/pkg/salesforce"
	"github.com/sells-group/roofquote/pkg/solar"
	"github.com/sells-group/roofquote/pkg/tracking"
)

// appEnv holds the store and clients shared by serve and the leads commands.
type appEnv struct {
	Store      store.Store
	Dispatcher *lead.Dispatcher
	Analyzer   *roof.Analyzer
	Tracker    tracking.Client
}

// Close releases resources held by the environment.
func (e *appEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initEnv opens and migrates the store and builds every configured sink.
// Callers should defer env.Close().
func initEnv(ctx context.Context, mode string) (*appEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	st, err := initStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	sinks, err := initSinks(cfg)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	retry := resilience.FromSettings(cfg.Retry.MaxAttempts, cfg.Retry.InitialBackoffMs, cfg.Retry.MaxBackoffMs)
	d := lead.NewDispatcher(st, sinks,
		lead.WithRetry(retry),
		lead.WithDLQMaxRetries(cfg.DLQ.MaxRetries),
	)
	zap.L().Info("lead sinks configured", zap.Strings("sinks", d.SinkNames()))

	return &appEnv{
		Store:      st,
		Dispatcher: d,
		Analyzer:   initAnalyzer(cfg),
		Tracker:    initTracker(cfg),
	}, nil
}

func initStore(ctx context.Context, c *config.Config) (store.Store, error) {
	st, err := store.Open(ctx, c.Store.Driver, c.Store.DatabaseURL)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	return st, nil
}

// initSinks builds webhook sinks in config order, then Notion and Salesforce
// when configured.
func initSinks(c *config.Config) ([]lead.Sink, error) {
	var sinks []lead.Sink
	for _, w := range c.Webhooks {
		sinks = append(sinks, lead.NewWebhookSink(w.Name, w.URL, w.Secret))
	}

	if c.NotionEnabled() {
		nc := notion.NewClient(c.Notion.Token, notion.WithRateLimit(c.Notion.RateLimit))
		sinks = append(sinks, lead.NewNotionSink(nc, c.Notion.LeadDB))
	}

	if c.SalesforceEnabled() {
		sf, err := salesforce.Connect(salesforce.JWTConfig{
			LoginURL: c.Salesforce.LoginURL,
			Username: c.Salesforce.Username,
			ClientID: c.Salesforce.ClientID,
			KeyPath:  c.Salesforce.KeyPath,
		}, salesforce.WithRateLimit(c.Salesforce.RateLimit))
		if err != nil {
			return nil, eris.Wrap(err, "connect salesforce")
		}
		sinks = append(sinks, lead.NewSalesforceSink(sf, c.Salesforce.LeadObject))
	}

	if len(sinks) == 0 {
		zap.L().Warn("no lead sinks configured, leads are only logged")
	}
	return sinks, nil
}

// initAnalyzer wires geocoding, imagery, and the optional summary. Without a
// solar key every analysis is the heuristic.
func initAnalyzer(c *config.Config) *roof.Analyzer {
	geoOpts := []geocode.Option{geocode.WithRateLimit(c.Geocode.RateLimit)}
	if c.Geocode.GoogleAPIKey != "" {
		geoOpts = append(geoOpts, geocode.WithGoogleAPIKey(c.Geocode.GoogleAPIKey))
	}
	geo := geocode.NewClient(geoOpts...)

	var sc solar.Client
	if c.Solar.APIKey != "" {
		sc = solar.NewClient(c.Solar.APIKey,
			solar.WithBaseURL(c.Solar.BaseURL),
			solar.WithRequiredQuality(c.Solar.RequiredQuality),
			solar.WithRateLimit(c.Solar.RateLimit),
			solar.WithRetry(resilience.FromSettings(c.Retry.MaxAttempts, c.Retry.InitialBackoffMs, c.Retry.MaxBackoffMs)),
		)
	} else {
		zap.L().Debug("solar api key not set, roof analysis uses the heuristic")
	}

	opts := []roof.Option{roof.WithCosts(cost.NewCalculator(costRates(c.Costs)))}
	if c.Anthropic.Key != "" {
		opts = append(opts, roof.WithSummarizer(anthropicpkg.NewClient(c.Anthropic.Key), c.Anthropic.Model, int64(c.Anthropic.MaxTokens)))
	}
	return roof.NewAnalyzer(geo, sc, opts...)
}

func initTracker(c *config.Config) tracking.Client {
	t := tracking.NewClient(tracking.Config{
		PixelID:     c.Tracking.PixelID,
		AccessToken: c.Tracking.AccessToken,
		BaseURL:     c.Tracking.BaseURL,
	})
	if tracking.IsNoop(t) {
		zap.L().Debug("conversion tracking disabled")
	}
	return t
}


// costRates layers configured rates over the built-in ones.
func costRates(c config.CostsConfig) cost.Rates {
	rates := cost.DefaultRates()
	for model, r := range c.Anthropic {
		rates.Anthropic[model] = cost.ModelRate{Input: r.Input, Output: r.Output}
	}
	if c.SolarPerRequest > 0 {
		rates.Solar.PerRequest = c.SolarPerRequest
	}
	return rates
}
