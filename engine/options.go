package engine

import (
	"go.uber.org/zap"
)

// ============================================================================
// ENGINE OPTIONS - functional options for New()
// ============================================================================

// Option configures a Dashboard.
type Option func(*config)

type config struct {
	Logger      *zap.Logger
	Palette     []string
	Documents   []string
	Datasets    map[string]string // logical name -> name at the source
	Concurrency int               // 0 = every binder at once
	Binders     []Binder
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithPalette replaces the chart palette. An empty palette is ignored.
func WithPalette(colors []string) Option {
	return func(c *config) {
		if len(colors) > 0 {
			c.Palette = colors
		}
	}
}

// WithDocuments replaces the fixed evidence document list.
func WithDocuments(names []string) Option {
	return func(c *config) {
		c.Documents = names
	}
}

// WithDatasets remaps logical dataset names ("metrics", "country", ...) to
// the names the source knows them by, e.g. sheet tab names.
func WithDatasets(names map[string]string) Option {
	return func(c *config) {
		for k, v := range names {
			if v != "" {
				c.Datasets[k] = v
			}
		}
	}
}

// WithConcurrency caps how many binders fetch at once.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.Concurrency = n
	}
}

// WithBinders replaces the default binder set.
func WithBinders(binders ...Binder) Option {
	return func(c *config) {
		c.Binders = binders
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Logger:   zap.NewNop(),
		Palette:  DefaultPalette,
		Datasets: make(map[string]string),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
