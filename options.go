package hardware

import "log/slog"

// Option configures selection behavior.
type Option func(*config)

// config holds resolved selection configuration.
type config struct {
	// logger is the structured logger for debug output. If nil, logging
	// is disabled (silent mode).
	//
	// We use *slog.Logger (stdlib) rather than a custom interface because
	// slog separates frontend and backend by design: callers can plug in
	// any backend (zap, zerolog, etc.) via slog handlers.
	logger *slog.Logger
}

// WithLogger enables debug logging of selection operations through the
// given structured logger. Selection is silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
