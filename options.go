package didhub

import (
	"log/slog"

	"github.com/didstack/didhub/internal/config"
	"github.com/didstack/didhub/store"
)

// Option customizes Hub construction.
type Option func(*options)

type options struct {
	store  store.Store
	logger *slog.Logger
}

// WithStore overrides the default in-memory store with a host-provided
// implementation, typically one backed by the host's own database. The guard
// decorator still applies on top when enabled in config.
func WithStore(st store.Store) Option {
	return func(o *options) { o.store = st }
}

// WithLogger overrides the logger built from the log section of the config.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// LoadOption customizes config loading.
type LoadOption = config.Option

// WithConfigDir overrides the directory Load reads profile YAML files from.
// The default is "configs" relative to the working directory.
func WithConfigDir(dir string) LoadOption {
	return config.WithConfigDir(dir)
}
