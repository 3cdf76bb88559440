// Package didhub publishes did:web DID documents: it flips a document's
// publication state in a resource store and exposes the set of currently
// published documents. The package wires the full component graph (config,
// logging, telemetry, store, publisher, health) with samber/do v2 so hosts
// embed one Hub instead of assembling the pieces by hand.
//
// Minimal usage:
//
//	cfg, err := didhub.Load("local")
//	if err != nil { ... }
//
//	hub, err := didhub.New(ctx, cfg)
//	if err != nil { ... }
//	defer hub.Close(ctx)
//
//	if err := hub.Publisher().Publish(ctx, "did:web:example.com"); err != nil { ... }
//
// Serving the published documents to resolvers stays with the host; the hub
// tracks which documents are published, not how they reach the network.
package didhub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/samber/do/v2"

	"github.com/didstack/didhub/did"
	"github.com/didstack/didhub/internal/config"
	"github.com/didstack/didhub/internal/health"
	"github.com/didstack/didhub/internal/logging"
	"github.com/didstack/didhub/internal/telemetry"
	"github.com/didstack/didhub/publisher"
	"github.com/didstack/didhub/store"
	"github.com/didstack/didhub/store/guard"
	"github.com/didstack/didhub/store/memstore"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config is the module configuration. See configs/base.yaml for the full key
// reference.
type Config = config.Config

// Load reads configuration for the given profile: built-in defaults, then
// configs/base.yaml, then configs/{profile}.yaml, then DIDHUB_* environment
// variables.
func Load(profile string, opts ...LoadOption) (*Config, error) {
	return config.Load(profile, opts...)
}

// Hub is the wired component graph. Construct with New; a zero Hub is not
// usable.
type Hub struct {
	cfg       *Config
	logger    *slog.Logger
	store     store.Store
	publisher *publisher.Local
	registry  *publisher.Registry
	health    *health.Registry
	otel      *otelProviders
	closed    atomic.Bool
}

// New builds a Hub from the given configuration. The default store is an
// in-memory one; override it with WithStore. The store guard decorator is
// applied when enabled in config, regardless of which store is underneath.
func New(ctx context.Context, cfg *Config, opts ...Option) (*Hub, error) {
	if cfg == nil {
		return nil, errors.New("didhub: nil config")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	}

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerComponents(injector, cfg, logger, &o)

	// Resolve the registry (eagerly wires the full graph).
	registry, err := do.Invoke[*publisher.Registry](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return nil, fmt.Errorf("resolving components: %w", err)
	}

	st := do.MustInvoke[store.Store](injector)
	local := do.MustInvoke[*publisher.Local](injector)

	// Register health checkers after the graph is wired.
	checks := do.MustInvoke[*health.Registry](injector)
	if checker, ok := st.(health.Checker); ok {
		checks.Register(checker)
	}

	return &Hub{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		publisher: local,
		registry:  registry,
		health:    checks,
		otel:      otel,
	}, nil
}

// Publisher returns the did:web document publisher.
func (h *Hub) Publisher() *publisher.Local {
	return h.publisher
}

// Registry returns the method registry with the did:web publisher
// pre-registered. Hosts may add publishers for further methods.
func (h *Hub) Registry() *publisher.Registry {
	return h.registry
}

// Store returns the wired resource store (guarded when enabled in config).
// Hosts save resources here before publishing them.
func (h *Hub) Store() store.Store {
	return h.store
}

// Logger returns the hub's logger.
func (h *Hub) Logger() *slog.Logger {
	return h.logger
}

// CheckHealth runs every registered health check and returns results keyed
// by component name; a nil value means healthy.
func (h *Hub) CheckHealth(ctx context.Context) map[string]error {
	return h.health.CheckAll(ctx)
}

// Close flushes the telemetry providers. Safe to call more than once; later
// calls return nil.
func (h *Hub) Close(ctx context.Context) error {
	if !h.closed.CompareAndSwap(false, true) {
		return nil
	}
	return h.otel.Shutdown(ctx)
}

func registerComponents(injector *do.RootScope, cfg *Config, logger *slog.Logger, o *options) {
	do.Provide(injector, func(i do.Injector) (store.Store, error) {
		st := o.store
		if st == nil {
			st = memstore.New()
		}
		if cfg.Store.Guard.Enabled {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			st = guard.New(st, &cfg.Store.Guard, "resource-store", metrics, logger)
		}
		return st, nil
	})

	do.Provide(injector, func(i do.Injector) (*publisher.Local, error) {
		st := do.MustInvoke[store.Store](i)
		return publisher.NewLocal(st, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*publisher.Registry, error) {
		local := do.MustInvoke[*publisher.Local](i)
		reg := publisher.NewRegistry()
		reg.AddPublisher(did.WebMethod, local)
		return reg, nil
	})

	do.Provide(injector, func(_ do.Injector) (*health.Registry, error) {
		return health.New(), nil
	})
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}
