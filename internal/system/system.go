package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AlteronOS/internal/domain/app"
	"github.com/GriffinCanCode/AlteronOS/internal/domain/dispatch"
	"github.com/GriffinCanCode/AlteronOS/internal/domain/registry"
	"github.com/GriffinCanCode/AlteronOS/internal/domain/sniffer"
	"github.com/GriffinCanCode/AlteronOS/internal/domain/vfs"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/config"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/AlteronOS/internal/providers/compat"
	"github.com/GriffinCanCode/AlteronOS/internal/providers/terminal"
	"github.com/GriffinCanCode/AlteronOS/internal/providers/workers"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// System holds every wired component
type System struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *monitoring.Metrics
	Store    *vfs.Store
	Sniffer  *sniffer.Sniffer
	Registry *registry.Registry
	Apps     *app.Manager

	workers *workers.Pool
	tracer  *tracing.Tracer
}

// New builds the system from configuration, probing real workers and
// wiring the external-program collaborators
func New(cfg *config.Config) (*System, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	pool := workers.Probe(cfg.Workers.Dir, logger.Logger)
	collab := compat.New(cfg.Compat, logger.Logger)
	return Assemble(cfg, collab, pool, logger.Logger)
}

// Assemble wires the system around the given collaborators and worker pool
func Assemble(cfg *config.Config, collab dispatch.Collaborators, pool *workers.Pool, logger *zap.Logger) (*System, error) {
	logger = logging.OrNop(logger)
	metrics := monitoring.NewMetrics()

	availability := pool.Availability()
	layers := collab.Layers()
	logger.Info("Compatibility layers probed",
		zap.Bool("windows", layers[types.PlatformWindows]),
		zap.Bool("macos", layers[types.PlatformMacOS]),
		zap.Strings("native_workers", availability.Loaded()))

	store := vfs.New(cfg.FS.Protected, logger).
		WithRoot(cfg.FS.Root).
		WithWorkers(availability.Loaded()).
		WithMetrics(metrics)

	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	if err := store.Seed(layout); err != nil {
		return nil, fmt.Errorf("failed to seed filesystem: %w", err)
	}

	sn := sniffer.New(logger, metrics)
	reg := registry.New(layers, availability)
	tracer := tracing.New("alteron", logger)
	apps := app.NewManager(sn, dispatch.New(collab, logger), reg, logger).
		WithMetrics(metrics).
		WithTracer(tracer)

	return &System{
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics,
		Store:    store,
		Sniffer:  sn,
		Registry: reg,
		Apps:     apps,
		workers:  pool,
		tracer:   tracer,
	}, nil
}

// Shell opens an interactive session over the store and the app manager
func (s *System) Shell() *terminal.Shell {
	return terminal.New(s.Store, s.Apps, s.Logger).WithMetrics(s.Metrics)
}

// Close drains pending spans, releases native workers and flushes the logger
func (s *System) Close() {
	if s.tracer != nil {
		s.tracer.Close()
	}
	if s.workers != nil {
		s.workers.Close()
	}
	_ = s.Logger.Sync()
}
