package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AlteronOS/internal/domain/dispatch"
	"github.com/GriffinCanCode/AlteronOS/internal/domain/registry"
	"github.com/GriffinCanCode/AlteronOS/internal/domain/sniffer"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

var features = []string{
	"universal_apps",
	"magic_byte_detection",
	"app_bundles",
	"package_install",
	"script_interpreters",
}

// Manager orchestrates application launches
type Manager struct {
	sniffer    *sniffer.Sniffer
	dispatcher *dispatch.Dispatcher
	registry   *registry.Registry
	metrics    *monitoring.Metrics
	tracer     *tracing.Tracer
	logger     *zap.Logger
}

// NewManager creates a new app manager
func NewManager(sn *sniffer.Sniffer, d *dispatch.Dispatcher, reg *registry.Registry, logger *zap.Logger) *Manager {
	return &Manager{
		sniffer:    sn,
		dispatcher: d,
		registry:   reg,
		logger:     logging.Component(logger, "app"),
	}
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// WithTracer records a span per launch and install
func (m *Manager) WithTracer(tracer *tracing.Tracer) *Manager {
	m.tracer = tracer
	return m
}

// Launch runs an artifact. The platform is classified from the path unless
// override is set.
func (m *Manager) Launch(ctx context.Context, path string, args []string, override *types.Platform) *types.Outcome {
	platform := m.platformFor(path, override)
	return m.dispatch(ctx, path, platform, types.OpRun, args)
}

// Install installs a package
func (m *Manager) Install(ctx context.Context, path string) *types.Outcome {
	platform := m.platformFor(path, nil)
	return m.dispatch(ctx, path, platform, types.OpInstall, nil)
}

// Classify returns the platform of an artifact
func (m *Manager) Classify(path string) types.Platform {
	return m.sniffer.Classify(path)
}

// Inspect returns classification details for an artifact
func (m *Manager) Inspect(path string) sniffer.Details {
	return m.sniffer.Inspect(path)
}

// Records returns every launch and install attempt in call order
func (m *Manager) Records() []types.Record {
	return m.registry.Records()
}

// AvailablePlatforms lists the platforms that can currently be dispatched to.
// Linux and cross-platform artifacts are always listed.
func (m *Manager) AvailablePlatforms() []types.Platform {
	var out []types.Platform
	for _, p := range types.SupportedPlatforms() {
		switch p {
		case types.PlatformLinux, types.PlatformCrossPlatform:
			out = append(out, p)
		default:
			if m.registry.LayerAvailable(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// SystemInfo summarizes the compatibility system
func (m *Manager) SystemInfo() types.SystemInfo {
	return types.SystemInfo{
		WindowsAvailable: m.registry.LayerAvailable(types.PlatformWindows),
		LinuxAvailable:   true,
		MacOSAvailable:   m.registry.LayerAvailable(types.PlatformMacOS),
		RunningApps:      m.registry.RunningCount(),
		Workers:          m.registry.Availability().Loaded(),
		Features:         append([]string(nil), features...),
	}
}

func (m *Manager) platformFor(path string, override *types.Platform) types.Platform {
	if override != nil {
		return *override
	}
	return m.sniffer.Classify(path)
}

func (m *Manager) dispatch(ctx context.Context, path string, platform types.Platform, op types.Operation, args []string) *types.Outcome {
	var span *tracing.Span
	if m.tracer != nil {
		span, ctx = m.tracer.StartSpan(ctx, op.String())
		span.SetTag("path", path)
		span.SetTag("platform", platform.String())
	}

	start := time.Now()
	out := m.dispatcher.Dispatch(ctx, path, platform, op, args...)
	rec := m.registry.RecordAttempt(path, out, args)

	if span != nil {
		span.SetTag("record", rec.ID)
		if !out.Success {
			span.SetError(out.Err())
		}
		m.tracer.Submit(span)
	}

	if m.metrics != nil {
		m.metrics.RecordDispatch(platform.String(), op.String(), out.Success, time.Since(start))
		m.metrics.SetRunningApps(m.registry.RunningCount())
	}

	if out.Success {
		m.logger.Info("Application dispatched",
			zap.String("record", rec.ID),
			zap.String("path", path),
			zap.String("platform", platform.String()),
			zap.String("operation", op.String()))
	} else {
		m.logger.Warn("Application dispatch failed",
			zap.String("record", rec.ID),
			zap.String("path", path),
			zap.String("platform", platform.String()),
			zap.String("operation", op.String()),
			zap.Error(out.Err()))
	}
	return out
}
