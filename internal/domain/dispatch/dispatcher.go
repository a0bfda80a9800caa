package dispatch

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AlteronOS/internal/domain/sniffer"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Dispatcher maps (platform, suffix) to a handler and runs it once
type Dispatcher struct {
	collab Collaborators
	logger *zap.Logger
}

// New creates a dispatcher over the given collaborators
func New(collab Collaborators, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		collab: collab,
		logger: logging.Component(logger, "dispatch"),
	}
}

type request struct {
	path     string
	suffix   string
	platform types.Platform
	op       types.Operation
	args     []string
}

// Dispatch runs or installs path as an artifact of the given platform.
// The returned Outcome is never nil.
func (d *Dispatcher) Dispatch(ctx context.Context, path string, platform types.Platform, op types.Operation, args ...string) *types.Outcome {
	r := request{
		path:     path,
		suffix:   sniffer.Ext(path),
		platform: platform,
		op:       op,
		args:     args,
	}

	h, ferr := d.selectHandler(r)
	if ferr != nil {
		d.logger.Info("No handler",
			zap.String("path", path),
			zap.String("platform", platform.String()),
			zap.String("reason", ferr.Reason))
		return types.Fail(platform, op, "", ferr)
	}

	d.logger.Info("Dispatching",
		zap.String("path", path),
		zap.String("platform", platform.String()),
		zap.String("operation", op.String()),
		zap.String("handler", h.name))

	start := time.Now()
	proc, details, err := h.exec(ctx, d, r)
	out := d.finish(r, h, proc, details, err)

	fields := []zap.Field{
		zap.String("path", path),
		zap.String("handler", h.name),
		zap.Bool("success", out.Success),
		zap.Duration("duration", time.Since(start)),
	}
	if out.Error != nil {
		fields = append(fields, zap.String("error", out.Error.Error()))
	}
	d.logger.Info("Dispatch finished", fields...)

	return out
}

// Supports reports whether a (platform, suffix) pair has a handler. ELF
// detection for suffix-less Linux binaries is content based and not covered.
func Supports(platform types.Platform, suffix string) bool {
	table, ok := handlerTable(platform)
	if !ok {
		return false
	}
	_, ok = table[strings.ToLower(suffix)]
	return ok
}

func (d *Dispatcher) selectHandler(r request) (handler, *types.Error) {
	table, ok := handlerTable(r.platform)
	if !ok {
		return handler{}, types.UnsupportedPlatform(r.platform)
	}

	h, ok := table[r.suffix]
	if !ok {
		if r.platform == types.PlatformLinux && sniffer.IsELF(r.path) {
			h = elfHandler
		} else {
			return handler{}, types.UnsupportedFormat(r.platform, r.suffix)
		}
	}

	// Launching an installer installs it; installing something that only runs is refused
	if r.op == types.OpInstall && h.op != types.OpInstall {
		e := types.UnsupportedFormat(r.platform, r.suffix)
		e.Reason = "not an installable package: " + filepath.Base(r.path)
		return handler{}, e
	}
	return h, nil
}

func (d *Dispatcher) finish(r request, h handler, proc *types.ProcessResult, details map[string]interface{}, err error) *types.Outcome {
	out := &types.Outcome{
		Platform: r.platform,
		Op:       r.op,
		Handler:  h.name,
		Details:  details,
	}
	if proc != nil {
		out.Output = proc.Stdout
	}

	switch {
	case err != nil:
		out.Error = toTypedError(err)
	case proc == nil:
		out.Error = types.CollaboratorExecutionFailed(-1, "collaborator returned no result")
	case proc.ExitCode != 0:
		out.Error = types.CollaboratorExecutionFailed(proc.ExitCode, proc.Stderr)
	default:
		out.Success = true
	}
	return out
}

func toTypedError(err error) *types.Error {
	var typed *types.Error
	if errors.As(err, &typed) {
		return typed
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return types.CollaboratorExecutionFailed(-1, "interrupted: "+err.Error())
	}
	return types.CollaboratorExecutionFailed(-1, err.Error())
}
