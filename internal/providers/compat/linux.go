package compat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Linux runs Linux artifacts natively
type Linux struct {
	dpkg       string
	bash       string
	extractDir string
	runner     *Runner
	logger     *zap.Logger
}

// NewLinux creates the Linux collaborator. Debian packages are unpacked
// into extractDir.
func NewLinux(dpkg, bash, extractDir string, runner *Runner, logger *zap.Logger) *Linux {
	return &Linux{
		dpkg:       dpkg,
		bash:       bash,
		extractDir: extractDir,
		runner:     runner,
		logger:     logging.Component(logger, "linux"),
	}
}

// RunELFBinary marks path executable and runs it directly
func (l *Linux) RunELFBinary(ctx context.Context, path string, args []string) (*types.ProcessResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := os.Chmod(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to make %s executable: %w", abs, err)
	}
	return l.runner.Run(ctx, abs, args...)
}

// RunShellScript runs a script with bash, or with the built-in POSIX
// interpreter when bash is not installed
func (l *Linux) RunShellScript(ctx context.Context, path string, args []string) (*types.ProcessResult, error) {
	if l.runner.Has(l.bash) {
		return l.runner.Run(ctx, l.bash, append([]string{path}, args...)...)
	}
	l.logger.Info("bash not found, using built-in shell interpreter", zap.String("script", path))
	return runShellInProcess(ctx, path, args)
}

// InstallDebPackage extracts a .deb with dpkg -x
func (l *Linux) InstallDebPackage(ctx context.Context, path string) (*types.ProcessResult, error) {
	if err := os.MkdirAll(l.extractDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create extract dir: %w", err)
	}
	return l.runner.Run(ctx, l.dpkg, "-x", path, l.extractDir)
}

func runShellInProcess(ctx context.Context, path string, args []string) (*types.ProcessResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	prog, err := syntax.NewParser().Parse(f, path)
	if err != nil {
		return &types.ProcessResult{ExitCode: 2, Stderr: err.Error()}, nil
	}

	var stdout, stderr bytes.Buffer
	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, &stdout, &stderr),
	}
	if dir := filepath.Dir(path); dir != "" {
		opts = append(opts, interp.Dir(dir))
	}
	// "--" keeps arguments like "-v" from being read as shell options
	opts = append(opts, interp.Params(append([]string{"--"}, args...)...))

	runner, err := interp.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	res := &types.ProcessResult{}
	if err := runner.Run(ctx, prog); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var exitStatus interp.ExitStatus
		if !errors.As(err, &exitStatus) {
			return nil, fmt.Errorf("failed to run script: %w", err)
		}
		res.ExitCode = int(exitStatus)
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res, nil
}
