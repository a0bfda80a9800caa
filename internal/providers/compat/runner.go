package compat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Runner executes external programs and captures their output
type Runner struct {
	usePTY bool
	logger *zap.Logger
	lookup func(string) (string, error)
}

// NewRunner creates a runner. With usePTY the program is attached to a
// pseudo-terminal and stdout and stderr are merged.
func NewRunner(usePTY bool, logger *zap.Logger) *Runner {
	return &Runner{
		usePTY: usePTY,
		logger: logging.Component(logger, "runner"),
		lookup: exec.LookPath,
	}
}

// Has reports whether program can be found
func (r *Runner) Has(program string) bool {
	if program == "" {
		return false
	}
	_, err := r.lookup(program)
	return err == nil
}

// Run executes program once. A non-zero exit is not an error: it is returned
// in the result. Missing programs yield CollaboratorUnavailable.
func (r *Runner) Run(ctx context.Context, program string, args ...string) (*types.ProcessResult, error) {
	resolved, err := r.lookup(program)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", types.CollaboratorUnavailable(program), err)
	}

	r.logger.Info("Executing collaborator",
		zap.String("program", resolved),
		zap.String("args", strings.Join(args, " ")),
		zap.Bool("pty", r.usePTY))

	cmd := exec.CommandContext(ctx, resolved, args...)
	if r.usePTY {
		return r.runPTY(ctx, cmd)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return r.result(ctx, cmd, stdout.String(), stderr.String(), err)
}

func (r *Runner) runPTY(ctx context.Context, cmd *exec.Cmd) (*types.ProcessResult, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to start PTY: %w", err)
	}
	defer ptmx.Close()

	var out bytes.Buffer
	// Reading the master ends with EIO once the child exits
	_, _ = io.Copy(&out, ptmx)

	err = cmd.Wait()
	return r.result(ctx, cmd, out.String(), "", err)
}

func (r *Runner) result(ctx context.Context, cmd *exec.Cmd, stdout, stderr string, err error) (*types.ProcessResult, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	res := &types.ProcessResult{Stdout: stdout, Stderr: stderr}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run %s: %w", cmd.Path, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	r.logger.Debug("Collaborator finished",
		zap.String("program", cmd.Path),
		zap.Int("exit_code", res.ExitCode))
	return res, nil
}
