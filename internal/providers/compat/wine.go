package compat

import (
	"context"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Wine runs Windows artifacts through wine
type Wine struct {
	bin       string
	runner    *Runner
	available bool
}

// NewWine probes for wine and creates the Windows collaborator
func NewWine(bin string, runner *Runner) *Wine {
	return &Wine{bin: bin, runner: runner, available: runner.Has(bin)}
}

// Available reports whether wine was found when the collaborator was created
func (w *Wine) Available() bool {
	return w.available
}

// RunExecutable runs an .exe
func (w *Wine) RunExecutable(ctx context.Context, path string, args []string) (*types.ProcessResult, error) {
	return w.runner.Run(ctx, w.bin, append([]string{path}, args...)...)
}

// InstallPackage installs an .msi with msiexec
func (w *Wine) InstallPackage(ctx context.Context, path string) (*types.ProcessResult, error) {
	return w.runner.Run(ctx, w.bin, "msiexec", "/i", path)
}
