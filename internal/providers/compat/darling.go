package compat

import (
	"context"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Darling runs macOS artifacts inside a darling shell
type Darling struct {
	bin       string
	runner    *Runner
	available bool
}

// NewDarling probes for darling and creates the macOS collaborator
func NewDarling(bin string, runner *Runner) *Darling {
	return &Darling{bin: bin, runner: runner, available: runner.Has(bin)}
}

// Available reports whether darling was found when the collaborator was created
func (d *Darling) Available() bool {
	return d.available
}

// RunBinary runs a Mach-O executable
func (d *Darling) RunBinary(ctx context.Context, path string, args []string) (*types.ProcessResult, error) {
	return d.shell(ctx, append([]string{path}, args...)...)
}

// MountDiskImage attaches a .dmg with hdiutil
func (d *Darling) MountDiskImage(ctx context.Context, path string) (*types.ProcessResult, error) {
	return d.shell(ctx, "hdiutil", "attach", path)
}

// InstallPackage installs a .pkg onto the root volume
func (d *Darling) InstallPackage(ctx context.Context, path string) (*types.ProcessResult, error) {
	return d.shell(ctx, "installer", "-pkg", path, "-target", "/")
}

func (d *Darling) shell(ctx context.Context, args ...string) (*types.ProcessResult, error) {
	return d.runner.Run(ctx, d.bin, append([]string{"shell"}, args...)...)
}
