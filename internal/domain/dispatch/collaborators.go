package dispatch

import (
	"context"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Collaborator error contract: return an error wrapping
// types.ErrCollaboratorUnavailable when the underlying program is missing.
// Any other error is reported as an execution failure; a nil error with a
// non-zero exit code is passed through with its stderr.

// WindowsCompat runs Windows artifacts through a compatibility layer
type WindowsCompat interface {
	Available() bool
	RunExecutable(ctx context.Context, path string, args []string) (*types.ProcessResult, error)
	InstallPackage(ctx context.Context, path string) (*types.ProcessResult, error)
}

// LinuxCompat runs Linux artifacts
type LinuxCompat interface {
	RunELFBinary(ctx context.Context, path string, args []string) (*types.ProcessResult, error)
	RunShellScript(ctx context.Context, path string, args []string) (*types.ProcessResult, error)
	InstallDebPackage(ctx context.Context, path string) (*types.ProcessResult, error)
}

// MacOSCompat runs macOS artifacts through a translation layer
type MacOSCompat interface {
	Available() bool
	RunBinary(ctx context.Context, path string, args []string) (*types.ProcessResult, error)
	MountDiskImage(ctx context.Context, path string) (*types.ProcessResult, error)
	InstallPackage(ctx context.Context, path string) (*types.ProcessResult, error)
}

// Interpreter runs a script for one language
type Interpreter interface {
	Run(ctx context.Context, scriptPath string, args []string) (*types.ProcessResult, error)
}

// Interpreter languages
const (
	LangPython     = "python"
	LangJavaScript = "javascript"
	LangJava       = "java"
)

// Collaborators bundles the external layers a Dispatcher calls.
// A nil collaborator is reported as unavailable.
type Collaborators struct {
	Windows      WindowsCompat
	Linux        LinuxCompat
	MacOS        MacOSCompat
	Interpreters map[string]Interpreter
}

// Layers reports which translation layers are present right now. Linux
// artifacts run natively, so only a missing collaborator makes it absent.
func (c Collaborators) Layers() types.LayerAvailability {
	return types.LayerAvailability{
		types.PlatformWindows:       c.Windows != nil && c.Windows.Available(),
		types.PlatformLinux:         c.Linux != nil,
		types.PlatformMacOS:         c.MacOS != nil && c.MacOS.Available(),
		types.PlatformCrossPlatform: len(c.Interpreters) > 0,
	}
}
