package dispatch

import (
	"context"
	"fmt"
	"os"

	"github.com/saintfish/chardet"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

type execFunc func(ctx context.Context, d *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error)

type handler struct {
	name string
	op   types.Operation
	exec execFunc
}

var (
	windowsHandlers = map[string]handler{
		".exe": {name: "windows.run", op: types.OpRun, exec: runWindowsExecutable},
		".msi": {name: "windows.install", op: types.OpInstall, exec: installWindowsPackage},
	}

	linuxHandlers = map[string]handler{
		".deb": {name: "linux.install_deb", op: types.OpInstall, exec: installDebPackage},
		".sh":  {name: "linux.run_shell", op: types.OpRun, exec: runShellScript},
	}

	elfHandler = handler{name: "linux.run_elf", op: types.OpRun, exec: runELFBinary}

	macosHandlers = map[string]handler{
		".app": {name: "macos.run_bundle", op: types.OpRun, exec: runAppBundle},
		".dmg": {name: "macos.mount", op: types.OpInstall, exec: mountDiskImage},
		".pkg": {name: "macos.install", op: types.OpInstall, exec: installMacPackage},
	}

	crossPlatformHandlers = map[string]handler{
		".py":  {name: "interpreter.python", op: types.OpRun, exec: interpret(LangPython)},
		".js":  {name: "interpreter.javascript", op: types.OpRun, exec: interpret(LangJavaScript)},
		".jar": {name: "interpreter.java", op: types.OpRun, exec: interpret(LangJava)},
		".txt": {name: "text.display", op: types.OpRun, exec: displayText},
	}
)

// handlerTable is total over Platform: every value needs an explicit case
func handlerTable(p types.Platform) (map[string]handler, bool) {
	switch p {
	case types.PlatformWindows:
		return windowsHandlers, true
	case types.PlatformLinux:
		return linuxHandlers, true
	case types.PlatformMacOS:
		return macosHandlers, true
	case types.PlatformCrossPlatform:
		return crossPlatformHandlers, true
	case types.PlatformUnknown:
		return nil, false
	default:
		return nil, false
	}
}

func windows(d *Dispatcher) (WindowsCompat, error) {
	if d.collab.Windows == nil || !d.collab.Windows.Available() {
		return nil, types.CollaboratorUnavailable("windows compatibility layer")
	}
	return d.collab.Windows, nil
}

func runWindowsExecutable(ctx context.Context, d *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error) {
	w, err := windows(d)
	if err != nil {
		return nil, nil, err
	}
	res, err := w.RunExecutable(ctx, r.path, r.args)
	return res, nil, err
}

func installWindowsPackage(ctx context.Context, d *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error) {
	w, err := windows(d)
	if err != nil {
		return nil, nil, err
	}
	res, err := w.InstallPackage(ctx, r.path)
	return res, nil, err
}

func linux(d *Dispatcher) (LinuxCompat, error) {
	if d.collab.Linux == nil {
		return nil, types.CollaboratorUnavailable("linux compatibility layer")
	}
	return d.collab.Linux, nil
}

func installDebPackage(ctx context.Context, d *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error) {
	l, err := linux(d)
	if err != nil {
		return nil, nil, err
	}
	res, err := l.InstallDebPackage(ctx, r.path)
	return res, nil, err
}

func runShellScript(ctx context.Context, d *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error) {
	l, err := linux(d)
	if err != nil {
		return nil, nil, err
	}
	res, err := l.RunShellScript(ctx, r.path, r.args)
	return res, nil, err
}

func runELFBinary(ctx context.Context, d *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error) {
	l, err := linux(d)
	if err != nil {
		return nil, nil, err
	}
	res, err := l.RunELFBinary(ctx, r.path, r.args)
	return res, nil, err
}

func macos(d *Dispatcher) (MacOSCompat, error) {
	if d.collab.MacOS == nil || !d.collab.MacOS.Available() {
		return nil, types.CollaboratorUnavailable("macos translation layer")
	}
	return d.collab.MacOS, nil
}

func runAppBundle(ctx context.Context, d *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error) {
	m, err := macos(d)
	if err != nil {
		return nil, nil, err
	}
	exe, err := ResolveBundle(r.path)
	if err != nil {
		return nil, nil, err
	}
	res, err := m.RunBinary(ctx, exe, r.args)
	return res, map[string]interface{}{"executable": exe}, err
}

func mountDiskImage(ctx context.Context, d *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error) {
	m, err := macos(d)
	if err != nil {
		return nil, nil, err
	}
	res, err := m.MountDiskImage(ctx, r.path)
	return res, nil, err
}

func installMacPackage(ctx context.Context, d *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error) {
	m, err := macos(d)
	if err != nil {
		return nil, nil, err
	}
	res, err := m.InstallPackage(ctx, r.path)
	return res, nil, err
}

func interpret(lang string) execFunc {
	return func(ctx context.Context, d *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error) {
		interp, ok := d.collab.Interpreters[lang]
		if !ok || interp == nil {
			return nil, nil, types.CollaboratorUnavailable(lang + " interpreter")
		}
		res, err := interp.Run(ctx, r.path, r.args)
		return res, map[string]interface{}{"language": lang}, err
	}
}

// displayText never executes anything: the file content is the output
func displayText(_ context.Context, _ *Dispatcher, r request) (*types.ProcessResult, map[string]interface{}, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	details := map[string]interface{}{
		"file_type": "text",
		"charset":   detectCharset(data),
	}
	return &types.ProcessResult{Stdout: string(data)}, details, nil
}

func detectCharset(data []byte) string {
	if len(data) == 0 {
		return "utf-8"
	}
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return result.Charset
}
