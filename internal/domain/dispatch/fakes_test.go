package dispatch

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

type call struct {
	method string
	path   string
	args   []string
}

type fakeCollaborator struct {
	available bool
	result    *types.ProcessResult
	err       error
	calls     []call
}

func (f *fakeCollaborator) record(method, path string, args []string) (*types.ProcessResult, error) {
	f.calls = append(f.calls, call{method: method, path: path, args: args})
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &types.ProcessResult{Stdout: method + " ok"}, nil
}

func (f *fakeCollaborator) lastMethod() string {
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1].method
}

type fakeWindows struct{ fakeCollaborator }

func (f *fakeWindows) Available() bool { return f.available }
func (f *fakeWindows) RunExecutable(_ context.Context, path string, args []string) (*types.ProcessResult, error) {
	return f.record("RunExecutable", path, args)
}
func (f *fakeWindows) InstallPackage(_ context.Context, path string) (*types.ProcessResult, error) {
	return f.record("InstallPackage", path, nil)
}

type fakeLinux struct{ fakeCollaborator }

func (f *fakeLinux) RunELFBinary(_ context.Context, path string, args []string) (*types.ProcessResult, error) {
	return f.record("RunELFBinary", path, args)
}
func (f *fakeLinux) RunShellScript(_ context.Context, path string, args []string) (*types.ProcessResult, error) {
	return f.record("RunShellScript", path, args)
}
func (f *fakeLinux) InstallDebPackage(_ context.Context, path string) (*types.ProcessResult, error) {
	return f.record("InstallDebPackage", path, nil)
}

type fakeMacOS struct{ fakeCollaborator }

func (f *fakeMacOS) Available() bool { return f.available }
func (f *fakeMacOS) RunBinary(_ context.Context, path string, args []string) (*types.ProcessResult, error) {
	return f.record("RunBinary", path, args)
}
func (f *fakeMacOS) MountDiskImage(_ context.Context, path string) (*types.ProcessResult, error) {
	return f.record("MountDiskImage", path, nil)
}
func (f *fakeMacOS) InstallPackage(_ context.Context, path string) (*types.ProcessResult, error) {
	return f.record("InstallPackage", path, nil)
}

type fakeInterpreter struct {
	fakeCollaborator
	lang string
}

func (f *fakeInterpreter) Run(_ context.Context, path string, args []string) (*types.ProcessResult, error) {
	return f.record(fmt.Sprintf("Run(%s)", f.lang), path, args)
}

type fixture struct {
	windows *fakeWindows
	linux   *fakeLinux
	macos   *fakeMacOS
	interps map[string]*fakeInterpreter
	d       *Dispatcher
}

func newFixture() *fixture {
	f := &fixture{
		windows: &fakeWindows{fakeCollaborator{available: true}},
		linux:   &fakeLinux{},
		macos:   &fakeMacOS{fakeCollaborator{available: true}},
		interps: map[string]*fakeInterpreter{},
	}
	interps := map[string]Interpreter{}
	for _, lang := range []string{LangPython, LangJavaScript, LangJava} {
		fi := &fakeInterpreter{lang: lang}
		f.interps[lang] = fi
		interps[lang] = fi
	}
	f.d = New(Collaborators{
		Windows:      f.windows,
		Linux:        f.linux,
		MacOS:        f.macos,
		Interpreters: interps,
	}, nil)
	return f
}
