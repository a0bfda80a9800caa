//go:build darwin || linux

package workers

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func loadLibrary(path string) (func(), error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen: %w", err)
	}

	sym, err := purego.Dlsym(handle, InitSymbol)
	if err != nil {
		_ = purego.Dlclose(handle)
		return nil, fmt.Errorf("missing %s: %w", InitSymbol, err)
	}
	purego.SyscallN(sym)

	return func() { _ = purego.Dlclose(handle) }, nil
}
