//go:build !darwin && !linux

package workers

import (
	"fmt"
	"runtime"
)

func loadLibrary(path string) (func(), error) {
	return nil, fmt.Errorf("native workers are not supported on %s", runtime.GOOS)
}
