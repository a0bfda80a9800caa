package dispatch

import (
	"fmt"
	"os"
	"path/filepath"

	"howett.net/plist"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Bundle layout
const (
	bundleDescriptor = "Contents/Info.plist"
	bundleBinaryDir  = "Contents/MacOS"
	executableKey    = "CFBundleExecutable"
)

type bundleInfo struct {
	Executable string `plist:"CFBundleExecutable"`
}

// ResolveBundle returns the path of the executable embedded in an application
// bundle. Both the descriptor and the named executable must exist.
func ResolveBundle(bundle string) (string, error) {
	descriptor := filepath.Join(bundle, filepath.FromSlash(bundleDescriptor))

	f, err := os.Open(descriptor)
	if err != nil {
		return "", types.InvalidBundleStructure(bundle, "missing "+bundleDescriptor)
	}
	defer f.Close()

	var info bundleInfo
	if err := plist.NewDecoder(f).Decode(&info); err != nil {
		return "", types.InvalidBundleStructure(bundle, fmt.Sprintf("unreadable %s: %v", bundleDescriptor, err))
	}
	if info.Executable == "" {
		return "", types.InvalidBundleStructure(bundle, executableKey+" not set")
	}
	if filepath.Base(info.Executable) != info.Executable {
		return "", types.InvalidBundleStructure(bundle, executableKey+" must be a plain file name")
	}

	exe := filepath.Join(bundle, filepath.FromSlash(bundleBinaryDir), info.Executable)
	st, err := os.Stat(exe)
	if err != nil || st.IsDir() {
		return "", types.InvalidBundleStructure(bundle, "executable "+info.Executable+" not found in "+bundleBinaryDir)
	}
	return exe, nil
}
