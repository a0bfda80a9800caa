package types

import (
	"sort"
	"time"
)

// Record represents one dispatch attempt
type Record struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Platform  Platform  `json:"platform"`
	Op        Operation `json:"operation"`
	Args      []string  `json:"args,omitempty"`
	Success   bool      `json:"success"`
	Failure   *Error    `json:"failure,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// WorkerAvailability maps a native worker name to whether it loaded
type WorkerAvailability map[string]bool

// Clone returns an independent copy
func (w WorkerAvailability) Clone() WorkerAvailability {
	out := make(WorkerAvailability, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Loaded returns the names of workers that loaded
func (w WorkerAvailability) Loaded() []string {
	var names []string
	for name, ok := range w {
		if ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// LayerAvailability maps a platform to whether its translation layer is present
type LayerAvailability map[Platform]bool

// Clone returns an independent copy
func (l LayerAvailability) Clone() LayerAvailability {
	out := make(LayerAvailability, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// SystemInfo summarizes the compatibility system
type SystemInfo struct {
	WindowsAvailable bool     `json:"windows_available"`
	LinuxAvailable   bool     `json:"linux_available"`
	MacOSAvailable   bool     `json:"macos_available"`
	RunningApps      int      `json:"running_apps"`
	Workers          []string `json:"native_workers"`
	Features         []string `json:"features"`
}

// FSInfo describes the virtual filesystem
type FSInfo struct {
	Name           string   `json:"name"`
	Root           string   `json:"root"`
	Mounted        bool     `json:"mounted"`
	TxtSupport     bool     `json:"txt_support"`
	ProtectedPaths []string `json:"protected_paths"`
	NativeWorkers  []string `json:"native_workers"`
	Entries        int      `json:"entries"`
	Features       []string `json:"features"`
}
