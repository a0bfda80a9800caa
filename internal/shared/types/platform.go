package types

import "strings"

// Platform represents the origin ecosystem of an application artifact
type Platform string

const (
	PlatformWindows       Platform = "windows"
	PlatformLinux         Platform = "linux"
	PlatformMacOS         Platform = "macos"
	PlatformCrossPlatform Platform = "cross_platform"
	PlatformUnknown       Platform = "unknown"
)

// SupportedPlatforms lists every platform a dispatch can target, in display order
func SupportedPlatforms() []Platform {
	return []Platform{PlatformWindows, PlatformLinux, PlatformMacOS, PlatformCrossPlatform}
}

// SupportedPlatformNames returns SupportedPlatforms as strings
func SupportedPlatformNames() []string {
	platforms := SupportedPlatforms()
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return names
}

// ParsePlatform converts a name into a Platform, yielding PlatformUnknown for anything unrecognized
func ParsePlatform(name string) Platform {
	switch Platform(strings.ToLower(strings.TrimSpace(name))) {
	case PlatformWindows:
		return PlatformWindows
	case PlatformLinux:
		return PlatformLinux
	case PlatformMacOS:
		return PlatformMacOS
	case PlatformCrossPlatform:
		return PlatformCrossPlatform
	default:
		return PlatformUnknown
	}
}

// IsSupported reports whether p is one of the dispatchable platforms
func (p Platform) IsSupported() bool {
	return p != PlatformUnknown && ParsePlatform(string(p)) == p
}

func (p Platform) String() string { return string(p) }

// Operation is what the caller wants done with an artifact
type Operation string

const (
	OpRun     Operation = "run"
	OpInstall Operation = "install"
)

func (o Operation) String() string { return string(o) }
