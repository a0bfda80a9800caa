package sniffer

import (
	"bytes"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// extensionPlatforms maps a lowercase extension to its platform
var extensionPlatforms = map[string]types.Platform{
	".exe": types.PlatformWindows,
	".msi": types.PlatformWindows,
	".dll": types.PlatformWindows,
	".bat": types.PlatformWindows,
	".cmd": types.PlatformWindows,

	".deb":      types.PlatformLinux,
	".rpm":      types.PlatformLinux,
	".sh":       types.PlatformLinux,
	".bin":      types.PlatformLinux,
	".appimage": types.PlatformLinux,

	".dmg":     types.PlatformMacOS,
	".pkg":     types.PlatformMacOS,
	".app":     types.PlatformMacOS,
	".command": types.PlatformMacOS,

	".py":  types.PlatformCrossPlatform,
	".js":  types.PlatformCrossPlatform,
	".jar": types.PlatformCrossPlatform,
	".txt": types.PlatformCrossPlatform,
}

// MagicLen is the number of leading bytes inspected on fallback
const MagicLen = 4

type signature struct {
	magic    []byte
	platform types.Platform
	format   string
}

var signatures = []signature{
	{[]byte{0x4D, 0x5A, 0x90, 0x00}, types.PlatformWindows, "pe"},
	{[]byte{0x7F, 0x45, 0x4C, 0x46}, types.PlatformLinux, "elf"},
	{[]byte{0xFE, 0xED, 0xFA, 0xCE}, types.PlatformMacOS, "macho"},
	{[]byte{0xFE, 0xED, 0xFA, 0xCF}, types.PlatformMacOS, "macho"},
	{[]byte{0xCE, 0xFA, 0xED, 0xFE}, types.PlatformMacOS, "macho"},
	{[]byte{0xCF, 0xFA, 0xED, 0xFE}, types.PlatformMacOS, "macho"},
}

// PlatformForExtension returns the platform for a lowercase extension
// (including the leading dot) and whether it is recognized
func PlatformForExtension(ext string) (types.Platform, bool) {
	p, ok := extensionPlatforms[ext]
	return p, ok
}

// Extensions returns the recognized extensions for a platform
func Extensions(p types.Platform) []string {
	var exts []string
	for ext, ep := range extensionPlatforms {
		if ep == p {
			exts = append(exts, ext)
		}
	}
	return exts
}

// MatchMagic maps leading bytes to a platform and binary format name.
// Fewer than MagicLen bytes never match.
func MatchMagic(header []byte) (types.Platform, string) {
	if len(header) < MagicLen {
		return types.PlatformUnknown, ""
	}
	for _, sig := range signatures {
		if bytes.Equal(header[:MagicLen], sig.magic) {
			return sig.platform, sig.format
		}
	}
	return types.PlatformUnknown, ""
}
