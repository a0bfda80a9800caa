package paths

import (
	"path"
	"strings"
)

// Naming tokens
const (
	// DirSuffix must terminate every directory path
	DirSuffix = ".dir"

	// FileSuffix is appended to any file path that lacks it
	FileSuffix = ".txt"

	// Separator is the canonical virtual path separator
	Separator = "/"
)

// Root is the default mount point of the virtual filesystem
const Root = "A:/Alteron"

// System directories under Root
const (
	System    = Root + "/" + systemDir
	Programs  = Root + "/" + programsDir
	Users     = Root + "/" + usersDir
	Config    = Root + "/" + configDir
	Temp      = Root + "/" + tempDir
	Apps      = Root + "/" + appsDir
	Documents = Root + "/" + documentsDir
)

// Standard directory names, provisioned directly under the mount root
const (
	systemDir    = "System.dir"
	programsDir  = "Programs.dir"
	usersDir     = "Users.dir"
	configDir    = "Config.dir"
	tempDir      = "Temp.dir"
	appsDir      = "Apps.dir"
	documentsDir = "Documents.dir"
)

// DefaultProtected returns the prefixes under root that are immutable unless
// configured otherwise
func DefaultProtected(root string) []string {
	return []string{under(root, systemDir), under(root, configDir)}
}

// StandardDirectories returns all directories provisioned under root at startup
func StandardDirectories(root string) []string {
	dirs := []string{systemDir, programsDir, usersDir, configDir, tempDir, appsDir, documentsDir}
	for i, d := range dirs {
		dirs[i] = under(root, d)
	}
	return dirs
}

// EssentialFiles returns the text files provisioned under root at startup, keyed by path
func EssentialFiles(root string) map[string]string {
	return map[string]string{
		under(root, "readme.txt"): `Welcome to AlteronOS v2.0!

This is a universal operating system with:
- Windows, Linux, macOS app compatibility
- Multi-terminal support
- Enhanced AOSFS with .txt support

Enjoy your experience!`,
		under(root, systemDir, "info.txt"): `System Information:
OS: AlteronOS v2.0
FS: AOSFS Enhanced
Features: Universal Apps, Multi-Terminals`,
		under(root, usersDir, "welcome.txt"): `User Directory

This is your personal space in AlteronOS.
You can create documents, store files, and more.

Remember: All folders must end with .dir`,
		under(root, appsDir, "available.txt"): `Available Applications:

File Manager: AlterSearcher
Terminal: Multi-Terminal System
Settings: System Configuration
App Launcher: Universal Launcher`,
	}
}

func under(root string, elem ...string) string {
	return Normalize(path.Join(append([]string{Normalize(root)}, elem...)...))
}

// Normalize canonicalizes a virtual path: backslashes become slashes,
// duplicate and trailing separators are removed and dot segments resolved.
// Relative paths stay relative.
func Normalize(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, `\`, Separator)
	cleaned := path.Clean(p)
	if cleaned == "." {
		return ""
	}
	return cleaned
}

// Parent returns the directory portion of a normalized path ("" for top-level entries)
func Parent(p string) string {
	dir := path.Dir(p)
	if dir == "." {
		return ""
	}
	return dir
}

// Base returns the last element of a path
func Base(p string) string {
	return path.Base(p)
}

// IsDirName reports whether p carries the directory suffix
func IsDirName(p string) bool {
	return strings.HasSuffix(p, DirSuffix)
}

// CoerceFile appends the file suffix when missing
func CoerceFile(p string) string {
	if strings.HasSuffix(p, FileSuffix) {
		return p
	}
	return p + FileSuffix
}

// HasPrefix reports whether p starts with prefix, after normalizing both
func HasPrefix(p, prefix string) bool {
	prefix = Normalize(prefix)
	return prefix != "" && strings.HasPrefix(Normalize(p), prefix)
}
