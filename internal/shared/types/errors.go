package types

import (
	"fmt"
	"strings"
)

// Kind classifies a failure surfaced by the core
type Kind string

const (
	KindInvalidName                 Kind = "InvalidName"
	KindProtectedPath               Kind = "ProtectedPathError"
	KindUnsupportedFormat           Kind = "UnsupportedFormat"
	KindUnsupportedPlatform         Kind = "UnsupportedPlatform"
	KindInvalidBundleStructure      Kind = "InvalidBundleStructure"
	KindCollaboratorUnavailable     Kind = "CollaboratorUnavailable"
	KindCollaboratorExecutionFailed Kind = "CollaboratorExecutionFailed"
)

// Sentinels for errors.Is matching against any *Error of the same kind
var (
	ErrInvalidName                 = &Error{Kind: KindInvalidName}
	ErrProtectedPath               = &Error{Kind: KindProtectedPath}
	ErrUnsupportedFormat           = &Error{Kind: KindUnsupportedFormat}
	ErrUnsupportedPlatform         = &Error{Kind: KindUnsupportedPlatform}
	ErrInvalidBundleStructure      = &Error{Kind: KindInvalidBundleStructure}
	ErrCollaboratorUnavailable     = &Error{Kind: KindCollaboratorUnavailable}
	ErrCollaboratorExecutionFailed = &Error{Kind: KindCollaboratorExecutionFailed}
)

// Error is a typed failure carrying a human-readable reason
type Error struct {
	Kind   Kind   `json:"kind"`
	Reason string `json:"reason"`

	// Populated for KindCollaboratorExecutionFailed
	ExitCode int    `json:"exit_code,omitempty"`
	Stderr   string `json:"stderr,omitempty"`

	// Populated for KindUnsupportedPlatform
	Supported []string `json:"supported_platforms,omitempty"`
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Is matches any *Error with the same Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewError creates an error of the given kind with a formatted reason
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// InvalidName reports a path that violates the naming rules
func InvalidName(path, rule string) *Error {
	return NewError(KindInvalidName, "%s: %s", rule, path)
}

// ProtectedPath reports a mutation attempted under a protected prefix
func ProtectedPath(path, prefix string) *Error {
	return NewError(KindProtectedPath, "cannot modify protected system path %s (under %s)", path, prefix)
}

// UnsupportedFormat reports a suffix that has no handler for the platform
func UnsupportedFormat(platform Platform, suffix string) *Error {
	if suffix == "" {
		suffix = "(none)"
	}
	return NewError(KindUnsupportedFormat, "unsupported %s format: %s", platform, suffix)
}

// UnsupportedPlatform reports a platform no handler exists for
func UnsupportedPlatform(platform Platform) *Error {
	supported := SupportedPlatformNames()
	e := NewError(KindUnsupportedPlatform, "unsupported platform: %s (supported: %s)", platform, strings.Join(supported, ", "))
	e.Supported = supported
	return e
}

// InvalidBundleStructure reports an application bundle that cannot be resolved
func InvalidBundleStructure(bundle, detail string) *Error {
	return NewError(KindInvalidBundleStructure, "invalid app bundle structure %s: %s", bundle, detail)
}

// CollaboratorUnavailable reports a translation layer or runtime that is not installed
func CollaboratorUnavailable(name string) *Error {
	return NewError(KindCollaboratorUnavailable, "%s not available", name)
}

// CollaboratorExecutionFailed passes through an external process failure
func CollaboratorExecutionFailed(exitCode int, stderr string) *Error {
	e := NewError(KindCollaboratorExecutionFailed, "process exited with code %d", exitCode)
	e.ExitCode = exitCode
	e.Stderr = stderr
	if s := strings.TrimSpace(stderr); s != "" {
		e.Reason = fmt.Sprintf("%s: %s", e.Reason, firstLine(s))
	}
	return e
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
