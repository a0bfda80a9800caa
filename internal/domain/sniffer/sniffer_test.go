package sniffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestClassifyByExtension(t *testing.T) {
	s := New(nil, nil)

	tests := []struct {
		path string
		want types.Platform
	}{
		{"app.exe", types.PlatformWindows},
		{"setup.MSI", types.PlatformWindows},
		{"lib.dll", types.PlatformWindows},
		{"run.bat", types.PlatformWindows},
		{"run.cmd", types.PlatformWindows},
		{"pkg.deb", types.PlatformLinux},
		{"pkg.rpm", types.PlatformLinux},
		{"install.sh", types.PlatformLinux},
		{"tool.bin", types.PlatformLinux},
		{"Tool.AppImage", types.PlatformLinux},
		{"bundle.dmg", types.PlatformMacOS},
		{"installer.pkg", types.PlatformMacOS},
		{"Safari.app", types.PlatformMacOS},
		{"Safari.app/", types.PlatformMacOS},
		{"start.command", types.PlatformMacOS},
		{"script.py", types.PlatformCrossPlatform},
		{"index.js", types.PlatformCrossPlatform},
		{"game.jar", types.PlatformCrossPlatform},
		{"notes.txt", types.PlatformCrossPlatform},
	}

	for _, tt := range tests {
		// None of these files exist: a recognized extension must not need I/O
		assert.Equal(t, tt.want, s.Classify(tt.path), tt.path)
	}
}

func TestExtensionWinsOverContent(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "disguised.exe", []byte{0x7F, 'E', 'L', 'F', 2, 1})

	assert.Equal(t, types.PlatformWindows, New(nil, nil).Classify(p))
}

func TestClassifyByMagic(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		bytes []byte
		want  types.Platform
	}{
		{"elf", []byte{0x7F, 0x45, 0x4C, 0x46, 0x02}, types.PlatformLinux},
		{"pe", []byte{0x4D, 0x5A, 0x90, 0x00, 0x03}, types.PlatformWindows},
		{"macho32be", []byte{0xFE, 0xED, 0xFA, 0xCE}, types.PlatformMacOS},
		{"macho64be", []byte{0xFE, 0xED, 0xFA, 0xCF}, types.PlatformMacOS},
		{"macho32le", []byte{0xCE, 0xFA, 0xED, 0xFE}, types.PlatformMacOS},
		{"macho64le", []byte{0xCF, 0xFA, 0xED, 0xFE}, types.PlatformMacOS},
		{"text", []byte("hello world"), types.PlatformUnknown},
		{"short", []byte{0x7F, 0x45}, types.PlatformUnknown},
		{"empty", []byte{}, types.PlatformUnknown},
		{"weird.xyz", []byte{0x7F, 0x45, 0x4C, 0x46}, types.PlatformLinux},
	}

	s := New(nil, nil)
	for _, tt := range tests {
		p := writeFile(t, dir, tt.name, tt.bytes)
		assert.Equal(t, tt.want, s.Classify(p), tt.name)
	}
}

func TestClassifyUnreadable(t *testing.T) {
	s := New(nil, nil)

	assert.Equal(t, types.PlatformUnknown, s.Classify("noext"))
	assert.Equal(t, types.PlatformUnknown, s.Classify(filepath.Join(t.TempDir(), "missing")))
	// A directory cannot be read as a file
	assert.Equal(t, types.PlatformUnknown, s.Classify(t.TempDir()))
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	elf := writeFile(t, dir, "program", append([]byte{0x7F, 'E', 'L', 'F'}, make([]byte, 60)...))

	s := New(nil, nil)

	d := s.Inspect(elf)
	assert.Equal(t, types.PlatformLinux, d.Platform)
	assert.Equal(t, MethodMagic, d.Method)
	assert.Equal(t, "elf", d.Format)
	assert.NotEmpty(t, d.MIME)

	d = s.Inspect("setup.exe")
	assert.Equal(t, types.PlatformWindows, d.Platform)
	assert.Equal(t, MethodExtension, d.Method)
	assert.Equal(t, ".exe", d.Extension)
	assert.Empty(t, d.MIME)
}

func TestIsELF(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, IsELF(writeFile(t, dir, "a", []byte{0x7F, 'E', 'L', 'F'})))
	assert.False(t, IsELF(writeFile(t, dir, "b", []byte("#!/bin/sh"))))
	assert.False(t, IsELF(filepath.Join(dir, "missing")))
}

func TestClassifyRecordsMetrics(t *testing.T) {
	m := monitoring.NewMetrics()
	s := New(nil, m)

	s.Classify("app.exe")
	s.Classify("noext")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Classifications.WithLabelValues("windows", MethodExtension)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Classifications.WithLabelValues("unknown", MethodNone)))
}

func TestEveryPlatformHasExtensions(t *testing.T) {
	for _, p := range types.SupportedPlatforms() {
		assert.NotEmpty(t, Extensions(p), p)
	}
	assert.Empty(t, Extensions(types.PlatformUnknown))
}
