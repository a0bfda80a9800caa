package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/paths"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "A:/Alteron", cfg.FS.Root)
	assert.Equal(t, []string{"A:/Alteron/System.dir", "A:/Alteron/Config.dir"}, cfg.FS.Protected)
	assert.Equal(t, "wine", cfg.Compat.Wine)
	assert.Equal(t, "darling", cfg.Compat.Darling)
	assert.Equal(t, "python3", cfg.Compat.Python)
	assert.False(t, cfg.Compat.UsePTY)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMatchesDefault(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default().FS.Protected, cfg.FS.Protected)
	assert.Equal(t, Default().Compat, cfg.Compat)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"ALTERON_ROOT":      "B:/Root",
		"ALTERON_PROTECTED": "B:/Root/Locked.dir,B:/Root/Vault.dir",
		"WINE_BIN":          "/opt/wine/bin/wine64",
		"COMPAT_USE_PTY":    "true",
		"LOG_LEVEL":         "debug",
		"LOG_DEV":           "true",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "B:/Root", cfg.FS.Root)
	assert.Equal(t, []string{"B:/Root/Locked.dir", "B:/Root/Vault.dir"}, cfg.FS.Protected)
	assert.Equal(t, "/opt/wine/bin/wine64", cfg.Compat.Wine)
	assert.True(t, cfg.Compat.UsePTY)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadDerivesFromRoot(t *testing.T) {
	t.Setenv("ALTERON_ROOT", "B:/Home")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"B:/Home/System.dir", "B:/Home/Config.dir"}, cfg.FS.Protected)

	layout, err := cfg.Layout()
	require.NoError(t, err)
	assert.Contains(t, layout.Directories, "B:/Home/Users.dir")
	for _, f := range layout.Files {
		assert.True(t, paths.HasPrefix(f.Path, "B:/Home"), f.Path)
	}
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("COMPAT_USE_PTY", "maybe")

	_, err := Load()
	assert.Error(t, err)

	cfg := LoadOrDefault()
	assert.False(t, cfg.Compat.UsePTY)
}

func TestDefaultLayout(t *testing.T) {
	layout, err := Default().Layout()
	require.NoError(t, err)

	assert.Equal(t, paths.StandardDirectories(paths.Root), layout.Directories)
	assert.Len(t, layout.Files, len(paths.EssentialFiles(paths.Root)))
	for i := 1; i < len(layout.Files); i++ {
		assert.Less(t, layout.Files[i-1].Path, layout.Files[i].Path)
	}
}

func TestLoadLayoutFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "layout.yaml")
	content := `directories:
  - A:/Alteron/Games.dir
files:
  - path: A:/Alteron/Games.dir/scores.txt
    content: "top: 42"
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg := Default()
	cfg.FS.LayoutFile = file
	layout, err := cfg.Layout()
	require.NoError(t, err)

	assert.Equal(t, []string{"A:/Alteron/Games.dir"}, layout.Directories)
	require.Len(t, layout.Files, 1)
	assert.Equal(t, "A:/Alteron/Games.dir/scores.txt", layout.Files[0].Path)
	assert.Equal(t, "top: 42", layout.Files[0].Content)
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
