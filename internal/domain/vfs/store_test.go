package vfs

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/paths"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

func newStore() *Store {
	return New(paths.DefaultProtected(paths.Root), nil)
}

func TestCreateFileCoercesSuffix(t *testing.T) {
	s := newStore()

	p1, err := s.CreateFile("notes", "same")
	require.NoError(t, err)
	p2, err := s.CreateFile("notes.txt", "same")
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", p1)
	assert.Equal(t, p1, p2)
	assert.Len(t, s.Entries(), 1)
	assert.Equal(t, "same", s.ReadFile("notes.txt"))
}

func TestCreateFileReplacesInPlace(t *testing.T) {
	s := newStore()
	_, _ = s.CreateFile("a", "1")
	_, _ = s.CreateFile("b", "2")
	_, _ = s.CreateFile("a", "3")

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Path)
	assert.Equal(t, "3", entries[0].Content)
}

func TestDirectorySuffix(t *testing.T) {
	s := newStore()

	err := s.CreateDirectory("Foo")
	assert.ErrorIs(t, err, types.ErrInvalidName)
	assert.Empty(t, s.Entries())

	require.NoError(t, s.CreateDirectory("Foo.dir"))
	assert.Equal(t, []string{"Foo.dir/"}, s.List(""))

	// idempotent
	require.NoError(t, s.CreateDirectory("Foo.dir/"))
	assert.Len(t, s.Entries(), 1)

	assert.ErrorIs(t, s.CreateDirectory(""), types.ErrInvalidName)
	assert.ErrorIs(t, s.CreateDirectory("Docs/.dir"), types.ErrInvalidName)
}

func TestEmptyFileName(t *testing.T) {
	s := newStore()

	_, err := s.CreateFile("", "x")
	assert.ErrorIs(t, err, types.ErrInvalidName)
	_, err = s.WriteFile("Docs.dir/.txt", "x")
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := newStore()

	p, err := s.WriteFile("a.txt", "hello")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", p)
	assert.Equal(t, "hello", s.ReadFile("a"))

	_, err = s.WriteFile("a", "again")
	require.NoError(t, err)
	assert.Equal(t, "again", s.ReadFile("a.txt"))
}

func TestReadFallback(t *testing.T) {
	s := newStore()

	tests := []struct {
		path string
		want string
	}{
		{"readme.txt", "Welcome to AlteronOS!"},
		{"A:/Alteron/System.dir/info", "System information file"},
		{"Users.dir/welcome.txt", "User welcome message"},
		{"missing", "Content of missing.txt\n"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.ReadFile(tt.path), tt.path)
	}

	require.NoError(t, s.CreateDirectory("Only.dir"))
	assert.Equal(t, "Content of Only.dir.txt\n", s.ReadFile("Only.dir"))
}

func TestProtectionLeavesTableUnchanged(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Seed(&types.Layout{
		Directories: []string{paths.System},
		Files:       []types.FileSeed{{Path: paths.System + "/info.txt", Content: "seeded"}},
	}))
	before := s.Entries()

	targets := []string{
		paths.System + "/info",
		paths.System + "/new.txt",
		paths.Config + "/settings",
		paths.System + `\nested.dir\x`,
	}
	for _, p := range targets {
		_, err := s.CreateFile(p, "x")
		assert.ErrorIs(t, err, types.ErrProtectedPath, p)
		_, err = s.WriteFile(p, "x")
		assert.ErrorIs(t, err, types.ErrProtectedPath, p)
		assert.Equal(t, before, s.Entries(), p)
	}

	err := s.CreateDirectory(paths.System + "/Drivers.dir")
	assert.ErrorIs(t, err, types.ErrProtectedPath)
	assert.Equal(t, before, s.Entries())

	// reads are unaffected
	assert.Equal(t, "seeded", s.ReadFile(paths.System+"/info"))
	assert.Equal(t, []string{"info.txt"}, s.List(paths.System))
	assert.True(t, s.IsProtected(paths.Config+"/x.txt"))
	assert.False(t, s.IsProtected(paths.Users+"/x.txt"))
}

func TestTouch(t *testing.T) {
	m := monitoring.NewMetrics()
	s := newStore().WithMetrics(m)
	require.NoError(t, s.Seed(&types.Layout{
		Files: []types.FileSeed{
			{Path: paths.System + "/info.txt", Content: "seeded"},
			{Path: paths.Users + "/notes.txt", Content: "kept"},
		},
	}))

	p, created, err := s.Touch(paths.Users + "/notes")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, paths.Users+"/notes.txt", p)
	assert.Equal(t, "kept", s.ReadFile(p))

	p, created, err = s.Touch(paths.Users + "/todo")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "", s.ReadFile(p))

	before := s.Entries()
	_, _, err = s.Touch(paths.System + "/info")
	assert.ErrorIs(t, err, types.ErrProtectedPath, "existing files are still checked")
	_, _, err = s.Touch(paths.System + "/fresh")
	assert.ErrorIs(t, err, types.ErrProtectedPath)
	assert.Equal(t, before, s.Entries())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.VFSMutations.WithLabelValues(opTouch, resultProtected)))

	_, _, err = s.Touch("")
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestNamingCheckedBeforeProtection(t *testing.T) {
	s := newStore()

	err := s.CreateDirectory(paths.System + "/Drivers")
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestFindSubstringInsertionOrder(t *testing.T) {
	s := newStore()
	require.NoError(t, s.CreateDirectory("Users.dir"))
	_, _ = s.CreateFile("Users.dir/welcome.txt", "hi")
	_, _ = s.CreateFile("readme.txt", "read me")
	_, _ = s.CreateFile("b-welcome", "")
	_, _ = s.CreateFile("a-welcome", "")

	assert.Equal(t, []string{"Users.dir/welcome.txt", "b-welcome.txt", "a-welcome.txt"}, s.Find("welcome"))
	assert.Equal(t, []string{"Users.dir/welcome.txt"}, s.Find("Users"), "directories are not matched")
	assert.Empty(t, s.Find("WELCOME"))
	assert.Empty(t, s.Find("we*come"))
}

func TestListChildren(t *testing.T) {
	s := newStore()
	require.NoError(t, s.CreateDirectory("Docs.dir"))
	require.NoError(t, s.CreateDirectory("Docs.dir/Old.dir"))
	_, _ = s.CreateFile("Docs.dir/todo", "")
	_, _ = s.CreateFile("Docs.dir/Old.dir/deep", "")

	assert.Equal(t, []string{"Old.dir/", "todo.txt"}, s.List("Docs.dir"))
	assert.Equal(t, []string{"deep.txt"}, s.List("Docs.dir/Old.dir/"))
	assert.Empty(t, s.List("Nope.dir"))
}

func TestGlob(t *testing.T) {
	s := newStore()
	require.NoError(t, s.CreateDirectory("Docs.dir"))
	_, _ = s.CreateFile("Docs.dir/a", "")
	_, _ = s.CreateFile("Docs.dir/Sub.dir/b", "")
	_, _ = s.CreateFile("top", "")

	got, err := s.Glob("Docs.dir/**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Docs.dir/a.txt", "Docs.dir/Sub.dir/b.txt"}, got)

	got, err = s.Glob("*.dir")
	require.NoError(t, err)
	assert.Equal(t, []string{"Docs.dir"}, got)

	_, err = s.Glob("Docs.dir/[")
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	s := newStore()
	_, _ = s.CreateFile("a", "")
	require.NoError(t, s.CreateDirectory("D.dir"))

	assert.True(t, s.Exists("a"))
	assert.True(t, s.Exists("a.txt"))
	assert.True(t, s.Exists("D.dir"))
	assert.False(t, s.Exists("b"))

	e, ok := s.Lookup("D.dir")
	require.True(t, ok)
	assert.True(t, e.IsDir())
	assert.Equal(t, "directory", e.Kind.String())
}

func TestMetrics(t *testing.T) {
	m := monitoring.NewMetrics()
	s := newStore().WithMetrics(m)

	_, _ = s.CreateFile("a", "")
	_, _ = s.CreateFile(paths.System+"/x", "")
	_ = s.CreateDirectory("bad")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.VFSMutations.WithLabelValues(opCreate, resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VFSMutations.WithLabelValues(opCreate, resultProtected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VFSMutations.WithLabelValues(opMkdir, resultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProtectedDenials))
}

func TestInfo(t *testing.T) {
	s := newStore().WithWorkers([]string{"c", "go"})
	_, _ = s.CreateFile("a", "")

	info := s.Info()
	assert.Equal(t, Name, info.Name)
	assert.Equal(t, paths.Root, info.Root)
	assert.True(t, info.Mounted)
	assert.True(t, info.TxtSupport)
	assert.Equal(t, paths.DefaultProtected(paths.Root), info.ProtectedPaths)
	assert.Equal(t, []string{"c", "go"}, info.NativeWorkers)
	assert.Equal(t, 1, info.Entries)
}
