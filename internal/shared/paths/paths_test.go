package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`A:\Alteron\System.dir`, "A:/Alteron/System.dir"},
		{"Users.dir//welcome.txt", "Users.dir/welcome.txt"},
		{"Users.dir/", "Users.dir"},
		{"  notes ", "notes"},
		{"a/./b/../c.txt", "a/c.txt"},
		{"", ""},
		{".", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestCoerceFile(t *testing.T) {
	assert.Equal(t, "notes.txt", CoerceFile("notes"))
	assert.Equal(t, "notes.txt", CoerceFile("notes.txt"))
	assert.Equal(t, "script.py.txt", CoerceFile("script.py"))
}

func TestParent(t *testing.T) {
	assert.Equal(t, "", Parent("readme.txt"))
	assert.Equal(t, "Users.dir", Parent("Users.dir/welcome.txt"))
	assert.Equal(t, Root, Parent(System))
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix(`A:\Alteron\System.dir\kernel.txt`, System))
	assert.False(t, HasPrefix(Users+"/me.txt", System))
	assert.False(t, HasPrefix("anything", ""))
}

func TestStandardDirectoriesCarrySuffix(t *testing.T) {
	for _, dir := range StandardDirectories(Root) {
		assert.True(t, IsDirName(dir), dir)
	}
	for file := range EssentialFiles(Root) {
		assert.Equal(t, file, CoerceFile(file))
	}
}

func TestLayoutFollowsRoot(t *testing.T) {
	assert.Equal(t, []string{System, Config}, DefaultProtected(Root))
	assert.Equal(t, []string{"B:/Home/System.dir", "B:/Home/Config.dir"}, DefaultProtected(`B:\Home\`))

	dirs := StandardDirectories("B:/Home")
	assert.Len(t, dirs, 7)
	for _, d := range dirs {
		assert.True(t, HasPrefix(d, "B:/Home/"), d)
	}
	assert.Contains(t, EssentialFiles("B:/Home"), "B:/Home/Users.dir/welcome.txt")
	assert.Contains(t, EssentialFiles(Root), Root+"/readme.txt")
}
