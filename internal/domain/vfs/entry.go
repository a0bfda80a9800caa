package vfs

// Kind distinguishes directories from files
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry is one addressable node of the store
type Entry struct {
	Path    string `json:"path"`
	Kind    Kind   `json:"kind"`
	Content string `json:"content,omitempty"`
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}
