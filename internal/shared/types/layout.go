package types

// Layout describes the directories and files provisioned when the filesystem mounts
type Layout struct {
	Directories []string   `yaml:"directories" json:"directories"`
	Files       []FileSeed `yaml:"files" json:"files"`
}

// FileSeed is one provisioned text file
type FileSeed struct {
	Path    string `yaml:"path" json:"path"`
	Content string `yaml:"content" json:"content"`
}
