package vfs

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/paths"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Name is the filesystem name reported by Info
const Name = "AOSFS Enhanced"

// Mutation labels used for logging and metrics
const (
	opMkdir  = "mkdir"
	opCreate = "create"
	opWrite  = "write"
	opTouch  = "touch"

	resultOK        = "ok"
	resultInvalid   = "invalid_name"
	resultProtected = "protected"
)

var features = []string{
	"dir_suffix_enforcement",
	"txt_coercion",
	"protected_paths",
	"substring_find",
	"glob",
}

// Store is the in-memory entry table. A single lock guards the table.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]*Entry
	order     []string // insertion order of entries keys
	protected []string // immutable after New
	root      string
	workers   []string
	logger    *zap.Logger
	metrics   *monitoring.Metrics
}

// New creates an empty store. The protected prefixes are copied and never change.
func New(protected []string, logger *zap.Logger) *Store {
	prefixes := make([]string, 0, len(protected))
	for _, p := range protected {
		if n := paths.Normalize(p); n != "" {
			prefixes = append(prefixes, n)
		}
	}
	return &Store{
		entries:   make(map[string]*Entry),
		protected: prefixes,
		root:      paths.Root,
		logger:    logging.Component(logger, "vfs"),
	}
}

// WithMetrics adds metrics tracking to the store
func (s *Store) WithMetrics(metrics *monitoring.Metrics) *Store {
	s.metrics = metrics
	return s
}

// WithRoot sets the mount point reported by Info
func (s *Store) WithRoot(root string) *Store {
	if n := paths.Normalize(root); n != "" {
		s.root = n
	}
	return s
}

// WithWorkers sets the native workers reported by Info
func (s *Store) WithWorkers(loaded []string) *Store {
	s.workers = append([]string(nil), loaded...)
	return s
}

// CreateDirectory adds a directory. The path must end in ".dir".
// Creating an existing directory is a no-op.
func (s *Store) CreateDirectory(path string) error {
	p, err := directoryName(path)
	if err != nil {
		s.deny(opMkdir, path, err)
		return err
	}
	if err := s.checkProtected(p); err != nil {
		s.deny(opMkdir, p, err)
		return err
	}

	s.mu.Lock()
	if _, exists := s.entries[p]; !exists {
		s.insert(&Entry{Path: p, Kind: KindDirectory})
	}
	s.mu.Unlock()

	s.applied(opMkdir, p)
	return nil
}

// CreateFile stores content at the coerced file path and returns that path.
// An existing file keeps its position and has its content replaced.
func (s *Store) CreateFile(path, content string) (string, error) {
	return s.putFile(opCreate, path, content)
}

// WriteFile replaces the content of a file, creating it when missing,
// and returns the coerced path.
func (s *Store) WriteFile(path, content string) (string, error) {
	return s.putFile(opWrite, path, content)
}

// Touch creates an empty file unless one exists at the coerced path, in which
// case its content is kept. Naming and protection apply either way. It reports
// the coerced path and whether a file was created.
func (s *Store) Touch(path string) (string, bool, error) {
	p, err := fileName(path)
	if err != nil {
		s.deny(opTouch, path, err)
		return "", false, err
	}
	if err := s.checkProtected(p); err != nil {
		s.deny(opTouch, p, err)
		return "", false, err
	}

	s.mu.Lock()
	_, exists := s.entries[p]
	if !exists {
		s.insert(&Entry{Path: p, Kind: KindFile})
	}
	s.mu.Unlock()

	s.applied(opTouch, p)
	return p, !exists, nil
}

func (s *Store) putFile(op, path, content string) (string, error) {
	p, err := fileName(path)
	if err != nil {
		s.deny(op, path, err)
		return "", err
	}
	if err := s.checkProtected(p); err != nil {
		s.deny(op, p, err)
		return "", err
	}

	s.mu.Lock()
	if e, exists := s.entries[p]; exists {
		e.Content = content
	} else {
		s.insert(&Entry{Path: p, Kind: KindFile, Content: content})
	}
	s.mu.Unlock()

	s.applied(op, p)
	return p, nil
}

// ReadFile returns the content stored at the coerced path. Unknown paths
// yield placeholder content instead of an error.
func (s *Store) ReadFile(path string) string {
	p := paths.CoerceFile(paths.Normalize(path))

	s.mu.RLock()
	e, ok := s.entries[p]
	s.mu.RUnlock()

	if ok && !e.IsDir() {
		return e.Content
	}
	return fallbackContent(p)
}

// Lookup returns a copy of the entry stored at exactly path
func (s *Store) Lookup(path string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[paths.Normalize(path)]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Exists reports whether path names a directory, or a file once coerced
func (s *Store) Exists(path string) bool {
	p := paths.Normalize(path)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.entries[p]; ok {
		return true
	}
	_, ok := s.entries[paths.CoerceFile(p)]
	return ok
}

// List returns the names of the direct children of dir in insertion order.
// Directory names carry a trailing separator. An empty dir lists top-level entries.
func (s *Store) List(dir string) []string {
	parent := paths.Normalize(dir)

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := []string{}
	for _, p := range s.order {
		if paths.Parent(p) != parent {
			continue
		}
		name := paths.Base(p)
		if s.entries[p].IsDir() {
			name += paths.Separator
		}
		names = append(names, name)
	}
	return names
}

// Find returns every file path containing pattern as a case-sensitive
// substring, in insertion order.
func (s *Store) Find(pattern string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []string{}
	for _, p := range s.order {
		if !s.entries[p].IsDir() && strings.Contains(p, pattern) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Glob returns every path, directory or file, matching a doublestar
// pattern, in insertion order.
func (s *Store) Glob(pattern string) ([]string, error) {
	pattern = paths.Normalize(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []string{}
	for _, p := range s.order {
		if ok, _ := doublestar.Match(pattern, p); ok {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// Entries returns a copy of the entry table in insertion order
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.order))
	for i, p := range s.order {
		out[i] = *s.entries[p]
	}
	return out
}

// Protected returns the protected prefixes
func (s *Store) Protected() []string {
	return append([]string(nil), s.protected...)
}

// IsProtected reports whether a mutation of path would be refused
func (s *Store) IsProtected(path string) bool {
	return s.checkProtected(paths.Normalize(path)) != nil
}

// Info describes the filesystem
func (s *Store) Info() types.FSInfo {
	s.mu.RLock()
	n := len(s.order)
	s.mu.RUnlock()

	return types.FSInfo{
		Name:           Name,
		Root:           s.root,
		Mounted:        true,
		TxtSupport:     true,
		ProtectedPaths: s.Protected(),
		NativeWorkers:  append([]string{}, s.workers...),
		Entries:        n,
		Features:       append([]string(nil), features...),
	}
}

// insert appends a new entry. Callers hold s.mu.
func (s *Store) insert(e *Entry) {
	s.entries[e.Path] = e
	s.order = append(s.order, e.Path)
}

func directoryName(path string) (string, error) {
	p := paths.Normalize(path)
	if p == "" {
		return "", types.InvalidName(path, "empty directory name")
	}
	if !paths.IsDirName(p) {
		return "", types.InvalidName(p, "directory names must end with "+paths.DirSuffix)
	}
	if paths.Base(p) == paths.DirSuffix {
		return "", types.InvalidName(p, "empty directory name")
	}
	return p, nil
}

func fileName(path string) (string, error) {
	p := paths.Normalize(path)
	if p == "" || paths.Base(p) == paths.FileSuffix {
		return "", types.InvalidName(path, "empty file name")
	}
	return paths.CoerceFile(p), nil
}

func (s *Store) checkProtected(p string) error {
	for _, prefix := range s.protected {
		if paths.HasPrefix(p, prefix) {
			return types.ProtectedPath(p, prefix)
		}
	}
	return nil
}

func (s *Store) deny(op, path string, err error) {
	result := resultInvalid
	if errors.Is(err, types.ErrProtectedPath) {
		result = resultProtected
		s.logger.Warn("Protected path denied",
			zap.String("op", op),
			zap.String("path", path))
		if s.metrics != nil {
			s.metrics.IncProtectedDenials()
		}
	} else {
		s.logger.Debug("Invalid name",
			zap.String("op", op),
			zap.String("path", path),
			zap.Error(err))
	}
	if s.metrics != nil {
		s.metrics.RecordMutation(op, result)
	}
}

func (s *Store) applied(op, path string) {
	s.logger.Debug("Mutation applied",
		zap.String("op", op),
		zap.String("path", path))
	if s.metrics != nil {
		s.metrics.RecordMutation(op, resultOK)
	}
}

func fallbackContent(path string) string {
	switch name := paths.Base(path); name {
	case "readme.txt":
		return "Welcome to AlteronOS!"
	case "info.txt":
		return "System information file"
	case "welcome.txt":
		return "User welcome message"
	default:
		return fmt.Sprintf("Content of %s\n", name)
	}
}
