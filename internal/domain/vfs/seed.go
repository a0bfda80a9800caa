package vfs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Seed provisions a layout at mount time. Protection does not apply, but
// naming rules do: directories still need ".dir" and files are coerced.
// Existing entries are left untouched.
func (s *Store) Seed(layout *types.Layout) error {
	if layout == nil {
		return nil
	}

	// Validate everything first so a bad layout leaves the table untouched
	seeds := make([]*Entry, 0, len(layout.Directories)+len(layout.Files))
	for _, d := range layout.Directories {
		p, err := directoryName(d)
		if err != nil {
			return fmt.Errorf("seed directory: %w", err)
		}
		seeds = append(seeds, &Entry{Path: p, Kind: KindDirectory})
	}
	for _, f := range layout.Files {
		p, err := fileName(f.Path)
		if err != nil {
			return fmt.Errorf("seed file: %w", err)
		}
		seeds = append(seeds, &Entry{Path: p, Kind: KindFile, Content: f.Content})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var dirs, files int
	for _, e := range seeds {
		if _, exists := s.entries[e.Path]; exists {
			continue
		}
		s.insert(e)
		if e.IsDir() {
			dirs++
		} else {
			files++
		}
	}

	s.logger.Info("Filesystem seeded",
		zap.String("root", s.root),
		zap.Int("directories", dirs),
		zap.Int("files", files))
	return nil
}
