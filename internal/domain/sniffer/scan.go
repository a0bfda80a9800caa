package sniffer

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// ScanOptions controls a directory scan
type ScanOptions struct {
	// Include is a doublestar pattern matched against paths relative to the root.
	// Empty includes everything.
	Include string
	// KeepUnknown includes files that classified as unknown
	KeepUnknown bool
}

// Scan walks root and classifies every launchable artifact beneath it.
// Application bundles (*.app directories) are reported as a single entry
// and not descended into. Results are sorted by path.
func (s *Sniffer) Scan(ctx context.Context, root string, opts ScanOptions) ([]Details, error) {
	if opts.Include != "" && !doublestar.ValidatePattern(opts.Include) {
		return nil, fmt.Errorf("invalid include pattern: %s", opts.Include)
	}

	var (
		mu      sync.Mutex
		results []Details
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return nil
		}

		bundle := d.IsDir() && Ext(p) == ".app"
		if d.IsDir() && !bundle {
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			rel = p
		}
		if opts.Include != "" {
			if ok, _ := doublestar.Match(opts.Include, filepath.ToSlash(rel)); !ok {
				if bundle {
					return filepath.SkipDir
				}
				return nil
			}
		}

		details := s.Inspect(p)
		if details.Platform != types.PlatformUnknown || opts.KeepUnknown {
			mu.Lock()
			results = append(results, details)
			mu.Unlock()
		}

		if bundle {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s failed: %w", root, err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}
