package registry

import (
	"sync"
	"time"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/id"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Registry is the CompatibilityRegistry
type Registry struct {
	mu      sync.Mutex
	records []types.Record // Protected by mu, append-only
	layers  types.LayerAvailability
	workers types.WorkerAvailability
	now     func() time.Time
}

// New creates a registry around availability snapshots. The maps are copied.
func New(layers types.LayerAvailability, workers types.WorkerAvailability) *Registry {
	if layers == nil {
		layers = types.LayerAvailability{}
	}
	if workers == nil {
		workers = types.WorkerAvailability{}
	}
	return &Registry{
		layers:  layers.Clone(),
		workers: workers.Clone(),
		now:     time.Now,
	}
}

// RecordAttempt appends a record for one dispatch and returns it
func (r *Registry) RecordAttempt(path string, outcome *types.Outcome, args []string) types.Record {
	rec := types.Record{
		ID:   id.NewRecordID().String(),
		Path: path,
	}
	if len(args) > 0 {
		rec.Args = append([]string(nil), args...)
	}
	if outcome != nil {
		rec.Platform = outcome.Platform
		rec.Op = outcome.Op
		rec.Success = outcome.Success
		if !outcome.Success {
			rec.Failure = outcome.Error
		}
	} else {
		rec.Platform = types.PlatformUnknown
	}

	r.mu.Lock()
	rec.Timestamp = r.now()
	r.records = append(r.records, rec)
	r.mu.Unlock()

	return rec
}

// RunningCount returns the number of recorded attempts
func (r *Registry) RunningCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Records returns a copy of the records in call order
func (r *Registry) Records() []types.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.Record(nil), r.records...)
}

// Availability returns the native worker snapshot taken at startup
func (r *Registry) Availability() types.WorkerAvailability {
	return r.workers.Clone()
}

// Layers returns the translation layer snapshot taken at startup
func (r *Registry) Layers() types.LayerAvailability {
	return r.layers.Clone()
}

// LayerAvailable reports whether the layer for p was present at startup
func (r *Registry) LayerAvailable(p types.Platform) bool {
	return r.layers[p]
}
