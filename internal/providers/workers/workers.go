package workers

import (
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AlteronOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// InitSymbol is called once after a worker library loads
const InitSymbol = "init_enhanced_worker"

// Libraries maps each worker name to its shared library file
var Libraries = map[string]string{
	"c":    "libc_worker.so",
	"rust": "librust_worker.so",
	"go":   "libgo_worker.so",
	"cpp":  "libcpp_worker.so",
}

// Names returns the worker names in a stable order
func Names() []string {
	names := make([]string, 0, len(Libraries))
	for name := range Libraries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Loader opens a library and runs its init symbol, returning a close func
type Loader func(path string) (func(), error)

// Pool holds the workers that loaded
type Pool struct {
	mu           sync.Mutex
	availability types.WorkerAvailability
	closers      []func()
}

// Probe tries every worker under dir with the platform loader
func Probe(dir string, logger *zap.Logger) *Pool {
	return ProbeWith(dir, loadLibrary, logger)
}

// ProbeWith tries every worker under dir with load
func ProbeWith(dir string, load Loader, logger *zap.Logger) *Pool {
	log := logging.Component(logger, "workers")
	p := &Pool{availability: make(types.WorkerAvailability, len(Libraries))}

	for _, name := range Names() {
		path := filepath.Join(dir, Libraries[name])
		closer, err := load(path)
		if err != nil {
			log.Warn("Native worker not available",
				zap.String("worker", name),
				zap.String("path", path),
				zap.Error(err))
			p.availability[name] = false
			continue
		}
		log.Info("Native worker loaded", zap.String("worker", name))
		p.availability[name] = true
		if closer != nil {
			p.closers = append(p.closers, closer)
		}
	}
	return p
}

// Availability returns a copy of the probe results
func (p *Pool) Availability() types.WorkerAvailability {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.availability.Clone()
}

// Close releases every loaded library
func (p *Pool) Close() {
	p.mu.Lock()
	closers := p.closers
	p.closers = nil
	p.mu.Unlock()

	for _, c := range closers {
		c()
	}
}
