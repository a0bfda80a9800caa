package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Classification metrics
	Classifications *prometheus.CounterVec

	// Dispatch metrics
	DispatchTotal    *prometheus.CounterVec
	DispatchDuration *prometheus.HistogramVec
	RunningApps      prometheus.Gauge

	// Filesystem metrics
	VFSMutations     *prometheus.CounterVec
	ProtectedDenials prometheus.Counter

	startTime time.Time

	// Snapshot for the CLI - track current values
	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds current metric values for display
type Snapshot struct {
	Classifications  int64   `json:"classifications"`
	Dispatches       int64   `json:"dispatches"`
	DispatchFailures int64   `json:"dispatch_failures"`
	Mutations        int64   `json:"mutations"`
	ProtectedDenials int64   `json:"protected_denials"`
	TotalDuration    float64 `json:"total_dispatch_seconds"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
}

// NewMetrics creates a metrics collector on its own registry.
// Collectors never touch the global default registry so several
// instances can coexist in one process (tests, embedded shells).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		startTime: time.Now(),

		Classifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alteron_classifications_total",
				Help: "Total number of artifact classifications",
			},
			[]string{"platform", "method"},
		),

		DispatchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alteron_dispatch_total",
				Help: "Total number of dispatch attempts",
			},
			[]string{"platform", "operation", "outcome"},
		),
		DispatchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "alteron_dispatch_duration_seconds",
				Help:    "Dispatch duration in seconds, including the collaborator process",
				Buckets: []float64{.001, .01, .1, .5, 1, 5, 30, 120, 600},
			},
			[]string{"platform"},
		),
		RunningApps: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "alteron_running_apps",
				Help: "Number of recorded application dispatches",
			},
		),

		VFSMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alteron_vfs_mutations_total",
				Help: "Total number of virtual filesystem mutations",
			},
			[]string{"op", "result"},
		),
		ProtectedDenials: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "alteron_protected_denials_total",
				Help: "Mutations rejected because they targeted a protected prefix",
			},
		),
	}
}

// RecordClassification records one classification and the method that decided it
func (m *Metrics) RecordClassification(platform, method string) {
	m.Classifications.WithLabelValues(platform, method).Inc()

	m.mu.Lock()
	m.snapshot.Classifications++
	m.mu.Unlock()
}

// RecordDispatch records a dispatch attempt
func (m *Metrics) RecordDispatch(platform, operation string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.DispatchTotal.WithLabelValues(platform, operation, outcome).Inc()
	m.DispatchDuration.WithLabelValues(platform).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.Dispatches++
	m.snapshot.TotalDuration += duration.Seconds()
	if !success {
		m.snapshot.DispatchFailures++
	}
	m.mu.Unlock()
}

// SetRunningApps sets the number of recorded dispatches
func (m *Metrics) SetRunningApps(count int) {
	m.RunningApps.Set(float64(count))
}

// RecordMutation records a filesystem mutation by operation and result
func (m *Metrics) RecordMutation(op, result string) {
	m.VFSMutations.WithLabelValues(op, result).Inc()

	m.mu.Lock()
	m.snapshot.Mutations++
	m.mu.Unlock()
}

// IncProtectedDenials increments the protected-path denial counter
func (m *Metrics) IncProtectedDenials() {
	m.ProtectedDenials.Inc()

	m.mu.Lock()
	m.snapshot.ProtectedDenials++
	m.mu.Unlock()
}

// Snapshot returns a copy of the current values
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.snapshot
	s.UptimeSeconds = time.Since(m.startTime).Seconds()
	return s
}
