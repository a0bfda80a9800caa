package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIndependentRegistries(t *testing.T) {
	// Two collectors in one process must not collide on registration
	m1 := NewMetrics()
	m2 := NewMetrics()

	m1.RecordClassification("windows", "extension")

	assert.Equal(t, 1.0, testutil.ToFloat64(m1.Classifications.WithLabelValues("windows", "extension")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m2.Classifications.WithLabelValues("windows", "extension")))
}

func TestRecordDispatch(t *testing.T) {
	m := NewMetrics()

	m.RecordDispatch("linux", "run", true, 10*time.Millisecond)
	m.RecordDispatch("linux", "run", false, 20*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DispatchTotal.WithLabelValues("linux", "run", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DispatchTotal.WithLabelValues("linux", "run", "failure")))

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Dispatches)
	assert.Equal(t, int64(1), snap.DispatchFailures)
	assert.InDelta(t, 0.03, snap.TotalDuration, 0.001)
}

func TestMutationsAndDenials(t *testing.T) {
	m := NewMetrics()

	m.RecordMutation("mkdir", "ok")
	m.RecordMutation("mkdir", "protected")
	m.IncProtectedDenials()
	m.SetRunningApps(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProtectedDenials))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RunningApps))
	assert.Equal(t, int64(2), m.Snapshot().Mutations)
	assert.Equal(t, int64(1), m.Snapshot().ProtectedDenials)
}
