/*
Package monitoring provides metrics collection for the compatibility core.

# Overview

Prometheus collectors track classifications, dispatch attempts, filesystem
mutations and protected-path denials. Every Metrics value owns a private
registry; nothing is exported over the network.

# Usage

	metrics := monitoring.NewMetrics()
	metrics.RecordDispatch("linux", "run", true, elapsed)
	snap := metrics.Snapshot()
*/
package monitoring
