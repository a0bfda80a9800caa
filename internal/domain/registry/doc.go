// Package registry tracks dispatched applications and collaborator availability.
//
// The registry owns two pieces of process-wide state that used to be ambient:
//   - the append-only sequence of ApplicationRecords, one per dispatch call
//   - availability snapshots of the translation layers and native workers,
//     taken once at construction and never re-probed
//
// Appends are serialized by a single lock; records are never mutated or removed.
//
// Example Usage:
//
//	reg := registry.New(layers, workers)
//	rec := reg.RecordAttempt(path, outcome, args)
//	n := reg.RunningCount()
//	workers := reg.Availability()
package registry
