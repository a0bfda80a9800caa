// Package workers probes the optional native accelerator libraries.
//
// Each worker is a shared library in the worker directory exporting an
// init_enhanced_worker entry point. A worker that fails to load is marked
// unavailable and logged; loading never fails startup. The resulting
// availability map is a snapshot: nothing re-probes later.
package workers
