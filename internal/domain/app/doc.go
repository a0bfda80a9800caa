// Package app composes classification, dispatch and the registry.
//
// Manager is the composing root callers talk to: Launch classifies an
// artifact (unless the caller overrides the platform), dispatches it once
// and records the attempt; Install does the same for packages.
//
// Example Usage:
//
//	m := app.NewManager(sniffer, dispatcher, registry, logger).WithMetrics(metrics)
//	out := m.Launch(ctx, "/downloads/tool.exe", nil, nil)
//	info := m.SystemInfo()
package app
