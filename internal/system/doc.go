// Package system assembles AlteronOS from configuration.
//
// Startup order:
//  1. Build the logger and metrics registry
//  2. Probe native workers (failures only disable the worker)
//  3. Wire the compatibility collaborators and snapshot their availability
//  4. Mount and seed the virtual filesystem
//  5. Build the sniffer, dispatcher, registry and app manager
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	sys, err := system.New(cfg)
//	defer sys.Close()
//	out := sys.Apps.Launch(ctx, path, args, nil)
package system
