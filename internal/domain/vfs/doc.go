// Package vfs implements AOSFS, the in-memory virtual path store.
//
// Every node is a PathEntry keyed by its normalized path. Directories must
// carry the ".dir" suffix and are rejected otherwise; file paths are coerced
// to ".txt" before anything else happens. Mutations under a protected prefix
// fail without touching the entry table.
//
// Mutating calls apply their rules in a fixed order:
//
//  1. Name coercion (InvalidName for directories, ".txt" append for files)
//  2. Protection check against the configured prefixes
//  3. Mutation of the entry table
//
// Reads never fail: ReadFile returns placeholder content for unknown paths.
//
// Example Usage:
//
//	store := vfs.New(paths.DefaultProtected(paths.Root), logger)
//	_ = store.Seed(config.DefaultLayout(paths.Root))
//	p, err := store.CreateFile("notes", "hello") // p == "notes.txt"
//	content := store.ReadFile("notes")
//	matches := store.Find("welcome")
package vfs
