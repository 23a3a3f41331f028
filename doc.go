// Package notekeeper is the composition root for the notekeeper application.
//
// It connects the core business logic (notes and their update semantics)
// with the storage adapter (a single JSON file written atomically).
//
// Philosophy:
//
// Notekeeper treats one JSON file as a small, durable database of notes
// and reminders. Every operation re-reads the file, applies its change,
// and replaces the file atomically, so the durable state is never
// observed half-written and a crash never destroys prior data. The core
// is storage-agnostic: the default adapter is the filesystem, but
// anything implementing core.Store plugs in.
//
// Features:
//
//   - Crash-safe persistence: temp-file + atomic rename on every write.
//   - Self-healing reads: missing, empty, or corrupt files are repaired
//     (corrupt content is backed up alongside before being reset).
//   - Field-level merge updates: a patch overwrites only the fields it
//     carries; everything else is preserved.
//   - Change watching: fsnotify-based observation of external edits,
//     with glob filtering on note IDs.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := notekeeper.New("./data",
//		notekeeper.WithLogger(logger),
//	)
//
//	// Create a note
//	note, err := svc.Create(ctx, core.Draft{Title: "Buy milk", Content: "2%"})
//
// Known limitation: there is no cross-process locking. Two writers
// racing on the same file resolve as last-write-wins; this is an
// accepted property of the single-tenant design.
package notekeeper
