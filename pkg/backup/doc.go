// Package backup persists, verifies and replays the pre-mutation state that
// pkg/executor records while applying a plan.
//
// A backup is a single JSON document with every file's original bytes
// embedded alongside their SHA256, so it can be integrity-checked on its own
// long after creation. Lifecycle: empty, populated during apply, persisted
// (immutable from then on), verified, then restored or discarded. A new apply
// always produces a new backup.
package backup
