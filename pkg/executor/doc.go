// Package executor applies a DiffPlan to a project's filesystem.
//
// Operations execute strictly in plan order, never reordered or in parallel,
// so the backup's file ordering is deterministic. Every path is re-validated
// through paths.SafeJoin before use, and each file's pre-mutation state is
// recorded into the backup before the mutation happens.
//
// A failure mid-plan aborts immediately and performs no automatic rollback:
// undoing a partial apply is the same backup.Restore code path used for a
// full rollback, fed with whatever entries were recorded before the failure.
package executor
