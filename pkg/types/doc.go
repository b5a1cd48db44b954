// Package types contains the shared data model for dotclaude: profiles and
// their overlays, diff plans and file operations, and the backup record that
// makes every apply reversible.
//
// The types here carry no behavior beyond simple accessors; planning lives in
// pkg/planner, mutation in pkg/executor, and persistence in pkg/backup. All
// state flows through explicit values of these types, there is no package
// level mutable state anywhere in the core.
package types
