// Package planner compares a profile's overlays against the current state of
// a project and produces a DiffPlan: the ordered file operations needed to
// align the project with the profile, plus advisory warnings.
//
// Planning only reads the filesystem. The plan is consumed once by
// pkg/executor, which re-validates every path before mutating anything.
package planner
