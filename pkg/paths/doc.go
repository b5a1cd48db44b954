// Package paths holds the path-safety primitives every filesystem mutation in
// dotclaude passes through, plus the well-known locations a profile writes to.
//
// Two gates matter:
//
//   - ValidateName guards user-supplied skill/command/agent names before they
//     become path components.
//   - SafeJoin joins an untrusted relative path to a project root, rejecting
//     traversal, absolute components, null bytes and symlinks.
//
// Nothing else in the codebase may build a mutation target without going
// through SafeJoin first.
package paths
