// Package profile builds a types.Profile from a profile bundle directory.
//
// A bundle looks like:
//
//	profile.toml        manifest: name, optional id, claude_md mode
//	CLAUDE.md           content of the CLAUDE.md overlay (optional)
//	skills/<name>/SKILL.md
//	commands/<name>.md
//	agents/<name>.md
//
// Overlay files may open with a YAML frontmatter block; its name field
// overrides the name taken from the path and its description is carried for
// display. The file content, frontmatter included, is pushed to the project
// verbatim. Every resulting name passes paths.ValidateName.
package profile
