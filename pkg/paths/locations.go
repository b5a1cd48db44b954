package paths

import "path/filepath"

// Well-known locations, relative to the project root
const (
	// ClaudeMdFile is the project instructions file
	ClaudeMdFile = "CLAUDE.md"

	// ClaudeDir is the configuration directory a profile manages
	ClaudeDir = ".claude"

	// SkillFileName is the file a skill directory must contain
	SkillFileName = "SKILL.md"
)

// SkillPath returns the project-relative path for a named skill
func SkillPath(name string) string {
	return filepath.Join(ClaudeDir, "skills", name, SkillFileName)
}

// CommandPath returns the project-relative path for a named command
func CommandPath(name string) string {
	return filepath.Join(ClaudeDir, "commands", name+".md")
}

// AgentPath returns the project-relative path for a named agent
func AgentPath(name string) string {
	return filepath.Join(ClaudeDir, "agents", name+".md")
}
