package plan

const (
	MsgShort = "Preview the file operations a profile would perform"

	MsgLong = `Compare a profile bundle against a project and print the plan of file
operations (creates, modifies, deletes) that applying it would perform,
without touching anything.

Modify operations include a unified diff for review. An advisory warning is
added when the project's git working tree has uncommitted changes.`

	MsgExample = `  # Preview against the current directory
  dotclaude plan --profile ~/profiles/base

  # Preview against another project, as markdown
  dotclaude plan --profile ~/profiles/base ~/src/api --format markdown`
)
