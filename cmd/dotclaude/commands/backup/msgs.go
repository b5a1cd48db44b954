package backup

const (
	MsgShort = "Snapshot a project's CLAUDE.md and .claude tree"

	MsgLong = `Create a full backup of the project's managed configuration (CLAUDE.md and
everything under .claude), independent of any profile or plan. The snapshot
is persisted immediately and can be restored like any apply backup.`

	MsgExample = `  # Snapshot the current directory before experimenting
  dotclaude backup --description "before trying the new profile"

  # Snapshot another project
  dotclaude backup ~/src/api`
)
