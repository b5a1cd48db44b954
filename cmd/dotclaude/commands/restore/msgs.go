package restore

const (
	MsgShort = "Undo an apply by replaying a backup archive"

	MsgLong = `Load a backup archive, verify its integrity, and write every recorded
file back to its pre-apply state: files that did not exist before are
deleted, files that did get their original bytes back.

Restore refuses to run if any stored content fails its SHA256 check.`

	MsgExample = `  # Undo the last apply in the current directory
  dotclaude restore ~/.local/share/dotclaude/backups/<project>/<backup>.json

  # Restore into an explicit project path
  dotclaude restore backup.json ~/src/api`
)
