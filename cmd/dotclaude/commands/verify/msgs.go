package verify

const (
	MsgShort = "Check a backup archive's integrity"

	MsgLong = `Recompute the SHA256 of every file stored in a backup archive and compare
it against the recorded hash. Any mismatch names the exact path and both
hash values. A backup that fails verification must not be restored.`

	MsgExample = `  dotclaude verify ~/.local/share/dotclaude/backups/<project>/<backup>.json`
)
