package dotclaude

// Root command messages
const (
	MsgRootShort = "Push reusable Claude configuration profiles onto projects, reversibly"

	MsgRootLong = `dotclaude reconciles a configuration profile (a reusable bundle of
CLAUDE.md instructions, skills, commands and agents) against a target
project. It produces a reviewable plan of file operations, applies the plan
transactionally, and records every file's prior state into a hash-verified
backup so any apply can be undone byte for byte.`
)
