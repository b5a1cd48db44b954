package apply

const (
	MsgShort = "Apply a profile to a project, recording a backup for undo"

	MsgLong = `Generate a plan for the profile against the project and execute it.

Before each file is created, modified or deleted its prior state is recorded
into a backup archive, which is persisted even if the apply fails partway.
Restoring that archive undoes the apply exactly, byte for byte.

Plans carrying error-severity warnings are refused unless --force is given
(or apply.gate_on_errors is disabled in the configuration).`

	MsgExample = `  # Apply a profile to the current directory
  dotclaude apply --profile ~/profiles/base

  # Apply to another project, ignoring error-severity warnings
  dotclaude apply --profile ~/profiles/base ~/src/api --force`
)
