package restore

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotclaude/cmd/dotclaude/internal/cmdutil"
	backuppkg "github.com/arthur-debert/dotclaude/pkg/backup"
	"github.com/arthur-debert/dotclaude/pkg/filesystem"
)

// NewCommand creates the restore command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "restore ARCHIVE [project]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1:])
		},
	}
}

func run(archivePath string, projectArgs []string) error {
	fsys := filesystem.NewOS()

	projectPath, _, err := cmdutil.ResolveProject(projectArgs)
	if err != nil {
		return err
	}

	b, err := backuppkg.Load(fsys, archivePath)
	if err != nil {
		return err
	}

	// A backup is never trusted for restore without passing verification.
	if err := backuppkg.VerifyIntegrity(b); err != nil {
		return err
	}

	if err := backuppkg.Restore(fsys, projectPath, b); err != nil {
		return err
	}

	fmt.Printf("Restored %d file(s) from backup %s.\n", len(b.Files), b.ID)
	return nil
}
