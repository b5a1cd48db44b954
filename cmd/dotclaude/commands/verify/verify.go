package verify

import (
	"fmt"

	"github.com/spf13/cobra"

	backuppkg "github.com/arthur-debert/dotclaude/pkg/backup"
	"github.com/arthur-debert/dotclaude/pkg/filesystem"
)

// NewCommand creates the verify command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "verify ARCHIVE",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
}

func run(archivePath string) error {
	fsys := filesystem.NewOS()

	b, err := backuppkg.Load(fsys, archivePath)
	if err != nil {
		return err
	}

	if err := backuppkg.VerifyIntegrity(b); err != nil {
		return err
	}

	fmt.Printf("Backup %s verified: %d file(s) intact.\n", b.ID, len(b.Files))
	return nil
}
