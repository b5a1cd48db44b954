package backup

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotclaude/cmd/dotclaude/internal/cmdutil"
	backuppkg "github.com/arthur-debert/dotclaude/pkg/backup"
	"github.com/arthur-debert/dotclaude/pkg/config"
	"github.com/arthur-debert/dotclaude/pkg/filesystem"
)

// NewCommand creates the backup command
func NewCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:     "backup [project]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(description, args)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Free-form note stored with the backup")

	return cmd
}

func run(description string, args []string) error {
	fsys := filesystem.NewOS()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	projectPath, projectID, err := cmdutil.ResolveProject(args)
	if err != nil {
		return err
	}

	archivePath := filepath.Join(cfg.BackupsDir, projectID.String(),
		"full-"+time.Now().UTC().Format("20060102-150405")+".json")

	b, err := backuppkg.CreateFullBackup(fsys, projectID, projectPath, archivePath, description)
	if err != nil {
		return err
	}

	fmt.Printf("Backed up %d file(s).\nArchive: %s\n", len(b.Files), b.ArchivePath)
	return nil
}
