package apply

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotclaude/cmd/dotclaude/internal/cmdutil"
	backuppkg "github.com/arthur-debert/dotclaude/pkg/backup"
	"github.com/arthur-debert/dotclaude/pkg/config"
	"github.com/arthur-debert/dotclaude/pkg/display"
	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/executor"
	"github.com/arthur-debert/dotclaude/pkg/filesystem"
	"github.com/arthur-debert/dotclaude/pkg/logging"
	"github.com/arthur-debert/dotclaude/pkg/planner"
	"github.com/arthur-debert/dotclaude/pkg/profile"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

// NewCommand creates the apply command
func NewCommand() *cobra.Command {
	var (
		profileDir string
		force      bool
	)

	cmd := &cobra.Command{
		Use:     "apply --profile DIR [project]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(profileDir, force, args)
		},
	}

	cmd.Flags().StringVar(&profileDir, "profile", "", "Profile bundle directory")
	cmd.Flags().BoolVar(&force, "force", false, "Apply even if the plan has error-severity warnings")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func run(profileDir string, force bool, args []string) error {
	fsys := filesystem.NewOS()
	logger := logging.GetLogger("apply")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	projectPath, projectID, err := cmdutil.ResolveProject(args)
	if err != nil {
		return err
	}

	p, err := profile.LoadFromDir(fsys, profileDir)
	if err != nil {
		return err
	}

	plan, err := planner.GeneratePlan(fsys, projectID, projectPath, p)
	if err != nil {
		return err
	}

	if plan.IsEmpty() {
		fmt.Println("Project already matches the profile, nothing to do.")
		return nil
	}

	if plan.HasErrors() && cfg.GateOnErrors && !force {
		return errors.New(errors.ErrPlanInvalid,
			"plan has error-severity warnings; review with 'dotclaude plan' or re-run with --force")
	}

	b := types.NewBackup(projectID, &p.ID, fmt.Sprintf("apply profile %q", p.Name), "")
	b.ArchivePath = filepath.Join(cfg.BackupsDir, projectID.String(), b.ID.String()+".json")

	applyErr := executor.Apply(fsys, plan, projectPath, b)

	// The backup is persisted even after a partial apply; it is the only
	// way back.
	if len(b.Files) > 0 {
		if saveErr := backuppkg.Save(fsys, b); saveErr != nil {
			if applyErr != nil {
				logger.Error().Err(saveErr).Msg("Cannot persist partial backup")
				return applyErr
			}
			return saveErr
		}
	}

	if applyErr != nil {
		fmt.Printf("Apply failed partway; restore with:\n  dotclaude restore %s %s\n",
			b.ArchivePath, projectPath)
		return applyErr
	}

	fmt.Printf("Applied %s.\nBackup: %s\n", display.Summarize(plan), b.ArchivePath)
	return nil
}
