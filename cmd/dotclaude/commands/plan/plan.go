package plan

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotclaude/cmd/dotclaude/internal/cmdutil"
	"github.com/arthur-debert/dotclaude/pkg/config"
	"github.com/arthur-debert/dotclaude/pkg/display"
	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/filesystem"
	"github.com/arthur-debert/dotclaude/pkg/planner"
	"github.com/arthur-debert/dotclaude/pkg/profile"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

// NewCommand creates the plan command
func NewCommand() *cobra.Command {
	var (
		profileDir string
		format     string
	)

	cmd := &cobra.Command{
		Use:     "plan --profile DIR [project]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(profileDir, format, args)
		},
	}

	cmd.Flags().StringVar(&profileDir, "profile", "", "Profile bundle directory")
	cmd.Flags().StringVar(&format, "format", "terminal", "Output format: terminal or markdown")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func run(profileDir, format string, args []string) error {
	fsys := filesystem.NewOS()

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

	diffPlan, err := planner.GeneratePlan(fsys, projectID, projectPath, p)
	if err != nil {
		return err
	}
	if !cfg.GitCheck {
		diffPlan.Warnings = dropGitWarnings(diffPlan.Warnings)
	}

	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	switch format {
	case "terminal":
		fmt.Print(display.FormatPlanTerminal(diffPlan, isTTY))
	case "markdown":
		md := display.FormatPlanMarkdown(diffPlan)
		if isTTY {
			if renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle()); err == nil {
				if rendered, err := renderer.Render(md); err == nil {
					fmt.Print(rendered)
					return nil
				}
			}
			// Rendering problems fall through to the raw markdown.
		}
		fmt.Print(md)
	default:
		return errors.Newf(errors.ErrInvalidInput,
			"unknown format %q, expected terminal or markdown", format)
	}

	return nil
}

func dropGitWarnings(warnings []types.Warning) []types.Warning {
	kept := warnings[:0]
	for _, w := range warnings {
		if w.Severity == types.SeverityError {
			kept = append(kept, w)
		}
	}
	return kept
}
