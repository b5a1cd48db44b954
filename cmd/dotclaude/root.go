package dotclaude

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	applycmd "github.com/arthur-debert/dotclaude/cmd/dotclaude/commands/apply"
	backupcmd "github.com/arthur-debert/dotclaude/cmd/dotclaude/commands/backup"
	plancmd "github.com/arthur-debert/dotclaude/cmd/dotclaude/commands/plan"
	restorecmd "github.com/arthur-debert/dotclaude/cmd/dotclaude/commands/restore"
	verifycmd "github.com/arthur-debert/dotclaude/cmd/dotclaude/commands/verify"
	"github.com/arthur-debert/dotclaude/pkg/logging"
)

// Build metadata, injected via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// NewRootCmd creates the dotclaude root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "dotclaude",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(plancmd.NewCommand())
	rootCmd.AddCommand(applycmd.NewCommand())
	rootCmd.AddCommand(restorecmd.NewCommand())
	rootCmd.AddCommand(verifycmd.NewCommand())
	rootCmd.AddCommand(backupcmd.NewCommand())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dotclaude version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
		},
	}
}
