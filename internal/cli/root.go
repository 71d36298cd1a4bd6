package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/web3dev-labs/polkastarter/internal/banner"
	"github.com/web3dev-labs/polkastarter/internal/branding"
	"github.com/web3dev-labs/polkastarter/internal/config"
	"github.com/web3dev-labs/polkastarter/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a Polkadot project: smart contract folders, CI workflows,
IDE rules and a React frontend generated with create-polkadot-dapp.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := config.LogLevel()
		if verbose {
			level = "debug"
		}
		l, err := logging.New(level, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newCreator(cmd)
		return c.Run(cmd.Context(), createOpts)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug diagnostics")

	f := rootCmd.Flags()
	f.StringVarP(&createOpts.Name, "name", "n", "", "Project name (prompted when omitted)")
	f.StringVar(&createOpts.ParentDir, "dir", "", "Directory the project is created in (default: current directory)")
	f.BoolVar(&createOpts.SkipFrontend, "skip-frontend", false, "Create the project skeleton only")
	f.BoolVarP(&createOpts.Quiet, "quiet", "q", false, "Hide the output of git, yarn and node")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// terminalWidth returns the width of stdout, or zero when it is not a
// terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

func printBanner(cmd *cobra.Command) {
	if err := banner.Render(cmd.OutOrStdout(), terminalWidth()); err != nil {
		logger.Debug("rendering banner", zap.Error(err))
	}
}
