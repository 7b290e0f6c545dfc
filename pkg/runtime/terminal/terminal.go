package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/playbill/pkg/runtime/terminal/commands"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	logger  zerolog.Logger
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	LogOutput io.Writer
	// OpenDB opens SQL catalogs; sql.Open is used when nil.
	OpenDB catalog.OpenDB
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: opts.LogOutput}).With().Timestamp().Logger(),
	}

	cli.rootCmd = cli.newRootCmd(commands.Env{OpenDB: opts.OpenDB})
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

// SetArgs overrides the arguments taken from os.Args.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd(env commands.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "playbill",
		Short:         "Theatrical billing statements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewStatementCmd(env))
	cmd.AddCommand(commands.NewPlayTypesCmd())
	cmd.AddCommand(commands.NewFormatsCmd())

	return cmd
}
