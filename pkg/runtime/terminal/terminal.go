package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bid-tools/proposal-atlas/pkg/runtime/terminal/commands"
	"github.com/bid-tools/proposal-atlas/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{}
	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal-atlas",
		Short: "Commercial proposal evaluation tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(NewReporter(out), export.NewReporter(out), out))
	cmd.AddCommand(commands.NewCurrenciesCmd(out))

	return cmd
}
