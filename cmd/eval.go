package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shenjiangqiu/shell/core"
)

// evalCmd compiles and runs one command line non-interactively. The
// process exit status is the last stage's exit status, which makes
// msh usable from scripts and test harnesses.
var evalCmd = &cobra.Command{
	Use:   "eval LINE...",
	Short: "Run a single command line and exit with its status.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		session, closeLog, err := newSessionLogger(configuration)
		if err != nil {
			return err
		}

		interp := core.NewInterpreter(configuration, session, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		interp.Interpret(strings.Join(args, " "))
		closeLog()

		if code := interp.LastStatus(); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
