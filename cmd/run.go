package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shenjiangqiu/shell/core"
)

// runCmd runs the interactive interpreter loop.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive interpreter.",
	Args:  cobra.ExactArgs(0),
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
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
	runErr := interp.Run()
	closeLog()
	if runErr != nil {
		return runErr
	}

	if code := interp.LastStatus(); interp.Quitting() && code != 0 {
		os.Exit(code)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
