package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/shenjiangqiu/shell/core/config"
	"github.com/shenjiangqiu/shell/core/logger"
)

var cfgPath string

// loadConfig loads config.yaml from --config, falling back to the
// built-in defaults when no configuration has been initialized.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return configuration, err
}

// newSessionLogger opens the configured event log and starts a
// session. The returned func closes the log.
func newSessionLogger(cfg *config.Configuration) (*logger.SessionLogger, func(), error) {
	fd, err := cfg.OpenEventLog()
	if err != nil {
		return nil, nil, err
	}
	if fd == nil {
		return logger.Discard().NewSession(), func() {}, nil
	}
	return logger.NewJSONLinesRecorder(fd).NewSession(), func() { fd.Close() }, nil
}

// rootCmd represents the base command; without a subcommand it runs
// the interactive interpreter.
var rootCmd = &cobra.Command{
	Use:   "msh",
	Short: "A minimal pipeline shell.",
	Long: `A line-oriented command interpreter that compiles each input line
into a pipeline of external processes connected by pipes, with < and >
redirection, and reports every stage's termination status.`,
	RunE: runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
