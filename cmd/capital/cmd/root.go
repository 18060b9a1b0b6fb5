package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "capital",
	Short: "An incremental economic simulation",
	Long: `Capital is an incremental economic simulation played one in-game hour at a time.

Take jobs, invest in networking and education to unlock better offers,
borrow when you must and let savings compound.

The game state is saved after every tick and every action. One-shot
commands pick up where the last one left off; the real-time "play" loop
owns the save while it runs, so stop it before using the others:

  capital play             run the clock in real time, one hour per second
  capital status           show where you stand
  capital jobs list        see the offers on the table
  capital jobs hire <id>   take one`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	cfgFile  string
	logLevel string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/capital/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
}
