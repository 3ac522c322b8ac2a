package cmd

import (
	"github.com/jsphweid/chordcast/config"
	"github.com/spf13/cobra"
)

var (
	cfg      config.Config
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "chordcast",
	Short: "Broadcast chord degrees from a presenter to an audience",
	Long: `chordcast lets a presenter pick scale degrees in a key and shows the
resulting chord to everyone watching the same room.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
