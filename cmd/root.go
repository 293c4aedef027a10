package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-scheduler/config"
)

var (
	logLevel   string // Log verbosity level, overrides log_level from the config
	configPath string // Explicit config file instead of ./config.yaml

	cfg *config.SchedulerConfig
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "os-scheduler",
	Short: "CPU scheduling simulator and Banker's algorithm safety checker",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				logrus.Fatalf("Invalid config file %s: %v", configPath, err)
			}
			cfg = loaded
		} else {
			cfg = config.GetSchedulerConfig()
		}

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", level)
		}
		logrus.SetLevel(parsed)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml)")
}
