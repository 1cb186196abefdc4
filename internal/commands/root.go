// Package commands implements the dayplanner command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/dayplanner/internal/config"
	"github.com/mmynk/dayplanner/pkg/logging"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "dayplanner",
	Short: "Daily planner and workout tracker",
	Long: `dayplanner serves the planning and workout tracking API.

Configuration comes from the environment, with a .env file in the working
directory read first when present.`,
	SilenceUsage: true,
}

// SetVersion sets the version reported by the health check.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(restCmd)
}

// setup loads the configuration and installs the logger.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.LogLevel)
	return cfg, nil
}
