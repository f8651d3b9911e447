package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardwright/internal/config"
)

// cfg is the configuration loaded before any subcommand runs
var cfg *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardwright",
	Short: "Tool for normalizing raw card datasets",
	Long: `Cardwright turns the raw external card dataset into the strongly typed card list
used by the app. Every enum-valued field is checked against its closed set and a
single bad record fails the whole run.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	RootCmd.AddCommand(validateCmd)
}

// setup loads .env and the config file, then configures logging
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv("."); err != nil {
		return err
	}

	c, err := config.LoadConfig()
	if err != nil {
		return err
	}
	cfg = c

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level, _ = cmd.Flags().GetString("log-level")
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(lvl)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
