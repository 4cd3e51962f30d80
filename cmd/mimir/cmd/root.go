/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ssargent/mimirdb/pkg/config"
)

var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mimir",
	Short: "MimirDB - fixed-layout row storage",
	Long: `MimirDB writes fixed-layout binary rows through a reusable, growable
buffer into an append-only row log, with a persistent catalog mapping
table and column names to numeric identifiers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg = config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
			cfg.DataDir = dataDir
		}

		level, err := log.ParseLevel(cfg.Logging.Level)
		if err != nil {
			level = log.InfoLevel
		}
		log.SetLevel(level)

		return os.MkdirAll(cfg.DataDir, 0750)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory (overrides config)")
	rootCmd.PersistentFlags().StringP("config", "c", config.GetDefaultConfigPath(), "Config file path")
}
