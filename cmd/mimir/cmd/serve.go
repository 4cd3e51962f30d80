/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/mimirdb/pkg/api"
	"github.com/ssargent/mimirdb/pkg/meta"
	"github.com/ssargent/mimirdb/pkg/rowlog"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stats HTTP server",
	Long: `Start the MimirDB stats server exposing health, Prometheus metrics,
the cached catalog, and row log statistics.

Example:
  mimir serve --port 8080 --tables shop.orders,shop.customers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		tables, _ := cmd.Flags().GetStringSlice("tables")
		if port == 0 {
			port = cfg.Port
		}

		catalog, err := meta.OpenPebbleCatalog(filepath.Join(cfg.DataDir, "catalog"))
		if err != nil {
			return err
		}
		defer catalog.Close()

		cache := meta.NewCache(catalog)
		for _, table := range tables {
			if err := cache.Init(table); err != nil {
				return fmt.Errorf("failed to load %s: %w", table, err)
			}
		}

		fsync, err := time.ParseDuration(cfg.Writer.FsyncInterval)
		if err != nil {
			fsync = time.Second
		}
		logWriter, err := rowlog.NewWriter(rowlog.WriterConfig{
			Dir:           filepath.Join(cfg.DataDir, "rows"),
			FsyncInterval: fsync,
		}, rowlog.NewMetrics())
		if err != nil {
			return err
		}
		defer logWriter.Close()

		server := api.NewServer(cache, logWriter, api.ServerConfig{
			Bind: cfg.Bind,
			Port: port,
		})
		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (defaults to config)")
	serveCmd.Flags().StringSlice("tables", nil, "Tables to preload into the catalog cache")
}
