/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/mimirdb/pkg/meta"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the table catalog",
}

// catalogRegisterCmd represents the catalog register command
var catalogRegisterCmd = &cobra.Command{
	Use:   "register <db.table> <column> [column...]",
	Short: "Register a table and its columns",
	Long: `Register a table definition in the catalog, assigning numeric
identifiers to the table and each column.

Example:
  mimir catalog register shop.orders id customer total`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, table, err := meta.ParseDBTable(args[0])
		if err != nil {
			return err
		}

		catalog, err := meta.OpenPebbleCatalog(filepath.Join(cfg.DataDir, "catalog"))
		if err != nil {
			return err
		}
		defer catalog.Close()

		tableID, err := catalog.RegisterTable(db, table, args[1:])
		if err != nil {
			return fmt.Errorf("failed to register %s.%s: %w", db, table, err)
		}

		fmt.Printf("Registered %s.%s with table id %d (%d columns)\n", db, table, tableID, len(args)-1)
		return nil
	},
}

// catalogShowCmd represents the catalog show command
var catalogShowCmd = &cobra.Command{
	Use:   "show <db.table>",
	Short: "Show a registered table definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := meta.OpenPebbleCatalog(filepath.Join(cfg.DataDir, "catalog"))
		if err != nil {
			return err
		}
		defer catalog.Close()

		cache := meta.NewCache(catalog)
		if err := cache.Init(args[0]); err != nil {
			return err
		}

		tableID, err := cache.TableID(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		names := cache.ColumnNames(args[0])
		fmt.Printf("%s (table id %d)\n", strings.ToLower(args[0]), tableID)
		for _, name := range names {
			db, table, _ := meta.ParseDBTable(args[0])
			id, err := cache.ColumnID(db + "." + table + "." + name)
			if err != nil {
				continue
			}
			fmt.Printf("  %-20s id %d\n", name, id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogRegisterCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}
