// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/anthology-builder/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the catalog of built volumes",
	Long: `Catalog manages the local SQLite database of built volumes. Builds
run with --catalog record one row per volume; list shows them.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List volumes recorded in the catalog",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")

	store, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	volumes, err := store.List(context.Background())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(volumes)
	}

	if len(volumes) == 0 {
		fmt.Println("No volumes recorded.")
		return nil
	}

	fmt.Printf("%-8s  %-8s  %-4s  %-6s  %-20s  %s\n",
		"Code", "Abbrev", "Year", "Papers", "Built", "Title")
	for _, v := range volumes {
		fmt.Printf("%-8s  %-8s  %-4s  %-6d  %-20s  %s\n",
			v.Code, v.Abbrev, v.Year, v.Papers,
			v.BuiltAt.Format(time.RFC3339), truncate(v.Title, 50))
	}

	fmt.Printf("\n%d volumes\n", len(volumes))
	return nil
}

func init() {
	catalogCmd.PersistentFlags().String("db", "anthology.db", "catalog database path")
	catalogListCmd.Flags().Bool("json", false, "output volumes as JSON")

	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
