// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the anthology-builder CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the anthology-builder CLI.
var rootCmd = &cobra.Command{
	Use:   "anthology-builder",
	Short: "Convert review-system exports into the anthology archive layout",
	Long: `anthology-builder converts conference-submission metadata and PDFs
exported from the review system into the publication-archive layout:
renumbered PDFs, per-paper BibTeX records, and a volume bibliography.

Run it from the directory holding the meta, accepted, and submissions
exports, with the PDFs under pdf/. Use check to validate an export
without writing anything, and build to produce the proceedings/ tree.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./anthology-builder.yaml or ~/.config/anthology-builder/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("anthology-builder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "anthology-builder"))
		}
	}

	viper.SetEnvPrefix("ANTHOLOGY_BUILDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
