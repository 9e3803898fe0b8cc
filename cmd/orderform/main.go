// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the orderform CLI.
// The serve subcommand runs the upload service; convert runs the same
// pipeline on local files.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the orderform CLI.
var rootCmd = &cobra.Command{
	Use:   "orderform",
	Short: "Convert a delivery list into per-category order forms",
	Long: `orderform splits a delivery-list spreadsheet into order-form workbooks,
one per product category, by matching keywords against the registered
product name. Each category's rows are written into its template workbook
and the results are returned as a zip archive.

Run "orderform serve" for the upload form, or "orderform convert" to work
on local files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if envFile == "" {
			return nil
		}
		if err := godotenv.Load(envFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
		fmt.Fprintln(os.Stderr, "Loaded environment from", envFile)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./orderform.yaml or ~/.config/orderform/config.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before running (missing file is ignored)")

	bindConfig(viper.GetViper())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("orderform")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "orderform"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
