// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the version stamped by "mage build" (VERSION is passed
// as -ldflags "-X main.version=...").
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of orderform",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("orderform %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
