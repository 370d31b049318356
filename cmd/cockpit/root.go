package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configFile is set by the --config flag.
var configFile string

var rootCmd = &cobra.Command{
	Use:   "cockpit",
	Short: "ToDo Cockpit is a personal task-management server",
	Long: `ToDo Cockpit serves a REST API for categories, todos, and labels,
with manual ordering, filtering, and aggregate statistics, backed by SQLite.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (optional; COCKPIT_* env vars always apply)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cockpit v0.1.0")
	},
}
