// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "djchat",
	Short: "DJCHAT - chat server browser",
	Long: `DJCHAT serves the chat shell: an app bar with a dark mode switch,
a collapsible drawer of popular servers and a category drawer, plus the
JSON API for listing servers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
