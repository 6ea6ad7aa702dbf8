// Package main provides the entry point for the newsguard CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newsguard",
	Short: "Fabricated-news risk assessment",
	Long:  "Newsguard scores news articles for fabrication risk by running a weighted rule checklist through a generation model and corroborating the claims against web search evidence.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
