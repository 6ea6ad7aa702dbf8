package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsguard/internal/server"
)

var (
	servePort      int
	serveRulesPath string
	serveVerbose   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running assessments and browsing stored results.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveRulesPath, "rules", "", "Path to a custom rules JSON file")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed progress information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get API key from environment
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	// Search credentials and database URL are optional; missing ones disable
	// corroboration and persistence respectively.
	cfg := server.Config{
		Port:           servePort,
		APIKey:         apiKey,
		SearchAPIKey:   os.Getenv("SEARCH_API_KEY"),
		SearchEngineID: os.Getenv("SEARCH_ENGINE_ID"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RulesPath:      serveRulesPath,
		Verbose:        serveVerbose,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
