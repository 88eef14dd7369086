// Package main provides the entry point for the Career Recommender HTTP API
// server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_api",
	Short: "Career Recommender HTTP API Server",
	Long:  "Career Recommender ranks a fixed career catalog against a user's skills and constraints via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
