// Package main provides the entry point for the resume screening service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screening_agent",
	Short: "Resume screening service",
	Long:  "Screens resumes against generated job qualifications: extracts a candidate profile from document text, derives requirements from a job title, and computes a weighted qualification score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
