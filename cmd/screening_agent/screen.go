package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/docconv"
	"github.com/jonathan/resume-screener/internal/screening"
)

var screenJobTitle string

var screenCmd = &cobra.Command{
	Use:   "screen <resume-file>",
	Short: "Screen a single resume and print the outcome as JSON",
	Long:  `Convert a resume document to text, extract a candidate profile, generate qualifications for the given job title, and print the scored outcome to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScreen,
}

func init() {
	screenCmd.Flags().StringVar(&screenJobTitle, "job", "", "Job title to screen against (empty uses the default qualification block)")
	rootCmd.AddCommand(screenCmd)
}

func runScreen(_ *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	outcome, err := screening.ScreenDocument(path, data, screenJobTitle)
	if err != nil {
		var decodeErr *docconv.DecodeError
		if !errors.As(err, &decodeErr) {
			return err
		}
		// Decode failures still yield a fallback outcome; report and continue.
		fmt.Fprintf(os.Stderr, "Warning: %v (using filename fallback profile)\n", decodeErr)
	}

	out, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
