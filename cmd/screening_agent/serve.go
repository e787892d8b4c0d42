package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveLogJSON    bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the screening pipeline: resume upload or text, profile extraction, qualification generation, and scoring.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Use JSON log encoding")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over the config file.
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveLogJSON {
		cfg.LogJSON = true
	}
	if serveDebug {
		cfg.Debug = true
	}

	resolved := cfg.WithDefaults()
	if err := resolved.Validate(); err != nil {
		return err
	}

	log, err := logger.New(resolved.LogJSON, resolved.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv := server.New(server.Config{
		Port:           resolved.Port,
		MaxUploadBytes: resolved.MaxUploadBytes,
	}, log)

	return srv.Start()
}
