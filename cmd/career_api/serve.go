package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/career-recommender/internal/catalog"
	"github.com/jonathan/career-recommender/internal/config"
	"github.com/jonathan/career-recommender/internal/logger"
	"github.com/jonathan/career-recommender/internal/recommend"
	"github.com/jonathan/career-recommender/internal/server"
)

var (
	servePort    int
	serveConfig  string
	serveCatalog string
	serveLogJSON bool
	serveDebug   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for career recommendations.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to a careers JSON file (default: embedded catalog)")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON-encoded logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig(cmd.Flags().Changed("port"))
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	cat, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	engine := recommend.NewEngine(cat, log)

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		Engine: engine,
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Info("career recommender ready",
		zap.Int("careers", cat.Len()),
		zap.Int("port", cfg.Port),
		zap.Strings("endpoints", []string{"POST /recommend", "POST /debug/terms", "GET /health"}),
	)

	return srv.Start()
}

// loadServeConfig resolves configuration in layers: file, environment, flags.
func loadServeConfig(portFlagSet bool) (*config.Config, error) {
	cfg := config.Default()
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if portFlagSet {
		cfg.Port = servePort
	}
	if serveCatalog != "" {
		cfg.CatalogFile = serveCatalog
	}
	if serveLogJSON {
		cfg.LogJSON = true
	}
	if serveDebug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cat, nil
}
