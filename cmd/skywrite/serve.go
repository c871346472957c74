package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/config"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/home"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SkyWrite server",
	Long: `Start the SkyWrite HTTP server.

The server provides:
  - POST /api/enhance - Correct and enhance text
  - GET  /api/health  - Health check (reports whether an LLM key is configured)
  - /                 - The web UI

Examples:
  skywrite serve                 # Start on default port 8080
  skywrite serve --port 3000     # Start on custom port
  skywrite serve --host 0.0.0.0  # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Load config, preferring an explicit --config file, then the home dir
		cfgPath := cfgFile
		if cfgPath == "" && h.ConfigExists() {
			cfgPath = h.ConfigPath()
		}
		cfgMgr, err := config.NewManager(cfgPath)
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()

		if !cfgMgr.Get().APIConfigured() {
			logger.Warn("no LLM API key configured; requests will use the local rule-based corrector",
				"hint", "set GEMINI_API_KEY to enable the LLM path")
		}

		srv, err := server.New(server.Config{
			Host:          serveHost,
			Port:          servePort,
			ConfigManager: cfgMgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config: 127.0.0.1)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config: 8080)")

	rootCmd.AddCommand(serveCmd)
}
