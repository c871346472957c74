package main

import (
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/api"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/server/endpoints"
)

var serverURL string

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	registry := api.NewRegistry()
	for _, ep := range endpoints.All() {
		registry.Register(ep)
	}

	apiCmd := registry.BuildCommands(getServerURL)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	rootCmd.AddCommand(apiCmd)
}
