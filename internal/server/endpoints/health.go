package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/api"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/svcctx"
)

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	APIConfigured bool   `json:"api_configured"`
}

// HealthEndpoint handles GET /api/health.
type HealthEndpoint struct{}

func (e *HealthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/health", e.handler
}

func (e *HealthEndpoint) RequiresInit() bool { return false }

func (e *HealthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	configured := false
	if cm := svcctx.ConfigManagerFrom(r.Context()); cm != nil {
		configured = cm.Get().APIConfigured()
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().Format(time.RFC3339),
		APIConfigured: configured,
	})
}

func (e *HealthEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/api/health", &resp); err != nil {
				return err
			}
			fmt.Printf("Status:         %s\n", resp.Status)
			fmt.Printf("API configured: %t\n", resp.APIConfigured)
			return nil
		},
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
