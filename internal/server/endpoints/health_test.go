package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/config"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/providers"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/svcctx"
)

func doHealth(t *testing.T, services *svcctx.Services) HealthResponse {
	t.Helper()
	ep := &HealthEndpoint{}
	_, _, handler := ep.Route()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	if services != nil {
		req = req.WithContext(svcctx.WithServices(req.Context(), services))
	}
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cm, err := config.NewManager("")
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	resp := doHealth(t, &svcctx.Services{ConfigMgr: cm, Logger: quietLogger()})

	if resp.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", resp.Status)
	}
	if resp.APIConfigured {
		t.Error("APIConfigured = true without a credential")
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC3339: %v", resp.Timestamp, err)
	}
}

func TestHealthEndpoint_ConfiguredCredential(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "AIza-test")

	cm, err := config.NewManager("")
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	resp := doHealth(t, &svcctx.Services{ConfigMgr: cm, Logger: quietLogger()})
	if !resp.APIConfigured {
		t.Error("APIConfigured = false with a real credential")
	}
}

func TestHealthEndpoint_PlaceholderCredential(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", providers.PlaceholderAPIKey)

	cm, err := config.NewManager("")
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	resp := doHealth(t, &svcctx.Services{ConfigMgr: cm, Logger: quietLogger()})
	if resp.APIConfigured {
		t.Error("APIConfigured = true with the placeholder credential")
	}
}

func TestHealthEndpoint_NoServices(t *testing.T) {
	resp := doHealth(t, nil)
	if resp.Status != "healthy" {
		t.Errorf("Status = %q, want healthy even without services", resp.Status)
	}
	if resp.APIConfigured {
		t.Error("APIConfigured = true without a config manager")
	}
}
