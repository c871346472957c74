package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/config"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/testutil"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/types"
)

func newTestServer(t *testing.T) (*Server, testutil.ServerConfig) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")

	tc := testutil.NewServerConfig(t)
	cfgYAML := "server:\n  host: " + tc.Host + "\n  port: \"" + tc.Port + "\"\n"
	if err := os.WriteFile(tc.ConfigFile, []byte(cfgYAML), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cm, err := config.NewManager(tc.ConfigFile)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	srv, err := New(Config{
		Host:          tc.Host,
		Port:          tc.Port,
		ConfigManager: cm,
		Logger:        tc.Logger,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv, tc
}

func startTestServer(t *testing.T, srv *Server, tc testutil.ServerConfig) *testutil.StartServer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx)
	}()

	if err := testutil.WaitForServer(tc.URL(), 10*time.Second); err != nil {
		cancel()
		t.Fatalf("server never became healthy: %v", err)
	}

	handle := &testutil.StartServer{Cancel: cancel, Done: done}
	t.Cleanup(func() { handle.Stop() })
	return handle
}

func TestServer_New(t *testing.T) {
	srv, tc := newTestServer(t)

	if srv.Addr() != tc.Host+":"+tc.Port {
		t.Errorf("Addr() = %q, want %q", srv.Addr(), tc.Host+":"+tc.Port)
	}
	if srv.IsRunning() {
		t.Error("IsRunning() = true before Start")
	}
	if srv.Enhancer() == nil {
		t.Error("Enhancer() = nil")
	}
	if !srv.Registry().HasLLM("gemini") {
		t.Error("registry missing the default gemini provider")
	}
}

func TestServer_RequiresConfigManager(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("New() = nil error without a config manager")
	}
}

func TestServer_Lifecycle(t *testing.T) {
	srv, tc := newTestServer(t)
	handle := startTestServer(t, srv, tc)

	if !srv.IsRunning() {
		t.Error("IsRunning() = false while serving")
	}

	if err := handle.Stop(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if srv.IsRunning() {
		t.Error("IsRunning() = true after shutdown")
	}
}

func TestServer_EnhanceOverHTTP(t *testing.T) {
	srv, tc := newTestServer(t)
	startTestServer(t, srv, tc)

	body, _ := json.Marshal(map[string]any{"text": "i recieve it", "tone": "original"})
	resp, err := testutil.HTTPClient().Post(tc.URL()+"/api/enhance", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/enhance: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var result types.EnhancementResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// No credential in the test environment, so the local corrector serves it.
	if result.CorrectedText != "I receive it" {
		t.Errorf("CorrectedText = %q", result.CorrectedText)
	}
}

func TestServer_HealthOverHTTP(t *testing.T) {
	srv, tc := newTestServer(t)
	startTestServer(t, srv, tc)

	resp, err := testutil.HTTPClient().Get(tc.URL() + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var health struct {
		Status        string `json:"status"`
		APIConfigured bool   `json:"api_configured"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("status = %q", health.Status)
	}
	if health.APIConfigured {
		t.Error("api_configured = true without a credential")
	}
}

func TestServer_ServesWebUI(t *testing.T) {
	srv, tc := newTestServer(t)
	startTestServer(t, srv, tc)

	for _, path := range []string{"/", "/some/spa/route"} {
		resp, err := testutil.HTTPClient().Get(tc.URL() + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			t.Errorf("GET %s: status = %d, want 200", path, resp.StatusCode)
			continue
		}
		if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
			t.Errorf("GET %s: Content-Type = %q, want text/html", path, ct)
		}
		resp.Body.Close()
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	srv, tc := newTestServer(t)
	startTestServer(t, srv, tc)

	req, _ := http.NewRequest(http.MethodOptions, tc.URL()+"/api/enhance", nil)
	resp, err := testutil.HTTPClient().Do(req)
	if err != nil {
		t.Fatalf("OPTIONS /api/enhance: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if origin := resp.Header.Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", origin)
	}
}

func TestServer_DoubleStartRejected(t *testing.T) {
	srv, tc := newTestServer(t)
	startTestServer(t, srv, tc)

	if err := srv.Start(context.Background()); err == nil {
		t.Fatal("second Start() = nil error, want already-running rejection")
	}
}
