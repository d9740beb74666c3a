package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	config "github.com/tbeaudouin05/startupstack-checkout/api/config"
)

// Remote HTTP integration tests against a deployed instance at INTEGRATION_BASE_URL.

func remoteBaseURL(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Skipf("config not available: %v", err)
	}
	if cfg.IntegrationBaseURL == "" {
		t.Skip("INTEGRATION_BASE_URL not set")
	}
	return cfg.IntegrationBaseURL
}

func TestCreateCheckoutSessionHTTP_Remote_Integration(t *testing.T) {
	base := remoteBaseURL(t)

	b, _ := json.Marshal(map[string]any{"customerEmail": "", "priceId": ""})
	resp, err := http.Post(base+PathCreateCheckoutSession, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing parameters, got %d", resp.StatusCode)
	}
}

func TestVerifySessionHTTP_Remote_Integration(t *testing.T) {
	base := remoteBaseURL(t)

	b, _ := json.Marshal(map[string]any{"sessionId": "cs_test_does_not_exist"})
	resp, err := http.Post(base+PathVerifySession, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Fatalf("expected failure status for unknown session, got %d", resp.StatusCode)
	}
}

func TestOptionsHTTP_Remote_Integration(t *testing.T) {
	base := remoteBaseURL(t)

	req, err := http.NewRequest(http.MethodOptions, base+PathSendWelcomeEmail, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for OPTIONS, got %d", resp.StatusCode)
	}
}
