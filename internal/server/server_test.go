package server

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestServerRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan *ServerState, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, Config{}, started)
	}()

	var state *ServerState
	select {
	case state = <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("Server did not start in time")
	}

	resp, err := http.Get("http://" + state.Address + "/")
	if err != nil {
		t.Fatalf("Failed to connect to server: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status OK, got %v", resp.Status)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	if !strings.Contains(string(bodyBytes), "Budallas") {
		t.Errorf("Expected body to contain 'Budallas', got body: %s", string(bodyBytes))
	}

	healthResp, err := http.Get("http://" + state.Address + "/healthz")
	if err != nil {
		t.Fatalf("Failed to reach health endpoint: %v", err)
	}
	healthResp.Body.Close()
	if healthResp.StatusCode != http.StatusOK {
		t.Errorf("Expected health OK, got %v", healthResp.Status)
	}

	// Cancel the context to stop the server
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Server shut down with error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Errorf("Server took too long to shut down")
	}
}
