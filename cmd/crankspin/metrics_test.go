package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lixenwraith/crankspin/status"
)

func TestMetricsHandler(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get("device.frames").Store(12)
	reg.Bools.Get("device.docked").Store(true)

	srv := httptest.NewServer(newMetricsHandler(reg, "crankspin"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	for _, want := range []string{"crankspin_device_frames 12", "crankspin_device_docked 1", "go_goroutines"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("Expected %q in metrics output", want)
		}
	}
}

func TestMetricsHandlerUnknownPath(t *testing.T) {
	srv := httptest.NewServer(newMetricsHandler(status.NewRegistry(), "crankspin"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/other")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}

func TestMetricsServiceLifecycle(t *testing.T) {
	reg := status.NewRegistry()
	reg.Floats.Get("device.fps").Set(50)

	m := newMetricsService("127.0.0.1:0", newMetricsHandler(reg, "crankspin"))
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	resp, err := http.Get("http://" + m.ln.Addr().String() + "/metrics")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "crankspin_device_fps 50") {
		t.Error("Expected fps gauge from running service")
	}

	if err := m.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := m.Stop(); err != nil {
		t.Errorf("Expected second Stop to be a no-op, got %v", err)
	}
}

func TestMetricsServiceBusyPort(t *testing.T) {
	first := newMetricsService("127.0.0.1:0", http.NotFoundHandler())
	if err := first.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer first.Stop()

	second := newMetricsService(first.ln.Addr().String(), http.NotFoundHandler())
	if err := second.Start(); err == nil {
		second.Stop()
		t.Error("Expected busy port to fail Start")
	}
}
