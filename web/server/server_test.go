package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/config"
)

func newTestServer() *Server {
	defaults := config.DefaultConfig()
	defaults.Width = 16
	defaults.Height = 8
	defaults.SamplesPerPixel = 1
	defaults.MaxDepth = 4
	defaults.Workers = 2
	return NewServer(0, defaults, log.New(io.Discard, "", 0))
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS header")
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, newTestServer(), "/api/scenes")

	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if strings.Join(body["scenes"], ",") != "default,simple" {
		t.Errorf("Unexpected scenes %v", body["scenes"])
	}
}

func TestHandleRender(t *testing.T) {
	rec := get(t, newTestServer(), "/api/render?scene=simple&width=12&height=6&seed=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if rec.Header().Get("X-Render-Samples") != "72" {
		t.Errorf("Expected 72 samples, got %q", rec.Header().Get("X-Render-Samples"))
	}

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 6 {
		t.Errorf("Expected 12x6 image, got %v", b)
	}
}

func TestHandleRender_Deterministic(t *testing.T) {
	s := newTestServer()
	first := get(t, s, "/api/render?scene=default&seed=11")
	second := get(t, s, "/api/render?scene=default&seed=11")

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("Expected 200s, got %d and %d", first.Code, second.Code)
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("Same seed produced different images")
	}
	if first.Header().Get("X-Render-Id") == second.Header().Get("X-Render-Id") {
		t.Error("Expected distinct render IDs")
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		query  url.Values
		status int
	}{
		{"unknown scene", url.Values{"scene": {"cornell"}}, http.StatusNotFound},
		{"width too large", url.Values{"width": {"5000"}}, http.StatusBadRequest},
		{"non-numeric spp", url.Values{"spp": {"lots"}}, http.StatusBadRequest},
		{"zero depth", url.Values{"depth": {"0"}}, http.StatusBadRequest},
		{"bad seed", url.Values{"seed": {"1.5"}}, http.StatusBadRequest},
	}

	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, "/api/render?"+tt.query.Encode())
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] == "" {
				t.Errorf("Expected JSON error body, got %q", rec.Body.String())
			}
		})
	}
}

func TestParseRenderRequest_Defaults(t *testing.T) {
	s := newTestServer()
	req, err := s.parseRenderRequest(url.Values{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if req.Scene != "default" || req.Width != 16 || req.Height != 8 || req.SamplesPerPixel != 1 || req.Seed != 42 {
		t.Errorf("Unexpected defaults %+v", req)
	}
}

func TestRenderLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRenderLogger("render-7", log.New(&buf, "", 0))
	logger.Printf("Render completed in %v\n", "1s")

	if got := buf.String(); got != "[render-7] Render completed in 1s\n" {
		t.Errorf("Unexpected log output %q", got)
	}
}
