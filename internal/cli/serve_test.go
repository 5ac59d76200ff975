package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/errors"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/pipeline"
)

func testServer(t *testing.T) *server {
	t.Helper()
	logger := newLogger(io.Discard, log.FatalLevel)
	return newServer(pipeline.NewRunner(nil, nil, logger), pipeline.DefaultOptions(), logger)
}

func TestQueryOptions(t *testing.T) {
	base := pipeline.DefaultOptions()
	req := httptest.NewRequest(http.MethodGet,
		"/border.svg?amplitude=6&width=800&stroke=%232b2b2b&background=%23ffffff", nil)

	opts, err := queryOptions(req, base)
	if err != nil {
		t.Fatalf("queryOptions: %v", err)
	}

	if opts.Amplitude != 6 {
		t.Errorf("Amplitude = %v, want 6", opts.Amplitude)
	}
	if opts.Width != 800 {
		t.Errorf("Width = %v, want 800", opts.Width)
	}
	if opts.Stroke != "#2b2b2b" {
		t.Errorf("Stroke = %q, want #2b2b2b", opts.Stroke)
	}
	if opts.Background != "#ffffff" {
		t.Errorf("Background = %q, want #ffffff", opts.Background)
	}

	// Untouched parameters keep the base values.
	if opts.Height != base.Height {
		t.Errorf("Height = %v, should keep base %v", opts.Height, base.Height)
	}
}

func TestQueryOptionsBadNumber(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/border.svg?amplitude=wavy", nil)

	_, err := queryOptions(req, pipeline.DefaultOptions())
	if !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("error = %v, want INVALID_PARAMETER", err)
	}
}

func TestServerBorderSVG(t *testing.T) {
	handler := testServer(t).handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/border.svg?amplitude=6", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if rec.Header().Get("X-Artifact-Id") == "" {
		t.Error("missing X-Artifact-Id header")
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Errorf("body should be an svg document, got %q", rec.Body.String()[:40])
	}
}

func TestServerBorderJSON(t *testing.T) {
	handler := testServer(t).handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/border.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestServerRejectsInvalidParams(t *testing.T) {
	handler := testServer(t).handler()

	tests := []struct {
		name string
		url  string
	}{
		{"negative amplitude", "/border.svg?amplitude=-1"},
		{"non-numeric", "/border.svg?width=banana"},
		{"bad color", "/border.svg?stroke=chartreuse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestServerMetrics(t *testing.T) {
	handler := testServer(t).handler()

	// Generate one request so the counters have observations.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/border.svg", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("warmup request failed: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "wigglyborder_requests_total") {
		t.Error("metrics output missing request counter")
	}
	if !strings.Contains(body, "wigglyborder_render_duration_seconds") {
		t.Error("metrics output missing duration histogram")
	}
}

func TestServerHealthz(t *testing.T) {
	handler := testServer(t).handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", rec.Code)
	}
}
