package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    map[string]string
	}{
		{"no version", "", map[string]string{"status": "ok"}},
		{"with version", "1.2.0", map[string]string{"status": "ok", "version": "1.2.0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(Config{Version: tt.version})

			req := httptest.NewRequest("GET", "/healthz", nil)
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(body) != len(tt.want) {
				t.Fatalf("body = %v, want %v", body, tt.want)
			}
			for k, v := range tt.want {
				if body[k] != v {
					t.Errorf("%s = %q, want %q", k, body[k], v)
				}
			}
		})
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{AllowAll: true})
	srv.Router().Get("/api/projects", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})
	srv.Router().Get("/about", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("about"))
	})

	req := httptest.NewRequest("OPTIONS", "/api/projects", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header on the API")
	}

	req = httptest.NewRequest("GET", "/about", nil)
	req.Header.Set("Origin", "http://example.com")
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("pages should not carry CORS headers")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "folio_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	srv := New(Config{Gatherer: reg})
	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "folio_test_total 1") {
		t.Errorf("metrics body missing counter:\n%s", w.Body.String())
	}
}

func TestMetricsDisabled(t *testing.T) {
	srv := New(Config{})
	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without a gatherer, got %d", w.Code)
	}
}
