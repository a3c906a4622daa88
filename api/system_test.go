package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garnizeh/portfolio/api"
)

func TestSystemHandlers(t *testing.T) {
	h := &api.SystemHandler{}

	cases := []struct {
		name    string
		handler http.HandlerFunc
		target  string
		want    map[string]string
	}{
		{
			name:    "Health",
			handler: h.HealthHandler,
			target:  "/health",
			want:    map[string]string{"status": "ok", "service": "portfolio"},
		},
		{
			name:    "Version",
			handler: h.VersionHandler("1.2.3", "2025-08-24T00:00:00Z"),
			target:  "/version",
			want:    map[string]string{"version": "1.2.3", "buildTime": "2025-08-24T00:00:00Z"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c.handler(w, httptest.NewRequest(http.MethodGet, c.target, nil))
			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != http.StatusOK {
				t.Fatalf("expected 200 got %d", res.StatusCode)
			}
			if ct := res.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
				t.Fatalf("expected json content-type, got %q", ct)
			}
			var got map[string]string
			if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("unexpected body %v, want %v", got, c.want)
			}
			for k, v := range c.want {
				if got[k] != v {
					t.Fatalf("%s: got %q want %q", k, got[k], v)
				}
			}
		})
	}
}
