package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/template-api/internal/api"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	Register(humachi.New(router, api.NewConfig("test")))
	return router
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}
	if body := resp.Body.String(); body != `{"message":"Service is running","health":"ok"}` {
		t.Fatalf("unexpected body: %s", body)
	}

	var h HealthData
	if err := json.Unmarshal(resp.Body.Bytes(), &h); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if h.Health != "ok" {
		t.Fatalf("expected health 'ok', got %s", h.Health)
	}
}

func TestHealthHandlerIsIdempotent(t *testing.T) {
	router := newTestRouter()

	var first string
	for i := range 5 {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
		if i == 0 {
			first = resp.Body.String()
			continue
		}
		if resp.Body.String() != first {
			t.Fatalf("response %d differs: %q vs %q", i, resp.Body.String(), first)
		}
	}
}
