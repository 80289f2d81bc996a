package welcome

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWelcomeHandler(t *testing.T) {
	resp := httptest.NewRecorder()
	welcomeHandler(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	want := `{"message":"Hello from the business logic layer!","status":"success","timestamp":"2024-01-01T00:00:00Z"}`
	if got := resp.Body.String(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestWelcomeHandlerRejectsPost(t *testing.T) {
	resp := httptest.NewRecorder()
	welcomeHandler(resp, httptest.NewRequest(http.MethodPost, "/", nil))

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
	if allow := resp.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}
