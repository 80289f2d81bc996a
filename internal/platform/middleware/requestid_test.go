package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func serveRequestID(t *testing.T, incoming string) (captured string, rec *httptest.ResponseRecorder) {
	t.Helper()
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(chimiddleware.RequestIDHeader, incoming)
	}
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	}))
	h.ServeHTTP(rec, req)
	return captured, rec
}

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	captured, rec := serveRequestID(t, "")

	if captured == "" {
		t.Fatalf("expected generated request ID")
	}
	if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != captured {
		t.Fatalf("expected response header %q, got %q", captured, header)
	}
	parsed, err := uuid.Parse(captured)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", captured, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	captured, rec := serveRequestID(t, "external-id")

	if captured != "external-id" {
		t.Fatalf("expected request ID to remain external-id, got %q", captured)
	}
	if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != "external-id" {
		t.Fatalf("expected header external-id, got %q", header)
	}
}

func TestRequestIDReplacesInvalidHeader(t *testing.T) {
	for _, incoming := range []string{"valid\ninjected-line", "valid\x00null", strings.Repeat("a", 129)} {
		captured, _ := serveRequestID(t, incoming)
		if captured == incoming {
			t.Fatalf("expected %q to be replaced", incoming)
		}
		if _, err := uuid.Parse(captured); err != nil {
			t.Fatalf("expected generated UUID, got %q: %v", captured, err)
		}
	}
}

func TestIsValidRequestID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"", false},
		{"a", true},
		{"ABC-xyz_123.456", true},
		{strings.Repeat("a", 128), true},
		{strings.Repeat("a", 129), false},
		{"hello\nworld", false},
		{"hello\tworld", false},
		{"hello\x7fworld", false},
		{"hello\x80world", false},
		{"trace id 123", true},
		{"special!@#$%^&*()", true},
	}

	for _, tc := range tests {
		if got := isValidRequestID(tc.id); got != tc.valid {
			t.Errorf("isValidRequestID(%q) = %v, want %v", tc.id, got, tc.valid)
		}
	}
}
