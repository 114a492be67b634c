package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got == "" {
		t.Fatal("expected a generated request ID in context")
	}
	if rec.Header().Get(RequestIDHeader) != got {
		t.Errorf("response header %s = %q, want %q", RequestIDHeader, rec.Header().Get(RequestIDHeader), got)
	}
}

func TestRequestID_Passthrough(t *testing.T) {
	t.Parallel()

	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got != "client-supplied-id" {
		t.Errorf("request ID = %q, want client-supplied value", got)
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	if id := GetRequestID(req.Context()); id != "" {
		t.Errorf("expected empty request ID without middleware, got %q", id)
	}
}
