package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteErrorWritesErrorOnlyJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusBadRequest, "Missing query parameter: 'a'")

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}

	if len(body) != 1 || body["error"] != "Missing query parameter: 'a'" {
		t.Fatalf("expected only the error field, got %#v", body)
	}
}

func TestWriteJSONDoesNotEscapeQuotesInStrings(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusOK, map[string]string{"error": "Invalid number for 'a': 'foo'"})

	if got := w.Body.String(); got != "{\"error\":\"Invalid number for 'a': 'foo'\"}\n" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	tests := []struct {
		handler http.HandlerFunc
		status  int
	}{
		{handler: NotFound, status: http.StatusNotFound},
		{handler: MethodNotAllowed, status: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		w := httptest.NewRecorder()
		tc.handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != tc.status {
			t.Fatalf("expected status %d, got %d", tc.status, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decoding response body: %v", err)
		}
		if body["error"] != http.StatusText(tc.status) {
			t.Fatalf("expected error %q, got %q", http.StatusText(tc.status), body["error"])
		}
	}
}
