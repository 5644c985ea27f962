package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chenawi66/chefhu-2026/shared/failure"
	"github.com/chenawi66/chefhu-2026/transport/http/response"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected an error body, got %q: %v", rec.Body.String(), err)
	}

	return body.Error
}

func TestWithError_ClientFailuresKeepTheirMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithError(rec, failure.BadRequestFromString("group size must be exactly 4 people"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := decodeError(t, rec); msg != "group size must be exactly 4 people" {
		t.Errorf("expected the failure message, got %q", msg)
	}
}

func TestWithError_ServerFaultsAreGeneric(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "wrapped internal failure",
			err:  failure.InternalError(errors.New("failed to read store document: open /var/data/local-db.json: permission denied")),
		},
		{
			name: "plain error defaults to 500",
			err:  errors.New("dial tcp 127.0.0.1:6379: connect: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
			}
			if msg := decodeError(t, rec); msg != http.StatusText(http.StatusInternalServerError) {
				t.Errorf("expected the generic status text, got %q", msg)
			}
		})
	}
}

func TestWithJSON_WritesPayloadAsIs(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusOK, map[string]bool{"success": true})

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != `{"success":true}` {
		t.Errorf("expected the raw payload, got %q", rec.Body.String())
	}
}
