package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/chenawi66/chefhu-2026/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("bad input")),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("bad input"),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("unauthorized"),
			code:    http.StatusUnauthorized,
			message: "unauthorized",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("reservation"),
			code:    http.StatusNotFound,
			message: "reservation",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("already booked"),
			code:    http.StatusConflict,
			message: "already booked",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("disk error")),
			code:    http.StatusInternalServerError,
			message: "disk error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure
			if !errors.As(tt.err, &fail) {
				t.Fatalf("expected a *failure.Failure, got %T", tt.err)
			}
			if fail.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, fail.Code)
			}
			if fail.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, fail.Message)
			}
		})
	}
}

func TestNilErrors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(failure.Unauthorized("nope")); code != http.StatusUnauthorized {
		t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, code)
	}

	wrapped := fmt.Errorf("context: %w", failure.BadRequestFromString("bad"))
	if code := failure.GetCode(wrapped); code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, code)
	}

	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, code)
	}
}
