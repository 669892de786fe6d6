// Package apperrors tests verify the custom error types (ErrValidation,
// ErrTransport, ErrMalformedResponse), their Error() messages, Is() matching
// semantics, Unwrap chains and the user-facing fetch error message.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// ErrValidation
// ---------------------------------------------------------------------------

func TestNewEmptyQueryError(t *testing.T) {
	t.Parallel()
	err := NewEmptyQueryError()

	if err.Error() != "Please enter a search term" {
		t.Errorf("Error() = %q, want %q", err.Error(), "Please enter a search term")
	}
	if !errors.Is(err, &ErrValidation{}) {
		t.Error("expected errors.Is to match *ErrValidation")
	}
	if errors.Is(err, &ErrTransport{}) {
		t.Error("expected errors.Is not to match *ErrTransport")
	}
}

// ---------------------------------------------------------------------------
// ErrTransport
// ---------------------------------------------------------------------------

func TestErrTransport_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *ErrTransport
		expected string
	}{
		{
			name:     "status code",
			err:      NewStatusError("http://x/search/shows?q=a", 500),
			expected: "HTTP error! status: 500",
		},
		{
			name:     "network error",
			err:      &ErrTransport{URL: "http://x", Err: errors.New("connection refused")},
			expected: "connection refused",
		},
		{
			name:     "no details",
			err:      &ErrTransport{},
			expected: "request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrTransport_Unwrap(t *testing.T) {
	t.Parallel()
	err := &ErrTransport{URL: "http://x", Err: context.DeadlineExceeded}

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
	if !errors.Is(fmt.Errorf("search: %w", err), &ErrTransport{}) {
		t.Error("expected errors.Is to match *ErrTransport through wrapping")
	}
}

// ---------------------------------------------------------------------------
// ErrMalformedResponse
// ---------------------------------------------------------------------------

func TestErrMalformedResponse(t *testing.T) {
	t.Parallel()
	cause := errors.New("unexpected end of JSON input")
	err := &ErrMalformedResponse{Err: cause}

	if err.Error() != "malformed response: unexpected end of JSON input" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the decode error")
	}
	if !errors.Is(err, &ErrMalformedResponse{}) {
		t.Error("expected errors.Is to match *ErrMalformedResponse")
	}
}

// ---------------------------------------------------------------------------
// Cross-type isolation
// ---------------------------------------------------------------------------

func TestErrorTypes_CrossTypeIsolation(t *testing.T) {
	t.Parallel()
	errs := []error{
		&ErrValidation{Message: "x"},
		&ErrTransport{StatusCode: 500},
		&ErrMalformedResponse{Err: errors.New("x")},
	}

	for i, a := range errs {
		for j, b := range errs {
			if i == j {
				continue
			}
			if errors.Is(a, b) {
				t.Errorf("expected errors.Is(%T, %T) to be false", a, b)
			}
		}
	}
}

func TestFetchErrorMessage(t *testing.T) {
	t.Parallel()
	msg := FetchErrorMessage(NewStatusError("http://x", 500))

	if !strings.HasPrefix(msg, "Error fetching data:") {
		t.Errorf("message %q should start with %q", msg, "Error fetching data:")
	}
	if msg != "Error fetching data: HTTP error! status: 500" {
		t.Errorf("FetchErrorMessage() = %q", msg)
	}
}
