package apperrors

import "fmt"

// EmptyQueryMessage is shown when a search is submitted without any non-whitespace character.
const EmptyQueryMessage = "Please enter a search term"

// ErrValidation is returned when user input is rejected before any request is made.
type ErrValidation struct {
	Message string
}

// Error implements the error interface.
func (e *ErrValidation) Error() string {
	return e.Message
}

// Is allows for error checking with errors.Is().
func (e *ErrValidation) Is(target error) bool {
	_, ok := target.(*ErrValidation)
	return ok
}

// NewEmptyQueryError creates the validation error for a blank query.
func NewEmptyQueryError() *ErrValidation {
	return &ErrValidation{Message: EmptyQueryMessage}
}

// ErrTransport represents a network failure or a non-2xx response from the search API.
// StatusCode is zero when no response was received.
type ErrTransport struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *ErrTransport) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "request failed"
}

// Unwrap returns the underlying network error, if any.
func (e *ErrTransport) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrTransport) Is(target error) bool {
	_, ok := target.(*ErrTransport)
	return ok
}

// NewStatusError creates an ErrTransport for an unexpected HTTP status.
func NewStatusError(url string, statusCode int) *ErrTransport {
	return &ErrTransport{URL: url, StatusCode: statusCode}
}

// ErrMalformedResponse is returned when the search API answers 2xx with a body
// that cannot be decoded.
type ErrMalformedResponse struct {
	Err error
}

// Error implements the error interface.
func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

// Unwrap returns the decode error.
func (e *ErrMalformedResponse) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrMalformedResponse) Is(target error) bool {
	_, ok := target.(*ErrMalformedResponse)
	return ok
}

// FetchErrorMessage is the user-facing message for a failed search.
func FetchErrorMessage(err error) string {
	return fmt.Sprintf("Error fetching data: %v", err)
}
