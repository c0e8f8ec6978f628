package errors

import (
	"encoding/json"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Kind    string
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, kind, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Helpers for the error envelope every endpoint shares.
var (
	InvalidRequest = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, "invalid_request", msg) }
	NotFound       = func(msg string) *HTTPError { return NewHTTPError(http.StatusNotFound, "not_found", msg) }
	Internal       = func(msg string) *HTTPError { return NewHTTPError(http.StatusInternalServerError, "internal_error", msg) }
	Unauthorized   = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, "unauthorized", msg) }
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteJSON writes the {error, message} envelope with the error's status code.
func WriteJSON(w http.ResponseWriter, e *HTTPError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(errorBody{Error: e.Kind, Message: e.Message})
}
