package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/golfcup/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidName         = "INVALID_NAME"
	CodeInvalidIndex        = "INVALID_INDEX"
	CodeInvalidTeam         = "INVALID_TEAM"
	CodeInvalidSortKey      = "INVALID_SORT_KEY"
	CodeInvalidSlot         = "INVALID_SLOT"
	CodeInvalidField        = "INVALID_FIELD"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeRoundNotFound       = "ROUND_NOT_FOUND"
	CodeNotFound            = "NOT_FOUND"
	CodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeUnsupportedFormat   = "UNSUPPORTED_FORMAT"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusOf returns the HTTP status an error maps to
func StatusOf(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "Player name must not be empty"}}
	case errors.Is(err, model.ErrInvalidIndex):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidIndex, "Handicap index must be a finite number"}}
	case errors.Is(err, model.ErrInvalidTeam):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTeam, "Team must be A, B or NA"}}
	case errors.Is(err, model.ErrInvalidSortKey):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSortKey, "Sort must be name-asc, hi-asc or hi-desc"}}
	case errors.Is(err, model.ErrInvalidSlot):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSlot, "Slot index out of range"}}
	case errors.Is(err, model.ErrInvalidField):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidField, "Field does not exist for this round"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrRoundNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoundNotFound, "Round not found"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "At least two players must be included to balance teams"}}
	case errors.Is(err, model.ErrUnsupportedFormat):
		return &httpError{http.StatusConflict, APIError{CodeUnsupportedFormat, "Round format has no pairing layout"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates an error for an unknown route
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewMethodNotAllowedError creates an error for an unsupported method
func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, "Method not allowed"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
