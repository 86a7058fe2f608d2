package manager

import (
	"errors"
	"net/http"
)

// modelUnavailableError signals a prediction request while no model is held.
// Its message is internal; the HTTP layer must not echo it to callers.
type modelUnavailableError struct{}

func (modelUnavailableError) Error() string   { return "model unavailable" }
func (modelUnavailableError) StatusCode() int { return http.StatusInternalServerError }

// ErrModelUnavailable constructs a modelUnavailableError.
func ErrModelUnavailable() error { return modelUnavailableError{} }

// IsModelUnavailable reports whether err indicates that no model is loaded.
func IsModelUnavailable(err error) bool {
	var e modelUnavailableError
	return errors.As(err, &e)
}

// loadFailureError carries the recorded startup load error. Unlike
// modelUnavailableError its message is meant for operators and is returned by /health.
type loadFailureError struct{ cause string }

func (e loadFailureError) Error() string   { return "Model failed to load: " + e.cause }
func (e loadFailureError) StatusCode() int { return http.StatusInternalServerError }

// ErrLoadFailure constructs a loadFailureError for the given cause.
func ErrLoadFailure(cause string) error { return loadFailureError{cause: cause} }

// IsLoadFailure reports whether err describes a failed startup load.
func IsLoadFailure(err error) bool {
	var e loadFailureError
	return errors.As(err, &e)
}
