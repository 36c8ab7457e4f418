package errors

import (
	"errors"
	"fmt"
)

// Common error values for the client
var (
	// ErrBusy is returned when a form is submitted while a previous submission is in flight
	ErrBusy = errors.New("submission already in progress")
	// ErrStale is returned when a newer request superseded the one that just completed
	ErrStale = errors.New("stale response discarded")
	// ErrUnknownRoute is returned when navigating to a route that does not exist
	ErrUnknownRoute = errors.New("unknown route")
	// ErrValidation is returned when local form validation fails
	ErrValidation = errors.New("validation failed")

	ErrNotFound    = errors.New("not found")
	ErrUnsupported = errors.New("unsupported operation")
)

// DefaultRequestMessage is shown when the server does not supply a message.
const DefaultRequestMessage = "No fue posible completar la solicitud."

// MissingBaseURLMessage is the message of the ConfigurationError raised when no API base URL is set.
const MissingBaseURLMessage = "Configura VITE_API_BASE_URL en tu archivo .env."

// ErrorKind discriminates the closed set of client failures.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfiguration
	KindRequest
	KindNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindRequest:
		return "request"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// ConfigurationError means the client cannot attempt the call at all.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// RequestError is a non-2xx response from the API.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NetworkError is a transport level failure or an unreadable response body.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network error"
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Kind reports which client failure err carries.
func Kind(err error) ErrorKind {
	var (
		configErr  *ConfigurationError
		requestErr *RequestError
		networkErr *NetworkError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &configErr):
		return KindConfiguration
	case errors.As(err, &requestErr):
		return KindRequest
	case errors.As(err, &networkErr):
		return KindNetwork
	default:
		return KindUnknown
	}
}

// Message returns the text to show a user for err. Configuration and request errors
// carry their own message; anything else, network failures included, gets fallback.
func Message(err error, fallback string) string {
	var (
		configErr  *ConfigurationError
		requestErr *RequestError
	)
	switch {
	case errors.As(err, &configErr) && configErr.Message != "":
		return configErr.Message
	case errors.As(err, &requestErr) && requestErr.Message != "":
		return requestErr.Message
	default:
		return fallback
	}
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Join returns an error wrapping every non-nil error, or nil when there are none
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
