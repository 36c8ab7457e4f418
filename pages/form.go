// Package pages holds the state and submit handlers of every screen. Pages turn every
// failure into a Status the front end can show; the returned errors only tell the
// caller whether the interaction succeeded.
package pages

import (
	"context"
	"sync"

	"github.com/jrsteele09/gastometro/auth"
	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/router"
)

// StatusType classifies a status banner
type StatusType string

const (
	StatusNone    StatusType = ""
	StatusSuccess StatusType = "success"
	StatusError   StatusType = "error"
	StatusWarning StatusType = "warning"
)

// Status is the banner shown above a form or screen
type Status struct {
	Type    StatusType
	Message string
}

// Navigator moves the application to another screen
type Navigator interface {
	Navigate(next router.Route) (router.Route, error)
}

// Form holds field values, field errors, the status banner and the submitting flag.
// Only one submission may be in flight at a time.
type Form struct {
	mu         sync.RWMutex
	fields     []string
	values     map[string]string
	errors     auth.FieldErrors
	status     Status
	submitting bool
}

// NewForm creates a form with the given fields, all empty.
func NewForm(fields ...string) *Form {
	f := &Form{fields: fields}
	f.reset()
	return f
}

func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
}

func (f *Form) Value(field string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[field]
}

// Values returns a copy of every field value, including fields set outside the declared ones.
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Fields returns the field names in declaration order.
func (f *Form) Fields() []string {
	return append([]string(nil), f.fields...)
}

// Errors returns a copy of the field errors from the last validation.
func (f *Form) Errors() auth.FieldErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(auth.FieldErrors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) FieldError(field string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errors[field]
}

func (f *Form) Status() Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

func (f *Form) Submitting() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.submitting
}

// submit runs fn as the single in-flight submission. The status is cleared first.
func (f *Form) submit(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return errors.ErrBusy
	}
	f.submitting = true
	f.status = Status{}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	return fn(ctx)
}

// validate records errs and returns errors.ErrValidation when any field failed.
func (f *Form) validate(errs auth.FieldErrors) error {
	f.mu.Lock()
	f.errors = errs
	f.mu.Unlock()
	return errs.Err()
}

func (f *Form) setStatus(t StatusType, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = Status{Type: t, Message: message}
}

// fail shows err's message, or fallback when err carries none, and returns err.
func (f *Form) fail(err error, fallback string) error {
	f.setStatus(StatusError, errors.Message(err, fallback))
	return err
}

// Reset empties every field and error. The status is kept.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Form) reset() {
	f.values = make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		f.values[field] = ""
	}
	f.errors = auth.FieldErrors{}
}
