package registration

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single field that failed a rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every failing field of a submission.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields maps field name to message.
func (e ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		out[fe.Field] = fe.Message
	}
	return out
}

// TransportError means the outbound request never completed: DNS failure,
// refused connection, timeout.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("submit to %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError means the endpoint answered with a non-2xx status.
// It is only produced when responses are inspected.
type RejectedError struct {
	StatusCode int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("form endpoint rejected submission: status %d", e.StatusCode)
}

// IsValidation reports whether err carries field validation failures.
func IsValidation(err error) bool {
	var verrs ValidationErrors
	return errors.As(err, &verrs)
}

// IsDeliveryFailure reports whether err is a transport or rejection failure,
// the two cases the user sees as "Registration failed."
func IsDeliveryFailure(err error) bool {
	var te *TransportError
	var re *RejectedError
	return errors.As(err, &te) || errors.As(err, &re)
}
