// Package registration validates event registrations and relays them to the
// external form-collection endpoint.
package registration

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names as they appear in the page form.
const (
	FieldName  = "name"
	FieldEmail = "email"
)

// Messages shown beneath a field that fails validation.
const (
	MsgNameTooShort = "Name must be at least 2 characters."
	MsgInvalidEmail = "Please enter a valid email address."
)

var fieldMessages = map[string]string{
	FieldName:  MsgNameTooShort,
	FieldEmail: MsgInvalidEmail,
}

// Submission is one registration attempt. It is never stored.
type Submission struct {
	Name  string `form:"name" validate:"required,min=2"`
	Email string `form:"email" validate:"required,email"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Normalize trims surrounding whitespace from both fields.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
}

// Validate checks the submission and returns ValidationErrors, one entry per
// failing field in form order, or nil.
func (s Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		seen[fe.Field()] = true
	}

	var out ValidationErrors
	for _, field := range []string{FieldName, FieldEmail} {
		if seen[field] {
			out = append(out, &ValidationError{Field: field, Message: fieldMessages[field]})
		}
	}
	return out
}
