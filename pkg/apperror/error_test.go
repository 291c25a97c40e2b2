package apperror

import (
	"errors"
	"net/http"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without internal",
			err:  New(http.StatusBadRequest, "bad_request", "Invalid request"),
			want: "bad_request: Invalid request",
		},
		{
			name: "with internal",
			err:  ErrRegistrationFailed.WithInternal(errors.New("connection refused")),
			want: "registration_failed: Something went wrong. Please try again later. (connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_CopiesDoNotMutateBase(t *testing.T) {
	inner := errors.New("inner")
	derived := ErrValidation.WithMessage("custom").WithInternal(inner)

	if ErrValidation.Message != "Validation failed" {
		t.Errorf("base message mutated: %q", ErrValidation.Message)
	}
	if ErrValidation.Internal != nil {
		t.Error("base internal mutated")
	}
	if !errors.Is(derived, inner) {
		t.Error("derived error should unwrap to inner")
	}
	if derived.Message != "custom" {
		t.Errorf("derived message = %q, want custom", derived.Message)
	}
}

func TestToHTTPError_NonAppError(t *testing.T) {
	status, body := ToHTTPError(errors.New("boom"))
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
	errObj := body["error"].(map[string]any)
	if errObj["code"] != "internal_error" {
		t.Errorf("code = %v, want internal_error", errObj["code"])
	}
}
