package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmission_ValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", true},
		{"one character", "J", true},
		{"one multibyte character", "Ñ", true},
		{"two characters", "Jo", false},
		{"two multibyte characters", "Ñá", false},
		{"full name", "Juan dela Cruz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := Submission{Name: tt.input, Email: "juan@example.com"}
			err := sub.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, map[string]string{FieldName: MsgNameTooShort}, verrs.Fields())
		})
	}
}

func TestSubmission_ValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", true},
		{"no at sign", "juan.example.com", true},
		{"missing domain", "juan@", true},
		{"missing local part", "@example.com", true},
		{"plain word", "not-an-email", true},
		{"contains space", "juan dela@example.com", true},
		{"simple", "juan@example.com", false},
		{"subdomain and plus", "juan.delacruz+events@mail.example.ph", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := Submission{Name: "Juan dela Cruz", Email: tt.input}
			err := sub.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, map[string]string{FieldEmail: MsgInvalidEmail}, verrs.Fields())
		})
	}
}

func TestSubmission_ValidateBothFieldsInFormOrder(t *testing.T) {
	err := Submission{}.Validate()

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, FieldName, verrs[0].Field)
	assert.Equal(t, FieldEmail, verrs[1].Field)
	assert.True(t, IsValidation(err))
	assert.False(t, IsDeliveryFailure(err))
}

func TestSubmission_Normalize(t *testing.T) {
	sub := Submission{Name: "  Juan dela Cruz \t", Email: " juan@example.com\n"}
	sub.Normalize()

	assert.Equal(t, "Juan dela Cruz", sub.Name)
	assert.Equal(t, "juan@example.com", sub.Email)
}

func TestSubmission_WhitespaceOnlyNameFailsAfterNormalize(t *testing.T) {
	sub := Submission{Name: "   ", Email: "juan@example.com"}
	sub.Normalize()

	assert.True(t, IsValidation(sub.Validate()))
}
