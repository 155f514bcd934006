package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-patient-vault/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"

	MinUsernameLength = 4
	MinPasswordLength = 12
)

// CredentialsValidator checks sign-up credentials before any I/O happens.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// Lengths are counted in characters, not bytes.
func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if utf8.RuneCountInString(c.Username) < MinUsernameLength {
				return ErrUsernameTooShort
			}
		case FieldPassword:
			if utf8.RuneCountInString(c.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
