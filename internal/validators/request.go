package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/eat-that-list/models"
)

// Field names accepted by [RequestValidator.Validate].
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldDescription = "description"
)

// Limits enforced on request payloads.
const (
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes  = 72
	MaxNameLength     = 100
	MaxDescriptionLen = 500
)

// RequestValidator checks the shape of incoming requests. Emptiness of list
// names and item descriptions is left to the services, which answer with a
// dedicated error.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.CreateListRequest:
		return v.validateCreateList(value, fields...)
	case *models.CreateListRequest:
		return v.validateCreateList(*value, fields...)

	case models.CreateItemRequest:
		return v.validateCreateItem(value, fields...)
	case *models.CreateItemRequest:
		return v.validateCreateItem(*value, fields...)

	case models.InviteRequest:
		return validateEmail(value.Email)
	case *models.InviteRequest:
		return validateEmail(value.Email)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(user.Email); err != nil {
				return err
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateList(req models.CreateListRequest, fields ...string) error {
	for _, f := range orDefault(fields, FieldName) {
		if f != FieldName {
			return ErrUnknownField
		}
		if utf8.RuneCountInString(strings.TrimSpace(req.Name)) > MaxNameLength {
			return ErrNameTooLong
		}
	}
	return nil
}

func (v *RequestValidator) validateCreateItem(req models.CreateItemRequest, fields ...string) error {
	for _, f := range orDefault(fields, FieldDescription) {
		if f != FieldDescription {
			return ErrUnknownField
		}
		if utf8.RuneCountInString(strings.TrimSpace(req.Description)) > MaxDescriptionLen {
			return ErrDescriptionTooLong
		}
	}
	return nil
}

// validateEmail accepts a bare address only, without a display name.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func orDefault(fields []string, def ...string) []string {
	if len(fields) == 0 {
		return def
	}
	return fields
}
