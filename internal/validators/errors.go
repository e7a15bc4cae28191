package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrNameTooLong        = errors.New("list name is too long")
	ErrDescriptionTooLong = errors.New("item description is too long")
)
