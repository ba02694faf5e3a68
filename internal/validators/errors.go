package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID            = errors.New("metadata id is required")
	ErrEmptyName          = errors.New("metadata name is required")
	ErrNameTooLong        = errors.New("metadata name is too long")
	ErrDescriptionTooLong = errors.New("metadata description is too long")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)
