package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-metadata-console/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the catalog identifier of a record.
	FieldID = "id"

	// FieldName targets the display name. Blank names are rejected.
	FieldName = "name"

	// FieldDescription targets the optional description.
	FieldDescription = "description"
)

const (
	MaxNameLength        = 150
	MaxDescriptionLength = 1000
)

type MetadataValidator struct {
}

func NewMetadataValidator() Validator {
	return &MetadataValidator{}
}

func (v *MetadataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Metadata:
		return v.validateMetadata(ctx, value, fields...)
	case *models.Metadata:
		return v.validateMetadata(ctx, *value, fields...)

	case models.MetadataUpdate:
		return v.validateMetadataUpdate(ctx, value, fields...)
	case *models.MetadataUpdate:
		return v.validateMetadataUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MetadataValidator) validateMetadata(_ context.Context, m models.Metadata, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(m.ID) == "" {
				return ErrEmptyID
			}
		case FieldName:
			if err := validateName(m.Name); err != nil {
				return err
			}
		case FieldDescription:
			if err := validateDescription(m.Description); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMetadataUpdate checks only the fields the update carries. fields
// narrows the check further.
func (v *MetadataValidator) validateMetadataUpdate(_ context.Context, u models.MetadataUpdate, fields ...string) error {
	if u.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if u.Name == nil {
				continue
			}
			if err := validateName(*u.Name); err != nil {
				return err
			}
		case FieldDescription:
			if u.Description == nil {
				continue
			}
			if err := validateDescription(*u.Description); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
