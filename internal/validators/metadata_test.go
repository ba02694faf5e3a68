// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-metadata-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validMetadata() models.Metadata {
	return models.Metadata{ID: "m1", Name: "Sales Data", Description: "monthly"}
}

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// TestNewMetadataValidator
// ---------------------------------------------------------------------------

func TestNewMetadataValidator(t *testing.T) {
	v := NewMetadataValidator()
	require.NotNil(t, v)
	assert.IsType(t, &MetadataValidator{}, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewMetadataValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// models.Metadata
// ---------------------------------------------------------------------------

func TestValidate_Metadata(t *testing.T) {
	longName := strings.Repeat("я", MaxNameLength+1)
	longDesc := strings.Repeat("d", MaxDescriptionLength+1)

	tests := []struct {
		name    string
		mutate  func(m *models.Metadata)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Metadata) {}},
		{name: "empty id", mutate: func(m *models.Metadata) { m.ID = "" }, wantErr: ErrEmptyID},
		{name: "blank name", mutate: func(m *models.Metadata) { m.Name = "   " }, wantErr: ErrEmptyName},
		{name: "name at limit", mutate: func(m *models.Metadata) { m.Name = strings.Repeat("я", MaxNameLength) }},
		{name: "name too long", mutate: func(m *models.Metadata) { m.Name = longName }, wantErr: ErrNameTooLong},
		{name: "empty description allowed", mutate: func(m *models.Metadata) { m.Description = "" }},
		{name: "description too long", mutate: func(m *models.Metadata) { m.Description = longDesc }, wantErr: ErrDescriptionTooLong},
		{name: "scoped to name ignores id", mutate: func(m *models.Metadata) { m.ID = "" }, fields: []string{FieldName}},
		{name: "unknown field", mutate: func(*models.Metadata) {}, fields: []string{"owner"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetadata()
			tt.mutate(&m)

			err := NewMetadataValidator().Validate(context.Background(), &m, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// models.MetadataUpdate
// ---------------------------------------------------------------------------

func TestValidate_MetadataUpdate(t *testing.T) {
	tests := []struct {
		name    string
		update  models.MetadataUpdate
		fields  []string
		wantErr error
	}{
		{name: "name only", update: models.NameUpdate("Sales Data v2")},
		{name: "description cleared", update: models.DescriptionUpdate("")},
		{name: "empty update", update: models.MetadataUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "whitespace name", update: models.NameUpdate(" \t"), wantErr: ErrEmptyName},
		{name: "long description", update: models.DescriptionUpdate(strings.Repeat("x", MaxDescriptionLength+1)), wantErr: ErrDescriptionTooLong},
		{
			name:   "scoped to description skips bad name",
			update: models.MetadataUpdate{Name: strPtr(""), Description: strPtr("ok")},
			fields: []string{FieldDescription},
		},
		{name: "unknown field", update: models.NameUpdate("x"), fields: []string{FieldID}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMetadataValidator().Validate(context.Background(), tt.update, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
