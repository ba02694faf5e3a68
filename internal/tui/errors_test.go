// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-metadata-console/internal/app"
	"github.com/MKhiriev/go-metadata-console/internal/i18n"
	"github.com/MKhiriev/go-metadata-console/internal/service"
	"github.com/MKhiriev/go-metadata-console/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeError(t *testing.T) {
	tr := i18n.New("en")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty name", fmt.Errorf("%w: %w", service.ErrInvalidMetadata, validators.ErrEmptyName), "Please enter a name."},
		{"description too long", fmt.Errorf("%w: %w", service.ErrInvalidMetadata, validators.ErrDescriptionTooLong), "The description must be at most 1,000 characters."},
		{"rejected by catalog", fmt.Errorf("%w: bad request", service.ErrInvalidMetadata), "the catalog rejected the change"},
		{"not found", service.ErrMetadataNotFound, "the metadata no longer exists"},
		{"wrapped unavailable", fmt.Errorf("reload: %w", service.ErrCatalogUnavailable), "the catalog is unavailable"},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tr, tt.err))
		})
	}
}

func TestFailureText(t *testing.T) {
	tr := i18n.New("en")

	assert.Equal(t, "Failed to delete metadata", failureText(tr, app.KeyDeleteFailed, nil))
	assert.Equal(t, "Failed to delete metadata: you may not change this metadata",
		failureText(tr, app.KeyDeleteFailed, service.ErrAccessDenied))
}

func TestFailureText_Korean(t *testing.T) {
	tr := i18n.New("ko")

	assert.Equal(t, "메타데이터를 불러오지 못했습니다: 카탈로그에 연결할 수 없습니다",
		failureText(tr, app.KeyFetchFailed, fmt.Errorf("fetch: %w", service.ErrCatalogUnavailable)))
	assert.Equal(t, "설명은 최대 1,000자까지 입력할 수 있습니다.",
		humanizeError(tr, validators.ErrDescriptionTooLong))
}
