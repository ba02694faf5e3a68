package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-metadata-console/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	other := errors.New("something else")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"not found", fmt.Errorf("%w: metadata not found", adapter.ErrNotFound), ErrMetadataNotFound},
		{"duplicated name", fmt.Errorf("%w: duplicated name", adapter.ErrConflict), ErrDuplicateName},
		{"other conflict", fmt.Errorf("%w: stale", adapter.ErrConflict), ErrInvalidMetadata},
		{"bad request", fmt.Errorf("%w: invalid name", adapter.ErrBadRequest), ErrInvalidMetadata},
		{"empty id", adapter.ErrEmptyID, ErrInvalidMetadata},
		{"unauthorized", fmt.Errorf("%w: ", adapter.ErrUnauthorized), ErrAccessDenied},
		{"forbidden", fmt.Errorf("%w: access denied", adapter.ErrForbidden), ErrAccessDenied},
		{"unreachable", fmt.Errorf("fetch: %w: refused", adapter.ErrUnreachable), ErrCatalogUnavailable},
		{"bad gateway", fmt.Errorf("%w: ", adapter.ErrBadGateway), ErrCatalogUnavailable},
		{"internal", fmt.Errorf("%w: boom", adapter.ErrInternalServerError), ErrCatalogUnavailable},
		{"passthrough", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "duplicated name", extractBody(errors.New("conflict: duplicated name")))
	assert.Equal(t, "plain", extractBody(errors.New("plain")))
}
