// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-metadata-console/internal/adapter"
	"github.com/MKhiriev/go-metadata-console/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return ErrMetadataNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgDuplicatedName {
			return ErrDuplicateName
		}
		return ErrInvalidMetadata

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrEmptyID):
		return ErrInvalidMetadata

	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrUnreachable),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrInternalServerError):
		return ErrCatalogUnavailable
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
