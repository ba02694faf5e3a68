// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-metadata-console/internal/app"
	"github.com/MKhiriev/go-metadata-console/internal/i18n"
	"github.com/MKhiriev/go-metadata-console/internal/service"
	"github.com/MKhiriev/go-metadata-console/internal/validators"
)

// failureText builds the fail alert for err: the localized headline under
// key, followed by the reason when one is known.
func failureText(tr *i18n.Translator, key string, err error) string {
	headline := tr.T(key)
	reason := humanizeError(tr, err)
	if reason == "" {
		return headline
	}
	return headline + ": " + reason
}

// knownFailures are reported by their localized message, without the
// transport detail wrapped around them. Order matters: the first match wins.
var knownFailures = []struct {
	err error
	key string
}{
	{service.ErrMetadataNotFound, app.KeyErrNotFound},
	{service.ErrDuplicateName, app.KeyErrDuplicateName},
	{service.ErrAccessDenied, app.KeyErrAccessDenied},
	{service.ErrCatalogUnavailable, app.KeyErrUnavailable},
	{service.ErrInvalidMetadata, app.KeyErrRejected},
}

func humanizeError(tr *i18n.Translator, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrEmptyName):
		return tr.T(app.KeyNameRequired)
	case errors.Is(err, validators.ErrNameTooLong):
		return tr.T(app.KeyNameTooLong, validators.MaxNameLength)
	case errors.Is(err, validators.ErrDescriptionTooLong):
		return tr.T(app.KeyDescriptionTooLong, validators.MaxDescriptionLength)
	}

	for _, known := range knownFailures {
		if errors.Is(err, known.err) {
			return tr.T(known.key)
		}
	}
	return err.Error()
}
