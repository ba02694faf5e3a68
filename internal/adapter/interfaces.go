// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the metadata catalog service.
//
// The primary abstraction is [MetadataStore], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPMetadataStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-metadata-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/metadata_store_mock.go -package=mock

// MetadataStore defines transport-agnostic access to metadata records held by
// the catalog. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values defined in this
// package.
type MetadataStore interface {
	// FetchByID returns the record identified by id. Returns [ErrNotFound]
	// (wrapped) if the catalog does not know the record.
	FetchByID(ctx context.Context, id string) (models.Metadata, error)

	// Update applies a partial update to the record identified by id and
	// returns the record as stored by the catalog after the update.
	Update(ctx context.Context, id string, update models.MetadataUpdate) (models.Metadata, error)

	// DeleteByID removes the record identified by id.
	DeleteByID(ctx context.Context, id string) error

	// List returns one page of records whose name contains
	// req.NameContains.
	List(ctx context.Context, req models.ListRequest) (models.MetadataPage, error)
}
