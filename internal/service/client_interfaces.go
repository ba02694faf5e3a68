// Package service holds the console's client-side business logic: it sits
// between the terminal UI and the catalog adapter, validates input, keeps the
// local cache in step with the catalog and maps transport errors to domain
// errors.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-metadata-console/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientMetadataService defines the client-side contract for reading and
// modifying metadata records. Its record operations mirror the catalog's
// fetch-by-id, update and delete; every successful call is written through
// to the local cache.
type ClientMetadataService interface {
	// FetchByID loads the record identified by id from the catalog.
	// Returns [ErrMetadataNotFound] if the catalog does not know it, or
	// [ErrCatalogUnavailable] if the catalog cannot be reached.
	FetchByID(ctx context.Context, id string) (models.Metadata, error)

	// Update validates update and applies it to the record identified by id.
	// Returns the record as stored by the catalog. Validation failures wrap
	// [ErrInvalidMetadata] and never reach the catalog.
	Update(ctx context.Context, id string, update models.MetadataUpdate) (models.Metadata, error)

	// DeleteByID removes the record from the catalog and from the cache.
	DeleteByID(ctx context.Context, id string) error

	// List returns one page of records. When the catalog is unreachable the
	// page is served from the cache and has Cached set.
	List(ctx context.Context, req models.ListRequest) (models.MetadataPage, error)

	// PruneCache removes cached records last viewed more than maxAge ago and
	// returns how many were removed.
	PruneCache(ctx context.Context, maxAge time.Duration) (int64, error)
}

// ClientCachePruneJob defines the contract for a background worker that
// periodically prunes the local cache.
type ClientCachePruneJob interface {
	// Start launches the background goroutine. It prunes once immediately and
	// then every interval, defaulting to one hour if interval is zero or
	// negative. Any previously running job is stopped before the new one
	// begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
