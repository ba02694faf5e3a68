package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-metadata-console/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// MetadataCache is the local SQLite cache of recently viewed metadata
// records. It backs the listing page while the catalog is unreachable.
type MetadataCache interface {
	// Save upserts records and stamps them as viewed now.
	Save(ctx context.Context, records ...models.Metadata) error

	// List returns cached records, most recently viewed first, filtered and
	// paged the same way the catalog listing is.
	List(ctx context.Context, req models.ListRequest) (models.MetadataPage, error)

	// Delete removes a record. Deleting an absent record is not an error.
	Delete(ctx context.Context, id string) error

	// PruneOlderThan removes records last viewed before cutoff and returns
	// how many were removed.
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
