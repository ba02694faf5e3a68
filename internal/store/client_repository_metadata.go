package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-metadata-console/internal/logger"
	"github.com/MKhiriev/go-metadata-console/models"
)

type metadataCache struct {
	*DB
	logger *logger.Logger

	now func() time.Time
}

func NewMetadataCache(db *DB, logger *logger.Logger) MetadataCache {
	return &metadataCache{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (c *metadataCache) Save(ctx context.Context, records ...models.Metadata) error {
	log := c.log(ctx)

	if len(records) == 0 {
		return nil
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "metadataCache.Save").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	viewedAt := c.now().Unix()
	for _, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to encode metadata (id=%s): %w", record.ID, err)
		}

		if _, err = tx.ExecContext(ctx, upsertMetadata,
			record.ID,
			record.Name,
			record.Description,
			string(payload),
			viewedAt,
		); err != nil {
			log.Err(err).
				Str("func", "metadataCache.Save").
				Str("id", record.ID).
				Msg("failed to execute upsert for metadata")
			return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, record.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "metadataCache.Save").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (c *metadataCache) List(ctx context.Context, req models.ListRequest) (models.MetadataPage, error) {
	log := c.log(ctx)

	countQuery, countArgs, err := buildCountQuery(req)
	if err != nil {
		return models.MetadataPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	listQuery, listArgs, err := buildListQuery(req)
	if err != nil {
		return models.MetadataPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = c.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "metadataCache.List").Msg("failed to count cached metadata")
		return models.MetadataPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "metadataCache.List").Msg("failed to query cached metadata")
		return models.MetadataPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Metadata, 0)
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return models.MetadataPage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		item, decodeErr := decodePayload(payload)
		if decodeErr != nil {
			return models.MetadataPage{}, decodeErr
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "metadataCache.List").Msg("error iterating metadata rows")
		return models.MetadataPage{}, fmt.Errorf("error iterating metadata rows: %w", err)
	}

	return models.MetadataPage{
		Items:         items,
		TotalElements: total,
		TotalPages:    totalPages(total, req.Size),
		Number:        req.Page,
	}, nil
}

func (c *metadataCache) Delete(ctx context.Context, id string) error {
	if _, err := c.DB.ExecContext(ctx, deleteMetadata, id); err != nil {
		c.log(ctx).Err(err).
			Str("func", "metadataCache.Delete").
			Str("id", id).
			Msg("failed to delete cached metadata")
		return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, id, err)
	}
	return nil
}

func (c *metadataCache) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := buildPruneQuery(cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

// log prefers the operation logger attached to ctx, which carries its trace id.
func (c *metadataCache) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, c.logger)
}

func decodePayload(payload string) (models.Metadata, error) {
	var m models.Metadata
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return models.Metadata{}, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}
	return m, nil
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		if total > 0 {
			return 1
		}
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
