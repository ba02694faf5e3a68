package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-metadata-console/internal/adapter"
	"github.com/MKhiriev/go-metadata-console/internal/logger"
	"github.com/MKhiriev/go-metadata-console/internal/store"
	"github.com/MKhiriev/go-metadata-console/internal/validators"
	"github.com/MKhiriev/go-metadata-console/models"
)

type clientMetadataService struct {
	cache         store.MetadataCache
	metadataStore adapter.MetadataStore
	validator     validators.Validator

	logger *logger.Logger
	now    func() time.Time
}

func NewClientMetadataService(storages *store.ClientStorages, metadataStore adapter.MetadataStore, logger *logger.Logger) ClientMetadataService {
	return &clientMetadataService{
		cache:         storages.MetadataCache,
		metadataStore: metadataStore,
		validator:     validators.NewMetadataValidator(),
		logger:        logger,
		now:           time.Now,
	}
}

func (s *clientMetadataService) FetchByID(ctx context.Context, id string) (models.Metadata, error) {
	if strings.TrimSpace(id) == "" {
		return models.Metadata{}, fmt.Errorf("%w: %w", ErrInvalidMetadata, validators.ErrEmptyID)
	}

	record, err := s.metadataStore.FetchByID(ctx, id)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrMetadataNotFound) {
			s.forget(ctx, id)
		}
		s.log(ctx).Err(err).Str("func", "clientMetadataService.FetchByID").Str("id", id).Msg("fetch metadata failed")
		return models.Metadata{}, mapped
	}

	s.remember(ctx, record)
	return record, nil
}

func (s *clientMetadataService) Update(ctx context.Context, id string, update models.MetadataUpdate) (models.Metadata, error) {
	if strings.TrimSpace(id) == "" {
		return models.Metadata{}, fmt.Errorf("%w: %w", ErrInvalidMetadata, validators.ErrEmptyID)
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Metadata{}, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}

	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		update.Name = &trimmed
	}

	record, err := s.metadataStore.Update(ctx, id, update)
	if err != nil {
		s.log(ctx).Err(err).Str("func", "clientMetadataService.Update").Str("id", id).Msg("update metadata failed")
		return models.Metadata{}, mapAdapterError(err)
	}

	s.remember(ctx, record)
	return record, nil
}

func (s *clientMetadataService) DeleteByID(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMetadata, validators.ErrEmptyID)
	}

	if err := s.metadataStore.DeleteByID(ctx, id); err != nil {
		s.log(ctx).Err(err).Str("func", "clientMetadataService.DeleteByID").Str("id", id).Msg("delete metadata failed")
		return mapAdapterError(err)
	}

	s.forget(ctx, id)
	return nil
}

func (s *clientMetadataService) List(ctx context.Context, req models.ListRequest) (models.MetadataPage, error) {
	page, err := s.metadataStore.List(ctx, req)
	if err == nil {
		return page, nil
	}

	mapped := mapAdapterError(err)
	if !errors.Is(mapped, ErrCatalogUnavailable) {
		return models.MetadataPage{}, mapped
	}

	s.log(ctx).Warn().Err(err).Str("func", "clientMetadataService.List").Msg("catalog unavailable, listing cached metadata")

	cached, cacheErr := s.cache.List(ctx, req)
	if cacheErr != nil {
		s.log(ctx).Err(cacheErr).Str("func", "clientMetadataService.List").Msg("cache listing failed")
		return models.MetadataPage{}, mapped
	}

	cached.Cached = true
	return cached, nil
}

func (s *clientMetadataService) PruneCache(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, nil
	}

	n, err := s.cache.PruneOlderThan(ctx, s.now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("prune metadata cache: %w", err)
	}
	return n, nil
}

// remember caches record. The cache only serves the offline listing, so a
// failed write is logged and otherwise ignored.
func (s *clientMetadataService) remember(ctx context.Context, record models.Metadata) {
	if err := s.cache.Save(ctx, record); err != nil {
		s.log(ctx).Warn().Err(err).Str("id", record.ID).Msg("failed to cache metadata")
	}
}

func (s *clientMetadataService) forget(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log(ctx).Warn().Err(err).Str("id", id).Msg("failed to drop cached metadata")
	}
}

// log prefers the operation logger attached to ctx, which carries its trace id.
func (s *clientMetadataService) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}
