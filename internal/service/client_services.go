package service

import (
	"github.com/MKhiriev/go-metadata-console/internal/adapter"
	"github.com/MKhiriev/go-metadata-console/internal/config"
	"github.com/MKhiriev/go-metadata-console/internal/logger"
	"github.com/MKhiriev/go-metadata-console/internal/store"
)

type ClientServices struct {
	MetadataService ClientMetadataService
	CachePruneJob   ClientCachePruneJob
}

func NewClientServices(storages *store.ClientStorages, metadataStore adapter.MetadataStore, cfg config.Storage, logger *logger.Logger) *ClientServices {
	metadataSvc := NewClientMetadataService(storages, metadataStore, logger)

	return &ClientServices{
		MetadataService: metadataSvc,
		CachePruneJob:   NewClientCachePruneJob(metadataSvc, cfg.Cache.MaxAge, logger),
	}
}
