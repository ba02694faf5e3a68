// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-metadata-console/internal/config"
	"github.com/MKhiriev/go-metadata-console/internal/logger"
	"github.com/MKhiriev/go-metadata-console/internal/service"
)

// CachePruneWorker removes stale rows from the local metadata cache on the
// configured interval.
type CachePruneWorker struct {
	job      service.ClientCachePruneJob
	interval time.Duration
	logger   *logger.Logger
}

func NewCachePruneWorker(job service.ClientCachePruneJob, cfg config.Workers, logger *logger.Logger) *CachePruneWorker {
	return &CachePruneWorker{
		job:      job,
		interval: cfg.CachePruneInterval,
		logger:   logger,
	}
}

func (w *CachePruneWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("starting cache prune worker")
	w.job.Start(ctx, w.interval)
}

func (w *CachePruneWorker) Stop() {
	w.job.Stop()
	w.logger.Info().Msg("cache prune worker stopped")
}
