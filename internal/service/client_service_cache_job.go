package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-metadata-console/internal/logger"
)

const defaultPruneInterval = time.Hour

type clientCachePruneJob struct {
	metadataService ClientMetadataService
	maxAge          time.Duration
	logger          *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientCachePruneJob creates a job that calls
// metadataService.PruneCache(maxAge) on a ticker. The job is idle until
// Start is called.
func NewClientCachePruneJob(metadataService ClientMetadataService, maxAge time.Duration, logger *logger.Logger) ClientCachePruneJob {
	return &clientCachePruneJob{metadataService: metadataService, maxAge: maxAge, logger: logger}
}

// Start implements ClientCachePruneJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientCachePruneJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPruneInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.prune(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.prune(jobCtx)
			}
		}
	}()
}

// Stop implements ClientCachePruneJob. Safe to call when the job is not
// running (no-op in that case).
func (j *clientCachePruneJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientCachePruneJob) prune(ctx context.Context) {
	n, err := j.metadataService.PruneCache(ctx, j.maxAge)
	if err != nil {
		j.logger.Err(err).Str("func", "clientCachePruneJob.prune").Msg("cache prune failed")
		return
	}
	if n > 0 {
		j.logger.Info().Int64("removed", n).Msg("pruned metadata cache")
	}
}
