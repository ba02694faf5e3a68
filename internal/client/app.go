package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-metadata-console/internal/adapter"
	"github.com/MKhiriev/go-metadata-console/internal/config"
	"github.com/MKhiriev/go-metadata-console/internal/i18n"
	"github.com/MKhiriev/go-metadata-console/internal/logger"
	"github.com/MKhiriev/go-metadata-console/internal/service"
	"github.com/MKhiriev/go-metadata-console/internal/state"
	"github.com/MKhiriev/go-metadata-console/internal/store"
	"github.com/MKhiriev/go-metadata-console/internal/tui"
	"github.com/MKhiriev/go-metadata-console/internal/workers"
	"github.com/MKhiriev/go-metadata-console/models"
)

// ui is the part of tui.TUI the application drives.
type ui interface {
	Run(ctx context.Context, startPage, metadataID string) error
}

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	ui       ui
	route    tui.NavigateTo
	logger   *logger.Logger
}

// NewApp builds the console from cfg. route selects the start page; a
// detail route carries the metadata id.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, route tui.NavigateTo, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	metadataStore, err := adapter.NewHTTPMetadataStore(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create catalog adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, metadataStore, cfg.Storage, log)
	bgWorkers := workers.NewWorkers(
		workers.NewCachePruneWorker(services.CachePruneJob, cfg.Workers, log),
	)

	tr := i18n.New(cfg.App.Locale)
	log.Debug().Str("locale", cfg.App.Locale).Stringer("language", tr.Language()).Msg("translator selected")

	console := tui.New(services, state.NewMetadataModel(), tr, buildInfo, log)

	return &App{
		storages: storages,
		services: services,
		workers:  bgWorkers,
		ui:       console,
		route:    route,
		logger:   log,
	}, nil
}

// Run attaches the application logger to ctx, so that operations started by
// the UI log through it, and blocks until the UI exits.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	a.logger.Info().Str("page", a.route.Page).Str("metadataId", a.route.MetadataID).Msg("console started")

	a.workers.Run(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx, a.route.Page, a.route.MetadataID)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
