// Package tui implements the terminal user interface of the metadata console
// on top of Bubble Tea: a router with a listing page and the metadata detail
// page, plus the header bar, alerts and confirmation modal they share.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-metadata-console/internal/i18n"
	"github.com/MKhiriev/go-metadata-console/internal/logger"
	"github.com/MKhiriev/go-metadata-console/internal/service"
	"github.com/MKhiriev/go-metadata-console/internal/state"
	"github.com/MKhiriev/go-metadata-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	shared    *state.MetadataModel
	tr        *i18n.Translator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(
	services *service.ClientServices,
	shared *state.MetadataModel,
	tr *i18n.Translator,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *TUI {
	return &TUI{
		services:       services,
		shared:         shared,
		tr:             tr,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run blocks until the user leaves the program. startPage is PageList or
// PageDetail; metadataID is the route parameter of the detail page.
func (t *TUI) Run(ctx context.Context, startPage, metadataID string) error {
	root := t.newRoot(ctx, startPage, metadataID)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(*RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		t.logger.Info().Msg("console closed by user")
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context, startPage, metadataID string) *RootModel {
	detailID := ""
	if startPage == PageDetail {
		detailID = metadataID
	} else {
		startPage = PageList
	}

	pages := map[string]tea.Model{
		PageList:   NewListModel(ctx, t.services.MetadataService, t.tr),
		PageDetail: NewDetailModel(ctx, t.services.MetadataService, t.shared, t.tr, detailID),
	}

	return NewRootModel(pages, startPage, t.shared, t.buildInfo)
}
