package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/MKhiriev/go-patient-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.Run] when the user pressed ctrl+c.
var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the auth screen and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(newPages(ctx, t.services), pageAuth, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}

func newPages(ctx context.Context, s *service.Services) map[string]tea.Model {
	return map[string]tea.Model{
		pageAuth:      NewAuthModel(ctx, s.AccountService),
		pageRecovery:  NewRecoveryKeyModel(),
		pageDashboard: NewDashboardModel(ctx, s.AccountService, s.BackupService),
		pageNotes:     NewNotesModel(ctx, s.UserDataService),
		pageHealth:    NewHealthModel(ctx, s.UserDataService),
		pageProfile:   NewProfileModel(ctx, s.UserDataService),
		pageBackup:    NewBackupModel(ctx, s.BackupService),
		pageFeed:      NewFeedModel(ctx, s.FeedService),
		pageExport:    NewExportModel(ctx, s.ExportService),
	}
}
