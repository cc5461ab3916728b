package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/agrotools/feedlot-calc/internal/config"
	"github.com/agrotools/feedlot-calc/internal/export"
	"github.com/agrotools/feedlot-calc/internal/logger"
	"github.com/agrotools/feedlot-calc/internal/model"
	"github.com/agrotools/feedlot-calc/internal/storage"
	"github.com/agrotools/feedlot-calc/internal/storage/models"
)

const opTimeout = 10 * time.Second

// Services bundles the collaborators the screens talk to. The model itself
// is called directly; only persistence and export go through here.
type Services struct {
	Store    storage.Storage
	Exporter *export.Exporter
	Logger   *zap.Logger
	Buffer   *logger.LogBuffer
	Config   *config.Config
}

// SaveScenarioCmd persists the scenario and reports back.
func (s *Services) SaveScenarioCmd(scenario *models.Scenario) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		l := logger.WithOperation(s.Logger, "save_scenario")
		if err := s.Store.SaveScenario(ctx, scenario); err != nil {
			l.Error("scenario save failed", zap.Error(err))
			return ErrorMsg{Error: err, Title: "Save failed"}
		}
		l.Info("scenario saved", zap.String("name", scenario.Name), zap.Int64("id", scenario.ID))
		return ScenarioSavedMsg{Scenario: scenario}
	}
}

// ListScenariosCmd fetches all saved scenarios, newest first.
func (s *Services) ListScenariosCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		scenarios, err := s.Store.ListScenarios(ctx)
		if err != nil {
			s.Logger.Error("scenario list failed", zap.Error(err))
			return ErrorMsg{Error: err, Title: "List failed"}
		}
		return ScenarioListMsg{Scenarios: scenarios}
	}
}

// LoadScenarioCmd fetches one scenario by id.
func (s *Services) LoadScenarioCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		scenario, err := s.Store.GetScenario(ctx, id)
		if err != nil {
			s.Logger.Error("scenario load failed", zap.Int64("id", id), zap.Error(err))
			return ErrorMsg{Error: err, Title: "Load failed"}
		}
		return ScenarioLoadedMsg{Scenario: scenario}
	}
}

// DeleteScenarioCmd removes one scenario by id.
func (s *Services) DeleteScenarioCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if err := s.Store.DeleteScenario(ctx, id); err != nil {
			s.Logger.Error("scenario delete failed", zap.Int64("id", id), zap.Error(err))
			return ErrorMsg{Error: err, Title: "Delete failed"}
		}
		return ScenarioDeletedMsg{ID: id}
	}
}

// ExportScenarioCmd writes the scenario file to the configured export dir.
func (s *Services) ExportScenarioCmd(name string, params model.ScenarioParams) tea.Cmd {
	return func() tea.Msg {
		path, err := s.Exporter.ExportScenario(name, params, s.Config.ExportDir)
		if err != nil {
			return ErrorMsg{Error: err, Title: "Export failed"}
		}
		return ExportDoneMsg{Path: path}
	}
}

// ImportScenarioCmd reads a scenario file and hands the result to the
// dashboard as a loaded, not-yet-saved scenario.
func (s *Services) ImportScenarioCmd(path string) tea.Cmd {
	return func() tea.Msg {
		name, params, err := s.Exporter.ImportScenario(path)
		if err != nil {
			return ErrorMsg{Error: err, Title: "Import failed"}
		}
		if name == "" {
			name = "imported scenario"
		}
		return ScenarioLoadedMsg{Scenario: models.NewScenario(name, params)}
	}
}

// ExportReportCmd computes the full report and writes it.
func (s *Services) ExportReportCmd(params model.ScenarioParams, format export.Format) tea.Cmd {
	return func() tea.Msg {
		l := logger.WithOperation(s.Logger, "export_report")
		report := export.BuildReport(params, s.Config.PurchaseAxis.Axis(), s.Config.SaleAxis.Axis())
		path, err := s.Exporter.ExportReport(report, format, s.Config.ExportDir)
		if err != nil {
			l.Error("report export failed", zap.Error(err))
			return ErrorMsg{Error: err, Title: "Export failed"}
		}
		l.Info("report exported", zap.String("path", path))
		return ExportDoneMsg{Path: path}
	}
}
