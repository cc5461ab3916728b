package ui

import (
	"github.com/agrotools/feedlot-calc/internal/model"
	"github.com/agrotools/feedlot-calc/internal/storage/models"
)

// Tea message types for UI communication

// RouterMsg represents navigation between screens
type RouterMsg struct {
	To Route
}

// ParamsChangedMsg carries the edited parameter set to interested screens.
// Every change triggers a full recompute; the model is cheap enough that no
// incremental path exists.
type ParamsChangedMsg struct {
	Params model.ScenarioParams
}

// ScenarioSavedMsg reports a completed save
type ScenarioSavedMsg struct {
	Scenario *models.Scenario
}

// ScenarioLoadedMsg carries a loaded scenario back to the dashboard
type ScenarioLoadedMsg struct {
	Scenario *models.Scenario
}

// ScenarioListMsg carries the repository listing
type ScenarioListMsg struct {
	Scenarios []*models.Scenario
}

// ScenarioDeletedMsg reports a completed delete
type ScenarioDeletedMsg struct {
	ID int64
}

// ExportDoneMsg reports a finished export with the written path
type ExportDoneMsg struct {
	Path string
}

// ErrorMsg represents error conditions
type ErrorMsg struct {
	Error error
	Title string
}

// SuccessMsg represents success conditions
type SuccessMsg struct {
	Message string
}

// Route represents different screens in the application
type Route int

const (
	RouteMainMenu Route = iota
	RouteDashboard
	RouteHeatmap
	RouteScenarios
	RouteLogs
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteMainMenu:
		return "main_menu"
	case RouteDashboard:
		return "dashboard"
	case RouteHeatmap:
		return "heatmap"
	case RouteScenarios:
		return "scenarios"
	case RouteLogs:
		return "logs"
	default:
		return "unknown"
	}
}
