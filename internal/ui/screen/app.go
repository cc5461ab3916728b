package screen

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrotools/feedlot-calc/internal/ui"
	"github.com/agrotools/feedlot-calc/internal/ui/router"
)

// App is the root bubbletea model. It owns the router and resolves routes
// to screens. The dashboard is a singleton so edited parameters survive
// navigation; the other screens are rebuilt on entry.
type App struct {
	router    *router.Router
	services  *ui.Services
	dashboard *DashboardScreen
}

// NewApp creates the application model starting at the main menu
func NewApp(services *ui.Services) *App {
	return &App{
		router:    router.New(NewMainMenuScreen(services)),
		services:  services,
		dashboard: NewDashboardScreen(services, services.Config.Scenario),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.router.Init()
}

// Update routes messages to the current screen
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.RouterMsg:
		if msg.To == ui.RouteMainMenu {
			return a, a.router.Replace(a.screenFor(msg.To))
		}
		return a, a.router.Push(a.screenFor(msg.To))

	case ui.ScenarioLoadedMsg:
		// A load always lands on the dashboard, wherever it was requested.
		_, cmd := a.dashboard.Update(msg)
		return a, tea.Batch(cmd, a.router.Push(a.dashboard))
	}

	_, cmd := a.router.Update(msg)
	return a, cmd
}

// View renders the current screen
func (a *App) View() string {
	return a.router.View()
}

func (a *App) screenFor(route ui.Route) router.Screen {
	switch route {
	case ui.RouteDashboard:
		return a.dashboard
	case ui.RouteHeatmap:
		return NewHeatmapScreen(a.services, a.dashboard.Params())
	case ui.RouteScenarios:
		return NewScenariosScreen(a.services)
	case ui.RouteLogs:
		return NewLogsScreen(a.services)
	default:
		return NewMainMenuScreen(a.services)
	}
}
