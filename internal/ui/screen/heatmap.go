package screen

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agrotools/feedlot-calc/internal/export"
	"github.com/agrotools/feedlot-calc/internal/model"
	"github.com/agrotools/feedlot-calc/internal/ui"
	"github.com/agrotools/feedlot-calc/internal/ui/component"
	"github.com/agrotools/feedlot-calc/internal/ui/router"
	"github.com/agrotools/feedlot-calc/internal/ui/style"
)

// HeatmapScreen shows net margin over the purchase/sale price grid with the
// breakeven boundary highlighted. The grid is computed once on entry from
// the parameters the screen was opened with.
type HeatmapScreen struct {
	width    int
	height   int
	keyMap   ui.KeyMap
	services *ui.Services

	params  model.ScenarioParams
	grid    *component.HeatmapGrid
	helpBar *component.HelpBar

	status      string
	statusIsErr bool

	titleStyle  lipgloss.Style
	readStyle   lipgloss.Style
	statusStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// NewHeatmapScreen creates the heatmap screen for the given parameters
func NewHeatmapScreen(services *ui.Services, params model.ScenarioParams) *HeatmapScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	purchaseAxis := services.Config.PurchaseAxis.Axis()
	saleAxis := services.Config.SaleAxis.Axis()

	grid := component.NewHeatmapGrid().SetData(
		model.HeatmapMatrix(params, purchaseAxis, saleAxis),
		purchaseAxis,
		saleAxis,
		model.BreakevenCurve(params, purchaseAxis),
	)

	return &HeatmapScreen{
		keyMap:   keyMap,
		services: services,
		params:   params,
		grid:     grid,
		helpBar:  component.NewHelpBar().SetBindings(keyMap.ContextualHelp(ui.RouteHeatmap)),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0, 1, 2),

		readStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Margin(1, 0, 0, 2),

		statusStyle: lipgloss.NewStyle().
			Foreground(palette.Success).
			Margin(0, 0, 0, 2),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			Margin(0, 0, 0, 2),
	}
}

// Init initializes the heatmap screen
func (s *HeatmapScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (s *HeatmapScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Quit):
			return s, tea.Quit

		case key.Matches(msg, s.keyMap.Up):
			s.grid.MoveCursor(-1, 0)

		case key.Matches(msg, s.keyMap.Down):
			s.grid.MoveCursor(1, 0)

		case key.Matches(msg, s.keyMap.Left):
			s.grid.MoveCursor(0, -1)

		case key.Matches(msg, s.keyMap.Right):
			s.grid.MoveCursor(0, 1)

		case key.Matches(msg, s.keyMap.Export):
			return s, s.services.ExportReportCmd(s.params, export.FormatCSV)
		}

	case ui.ExportDoneMsg:
		s.status = "exported to " + msg.Path
		s.statusIsErr = false

	case ui.ErrorMsg:
		s.status = msg.Title + ": " + msg.Error.Error()
		s.statusIsErr = true
	}

	return s, nil
}

// View renders the heatmap screen
func (s *HeatmapScreen) View() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}

	sections := []string{
		s.titleStyle.Render("Margin Heatmap — purchase price ↓ × sale price →"),
		lipgloss.NewStyle().Margin(0, 0, 0, 2).Render(s.grid.View()),
	}

	if purchase, sale, margin, ok := s.grid.Cursor(); ok {
		sections = append(sections, s.readStyle.Render(fmt.Sprintf(
			"buy %.0f · sell %.0f · margin %.2f per head", purchase, sale, margin)))
	}

	if s.status != "" {
		if s.statusIsErr {
			sections = append(sections, s.errorStyle.Render(s.status))
		} else {
			sections = append(sections, s.statusStyle.Render(s.status))
		}
	}

	sections = append(sections, s.helpBar.SetWidth(s.width).View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetSize sets the screen dimensions
func (s *HeatmapScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)
	s.grid.SetSize(width-4, height-8)
}
