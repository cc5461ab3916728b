package screen

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agrotools/feedlot-calc/internal/export"
	"github.com/agrotools/feedlot-calc/internal/model"
	"github.com/agrotools/feedlot-calc/internal/storage/models"
	"github.com/agrotools/feedlot-calc/internal/ui"
	"github.com/agrotools/feedlot-calc/internal/ui/component"
	"github.com/agrotools/feedlot-calc/internal/ui/router"
	"github.com/agrotools/feedlot-calc/internal/ui/style"
)

// DashboardScreen is the main working screen: the parameter form on the
// left, the computed metrics on the right, and the sale price sensitivity
// curve underneath. Every parameter edit recomputes everything.
type DashboardScreen struct {
	width    int
	height   int
	keyMap   ui.KeyMap
	services *ui.Services

	form      *component.ParamForm
	metrics   *component.MetricsPanel
	sparkline *component.Sparkline
	helpBar   *component.HelpBar

	elasticity float64
	status     string

	// Save prompt state
	naming    bool
	nameInput textinput.Model
	loadedID  int64
	loaded    string

	titleStyle  lipgloss.Style
	statusStyle lipgloss.Style
	errorStyle  lipgloss.Style
	curveStyle  lipgloss.Style
	statusIsErr bool
}

// NewDashboardScreen creates the dashboard pre-filled with the given params
func NewDashboardScreen(services *ui.Services, params model.ScenarioParams) *DashboardScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	nameInput := textinput.New()
	nameInput.Placeholder = "scenario name"
	nameInput.Width = 32
	nameInput.Prompt = "Save as: "

	s := &DashboardScreen{
		keyMap:    keyMap,
		services:  services,
		form:      component.NewParamForm(params),
		metrics:   component.NewMetricsPanel(),
		sparkline: component.NewSparkline(60),
		helpBar:   component.NewHelpBar().SetBindings(keyMap.ContextualHelp(ui.RouteDashboard)),
		nameInput: nameInput,

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0, 0, 2),

		statusStyle: lipgloss.NewStyle().
			Foreground(palette.Success).
			Margin(0, 0, 0, 2),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			Margin(0, 0, 0, 2),

		curveStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(0, 1).
			Margin(1, 0, 0, 2),
	}
	s.recompute()
	return s
}

// Init initializes the dashboard screen
func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (s *DashboardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.naming {
			return s, s.updateNaming(msg)
		}

		switch {
		case key.Matches(msg, s.keyMap.Quit):
			return s, tea.Quit

		case key.Matches(msg, s.keyMap.Tab), key.Matches(msg, s.keyMap.Down):
			s.form.FocusNext()
			return s, nil

		case key.Matches(msg, s.keyMap.ShiftTab), key.Matches(msg, s.keyMap.Up):
			s.form.FocusPrev()
			return s, nil

		case key.Matches(msg, s.keyMap.Save):
			s.naming = true
			s.nameInput.SetValue(s.loaded)
			s.nameInput.Focus()
			return s, textinput.Blink

		case key.Matches(msg, s.keyMap.Reset):
			s.form.SetParams(model.DefaultParams())
			s.loadedID = 0
			s.loaded = ""
			s.recompute()
			s.setStatus("reset to defaults", false)
			return s, nil

		case key.Matches(msg, s.keyMap.Export):
			return s, s.services.ExportReportCmd(s.form.Params(), export.FormatJSON)

		case key.Matches(msg, s.keyMap.Heatmap):
			return s, router.Navigate(ui.RouteHeatmap)
		}

		cmd, changed := s.form.Update(msg)
		if changed {
			s.recompute()
		}
		return s, cmd

	case ui.ScenarioLoadedMsg:
		s.form.SetParams(msg.Scenario.Params)
		s.loadedID = msg.Scenario.ID
		s.loaded = msg.Scenario.Name
		s.recompute()
		s.setStatus(fmt.Sprintf("loaded %q", msg.Scenario.Name), false)
		return s, nil

	case ui.ScenarioSavedMsg:
		s.loadedID = msg.Scenario.ID
		s.loaded = msg.Scenario.Name
		s.setStatus(fmt.Sprintf("saved %q", msg.Scenario.Name), false)
		return s, nil

	case ui.ExportDoneMsg:
		s.setStatus("exported to "+msg.Path, false)
		return s, nil

	case ui.ErrorMsg:
		s.setStatus(msg.Title+": "+msg.Error.Error(), true)
		return s, nil
	}

	return s, nil
}

func (s *DashboardScreen) updateNaming(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		name := s.nameInput.Value()
		s.naming = false
		s.nameInput.Blur()
		if name == "" {
			s.setStatus("save cancelled: empty name", true)
			return nil
		}
		scenario := models.NewScenario(name, s.form.Params())
		if s.loaded == name {
			scenario.ID = s.loadedID
		}
		return s.services.SaveScenarioCmd(scenario)

	case "esc":
		s.naming = false
		s.nameInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	s.nameInput, cmd = s.nameInput.Update(msg)
	return cmd
}

// View renders the dashboard screen
func (s *DashboardScreen) View() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}

	title := "Dashboard"
	if s.loaded != "" {
		title = fmt.Sprintf("Dashboard — %s", s.loaded)
	}

	formPane := lipgloss.NewStyle().Margin(1, 2, 0, 2).Render(s.form.View())
	metricsPane := s.metrics.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top, formPane, metricsPane)

	curve := s.curveStyle.Render(fmt.Sprintf(
		"Sale price sensitivity  %s  ∂margin/∂price ≈ %.2f",
		s.sparkline.View(), s.elasticity))

	sections := []string{
		s.titleStyle.Render(title),
		body,
		curve,
	}

	if s.naming {
		sections = append(sections, lipgloss.NewStyle().Margin(1, 0, 0, 2).Render(s.nameInput.View()))
	} else if s.status != "" {
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
func (s *DashboardScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)
	s.metrics.SetWidth(minInt(width/2, 60))
	s.sparkline.SetWidth(maxInt(width-40, 20))
}

// CapturesEsc keeps esc for the save prompt while it is open
func (s *DashboardScreen) CapturesEsc() bool {
	return s.naming
}

// Params exposes the current parameter set for sibling screens
func (s *DashboardScreen) Params() model.ScenarioParams {
	return s.form.Params()
}

func (s *DashboardScreen) recompute() {
	params := s.form.Params()
	result := model.ComputeProfit(params)

	s.metrics.SetResult(result)
	s.metrics.SetHerd(model.Herd(params, result))

	axis := s.services.Config.SaleAxis.Axis()
	margins := model.SensitivityCurve(params, axis)
	s.sparkline.SetData(margins)
	s.elasticity = model.Elasticity(axis.Values(), margins, params.SalePrice)
}

func (s *DashboardScreen) setStatus(text string, isErr bool) {
	s.status = text
	s.statusIsErr = isErr
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
