package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agrotools/feedlot-calc/internal/model"
	"github.com/agrotools/feedlot-calc/internal/storage/models"
	"github.com/agrotools/feedlot-calc/internal/ui"
	"github.com/agrotools/feedlot-calc/internal/ui/component"
	"github.com/agrotools/feedlot-calc/internal/ui/router"
	"github.com/agrotools/feedlot-calc/internal/ui/style"
)

// ScenariosScreen lists the saved scenarios. Enter loads the selected one
// into the dashboard, x deletes it, e writes it to a scenario file.
type ScenariosScreen struct {
	width    int
	height   int
	keyMap   ui.KeyMap
	services *ui.Services

	helpBar *component.HelpBar

	scenarios     []*models.Scenario
	selectedIndex int
	loading       bool

	// Import prompt state
	importing bool
	pathInput textinput.Model

	status      string
	statusIsErr bool

	titleStyle    lipgloss.Style
	rowStyle      lipgloss.Style
	selectedStyle lipgloss.Style
	mutedStyle    lipgloss.Style
	statusStyle   lipgloss.Style
	errorStyle    lipgloss.Style
}

// NewScenariosScreen creates a new scenarios screen
func NewScenariosScreen(services *ui.Services) *ScenariosScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	pathInput := textinput.New()
	pathInput.Placeholder = "path/to/scenario.json"
	pathInput.Width = 48
	pathInput.Prompt = "Import from: "

	return &ScenariosScreen{
		keyMap:    keyMap,
		services:  services,
		helpBar:   component.NewHelpBar().SetBindings(keyMap.ContextualHelp(ui.RouteScenarios)),
		loading:   true,
		pathInput: pathInput,

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0, 1, 2),

		rowStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 2),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Bold(true).
			Padding(0, 2),

		mutedStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Padding(0, 2),

		statusStyle: lipgloss.NewStyle().
			Foreground(palette.Success).
			Margin(1, 0, 0, 2),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			Margin(1, 0, 0, 2),
	}
}

// Init requests the scenario listing
func (s *ScenariosScreen) Init() tea.Cmd {
	s.loading = true
	return s.services.ListScenariosCmd()
}

// Update handles screen updates
func (s *ScenariosScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.importing {
			return s, s.updateImporting(msg)
		}

		switch {
		case key.Matches(msg, s.keyMap.Quit):
			return s, tea.Quit

		case key.Matches(msg, s.keyMap.Up):
			if s.selectedIndex > 0 {
				s.selectedIndex--
			}

		case key.Matches(msg, s.keyMap.Down):
			if s.selectedIndex < len(s.scenarios)-1 {
				s.selectedIndex++
			}

		case key.Matches(msg, s.keyMap.Enter):
			if sc := s.selected(); sc != nil {
				return s, s.services.LoadScenarioCmd(sc.ID)
			}

		case key.Matches(msg, s.keyMap.Delete):
			if sc := s.selected(); sc != nil {
				return s, s.services.DeleteScenarioCmd(sc.ID)
			}

		case key.Matches(msg, s.keyMap.Export):
			if sc := s.selected(); sc != nil {
				return s, s.services.ExportScenarioCmd(sc.Name, sc.Params)
			}

		case key.Matches(msg, s.keyMap.Import):
			s.importing = true
			s.pathInput.SetValue("")
			s.pathInput.Focus()
			return s, textinput.Blink
		}

	case ui.ScenarioListMsg:
		s.loading = false
		s.scenarios = msg.Scenarios
		if s.selectedIndex >= len(s.scenarios) {
			s.selectedIndex = maxInt(len(s.scenarios)-1, 0)
		}

	case ui.ScenarioDeletedMsg:
		s.status = "scenario deleted"
		s.statusIsErr = false
		return s, s.services.ListScenariosCmd()

	case ui.ExportDoneMsg:
		s.status = "exported to " + msg.Path
		s.statusIsErr = false

	case ui.ErrorMsg:
		s.status = msg.Title + ": " + msg.Error.Error()
		s.statusIsErr = true
	}

	return s, nil
}

func (s *ScenariosScreen) updateImporting(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		path := s.pathInput.Value()
		s.importing = false
		s.pathInput.Blur()
		if path == "" {
			return nil
		}
		return s.services.ImportScenarioCmd(path)

	case "esc":
		s.importing = false
		s.pathInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	s.pathInput, cmd = s.pathInput.Update(msg)
	return cmd
}

// CapturesEsc keeps esc for the import prompt while it is open
func (s *ScenariosScreen) CapturesEsc() bool {
	return s.importing
}

// View renders the scenarios screen
func (s *ScenariosScreen) View() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}

	sections := []string{s.titleStyle.Render("Saved Scenarios")}

	switch {
	case s.loading:
		sections = append(sections, s.mutedStyle.Render("loading..."))
	case len(s.scenarios) == 0:
		sections = append(sections, s.mutedStyle.Render("no scenarios saved yet — press ctrl+s on the dashboard"))
	default:
		sections = append(sections, s.renderList())
	}

	if s.importing {
		sections = append(sections, lipgloss.NewStyle().Margin(1, 0, 0, 2).Render(s.pathInput.View()))
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
func (s *ScenariosScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)
}

func (s *ScenariosScreen) renderList() string {
	var rows []string

	for i, sc := range s.scenarios {
		margin := model.ComputeProfit(sc.Params).NetMargin
		row := fmt.Sprintf("%-24s  margin %10.2f  updated %s",
			truncate(sc.Name, 24), margin, sc.UpdatedAt.Format("2006-01-02 15:04"))

		if i == s.selectedIndex {
			rows = append(rows, s.selectedStyle.Render(row))
		} else {
			rows = append(rows, s.rowStyle.Render(row))
		}
	}

	return strings.Join(rows, "\n")
}

func (s *ScenariosScreen) selected() *models.Scenario {
	if s.selectedIndex < 0 || s.selectedIndex >= len(s.scenarios) {
		return nil
	}
	return s.scenarios[s.selectedIndex]
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max-1] + "…"
}
