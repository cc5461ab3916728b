package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agrotools/feedlot-calc/internal/ui"
	"github.com/agrotools/feedlot-calc/internal/ui/component"
	"github.com/agrotools/feedlot-calc/internal/ui/router"
	"github.com/agrotools/feedlot-calc/internal/ui/style"
)

// MenuItem represents a menu item
type MenuItem struct {
	Label       string
	Description string
	Route       ui.Route
}

// MainMenuScreen is the entry screen of the application
type MainMenuScreen struct {
	width    int
	height   int
	keyMap   ui.KeyMap
	services *ui.Services

	helpBar *component.HelpBar

	selectedIndex int
	menuItems     []MenuItem

	titleStyle       lipgloss.Style
	menuItemStyle    lipgloss.Style
	selectedStyle    lipgloss.Style
	descriptionStyle lipgloss.Style
}

// NewMainMenuScreen creates a new main menu screen
func NewMainMenuScreen(services *ui.Services) *MainMenuScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	menuItems := []MenuItem{
		{
			Label:       "▶ Dashboard",
			Description: "Edit parameters and inspect the margin breakdown",
			Route:       ui.RouteDashboard,
		},
		{
			Label:       "▦ Heatmap",
			Description: "Margin over the purchase/sale price grid",
			Route:       ui.RouteHeatmap,
		},
		{
			Label:       "🗁 Scenarios",
			Description: "Save, load and export scenarios",
			Route:       ui.RouteScenarios,
		},
		{
			Label:       "📜 Logs",
			Description: "View application logs",
			Route:       ui.RouteLogs,
		},
	}

	helpBar := component.NewHelpBar().
		SetBindings(keyMap.ContextualHelp(ui.RouteMainMenu))

	return &MainMenuScreen{
		keyMap:    keyMap,
		services:  services,
		menuItems: menuItems,
		helpBar:   helpBar,

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0).
			Align(lipgloss.Center),

		menuItemStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 2).
			Margin(0, 0, 1, 0),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Padding(0, 2).
			Margin(0, 0, 1, 0).
			Bold(true),

		descriptionStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Padding(0, 4).
			Margin(0, 0, 1, 0).
			Italic(true),
	}
}

// Init initializes the main menu screen
func (m *MainMenuScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (m *MainMenuScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keyMap.Up):
			m.moveUp()

		case key.Matches(msg, m.keyMap.Down):
			m.moveDown()

		case key.Matches(msg, m.keyMap.Enter):
			if m.selectedIndex < len(m.menuItems) {
				return m, router.Navigate(m.menuItems[m.selectedIndex].Route)
			}

		case key.Matches(msg, m.keyMap.Dashboard):
			return m, router.Navigate(ui.RouteDashboard)

		case key.Matches(msg, m.keyMap.Heatmap):
			return m, router.Navigate(ui.RouteHeatmap)

		case key.Matches(msg, m.keyMap.Scenarios):
			return m, router.Navigate(ui.RouteScenarios)

		case key.Matches(msg, m.keyMap.Logs):
			return m, router.Navigate(ui.RouteLogs)
		}
	}

	return m, nil
}

// View renders the main menu screen
func (m *MainMenuScreen) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	title := m.titleStyle.Width(m.width).Render("🐂 Feedlot Profit Calculator")
	content.WriteString(title)
	content.WriteString("\n\n")
	content.WriteString(m.renderMenu())
	content.WriteString("\n")
	content.WriteString(m.helpBar.SetWidth(m.width).View())

	result := content.String()
	if m.width > 80 {
		result = lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			result)
	}

	return result
}

// SetSize sets the screen dimensions
func (m *MainMenuScreen) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.helpBar.SetWidth(width)
}

func (m *MainMenuScreen) renderMenu() string {
	var menuItems []string

	for i, item := range m.menuItems {
		itemStyle := m.menuItemStyle
		if i == m.selectedIndex {
			itemStyle = m.selectedStyle
		}

		menuItems = append(menuItems, itemStyle.Render(item.Label))

		if i == m.selectedIndex {
			menuItems = append(menuItems, m.descriptionStyle.Render(item.Description))
		}
	}

	menuStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.DefaultPalette().Primary).
		Padding(2, 4).
		Margin(1, 0)

	return menuStyle.Render(strings.Join(menuItems, "\n"))
}

func (m *MainMenuScreen) moveUp() {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	} else {
		m.selectedIndex = len(m.menuItems) - 1
	}
}

func (m *MainMenuScreen) moveDown() {
	if m.selectedIndex < len(m.menuItems)-1 {
		m.selectedIndex++
	} else {
		m.selectedIndex = 0
	}
}
