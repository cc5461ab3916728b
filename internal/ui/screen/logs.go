package screen

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agrotools/feedlot-calc/internal/ui"
	"github.com/agrotools/feedlot-calc/internal/ui/component"
	"github.com/agrotools/feedlot-calc/internal/ui/router"
	"github.com/agrotools/feedlot-calc/internal/ui/style"
)

const logsRefreshInterval = time.Second

type logsTickMsg time.Time

// LogsScreen shows the in-memory log buffer, refreshed once a second
type LogsScreen struct {
	width    int
	height   int
	keyMap   ui.KeyMap
	services *ui.Services

	viewport viewport.Model
	helpBar  *component.HelpBar

	titleStyle     lipgloss.Style
	timestampStyle lipgloss.Style
	errorStyle     lipgloss.Style
	warnStyle      lipgloss.Style
	infoStyle      lipgloss.Style
	debugStyle     lipgloss.Style
}

// NewLogsScreen creates a new logs screen
func NewLogsScreen(services *ui.Services) *LogsScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	return &LogsScreen{
		keyMap:   keyMap,
		services: services,
		viewport: viewport.New(80, 20),
		helpBar:  component.NewHelpBar().SetBindings(keyMap.ContextualHelp(ui.RouteLogs)),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0, 1, 2),

		timestampStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true),

		warnStyle: lipgloss.NewStyle().
			Foreground(palette.Warning),

		infoStyle: lipgloss.NewStyle().
			Foreground(palette.Info),

		debugStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),
	}
}

// Init starts the refresh ticker
func (s *LogsScreen) Init() tea.Cmd {
	s.refresh()
	return tickLogs()
}

func tickLogs() tea.Cmd {
	return tea.Tick(logsRefreshInterval, func(t time.Time) tea.Msg {
		return logsTickMsg(t)
	})
}

// Update handles screen updates
func (s *LogsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, s.keyMap.Quit) {
			return s, tea.Quit
		}

	case logsTickMsg:
		s.refresh()
		return s, tickLogs()
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View renders the logs screen
func (s *LogsScreen) View() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.titleStyle.Render(fmt.Sprintf("Logs — %d entries", s.services.Buffer.Total())),
		lipgloss.NewStyle().Margin(0, 0, 0, 2).Render(s.viewport.View()),
		s.helpBar.SetWidth(s.width).View(),
	)
}

// SetSize sets the screen dimensions
func (s *LogsScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)
	s.viewport.Width = maxInt(width-4, 20)
	s.viewport.Height = maxInt(height-6, 4)
	s.refresh()
}

func (s *LogsScreen) refresh() {
	atBottom := s.viewport.AtBottom()

	entries := s.services.Buffer.Recent(0)
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		ts := s.timestampStyle.Render(entry.Timestamp.Format("15:04:05"))
		level := s.levelStyle(entry.Level).Render(fmt.Sprintf("%-5s", strings.ToUpper(entry.Level)))
		lines = append(lines, ts+" "+level+" "+entry.Message)
	}

	s.viewport.SetContent(strings.Join(lines, "\n"))
	if atBottom {
		s.viewport.GotoBottom()
	}
}

func (s *LogsScreen) levelStyle(level string) lipgloss.Style {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return s.errorStyle
	case "warn", "warning":
		return s.warnStyle
	case "debug":
		return s.debugStyle
	default:
		return s.infoStyle
	}
}
