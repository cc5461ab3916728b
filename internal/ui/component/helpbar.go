package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/agrotools/feedlot-calc/internal/ui/style"
)

// HelpBar renders the keyboard shortcuts active on the current screen
type HelpBar struct {
	bindings []key.Binding
	width    int

	keyStyle       lipgloss.Style
	descStyle      lipgloss.Style
	sepStyle       lipgloss.Style
	containerStyle lipgloss.Style
}

// NewHelpBar creates a new help bar component
func NewHelpBar() *HelpBar {
	palette := style.DefaultPalette()

	return &HelpBar{
		width: 80,

		keyStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		descStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		sepStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		containerStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Margin(1, 0, 0, 0),
	}
}

// SetBindings sets the key bindings to display
func (h *HelpBar) SetBindings(bindings []key.Binding) *HelpBar {
	h.bindings = bindings
	return h
}

// SetWidth sets the help bar width
func (h *HelpBar) SetWidth(width int) *HelpBar {
	h.width = width
	return h
}

// View renders the help bar, dropping trailing items that would not fit
func (h *HelpBar) View() string {
	if len(h.bindings) == 0 {
		return ""
	}

	separator := h.sepStyle.Render(" • ")
	sepWidth := lipgloss.Width(separator)
	availableWidth := h.width - 2

	items := make([]string, 0, len(h.bindings))
	currentWidth := 0

	for _, binding := range h.bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if help.Key == "" || help.Desc == "" {
			continue
		}

		item := h.keyStyle.Render(help.Key) + " " + h.descStyle.Render(help.Desc)
		itemWidth := lipgloss.Width(item) + sepWidth

		if currentWidth+itemWidth > availableWidth && len(items) > 0 {
			break
		}

		items = append(items, item)
		currentWidth += itemWidth
	}

	return h.containerStyle.Width(h.width).Render(strings.Join(items, separator))
}
