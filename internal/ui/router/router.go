package router

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrotools/feedlot-calc/internal/ui"
)

// Screen represents a screen that can be navigated to
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// EscCapturer lets a screen with an open prompt keep the esc key for
// itself instead of navigating back.
type EscCapturer interface {
	CapturesEsc() bool
}

// Router manages navigation between screens using a stack-based approach
type Router struct {
	stack  []Screen
	width  int
	height int
}

// New creates a new router with the initial screen
func New(initial Screen) *Router {
	return &Router{stack: []Screen{initial}}
}

// Init initializes the current screen
func (r *Router) Init() tea.Cmd {
	return r.top().Init()
}

// Update processes messages and updates the current screen
func (r *Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.SetSize(msg.Width, msg.Height)
		return r, nil

	case tea.KeyMsg:
		if msg.String() == "esc" && len(r.stack) > 1 {
			if c, ok := r.top().(EscCapturer); !ok || !c.CapturesEsc() {
				return r, r.Pop()
			}
		}
	}

	current := r.top()
	updated, cmd := current.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return r, cmd
}

// View renders the current screen
func (r *Router) View() string {
	return r.top().View()
}

// SetSize propagates the terminal size to the current screen
func (r *Router) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.top().SetSize(width, height)
}

// Push adds a new screen to the navigation stack
func (r *Router) Push(screen Screen) tea.Cmd {
	screen.SetSize(r.width, r.height)
	r.stack = append(r.stack, screen)
	return screen.Init()
}

// Pop removes the current screen from the stack
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]

	current := r.top()
	current.SetSize(r.width, r.height)
	return current.Init()
}

// Replace replaces the current screen with a new one
func (r *Router) Replace(screen Screen) tea.Cmd {
	screen.SetSize(r.width, r.height)
	r.stack[len(r.stack)-1] = screen
	return screen.Init()
}

// CanGoBack returns true if there are screens to go back to
func (r *Router) CanGoBack() bool {
	return len(r.stack) > 1
}

// Navigate is a helper that produces a RouterMsg command
func Navigate(route ui.Route) tea.Cmd {
	return func() tea.Msg {
		return ui.RouterMsg{To: route}
	}
}

func (r *Router) top() Screen {
	return r.stack[len(r.stack)-1]
}
