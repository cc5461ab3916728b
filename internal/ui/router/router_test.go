package router

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/agrotools/feedlot-calc/internal/ui"
)

type stubScreen struct {
	name        string
	capturesEsc bool
	width       int
	height      int
}

func (s *stubScreen) Init() tea.Cmd                    { return nil }
func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View() string                     { return s.name }
func (s *stubScreen) SetSize(width, height int)        { s.width, s.height = width, height }
func (s *stubScreen) CapturesEsc() bool                { return s.capturesEsc }

func escMsg() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func TestRouterPushPop(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	assert.False(t, r.CanGoBack())
	assert.Equal(t, "root", r.View())

	r.Push(&stubScreen{name: "child"})
	assert.True(t, r.CanGoBack())
	assert.Equal(t, "child", r.View())

	r.Pop()
	assert.False(t, r.CanGoBack())
	assert.Equal(t, "root", r.View())
}

func TestRouterPopOnRootIsNoop(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	assert.Nil(t, r.Pop())
	assert.Equal(t, "root", r.View())
}

func TestRouterEscPopsStack(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	r.Push(&stubScreen{name: "child"})

	r.Update(escMsg())
	assert.Equal(t, "root", r.View())
}

func TestRouterEscStaysWhenScreenCapturesIt(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	r.Push(&stubScreen{name: "child", capturesEsc: true})

	r.Update(escMsg())
	assert.Equal(t, "child", r.View())
}

func TestRouterPropagatesSize(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)
	r.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, root.width)

	child := &stubScreen{name: "child"}
	r.Push(child)
	assert.Equal(t, 100, child.width)
	assert.Equal(t, 40, child.height)
}

func TestRouterReplaceSwapsTop(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	r.Push(&stubScreen{name: "a"})
	r.Replace(&stubScreen{name: "b"})

	assert.Equal(t, "b", r.View())
	r.Update(escMsg())
	assert.Equal(t, "root", r.View())
}

func TestNavigateProducesRouterMsg(t *testing.T) {
	msg := Navigate(ui.RouteHeatmap)()
	routerMsg, ok := msg.(ui.RouterMsg)
	assert.True(t, ok)
	assert.Equal(t, ui.RouteHeatmap, routerMsg.To)
}
