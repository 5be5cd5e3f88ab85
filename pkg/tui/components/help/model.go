// Package help renders the key guide overlay.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/nurhuda/pkg/tui/events"
	"tableflip.dev/nurhuda/pkg/tui/ui"
)

//go:embed help.md
var helpMarkdown string

// KeyMap lists help overlay bindings.
type KeyMap struct {
	Close key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("esc", "close help")),
	}
}

// Model renders the Glamour-based help overlay inside a bordered viewport.
type Model struct {
	id       events.ComponentID
	keys     KeyMap
	style    string
	viewport viewport.Model
	width    int
	height   int

	frame lipgloss.Style
	err   error
}

var _ ui.Overlay = (*Model)(nil)

// New constructs a help overlay. dark picks the glamour style.
func New(id events.ComponentID, dark bool, width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Margin(0).
		Padding(0)
	style := "light"
	if dark {
		style = "dark"
	}
	m := &Model{
		id:       id,
		keys:     DefaultKeyMap(),
		style:    style,
		viewport: vp,
		frame:    frame,
	}
	m.SetSize(width, height)
	return m
}

// Keys returns the active bindings.
func (m *Model) Keys() KeyMap { return m.keys }

// Init implements ui.Overlay.
func (m *Model) Init() tea.Cmd { return nil }

// Update closes on the close keys and forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (ui.Overlay, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && key.Matches(k, m.keys.Close) {
		return m, events.DismissCmd(m.id, events.DismissClose)
	}
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the help content inside a rounded frame.
func (m *Model) View() (string, *tea.Cursor) {
	body := m.viewport.View()
	if body == "" && m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	return m.frame.Render(body), nil
}

// Size reports the rendered overlay dimensions including the frame.
func (m *Model) Size() (int, int) {
	return m.width, m.height
}

// SetSize configures the overlay dimensions and re-renders the markdown to fit.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 32, 8
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if m.width == width && m.height == height {
		return
	}

	m.width = width
	m.height = height

	innerWidth := max(width-m.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.frame.GetVerticalFrameSize(), 1)

	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)

	m.renderContent(innerWidth)
}

func (m *Model) renderContent(wrap int) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(max(wrap, 10)),
	)
	if err != nil {
		m.err = err
		m.viewport.SetContent("help unavailable: " + err.Error())
		return
	}

	content, err := renderer.Render(strings.TrimSpace(helpMarkdown))
	if err != nil {
		m.err = err
		m.viewport.SetContent("help unavailable: " + err.Error())
		return
	}

	m.err = nil
	m.viewport.SetContent(ansi.Strip(content))
	m.viewport.SetYOffset(0)
}
