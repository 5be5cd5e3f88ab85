// Package detail renders the full record of one entry as an overlay.
package detail

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/glyph"
	"tableflip.dev/nurhuda/pkg/tui/events"
	"tableflip.dev/nurhuda/pkg/tui/theme"
	"tableflip.dev/nurhuda/pkg/tui/ui"
)

const (
	// MaxWidth caps the overlay width on wide terminals.
	MaxWidth = 72
	// MinWidth fits the confirm button inside the frame.
	MinWidth = 25

	// frame border plus horizontal padding
	frameX = 4
	frameY = 2
	// header, title, rule above the body; rule and button below it
	chromeRows = 5
	// MinHeight keeps one body row between header and footer.
	MinHeight = chromeRows + frameY + 1

	confirmLabel = "Got it, thanks!"
)

// Region identifies the part of the overlay under a pointer.
type Region int

const (
	// RegionBody is any cell without its own action.
	RegionBody Region = iota
	// RegionClose is the close mark in the header.
	RegionClose
	// RegionConfirm is the footer button.
	RegionConfirm
)

// KeyMap lists overlay bindings.
type KeyMap struct {
	Close   key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close:   key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", confirmLabel)),
	}
}

// Model shows name, title, glyph, summary, insight and suggested activity
// of one entry. It never clears the selection itself; every dismissal is a
// events.DismissMsg for the root controller.
type Model struct {
	id    events.ComponentID
	theme theme.Theme
	keys  KeyMap
	entry *catalog.Entry

	viewport viewport.Model
	width    int
	height   int

	buttonStart int
	buttonEnd   int
}

var _ ui.Overlay = (*Model)(nil)

// New constructs an overlay for entry.
func New(id events.ComponentID, th theme.Theme, entry *catalog.Entry) *Model {
	if id == "" {
		id = events.ComponentID("detail")
	}
	vp := viewport.New(
		viewport.WithWidth(1),
		viewport.WithHeight(1),
	)
	vp.MouseWheelEnabled = true
	m := &Model{
		id:       id,
		theme:    th,
		keys:     DefaultKeyMap(),
		entry:    entry,
		viewport: vp,
	}
	m.SetSize(MaxWidth, 24)
	return m
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Entry returns the displayed entry.
func (m *Model) Entry() *catalog.Entry { return m.entry }

// Keys returns the active bindings.
func (m *Model) Keys() KeyMap { return m.keys }

// Init implements ui.Overlay.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles dismissal keys and forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (ui.Overlay, tea.Cmd) {
	if v, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(v, m.keys.Close):
			return m, m.Dismiss(events.DismissClose)
		case key.Matches(v, m.keys.Confirm):
			return m, m.Dismiss(events.DismissConfirm)
		}
	}
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// Dismiss requests that the overlay be closed.
func (m *Model) Dismiss(reason events.DismissReason) tea.Cmd {
	return events.DismissCmd(m.id, reason)
}

// Click handles a left click at (x, y) relative to the overlay origin.
func (m *Model) Click(x, y int) tea.Cmd {
	switch m.HitTest(x, y) {
	case RegionClose:
		return m.Dismiss(events.DismissClose)
	case RegionConfirm:
		return m.Dismiss(events.DismissConfirm)
	}
	return nil
}

// HitTest maps a cell relative to the overlay origin to a region.
func (m *Model) HitTest(x, y int) Region {
	inner := m.innerWidth()
	switch y {
	case 1:
		closeX := 2 + inner - 1
		if x >= closeX-1 && x <= closeX+1 {
			return RegionClose
		}
	case m.height - 2:
		if x >= 2+m.buttonStart && x < 2+m.buttonEnd {
			return RegionConfirm
		}
	}
	return RegionBody
}

// SetSize configures the outer box size, border included.
func (m *Model) SetSize(width, height int) {
	width = max(MinWidth, min(width, MaxWidth))
	height = max(MinHeight, height)
	m.width = width
	m.height = height
	m.viewport.SetWidth(m.innerWidth())
	m.viewport.SetHeight(height - frameY - chromeRows)
	m.viewport.SetContent(m.body())
	m.viewport.SetYOffset(0)
}

// Size reports the outer box size after clamping.
func (m *Model) Size() (int, int) {
	return m.width, m.height
}

// PreferredHeight reports the height that shows the whole body without
// scrolling at the given width.
func (m *Model) PreferredHeight(width int) int {
	width = max(MinWidth, min(width, MaxWidth))
	saved := m.width
	m.width = width
	lines := lipgloss.Height(m.body())
	m.width = saved
	return lines + chromeRows + frameY
}

// View renders the overlay box.
func (m *Model) View() (string, *tea.Cursor) {
	if m.entry == nil {
		return "", nil
	}
	inner := m.innerWidth()
	th := m.theme.Modal
	pal := m.theme.Accent(m.entry.Accent)

	closeMark := th.Close.Render(glyph.Resolve(glyph.Close).Symbol)
	symbol := m.entry.Resolve().Symbol
	nameWidth := max(1, inner-lipgloss.Width(symbol)-lipgloss.Width(closeMark)-2)
	name := th.Name.Foreground(pal.Text).Render(truncate.StringWithTail(m.entry.Name, uint(nameWidth), "…"))
	left := symbol + " " + name
	header := left + strings.Repeat(" ", max(1, inner-lipgloss.Width(left)-lipgloss.Width(closeMark))) + closeMark

	rule := th.Rule.Render(strings.Repeat("─", inner))

	button := th.Button.Render(confirmLabel)
	bw := lipgloss.Width(button)
	m.buttonStart = max(0, (inner-bw)/2)
	m.buttonEnd = m.buttonStart + bw

	lines := []string{
		header,
		th.Title.Render(truncate.StringWithTail(m.entry.Title, uint(inner), "…")),
		rule,
	}
	lines = append(lines, strings.Split(m.viewport.View(), "\n")...)
	lines = append(lines, rule, strings.Repeat(" ", m.buttonStart)+button)
	for i := range lines {
		lines[i] = padRight(lines[i], inner)
	}

	return th.Frame.BorderForeground(pal.Border).Render(strings.Join(lines, "\n")), nil
}

func (m *Model) innerWidth() int {
	return max(1, m.width-frameX)
}

func (m *Model) body() string {
	if m.entry == nil {
		return ""
	}
	inner := m.innerWidth()
	th := m.theme.Modal

	var sections []string
	section := func(g glyph.Name, heading string, style lipgloss.Style, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		block := []string{th.Section.Render(glyph.Resolve(g).Symbol + " " + heading)}
		for _, l := range strings.Split(wordwrap.String(strings.TrimSpace(text), inner), "\n") {
			block = append(block, style.Render(strings.TrimRight(l, " ")))
		}
		sections = append(sections, strings.Join(block, "\n"))
	}
	section(glyph.Book, "Biography", th.Body, m.entry.Summary)
	section(glyph.Lightbulb, "Wisdom & Lesson", th.Insight, quote(m.entry.Insight))
	section(glyph.Activity, "Suggested Activity", th.Activity, m.entry.Activity)
	return strings.Join(sections, "\n\n")
}

func quote(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return "“" + s + "”"
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
