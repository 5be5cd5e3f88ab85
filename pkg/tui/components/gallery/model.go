// Package gallery renders the visible entries as a grid of cards.
package gallery

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/glyph"
	"tableflip.dev/nurhuda/pkg/tui/events"
	"tableflip.dev/nurhuda/pkg/tui/theme"
)

const (
	// CardHeight is the rendered height of one card including its border.
	CardHeight = 7
	// DefaultCardWidth is used when no width is configured.
	DefaultCardWidth = 34
	minCardWidth     = 16
	cardGap          = 1
	summaryLines     = 2
	ellipsis         = "…"
)

// KeyMap lists gallery bindings.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Activate: key.NewBinding(key.WithKeys("enter", "space", " "), key.WithHelp("enter", "read more")),
	}
}

// Model renders cards for an ordered slice of entries. It tracks only the
// focused card; selection belongs to the root controller and is requested
// through events.EntrySelectMsg.
type Model struct {
	id      events.ComponentID
	theme   theme.Theme
	keys    KeyMap
	entries []*catalog.Entry

	cursor int
	top    int

	width     int
	height    int
	cardWidth int
}

// New constructs a gallery. cardWidth <= 0 selects DefaultCardWidth.
func New(id events.ComponentID, th theme.Theme, cardWidth int) *Model {
	if id == "" {
		id = events.ComponentID("gallery")
	}
	if cardWidth <= 0 {
		cardWidth = DefaultCardWidth
	}
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}
	return &Model{
		id:        id,
		theme:     th,
		keys:      DefaultKeyMap(),
		cardWidth: cardWidth,
		width:     cardWidth,
		height:    CardHeight,
	}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Keys returns the active bindings.
func (m *Model) Keys() KeyMap { return m.keys }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize configures the area available to the grid.
func (m *Model) SetSize(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetEntries replaces the cards. The focus returns to the first card.
func (m *Model) SetEntries(entries []*catalog.Entry) {
	m.entries = entries
	m.cursor = 0
	m.top = 0
}

// Entries returns the cards in display order.
func (m *Model) Entries() []*catalog.Entry { return m.entries }

// Cursor returns the focused card index.
func (m *Model) Cursor() int { return m.cursor }

// Focused returns the focused entry, or nil for an empty gallery.
func (m *Model) Focused() *catalog.Entry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return m.entries[m.cursor]
}

// Columns reports how many cards fit on one row.
func (m *Model) Columns() int {
	return max(1, (m.width+cardGap)/(m.cardWidth+cardGap))
}

// Rows reports how many card rows fit in the viewport.
func (m *Model) Rows() int {
	return max(1, m.height/CardHeight)
}

// Update handles cursor movement and activation keys.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	v, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.entries) == 0 {
		return m, nil
	}
	cols := m.Columns()
	next := m.cursor
	switch {
	case key.Matches(v, m.keys.Activate):
		return m, events.EntrySelectCmd(m.id, m.Focused())
	case key.Matches(v, m.keys.Left):
		next--
	case key.Matches(v, m.keys.Right):
		next++
	case key.Matches(v, m.keys.Up):
		next -= cols
	case key.Matches(v, m.keys.Down):
		if next+cols < len(m.entries) {
			next += cols
		} else if next/cols < (len(m.entries)-1)/cols {
			next = len(m.entries) - 1
		}
	case key.Matches(v, m.keys.Home):
		next = 0
	case key.Matches(v, m.keys.End):
		next = len(m.entries) - 1
	default:
		return m, nil
	}
	return m, m.moveTo(next)
}

// Activate focuses the card at index and requests its selection.
func (m *Model) Activate(index int) tea.Cmd {
	if index < 0 || index >= len(m.entries) {
		return nil
	}
	m.cursor = index
	m.ensureVisible()
	return events.EntrySelectCmd(m.id, m.entries[index])
}

// HitTest maps a cell relative to the gallery origin to a card index, or
// -1 when the cell is not on a card.
func (m *Model) HitTest(x, y int) int {
	if x < 0 || y < 0 || y >= m.Rows()*CardHeight {
		return -1
	}
	stride := m.cardWidth + cardGap
	col := x / stride
	if col >= m.Columns() || x%stride >= m.cardWidth {
		return -1
	}
	row := m.top + y/CardHeight
	idx := row*m.Columns() + col
	if idx >= len(m.entries) {
		return -1
	}
	return idx
}

func (m *Model) moveTo(next int) tea.Cmd {
	if next < 0 {
		next = 0
	}
	if next >= len(m.entries) {
		next = len(m.entries) - 1
	}
	if next == m.cursor {
		return nil
	}
	m.cursor = next
	m.ensureVisible()
	return events.EntryHighlightCmd(m.id, m.cursor, m.entries[m.cursor])
}

func (m *Model) ensureVisible() {
	if len(m.entries) == 0 {
		m.top = 0
		return
	}
	row := m.cursor / m.Columns()
	rows := m.Rows()
	if row < m.top {
		m.top = row
	}
	if row >= m.top+rows {
		m.top = row - rows + 1
	}
}

// View renders the visible card rows.
func (m *Model) View() string {
	if len(m.entries) == 0 {
		return m.theme.Intro.Subtitle.Render("No entries in this category.")
	}
	cols := m.Columns()
	start := m.top * cols
	end := min(len(m.entries), start+m.Rows()*cols)

	rows := make([]string, 0, m.Rows())
	for i := start; i < end; i += cols {
		cards := make([]string, 0, cols*2)
		for j := i; j < min(i+cols, end); j++ {
			if j > i {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(m.entries[j], j == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderCard(e *catalog.Entry, focused bool) string {
	inner := m.cardWidth - 4
	pal := m.theme.Accent(e.Accent)
	th := m.theme.Card

	symbol := e.Resolve().Symbol
	badgeWidth := max(0, inner-lipgloss.Width(symbol)-1)
	badge := th.Badge.Render(truncate.StringWithTail(e.Title, uint(badgeWidth), ellipsis))
	header := symbol + strings.Repeat(" ", max(1, inner-lipgloss.Width(symbol)-lipgloss.Width(badge))) + badge

	lines := []string{
		header,
		th.Name.Foreground(pal.Text).Render(truncate.StringWithTail(e.Name, uint(inner), ellipsis)),
	}
	for _, l := range Clamp(e.Summary, inner, summaryLines) {
		lines = append(lines, th.Summary.Render(l))
	}
	for len(lines) < 2+summaryLines {
		lines = append(lines, "")
	}
	hint := ""
	if focused {
		hint = th.Hint.Foreground(pal.Border).Render("Read more " + glyph.Resolve(glyph.Chevron).Symbol)
	}
	lines = append(lines, hint)

	for i := range lines {
		lines[i] = padRight(lines[i], inner)
	}

	frame := th.Frame
	if focused {
		frame = th.Focused
	}
	return frame.BorderForeground(pal.Border).Render(strings.Join(lines, "\n"))
}

// Clamp wraps text to width and keeps at most n lines, ending the last kept
// line with an ellipsis when text was cut.
func Clamp(text string, width, n int) []string {
	if width <= 0 || n <= 0 {
		return nil
	}
	wrapped := strings.Split(wordwrap.String(strings.TrimSpace(text), width), "\n")
	for i := range wrapped {
		wrapped[i] = strings.TrimRight(wrapped[i], " ")
	}
	if len(wrapped) <= n {
		for i := range wrapped {
			wrapped[i] = truncate.StringWithTail(wrapped[i], uint(width), ellipsis)
		}
		return wrapped
	}
	out := make([]string, n)
	for i := range out {
		out[i] = truncate.StringWithTail(wrapped[i], uint(width), ellipsis)
	}
	last := wrapped[n-1] + " " + wrapped[n]
	out[n-1] = truncate.StringWithTail(last, uint(width), ellipsis)
	if lipgloss.Width(last) <= width {
		out[n-1] = truncate.StringWithTail(out[n-1], uint(width-1), "") + ellipsis
	}
	return out
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
