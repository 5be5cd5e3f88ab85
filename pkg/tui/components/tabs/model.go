package tabs

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/tui/events"
	"tableflip.dev/nurhuda/pkg/tui/theme"
)

// KeyMap lists the bindings that switch category.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Prophets key.Binding
	Infall   key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "previous tab"),
		),
		Prophets: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", catalog.CategoryProphets.Label()),
		),
		Infall: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", catalog.CategoryInfallibles.Label()),
		),
	}
}

type span struct {
	start, end int
	category   catalog.Category
}

// Model renders the two mutually exclusive category controls. It displays
// the active category but never changes it; activation emits
// events.CategorySelectMsg for the root controller.
type Model struct {
	id     events.ComponentID
	active catalog.Category
	keys   KeyMap
	styles theme.TabsTheme
	spans  []span
}

// New constructs the tab bar.
func New(id events.ComponentID, th theme.Theme) *Model {
	if id == "" {
		id = events.ComponentID("tabs")
	}
	return &Model{
		id:     id,
		active: catalog.CategoryProphets,
		keys:   DefaultKeyMap(),
		styles: th.Tabs,
	}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Keys returns the active bindings.
func (m *Model) Keys() KeyMap { return m.keys }

// SetActive mirrors the root controller's active category.
func (m *Model) SetActive(c catalog.Category) { m.active = c.Normalize() }

// Active reports the highlighted category.
func (m *Model) Active() catalog.Category { return m.active }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update translates key presses into category requests.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	v, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(v, m.keys.Next), key.Matches(v, m.keys.Prev):
		return m, m.Select(m.active.Next())
	case key.Matches(v, m.keys.Prophets):
		return m, m.Select(catalog.CategoryProphets)
	case key.Matches(v, m.keys.Infall):
		return m, m.Select(catalog.CategoryInfallibles)
	}
	return m, nil
}

// Select requests that c become the active category.
func (m *Model) Select(c catalog.Category) tea.Cmd {
	return events.CategorySelectCmd(m.id, c)
}

// HitTest maps a column on the tab line to a category.
func (m *Model) HitTest(x int) (catalog.Category, bool) {
	for _, s := range m.spans {
		if x >= s.start && x < s.end {
			return s.category, true
		}
	}
	return "", false
}

// View renders the tab line.
func (m *Model) View() string {
	m.spans = m.spans[:0]
	parts := make([]string, 0, len(catalog.AllCategories()))
	col := 0
	for _, c := range catalog.AllCategories() {
		style := m.styles.Inactive
		if c == m.active {
			style = m.styles.Active
		}
		rendered := style.Render(c.Label())
		w := lipgloss.Width(rendered)
		m.spans = append(m.spans, span{start: col, end: col + w, category: c})
		parts = append(parts, rendered)
		col += w + 1
	}
	return strings.Join(parts, " ")
}
