// Package eventviewer shows the messages the root controller handled, newest
// first. It is only mounted in debug mode.
package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Record is one logged event.
type Record struct {
	Time    time.Time
	Source  string
	Kind    string
	Detail  string
	Mutates bool
}

// Describer is implemented by messages that can summarise themselves.
type Describer interface {
	Describe() string
}

// FromMsg builds a record for msg.
func FromMsg(source string, msg tea.Msg) Record {
	r := Record{
		Time:   time.Now(),
		Source: source,
		Kind:   strings.TrimPrefix(fmt.Sprintf("%T", msg), "events."),
	}
	switch v := msg.(type) {
	case Describer:
		r.Detail = v.Describe()
	case tea.KeyPressMsg:
		r.Detail = fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		r.Detail = fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	}
	return r
}

// Model renders a bounded, bordered log.
type Model struct {
	viewport viewport.Model
	records  []Record
	limit    int

	width  int
	height int

	frame  lipgloss.Style
	header lipgloss.Style
	stamp  lipgloss.Style
	change lipgloss.Style
	plain  lipgloss.Style
}

// New constructs a viewer that keeps at most limit records.
func New(limit int) *Model {
	if limit <= 0 {
		limit = 200
	}
	return &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		limit:    limit,
		frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		stamp:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		change: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
		plain:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// Len reports how many records are kept.
func (m *Model) Len() int { return len(m.records) }

// Records returns the kept records, newest first.
func (m *Model) Records() []Record { return m.records }

// SetSize resizes the viewer, border included.
func (m *Model) SetSize(width, height int) {
	width = max(width, 4)
	height = max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(max(1, width-2))
	m.viewport.SetHeight(max(1, height-3))
	m.refresh()
}

// Append records r at the top of the log.
func (m *Model) Append(r Record) {
	if r.Time.IsZero() {
		r.Time = time.Now()
	}
	m.records = append([]Record{r}, m.records...)
	if len(m.records) > m.limit {
		m.records = m.records[:m.limit]
	}
	m.refresh()
	m.viewport.SetYOffset(0)
}

// View renders the bordered log.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.header.Render("Events"), m.viewport.View())
	return m.frame.Render(body)
}

func (m *Model) refresh() {
	if len(m.records) == 0 {
		m.viewport.SetContent(m.stamp.Render("No events yet"))
		return
	}
	lines := make([]string, 0, len(m.records))
	for _, r := range m.records {
		text := r.Kind
		if r.Detail != "" {
			text += " " + r.Detail
		}
		style := m.plain
		if r.Mutates {
			style = m.change
		}
		lines = append(lines, fmt.Sprintf("%s [%s] %s",
			m.stamp.Render(r.Time.Format("15:04:05.000")), r.Source, style.Render(text)))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}
