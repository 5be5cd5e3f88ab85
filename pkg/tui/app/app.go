// Package app is the root Bubble Tea model. It owns the view state and is
// the only place it is mutated.
package app

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/catalog/viewmodel"
	"tableflip.dev/nurhuda/pkg/glyph"
	"tableflip.dev/nurhuda/pkg/tui/components/detail"
	"tableflip.dev/nurhuda/pkg/tui/components/eventviewer"
	"tableflip.dev/nurhuda/pkg/tui/components/gallery"
	helpview "tableflip.dev/nurhuda/pkg/tui/components/help"
	"tableflip.dev/nurhuda/pkg/tui/components/tabs"
	"tableflip.dev/nurhuda/pkg/tui/events"
	"tableflip.dev/nurhuda/pkg/tui/theme"
	"tableflip.dev/nurhuda/pkg/tui/ui/overlay"
)

const (
	// AppName is shown in the header.
	AppName  = "Nur al-Huda"
	subtitle = "Let's learn from their beautiful stories and follow their wonderful character!"
	credit   = "An educational app for children"

	headerRows  = 2
	introRows   = 4
	footerRows  = 2
	galleryLeft = 1

	tabsID    = events.ComponentID("tabs")
	galleryID = events.ComponentID("gallery")
	detailID  = events.ComponentID("detail")
	helpID    = events.ComponentID("help")
	rootID    = "root"
)

// Options configures the root model.
type Options struct {
	Catalog   *catalog.Catalog
	Theme     theme.Theme
	CardWidth int
	// Debug enables the event viewer toggle.
	Debug bool
	// Now stamps the footer year; defaults to time.Now.
	Now func() time.Time
}

// Model composes the header, tabs, gallery and the detail overlay.
type Model struct {
	catalog *catalog.Catalog
	state   viewmodel.State
	theme   theme.Theme
	keys    keyMap
	help    help.Model

	tabs    *tabs.Model
	gallery *gallery.Model
	detail  *detail.Model
	guide   *helpview.Model

	debug      bool
	showEvents bool
	events     *eventviewer.Model

	width  int
	height int

	overlayRect overlay.Rect
	year        int
}

// New constructs the root model with a fresh view state.
func New(opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := &Model{
		catalog: opts.Catalog,
		state:   viewmodel.New(),
		theme:   opts.Theme,
		keys:    defaultKeyMap(),
		help:    help.New(),
		tabs:    tabs.New(tabsID, opts.Theme),
		gallery: gallery.New(galleryID, opts.Theme, opts.CardWidth),
		debug:   opts.Debug,
		width:   80,
		height:  24,
		year:    now().Year(),
	}
	m.tabs.SetActive(m.state.Active)
	m.gallery.SetEntries(viewmodel.VisibleEntries(m.state, m.catalog))
	if m.debug {
		m.events = eventviewer.New(400)
	}
	m.layout()
	return m
}

// Run launches the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// State returns a copy of the current view state.
func (m *Model) State() viewmodel.State { return m.state }

// VisibleEntries returns the entries the gallery is showing.
func (m *Model) VisibleEntries() []*catalog.Entry {
	return viewmodel.VisibleEntries(m.state, m.catalog)
}

// OverlayVisible reports whether the detail overlay is mounted.
func (m *Model) OverlayVisible() bool {
	return viewmodel.OverlayVisible(m.state)
}

// SetActiveCategory switches the visible tab. The selection is kept.
func (m *Model) SetActiveCategory(c catalog.Category) {
	c = c.Normalize()
	if c == m.state.Active.Normalize() {
		return
	}
	log.Printf("category: %s -> %s", m.state.Active, c)
	m.state.SetActiveCategory(c)
	m.tabs.SetActive(c)
	m.gallery.SetEntries(viewmodel.VisibleEntries(m.state, m.catalog))
	m.layout()
}

// SelectEntry opens the detail overlay for e.
func (m *Model) SelectEntry(e *catalog.Entry) tea.Cmd {
	if e == nil {
		return nil
	}
	log.Printf("select: %s", e.ID)
	m.state.SelectEntry(e)
	m.detail = detail.New(detailID, m.theme, e)
	m.layout()
	return m.detail.Init()
}

// ClearSelection hides the detail overlay. Calling it while hidden is a
// no-op.
func (m *Model) ClearSelection() {
	if m.state.Selected != nil {
		log.Printf("clear: %s", m.state.Selected.ID)
	}
	m.state.ClearSelection()
	m.detail = nil
	m.overlayRect = overlay.Rect{}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes Bubble Tea messages to composed components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noteEvent(msg)

	var cmds []tea.Cmd

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.layout()
	case tea.KeyPressMsg:
		if key.Matches(v, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.detail != nil {
			_, cmd := m.detail.Update(v)
			cmds = append(cmds, cmd)
			break
		}
		if m.guide != nil {
			_, cmd := m.guide.Update(v)
			cmds = append(cmds, cmd)
			break
		}
		if key.Matches(v, m.keys.Help) {
			m.guide = helpview.New(helpID, m.theme.Dark, m.width, m.height)
			m.layout()
			break
		}
		if key.Matches(v, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.debug && key.Matches(v, m.keys.Events) {
			m.showEvents = !m.showEvents
			m.layout()
			break
		}
		if _, cmd := m.tabs.Update(v); cmd != nil {
			cmds = append(cmds, cmd)
			break
		}
		_, cmd := m.gallery.Update(v)
		cmds = append(cmds, cmd)
	case tea.MouseClickMsg:
		cmds = append(cmds, m.handleClick(v.Mouse()))
	case tea.MouseWheelMsg:
		switch {
		case m.detail != nil:
			_, cmd := m.detail.Update(v)
			cmds = append(cmds, cmd)
		case m.guide != nil:
			_, cmd := m.guide.Update(v)
			cmds = append(cmds, cmd)
		}
	case events.CategorySelectMsg:
		m.SetActiveCategory(v.Category)
	case events.EntrySelectMsg:
		cmds = append(cmds, m.SelectEntry(v.Entry))
	case events.DismissMsg:
		if v.Component == helpID {
			m.guide = nil
			break
		}
		m.ClearSelection()
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleClick(mouse tea.Mouse) tea.Cmd {
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	if m.detail != nil {
		if !m.overlayRect.Contains(mouse.X, mouse.Y) {
			return m.detail.Dismiss(events.DismissBackdrop)
		}
		return m.detail.Click(mouse.X-m.overlayRect.X, mouse.Y-m.overlayRect.Y)
	}
	if m.guide != nil {
		return events.DismissCmd(helpID, events.DismissBackdrop)
	}
	if mouse.Y == 0 {
		if c, ok := m.tabs.HitTest(mouse.X - m.tabsColumn()); ok {
			return m.tabs.Select(c)
		}
		return nil
	}
	top := headerRows + introRows
	if mouse.Y >= top && mouse.Y < top+m.galleryHeight() {
		if idx := m.gallery.HitTest(mouse.X-galleryLeft, mouse.Y-top); idx >= 0 {
			return m.gallery.Activate(idx)
		}
	}
	return nil
}

// View renders the composed UI.
func (m *Model) View() (string, *tea.Cursor) {
	base := m.renderBase()
	switch {
	case m.detail != nil:
		fg, _ := m.detail.View()
		return overlay.Compose(base, m.width, m.height, fg, m.overlayPlacement()), nil
	case m.guide != nil:
		fg, _ := m.guide.View()
		return overlay.Compose(base, m.width, m.height, fg, overlay.Placement{
			Horizontal: lipgloss.Center,
			Vertical:   lipgloss.Center,
			Dim:        true,
		}), nil
	}
	return base, nil
}

func (m *Model) layout() {
	if m.width <= 0 {
		m.width = 1
	}
	if m.height <= 0 {
		m.height = 1
	}
	m.gallery.SetSize(max(1, m.width-2*galleryLeft), m.galleryHeight())
	if m.events != nil {
		m.events.SetSize(m.width, m.eventsHeight())
	}
	if m.detail != nil {
		w := min(detail.MaxWidth, int(math.Round(float64(m.width)*0.9)))
		h := min(m.detail.PreferredHeight(w), int(math.Round(float64(m.height)*0.9)))
		m.detail.SetSize(w, h)
		w, h = m.detail.Size()
		m.overlayRect = overlay.Place(m.width, m.height, w, h, m.overlayPlacement())
	}
	if m.guide != nil {
		m.guide.SetSize(min(60, m.width-4), min(30, m.height-2))
	}
}

func (m *Model) overlayPlacement() overlay.Placement {
	p := overlay.Placement{
		Horizontal: lipgloss.Center,
		Vertical:   lipgloss.Center,
		Dim:        true,
	}
	if !m.overlayRect.Empty() {
		p.Width = m.overlayRect.Width
		p.Height = m.overlayRect.Height
	}
	return p
}

func (m *Model) galleryHeight() int {
	return max(1, m.height-headerRows-introRows-footerRows-m.eventsHeight())
}

func (m *Model) eventsHeight() int {
	if !m.showEvents || m.events == nil {
		return 0
	}
	avail := m.height - headerRows - introRows - footerRows
	if avail <= 8 {
		return 0
	}
	return min(10, avail/3)
}

func (m *Model) tabsColumn() int {
	return max(0, m.width-lipgloss.Width(m.tabs.View()))
}

func (m *Model) renderBase() string {
	lines := make([]string, 0, m.height)

	brand := m.theme.Header.Brand.Render(glyph.Resolve(glyph.Star).Symbol + " " + AppName)
	tabLine := m.tabs.View()
	gap := max(1, m.width-lipgloss.Width(brand)-lipgloss.Width(tabLine))
	lines = append(lines,
		brand+strings.Repeat(" ", gap)+tabLine,
		m.theme.Header.Rule.Render(strings.Repeat("─", m.width)),
	)

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}
	lines = append(lines,
		"",
		center(m.theme.Intro.Heading.Render(m.state.Active.Heading())),
		center(m.theme.Intro.Subtitle.Render(subtitle)),
		"",
	)

	indent := strings.Repeat(" ", galleryLeft)
	body := strings.Split(m.gallery.View(), "\n")
	gh := m.galleryHeight()
	for i := 0; i < gh; i++ {
		if i < len(body) {
			lines = append(lines, indent+body[i])
		} else {
			lines = append(lines, "")
		}
	}

	if h := m.eventsHeight(); h > 0 {
		lines = append(lines, strings.Split(m.events.View(), "\n")...)
	}

	lines = append(lines,
		m.theme.Footer.Help.Render(m.helpLine()),
		center(m.theme.Footer.Credit.Render(fmt.Sprintf("%s - %d", credit, m.year))),
	)

	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) helpLine() string {
	if m.detail != nil {
		dk := m.detail.Keys()
		return m.help.ShortHelpView([]key.Binding{dk.Close, dk.Confirm})
	}
	if m.guide != nil {
		return m.help.ShortHelpView([]key.Binding{m.guide.Keys().Close})
	}
	tk := m.tabs.Keys()
	gk := m.gallery.Keys()
	bindings := []key.Binding{tk.Next, gk.Left, gk.Right, gk.Up, gk.Down, gk.Activate, m.keys.Help, m.keys.Quit}
	if m.debug {
		bindings = append(bindings, m.keys.Events)
	}
	return m.help.ShortHelpView(bindings)
}

func (m *Model) noteEvent(msg tea.Msg) {
	source, mutates, ok := eventSource(msg)
	if mutates {
		log.Printf("%T from %s: %s", msg, source, msg.(eventviewer.Describer).Describe())
	}
	if m.events == nil {
		return
	}
	if !ok {
		if _, isKey := msg.(tea.KeyPressMsg); !isKey {
			return
		}
		source = rootID
	}
	r := eventviewer.FromMsg(source, msg)
	r.Mutates = mutates
	m.events.Append(r)
}

func eventSource(msg tea.Msg) (source string, mutates bool, ok bool) {
	switch v := msg.(type) {
	case events.CategorySelectMsg:
		return string(v.Component), true, true
	case events.EntrySelectMsg:
		return string(v.Component), true, true
	case events.DismissMsg:
		return string(v.Component), true, true
	case events.EntryHighlightMsg:
		return string(v.Component), false, true
	default:
		return "", false, false
	}
}
