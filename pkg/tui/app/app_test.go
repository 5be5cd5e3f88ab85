package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/glyph"
	"tableflip.dev/nurhuda/pkg/tui/events"
	"tableflip.dev/nurhuda/pkg/tui/theme"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Entry{{
			ID: "1", Name: "Alpha One", Title: "First", Glyph: glyph.Trees, Accent: "emerald",
			Summary: "Alpha summary.", Insight: "Alpha insight.", Activity: "Alpha activity.",
		}},
		[]catalog.Entry{{
			ID: "2", Name: "Beta Two", Title: "Second", Glyph: glyph.Sun, Accent: "amber",
			Summary: "Beta summary.", Insight: "Beta insight.", Activity: "Beta activity.",
		}},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(Options{
		Catalog:   testCatalog(t),
		Theme:     theme.Default(),
		CardWidth: 30,
		Now:       func() time.Time { return time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC) },
	})
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

// send delivers msg and then every message its commands produce.
func send(t *testing.T, m *Model, msg tea.Msg) *Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0; i++ {
		if i > 100 {
			t.Fatalf("command loop did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if batch, ok := next.(tea.BatchMsg); ok {
			for _, cmd := range batch {
				if cmd != nil {
					queue = append(queue, cmd())
				}
			}
			continue
		}
		model, cmd := m.Update(next)
		nm, ok := model.(*Model)
		if !ok {
			t.Fatalf("expected *Model, got %T", model)
		}
		m = nm
		if cmd != nil {
			queue = append(queue, cmd())
		}
	}
	return m
}

func view(m *Model) string {
	v, _ := m.View()
	return v
}

func mustFind(t *testing.T, m *Model, id string) *catalog.Entry {
	t.Helper()
	e, err := m.catalog.Find(id)
	if err != nil {
		t.Fatalf("Find(%q): %v", id, err)
	}
	return e
}

func TestInitialStateAndCategorySwitch(t *testing.T) {
	m := newTestModel(t)

	if m.State().Active != catalog.CategoryProphets || m.OverlayVisible() {
		t.Fatalf("unexpected initial state %+v", m.State())
	}
	v := view(m)
	if !strings.Contains(v, "Alpha One") || strings.Contains(v, "Beta Two") {
		t.Fatalf("expected only Alpha One in the gallery:\n%s", v)
	}
	if !strings.Contains(v, "An educational app for children - 2026") {
		t.Fatalf("expected credit footer:\n%s", v)
	}

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	if m.State().Active != catalog.CategoryInfallibles {
		t.Fatalf("expected infallibles after tab, got %q", m.State().Active)
	}
	v = view(m)
	if strings.Contains(v, "Alpha One") || !strings.Contains(v, "Beta Two") {
		t.Fatalf("expected only Beta Two in the gallery:\n%s", v)
	}
	if m.State().Selected != nil {
		t.Fatalf("expected category switch to leave selection empty")
	}
	if got := strings.Count(v, "\n") + 1; got != 30 {
		t.Fatalf("expected view to fill 30 rows, got %d", got)
	}
}

func TestSelectAndDismissWithKeys(t *testing.T) {
	m := newTestModel(t)
	alpha := mustFind(t, m, "1")

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.OverlayVisible() || m.State().Selected != alpha {
		t.Fatalf("expected overlay for entry 1, got %+v", m.State())
	}
	v := view(m)
	for _, want := range []string{"Alpha summary.", "Alpha insight.", "Alpha activity.", "First"} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected %q in overlay:\n%s", want, v)
		}
	}

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.OverlayVisible() {
		t.Fatalf("expected overlay hidden after esc")
	}
	m = send(t, m, events.DismissMsg{Component: detailID, Reason: events.DismissClose})
	if m.OverlayVisible() || m.State().Active != catalog.CategoryProphets {
		t.Fatalf("expected repeated dismissal to be a no-op, got %+v", m.State())
	}
}

func TestSelectEntryOutsideActiveCategory(t *testing.T) {
	m := newTestModel(t)
	beta := mustFind(t, m, "2")

	m = send(t, m, events.EntrySelectMsg{Component: galleryID, Entry: beta})
	if m.State().Active != catalog.CategoryProphets {
		t.Fatalf("expected active category to stay prophets")
	}
	if m.State().Selected != beta {
		t.Fatalf("expected entry 2 selected")
	}
	v := view(m)
	if !strings.Contains(v, "Beta insight.") || !strings.Contains(v, "Beta activity.") {
		t.Fatalf("expected entry 2 fields in overlay:\n%s", v)
	}
}

func TestCategorySwitchKeepsSelection(t *testing.T) {
	m := newTestModel(t)
	alpha := mustFind(t, m, "1")

	m = send(t, m, events.EntrySelectMsg{Component: galleryID, Entry: alpha})
	m = send(t, m, events.CategorySelectMsg{Component: tabsID, Category: catalog.CategoryInfallibles})
	if m.State().Selected != alpha || !m.OverlayVisible() {
		t.Fatalf("expected selection to survive a category switch")
	}
}

func TestMouse(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, tea.MouseClickMsg{X: 99, Y: 0, Button: tea.MouseLeft})
	if m.State().Active != catalog.CategoryInfallibles {
		t.Fatalf("expected click on the second tab to switch category")
	}

	m = send(t, m, tea.MouseClickMsg{X: galleryLeft + 2, Y: headerRows + introRows + 1, Button: tea.MouseLeft})
	if m.State().Selected == nil || m.State().Selected.ID != "2" {
		t.Fatalf("expected click on a card to select it, got %+v", m.State().Selected)
	}

	m = send(t, m, tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	if m.OverlayVisible() {
		t.Fatalf("expected backdrop click to dismiss the overlay")
	}
	if m.State().Active != catalog.CategoryInfallibles {
		t.Fatalf("expected backdrop click not to reach the tabs")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Text: "q", Code: 'q'})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestDebugEventViewer(t *testing.T) {
	m := New(Options{Catalog: testCatalog(t), Theme: theme.Default(), Debug: true})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = send(t, m, tea.KeyPressMsg{Text: "`", Code: '`'})
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})

	if !strings.Contains(view(m), "CategorySelectMsg") {
		t.Fatalf("expected the category request in the event log:\n%s", view(m))
	}
}

func TestHelpOverlayLeavesSelectionAlone(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, tea.KeyPressMsg{Text: "?", Code: '?'})
	if m.guide == nil {
		t.Fatalf("expected help overlay")
	}
	if !strings.Contains(view(m), "Gallery") {
		t.Fatalf("expected key guide in view:\n%s", view(m))
	}

	m = send(t, m, tea.KeyPressMsg{Text: "q", Code: 'q'})
	if m.guide != nil {
		t.Fatalf("expected q to close help rather than quit")
	}
	if m.OverlayVisible() || m.State().Active != catalog.CategoryProphets {
		t.Fatalf("expected view state untouched, got %+v", m.State())
	}
}

func TestOverlayBoundsMatchClampedBox(t *testing.T) {
	m := New(Options{Catalog: testCatalog(t), Theme: theme.Default()})
	m = send(t, m, tea.WindowSizeMsg{Width: 26, Height: 9})
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.OverlayVisible() {
		t.Fatalf("expected overlay")
	}

	w, h := m.detail.Size()
	if m.overlayRect.Width != w || m.overlayRect.Height != h {
		t.Fatalf("overlay rect %+v does not match box %dx%d", m.overlayRect, w, h)
	}

	lines := strings.Split(view(m), "\n")
	if top := lines[m.overlayRect.Y]; !strings.Contains(top, "╮") {
		t.Fatalf("expected the right border on screen:\n%s", view(m))
	}
	if bottom := lines[m.overlayRect.Y+h-1]; !strings.Contains(bottom, "╯") {
		t.Fatalf("expected the bottom border on screen:\n%s", view(m))
	}

	closeX := m.overlayRect.X + 2 + (w - 4) - 1
	m = send(t, m, tea.MouseClickMsg{X: closeX, Y: m.overlayRect.Y + 1, Button: tea.MouseLeft})
	if m.OverlayVisible() {
		t.Fatalf("expected the close mark to stay clickable")
	}
}
