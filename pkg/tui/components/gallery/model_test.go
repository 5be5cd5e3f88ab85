package gallery

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/glyph"
	"tableflip.dev/nurhuda/pkg/tui/events"
	"tableflip.dev/nurhuda/pkg/tui/theme"
)

func testEntries(n int) []*catalog.Entry {
	out := make([]*catalog.Entry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &catalog.Entry{
			ID:       fmt.Sprintf("e%02d", i),
			Category: catalog.CategoryProphets,
			Name:     fmt.Sprintf("Name %02d", i),
			Title:    "Title",
			Glyph:    glyph.Trees,
			Accent:   "emerald",
			Summary:  "A short summary.",
		})
	}
	return out
}

func newGallery(n, width, height int) *Model {
	m := New("gallery", theme.Default(), 20)
	m.SetEntries(testEntries(n))
	m.SetSize(width, height)
	return m
}

func press(m *Model, k tea.KeyPressMsg) tea.Cmd {
	_, cmd := m.Update(k)
	return cmd
}

func TestViewRendersOneCardPerEntry(t *testing.T) {
	m := newGallery(3, 41, 3*CardHeight)
	view := m.View()
	for _, e := range m.Entries() {
		if !strings.Contains(view, e.Name) {
			t.Fatalf("expected %q in view:\n%s", e.Name, view)
		}
	}
	if m.Columns() != 2 {
		t.Fatalf("expected 2 columns at width 41, got %d", m.Columns())
	}
	if got := lipgloss.Height(view); got != 2*CardHeight {
		t.Fatalf("expected two card rows, got height %d", got)
	}
	if w := lipgloss.Width(view); w > 41 {
		t.Fatalf("view wider than the gallery: %d", w)
	}
}

func TestActivateEmitsEntryPointer(t *testing.T) {
	m := newGallery(4, 41, 4*CardHeight)
	want := m.Entries()[1]

	press(m, tea.KeyPressMsg{Code: tea.KeyRight})
	cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected select command")
	}
	msg, ok := cmd().(events.EntrySelectMsg)
	if !ok {
		t.Fatalf("expected EntrySelectMsg, got %T", cmd())
	}
	if msg.Entry != want {
		t.Fatalf("expected pointer to entry %q, got %q", want.ID, msg.Entry.ID)
	}
}

func TestCursorMovementClamps(t *testing.T) {
	m := newGallery(5, 41, 2*CardHeight)

	press(m, tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor to stay at 0, got %d", m.Cursor())
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Cursor() != 2 {
		t.Fatalf("expected down to move one row, got %d", m.Cursor())
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyRight})
	press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Cursor() != 4 {
		t.Fatalf("expected down on a short last row to land on the last card, got %d", m.Cursor())
	}
	if !strings.Contains(m.View(), "Name 04") {
		t.Fatalf("expected focused card to be scrolled into view")
	}
	press(m, tea.KeyPressMsg{Text: "g", Code: 'g'})
	if m.Cursor() != 0 {
		t.Fatalf("expected home to focus first card, got %d", m.Cursor())
	}
}

func TestSetEntriesResetsCursor(t *testing.T) {
	m := newGallery(5, 41, 2*CardHeight)
	press(m, tea.KeyPressMsg{Text: "G", Code: 'G'})
	m.SetEntries(testEntries(2))
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor reset, got %d", m.Cursor())
	}
}

func TestHitTest(t *testing.T) {
	m := newGallery(3, 41, 2*CardHeight)
	if got := m.HitTest(0, 0); got != 0 {
		t.Fatalf("expected first card, got %d", got)
	}
	if got := m.HitTest(21, 3); got != 1 {
		t.Fatalf("expected second card, got %d", got)
	}
	if got := m.HitTest(20, 3); got != -1 {
		t.Fatalf("expected gap to miss, got %d", got)
	}
	if got := m.HitTest(1, CardHeight); got != 2 {
		t.Fatalf("expected third card on second row, got %d", got)
	}
	if got := m.HitTest(22, CardHeight); got != -1 {
		t.Fatalf("expected empty slot to miss, got %d", got)
	}
	cmd := m.Activate(2)
	if msg, ok := cmd().(events.EntrySelectMsg); !ok || msg.Entry != m.Entries()[2] {
		t.Fatalf("expected Activate to select the third entry")
	}
}

func TestEmptyGallery(t *testing.T) {
	m := newGallery(0, 40, 10)
	if cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Fatalf("expected no command for empty gallery")
	}
	if !strings.Contains(m.View(), "No entries") {
		t.Fatalf("expected empty state message")
	}
}

func TestClamp(t *testing.T) {
	text := "one two three four five six seven eight nine ten"
	lines := Clamp(text, 10, 2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	for _, l := range lines {
		if lipgloss.Width(l) > 10 {
			t.Fatalf("line %q wider than 10", l)
		}
	}
	if !strings.HasSuffix(lines[1], ellipsis) {
		t.Fatalf("expected ellipsis on the clamped line, got %q", lines[1])
	}
	if got := Clamp("short", 10, 2); len(got) != 1 || got[0] != "short" {
		t.Fatalf("expected short text untouched, got %q", got)
	}
}
