package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
)

func TestComposeKeepsBackgroundOutsideBounds(t *testing.T) {
	bg := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")
	fg := "XX\nYY"

	out := Compose(bg, 10, 3, fg, Placement{
		Horizontal: lipgloss.Left,
		Vertical:   lipgloss.Top,
		MarginX:    3,
		MarginY:    1,
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	want := []string{"aaaaaaaaaa", "bbbXXbbbbb", "cccYYccccc"}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestComposeEmptyForegroundPadsBackground(t *testing.T) {
	out := Compose("ab", 4, 2, "", Placement{})
	if out != "ab  \n    " {
		t.Fatalf("unexpected padding: %q", out)
	}
}

func TestBoundsCentered(t *testing.T) {
	r := Bounds(20, 10, "1234\n1234", Placement{
		Horizontal: lipgloss.Center,
		Vertical:   lipgloss.Center,
	})
	if r != (Rect{X: 8, Y: 4, Width: 4, Height: 2}) {
		t.Fatalf("unexpected bounds %+v", r)
	}
	if !r.Contains(8, 4) || r.Contains(12, 4) || r.Contains(8, 6) {
		t.Fatalf("Contains disagrees with bounds %+v", r)
	}
}

func TestBoundsClampToSurface(t *testing.T) {
	r := Bounds(5, 2, "1234567\n1\n2", Placement{})
	if r.Width != 5 || r.Height != 2 {
		t.Fatalf("expected overlay clamped to 5x2, got %+v", r)
	}
}
