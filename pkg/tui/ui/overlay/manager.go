// Package overlay draws a foreground box on top of a rendered background.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement controls overlay alignment and sizing.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int
	// Dim renders the background without its own styling, faint, as a
	// backdrop behind the overlay.
	Dim bool
}

// Rect is a cell rectangle in screen coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

var backdrop = lipgloss.NewStyle().Faint(true)

// Bounds measures foreground and returns where Compose would draw it on a
// width x height surface.
func Bounds(width, height int, foreground string, placement Placement) Rect {
	if foreground == "" || width <= 0 || height <= 0 {
		return Rect{}
	}
	w := placement.Width
	if w <= 0 {
		w = lipgloss.Width(foreground)
	}
	h := placement.Height
	if h <= 0 {
		h = lipgloss.Height(foreground)
	}
	return Place(width, height, w, h, placement)
}

// Place positions a w x h box on a width x height surface.
func Place(width, height, w, h int, placement Placement) Rect {
	w = min(w, width)
	h = min(h, height)
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	x, y := offsets(width, height, w, h, placement)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Compose overlays the foreground view atop the background while preserving
// background content outside the overlay bounds.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bgLines := normalize(background, width, height, placement.Dim)
	r := Bounds(width, height, foreground, placement)
	if r.Empty() {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	for row := 0; row < r.Height; row++ {
		destY := r.Y + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := ""
		if row < len(fgLines) {
			fgLine = fgLines[row]
		}
		fgLine = padToWidth(fgLine, r.Width)

		base := bgLines[destY]
		prefix := ansi.Truncate(base, r.X, "")
		suffix := ansi.TruncateLeft(base, r.X+r.Width, "")
		if placement.Dim {
			prefix = backdrop.Render(prefix)
			suffix = backdrop.Render(suffix)
		}
		bgLines[destY] = prefix + fgLine + suffix
	}
	if placement.Dim {
		for i, line := range bgLines {
			if i >= r.Y && i < r.Y+r.Height {
				continue
			}
			bgLines[i] = backdrop.Render(line)
		}
	}

	return strings.Join(bgLines, "\n")
}

func normalize(view string, width, height int, strip bool) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		if strip {
			lines[i] = ansi.Strip(lines[i])
		}
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

func offsets(width, height, w, h int, placement Placement) (int, int) {
	x := placement.MarginX
	switch placement.Horizontal {
	case lipgloss.Right:
		x = width - w - placement.MarginX
	case lipgloss.Center:
		x = (width - w) / 2
	}
	x = clamp(x, 0, width-w)

	y := placement.MarginY
	switch placement.Vertical {
	case lipgloss.Bottom:
		y = height - h - placement.MarginY
	case lipgloss.Center:
		y = (height - h) / 2
	}
	y = clamp(y, 0, height-h)

	return x, y
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
