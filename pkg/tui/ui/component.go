package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Overlay is a widget the root model can mount above the main surface.
// Returning a nil Overlay from Update unmounts it.
type Overlay interface {
	Init() tea.Cmd
	Update(tea.Msg) (Overlay, tea.Cmd)
	View() (string, *tea.Cursor)
	SetSize(width, height int)
}
