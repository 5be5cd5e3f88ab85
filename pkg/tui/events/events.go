package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/nurhuda/pkg/catalog"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// CategorySelectMsg asks the root controller to switch the active tab.
type CategorySelectMsg struct {
	Component ComponentID
	Category  catalog.Category
}

// Describe renders the switch in a human-friendly format for logs.
func (m CategorySelectMsg) Describe() string {
	return fmt.Sprintf(`category:%q`, m.Category)
}

// EntryHighlightMsg fires whenever the gallery focuses a card.
type EntryHighlightMsg struct {
	Component ComponentID
	Index     int
	Entry     *catalog.Entry
}

// Describe renders the highlight for logs.
func (m EntryHighlightMsg) Describe() string {
	return fmt.Sprintf(`index:%d entry:%q`, m.Index, entryID(m.Entry))
}

// EntrySelectMsg asks the root controller to open the detail overlay for
// Entry. Entry points into the catalog.
type EntrySelectMsg struct {
	Component ComponentID
	Entry     *catalog.Entry
}

// Describe renders the selection for logs.
func (m EntrySelectMsg) Describe() string {
	return fmt.Sprintf(`entry:%q`, entryID(m.Entry))
}

// DismissReason records which affordance closed the overlay.
type DismissReason string

const (
	// DismissClose is the explicit close control.
	DismissClose DismissReason = "close"
	// DismissConfirm is the footer acknowledgement button.
	DismissConfirm DismissReason = "confirm"
	// DismissBackdrop is activation outside the overlay box.
	DismissBackdrop DismissReason = "backdrop"
)

// DismissMsg asks the root controller to clear the selection.
type DismissMsg struct {
	Component ComponentID
	Reason    DismissReason
}

// Describe implements the logging helper.
func (m DismissMsg) Describe() string {
	return fmt.Sprintf(`reason:%q`, m.Reason)
}

// CategorySelectCmd wraps CategorySelectMsg into a tea.Cmd.
func CategorySelectCmd(component ComponentID, c catalog.Category) tea.Cmd {
	return func() tea.Msg {
		return CategorySelectMsg{Component: component, Category: c}
	}
}

// EntrySelectCmd wraps EntrySelectMsg into a tea.Cmd.
func EntrySelectCmd(component ComponentID, e *catalog.Entry) tea.Cmd {
	if e == nil {
		return nil
	}
	return func() tea.Msg {
		return EntrySelectMsg{Component: component, Entry: e}
	}
}

// EntryHighlightCmd wraps EntryHighlightMsg into a tea.Cmd.
func EntryHighlightCmd(component ComponentID, index int, e *catalog.Entry) tea.Cmd {
	return func() tea.Msg {
		return EntryHighlightMsg{Component: component, Index: index, Entry: e}
	}
}

// DismissCmd wraps DismissMsg into a tea.Cmd.
func DismissCmd(component ComponentID, reason DismissReason) tea.Cmd {
	return func() tea.Msg {
		return DismissMsg{Component: component, Reason: reason}
	}
}

func entryID(e *catalog.Entry) string {
	if e == nil {
		return ""
	}
	return e.ID
}
