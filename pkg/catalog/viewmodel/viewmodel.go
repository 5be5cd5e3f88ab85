// Package viewmodel holds the gallery's mutable view state and the pure
// functions that derive what is on screen from it.
package viewmodel

import "tableflip.dev/nurhuda/pkg/catalog"

// State is the two-variable view state owned by the root controller.
// Active and Selected are independent: switching category never touches
// the selection.
type State struct {
	Active   catalog.Category
	Selected *catalog.Entry
}

// New returns the state for a fresh session.
func New() State {
	return State{Active: catalog.CategoryProphets}
}

// SetActiveCategory switches the visible tab.
func (s *State) SetActiveCategory(c catalog.Category) {
	s.Active = c.Normalize()
}

// SelectEntry records a reference to e. Any entry may be selected,
// including one outside the active category.
func (s *State) SelectEntry(e *catalog.Entry) {
	s.Selected = e
}

// ClearSelection hides the overlay. Calling it with nothing selected is a
// no-op.
func (s *State) ClearSelection() {
	s.Selected = nil
}

// VisibleEntries returns the catalog entries in the active category, in
// catalog order.
func VisibleEntries(s State, c *catalog.Catalog) []*catalog.Entry {
	if c == nil {
		return nil
	}
	return c.Filter(s.Active)
}

// OverlayVisible reports whether the detail overlay is shown.
func OverlayVisible(s State) bool {
	return s.Selected != nil
}
