package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/tui/components/gallery"
	"tableflip.dev/nurhuda/pkg/tui/events"
)

func newGalleryCmd(opts *options) *cobra.Command {
	var category string
	var cardWidth int

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Preview the card gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(*opts)
			if err != nil {
				return err
			}
			cat, err := catalog.ParseCategory(category)
			if err != nil {
				return err
			}
			base := newTestbedModel(*opts)
			g := gallery.New("Gallery", base.theme, cardWidth)
			g.SetEntries(c.Filter(cat))
			return runHarness(&galleryTestModel{testbedModel: base, gallery: g})
		},
	}

	cmd.Flags().StringVar(&category, "category", "prophets", "category to show")
	cmd.Flags().IntVar(&cardWidth, "card-width", gallery.DefaultCardWidth, "card width")
	return cmd
}

type galleryTestModel struct {
	testbedModel
	gallery *gallery.Model
	last    *catalog.Entry
}

func (m *galleryTestModel) Init() tea.Cmd { return nil }

func (m *galleryTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, done := m.testbedModel.Update(msg); done {
		return m, cmd
	}
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := m.contentSize()
		m.gallery.SetSize(w, h-2)
	case events.EntrySelectMsg:
		m.last = v.Entry
	case tea.MouseClickMsg:
		x, y := m.frameOrigin()
		mouse := v.Mouse()
		if idx := m.gallery.HitTest(mouse.X-x, mouse.Y-y); idx >= 0 {
			return m, m.gallery.Activate(idx)
		}
	default:
		_, cmd := m.gallery.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *galleryTestModel) View() (string, *tea.Cursor) {
	status := "Selected: (none)"
	if m.last != nil {
		status = fmt.Sprintf("Selected: %s", m.last.ID)
	}
	return m.composeView(m.gallery.View() + "\n\n" + status)
}
