package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/tui/components/tabs"
	"tableflip.dev/nurhuda/pkg/tui/events"
)

func newTabsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "Preview the category tabs",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := newTestbedModel(*opts)
			return runHarness(&tabsTestModel{
				testbedModel: base,
				tabs:         tabs.New("Tabs", base.theme),
			})
		},
	}
}

type tabsTestModel struct {
	testbedModel
	tabs *tabs.Model
}

func (m *tabsTestModel) Init() tea.Cmd { return nil }

func (m *tabsTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, done := m.testbedModel.Update(msg); done {
		return m, cmd
	}
	switch v := msg.(type) {
	case events.CategorySelectMsg:
		// The harness plays the root controller.
		m.tabs.SetActive(v.Category)
	case tea.MouseClickMsg:
		x, y := m.frameOrigin()
		if mouse := v.Mouse(); mouse.Y == y {
			if c, ok := m.tabs.HitTest(mouse.X - x); ok {
				return m, m.tabs.Select(c)
			}
		}
	default:
		_, cmd := m.tabs.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *tabsTestModel) View() (string, *tea.Cursor) {
	return m.composeView(m.tabs.View() + "\n\nActive: " + m.tabs.Active().Label())
}
