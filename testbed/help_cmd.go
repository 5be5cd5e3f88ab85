package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/tui/components/help"
	"tableflip.dev/nurhuda/pkg/tui/events"
)

func newHelpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "help-overlay",
		Short: "Render the help overlay component",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := newTestbedModel(*opts)
			return runHarness(&helpTestModel{testbedModel: base})
		},
	}
}

type helpTestModel struct {
	testbedModel
	overlay *help.Model
}

func (m *helpTestModel) Init() tea.Cmd { return nil }

func (m *helpTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, done := m.testbedModel.Update(msg); done {
		return m, cmd
	}
	switch msg.(type) {
	case tea.WindowSizeMsg:
		w, h := m.contentSize()
		if m.overlay == nil {
			m.overlay = help.New("Help", m.theme.Dark, w, h)
		} else {
			m.overlay.SetSize(w, h)
		}
		return m, nil
	case events.DismissMsg:
		return m, tea.Quit
	}
	if m.overlay == nil {
		return m, nil
	}
	_, cmd := m.overlay.Update(msg)
	return m, cmd
}

func (m *helpTestModel) View() (string, *tea.Cursor) {
	if m.overlay == nil {
		return m.composeView("help component unavailable")
	}
	content, _ := m.overlay.View()
	return m.composeView(content)
}
