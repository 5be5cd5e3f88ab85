package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/tui/components/detail"
	"tableflip.dev/nurhuda/pkg/tui/events"
)

func newDetailCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detail <id>",
		Short: "Preview the entry detail overlay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(*opts)
			if err != nil {
				return err
			}
			e, err := c.Find(args[0])
			if err != nil {
				return err
			}
			base := newTestbedModel(*opts)
			return runHarness(&detailTestModel{
				testbedModel: base,
				detail:       detail.New("Detail", base.theme, e),
			})
		},
	}
	return cmd
}

type detailTestModel struct {
	testbedModel
	detail    *detail.Model
	dismissed events.DismissReason
}

func (m *detailTestModel) Init() tea.Cmd { return nil }

func (m *detailTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, done := m.testbedModel.Update(msg); done {
		return m, cmd
	}
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := m.contentSize()
		m.detail.SetSize(w, min(h-2, m.detail.PreferredHeight(w)))
	case events.DismissMsg:
		m.dismissed = v.Reason
	case tea.MouseClickMsg:
		x, y := m.frameOrigin()
		mouse := v.Mouse()
		return m, m.detail.Click(mouse.X-x, mouse.Y-y)
	default:
		_, cmd := m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *detailTestModel) View() (string, *tea.Cursor) {
	view, _ := m.detail.View()
	status := "Dismissed: no"
	if m.dismissed != "" {
		status = "Dismissed: " + string(m.dismissed)
	}
	return m.composeView(view + "\n\n" + status)
}
