// Command testbed mounts single TUI components in a fixed frame with the
// event log underneath, for iterating on one component at a time.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/tui/components/eventviewer"
	"tableflip.dev/nurhuda/pkg/tui/events"
	"tableflip.dev/nurhuda/pkg/tui/theme"
)

type options struct {
	full    bool
	width   int
	height  int
	catalog string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the TUI testbed harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 80, "window width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 20, "window height when not fullscreen")
	rootCmd.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "catalog file; defaults to the built-in one")

	rootCmd.AddCommand(newTabsCmd(&opts))
	rootCmd.AddCommand(newGalleryCmd(&opts))
	rootCmd.AddCommand(newDetailCmd(&opts))
	rootCmd.AddCommand(newHelpCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHarness(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

type testbedModel struct {
	fullscreen bool
	maxWidth   int
	maxHeight  int

	termWidth  int
	termHeight int

	theme  theme.Theme
	events *eventviewer.Model

	frameWidth  int
	frameHeight int
	innerWidth  int
	innerHeight int
	eventHeight int
	layoutDirty bool
}

func newTestbedModel(opts options) testbedModel {
	return testbedModel{
		fullscreen:  opts.full,
		maxWidth:    opts.width,
		maxHeight:   opts.height,
		theme:       theme.Detect(),
		events:      eventviewer.New(400),
		layoutDirty: true,
	}
}

func loadCatalog(opts options) (*catalog.Catalog, error) {
	return catalog.Open(opts.catalog)
}

// Update records msg and handles resize and quit. It reports whether the
// message was consumed.
func (m *testbedModel) Update(msg tea.Msg) (tea.Cmd, bool) {
	m.recordEvent(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.layoutDirty = true
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return tea.Quit, true
		}
	}
	return nil, false
}

func (m *testbedModel) composeView(content string) (string, *tea.Cursor) {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…", nil
	}
	m.ensureLayout()

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(fit(content, m.innerWidth, m.innerHeight))

	placed := lipgloss.PlaceHorizontal(m.termWidth, lipgloss.Center, frame)
	if events := m.renderEvents(); events != "" {
		placed = lipgloss.JoinVertical(lipgloss.Left, placed, "", events)
	}
	return placed, nil
}

// frameOrigin is the screen cell of the content's top-left corner.
func (m *testbedModel) frameOrigin() (int, int) {
	m.ensureLayout()
	return max(0, (m.termWidth-m.frameWidth)/2) + 1, 1
}

func (m *testbedModel) renderEvents() string {
	if m.events == nil || m.eventHeight == 0 {
		return ""
	}
	return m.events.View()
}

func (m *testbedModel) contentSize() (int, int) {
	m.ensureLayout()
	return m.innerWidth, m.innerHeight
}

func (m *testbedModel) ensureLayout() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	if !m.layoutDirty && m.frameWidth != 0 && m.frameHeight != 0 {
		return
	}

	eventHeight := m.computeEventHeight()
	frameSpace := max(minFrameHeight, m.termHeight-eventHeight-frameGap)

	width := clamp(m.maxWidth, 20, m.termWidth-4)
	height := clamp(m.maxHeight, minFrameHeight, frameSpace)
	if m.fullscreen {
		width = clamp(m.termWidth, 20, m.termWidth)
		height = clamp(frameSpace, minFrameHeight, frameSpace)
	}

	m.frameWidth = width
	m.frameHeight = height
	m.innerWidth = max(1, width-2)
	m.innerHeight = max(1, height-2)
	m.eventHeight = eventHeight
	m.layoutDirty = false

	if m.events != nil && eventHeight > 0 {
		m.events.SetSize(m.termWidth, eventHeight)
	}
}

func (m *testbedModel) computeEventHeight() int {
	if m.events == nil {
		return 0
	}
	maxAvailable := m.termHeight - minFrameHeight - frameGap
	if maxAvailable < minEventHeight {
		return 0
	}
	desired := clamp(m.termHeight/4, minEventHeight, maxEventHeight)
	if desired > maxAvailable {
		desired = maxAvailable
	}
	return desired
}

func (m *testbedModel) recordEvent(msg tea.Msg) {
	if m.events == nil {
		return
	}
	source := "tea"
	if s, ok := eventSource(msg); ok {
		source = s
	}
	m.events.Append(eventviewer.FromMsg(source, msg))
}

// fit pads or cuts content to exactly w x h cells.
func fit(content string, w, h int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	for i, l := range lines {
		if pad := w - lipgloss.Width(l); pad > 0 {
			lines[i] = l + strings.Repeat(" ", pad)
		}
	}
	return strings.Join(lines, "\n")
}

func clamp(value, min, max int) int {
	if max <= 0 {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func eventSource(msg tea.Msg) (string, bool) {
	switch v := msg.(type) {
	case events.CategorySelectMsg:
		return string(v.Component), true
	case events.EntryHighlightMsg:
		return string(v.Component), true
	case events.EntrySelectMsg:
		return string(v.Component), true
	case events.DismissMsg:
		return string(v.Component), true
	default:
		return "", false
	}
}

const (
	minFrameHeight = 12
	minEventHeight = 5
	maxEventHeight = 12
	frameGap       = 1
)
