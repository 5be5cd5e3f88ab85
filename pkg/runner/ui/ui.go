// Package ui starts the interactive gallery.
package ui

import (
	"context"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/runner/list"
	tuiapp "tableflip.dev/nurhuda/pkg/tui/app"
	"tableflip.dev/nurhuda/pkg/tui/theme"
)

// UI runs the Bubble Tea gallery.
type UI struct {
	Catalog   *catalog.Catalog
	CardWidth int
	Debug     bool
	// LogFile receives log output while the UI owns the terminal.
	LogFile string
}

// Do runs until the user quits. When stdout is not a terminal it prints
// the catalog listing instead.
func (u *UI) Do(ctx context.Context) error {
	if !interactive() {
		return (&list.List{Catalog: u.Catalog}).Do(ctx)
	}

	if u.LogFile != "" {
		f, err := tea.LogToFile(u.LogFile, "nurhuda")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	return tuiapp.Run(ctx, tuiapp.Options{
		Catalog:   u.Catalog,
		Theme:     theme.Detect(),
		CardWidth: u.CardWidth,
		Debug:     u.Debug,
	})
}

func interactive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
