// Package show prints a single catalog entry.
package show

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/printers"
)

const defaultWidth = 80

// Show renders one entry as markdown, or as JSON.
type Show struct {
	Catalog *catalog.Catalog
	ID      string
	JSON    bool
	Width   int
	// Style is a glamour standard style; empty picks one from the terminal.
	Style string
	Out   io.Writer
}

// Do looks up the entry and writes it.
func (s *Show) Do(_ context.Context) error {
	e, err := s.Catalog.Find(s.ID)
	if err != nil {
		return err
	}

	out := s.Out
	if out == nil {
		out = color.Output
	}
	if s.JSON {
		return printers.JSON(out, e)
	}

	width := s.Width
	if width <= 0 {
		width = defaultWidth
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch {
	case s.Style != "":
		opts = append(opts, glamour.WithStandardStyle(s.Style))
	case s.Out == nil && isatty.IsTerminal(os.Stdout.Fd()):
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(printers.Markdown(e))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
