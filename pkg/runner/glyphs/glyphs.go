// Package glyphs prints the glyph legend.
package glyphs

import (
	"context"
	"io"

	"tableflip.dev/nurhuda/pkg/glyph"
	"tableflip.dev/nurhuda/pkg/printers"
)

// Glyphs prints entry glyphs, and the interface glyphs when All is set.
type Glyphs struct {
	All bool
	Out io.Writer
}

// Do renders the legend tables.
func (g *Glyphs) Do(_ context.Context) error {
	pp := &printers.PrettyPrint{Out: g.Out}
	all := glyph.DefaultGlyphs()

	pp.NewLine()
	pp.Title("Glyph legend")
	pp.Legend(all, false)
	if g.All {
		pp.NewLine()
		pp.Legend(all, true)
	}
	pp.NewLine()
	return nil
}
