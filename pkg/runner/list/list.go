// Package list prints the catalog without starting the interactive UI.
package list

import (
	"context"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/printers"
)

// List prints entries, optionally restricted to one category.
type List struct {
	Catalog *catalog.Catalog
	// Category limits output to one category; empty prints both.
	Category string
	JSON     bool
	IDs      bool
	Out      io.Writer
}

// Do writes the listing.
func (l *List) Do(ctx context.Context) error {
	out := l.Out
	if out == nil {
		out = color.Output
	}

	categories := catalog.AllCategories()
	if l.Category != "" {
		c, err := catalog.ParseCategory(l.Category)
		if err != nil {
			return err
		}
		categories = []catalog.Category{c}
	}

	if l.JSON {
		entries := make([]*catalog.Entry, 0, l.Catalog.Len())
		for _, c := range categories {
			entries = append(entries, l.Catalog.Filter(c)...)
		}
		return printers.JSON(out, entries)
	}

	pp := &printers.PrettyPrint{Out: out, ShowID: true, SummaryWidth: 60}
	for _, c := range categories {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries := l.Catalog.Filter(c)
		if l.IDs {
			pp.IDs(entries...)
			continue
		}
		pp.TitleWithCount(c.Label(), len(entries))
		pp.Entries(entries...)
	}
	return nil
}
