// Package printers renders catalog data for the non-interactive commands.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/glyph"
)

// PrettyPrint writes human readable tables.
type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
	// SummaryWidth caps the summary column; zero disables the column.
	SummaryWidth uint
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries prints one row per entry in the given order.
func (pp *PrettyPrint) Entries(entries ...*catalog.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	b := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.SummaryWidth > 0 {
		tbl.MaxColWidth = pp.SummaryWidth
		tbl.Wrap = false
	}
	for _, e := range entries {
		row := make([]interface{}, 0, 5)
		if pp.ShowID {
			row = append(row, y.Sprint(e.ID))
		}
		row = append(row, e.Resolve().Symbol, b.Sprint(e.Name), e.Title)
		if pp.SummaryWidth > 0 {
			row = append(row, e.Summary)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// IDs prints bare entry ids, one per line.
func (pp *PrettyPrint) IDs(entries ...*catalog.Entry) {
	for _, e := range entries {
		_, _ = fmt.Fprintln(pp.out(), e.ID)
	}
}

// Legend prints the glyph names with their symbols.
func (pp *PrettyPrint) Legend(glyphs []glyph.Glyph, chrome bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	header := "Glyphs"
	if chrome {
		header = "Interface"
	}
	tbl.AddRow(bold.Sprint(" "+header), bold.Sprint("Name"), bold.Sprint("Meaning"))
	for _, g := range glyphs {
		if g.Chrome != chrome {
			continue
		}
		tbl.AddRow(g.Symbol, string(g.Name), g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Markdown renders a single entry as a markdown document.
func Markdown(e *catalog.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s %s\n\n", e.Resolve().Symbol, e.Name)
	fmt.Fprintf(&sb, "_%s_ · %s\n\n", e.Title, e.Category.Label())
	fmt.Fprintf(&sb, "## Biography\n\n%s\n\n", e.Summary)
	if e.Insight != "" {
		fmt.Fprintf(&sb, "## Wisdom & Lesson\n\n> %s\n\n", e.Insight)
	}
	if e.Activity != "" {
		fmt.Fprintf(&sb, "## Suggested Activity\n\n%s\n", e.Activity)
	}
	return sb.String()
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
