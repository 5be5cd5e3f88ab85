package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"tableflip.dev/nurhuda/pkg/catalog"
	"tableflip.dev/nurhuda/pkg/glyph"
)

func init() {
	color.NoColor = true
}

func sample(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Entry{{ID: "noah", Name: "Noah", Title: "Builder of the Ark", Glyph: glyph.Ship, Summary: "Built the ark."}},
		[]catalog.Entry{{ID: "ali", Name: "Ali", Title: "Commander", Glyph: glyph.Shield, Summary: "Was fair.", Insight: "Be just."}},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestEntries(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{ShowID: true, Out: &buf}
	pp.Entries(sample(t).Entries()...)

	got := buf.String()
	for _, want := range []string{"noah", "Noah", "Builder of the Ark", "ali", glyph.Resolve(glyph.Shield).Symbol} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Index(got, "noah") > strings.Index(got, "ali") {
		t.Errorf("expected catalog order:\n%s", got)
	}
}

func TestEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Entries()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestIDs(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).IDs(sample(t).Entries()...)
	got := strings.Fields(buf.String())
	if diff := cmp.Diff([]string{"noah", "ali"}, got); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
}

func TestLegendSplitsChrome(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Legend(glyph.DefaultGlyphs(), false)
	got := buf.String()
	if !strings.Contains(got, string(glyph.Ship)) {
		t.Errorf("expected entry glyph in legend:\n%s", got)
	}
	if strings.Contains(got, string(glyph.Lightbulb)) {
		t.Errorf("expected chrome glyphs to be excluded:\n%s", got)
	}
}

func TestMarkdown(t *testing.T) {
	e, err := sample(t).Find("ali")
	if err != nil {
		t.Fatal(err)
	}
	md := Markdown(e)
	for _, want := range []string{"# ", "Ali", "## Biography", "> Be just.", "The Infallibles"} {
		if !strings.Contains(md, want) {
			t.Errorf("expected %q in markdown:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Suggested Activity") {
		t.Errorf("expected empty activity to be omitted:\n%s", md)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sample(t).Entries()); err != nil {
		t.Fatal(err)
	}
	var got []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0]["id"] != "noah" || got[1]["category"] != "infallibles" {
		t.Fatalf("unexpected json: %s", buf.String())
	}
}

func TestTitle(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Title("Glyph legend")
	if got := buf.String(); got != "Glyph legend\n" {
		t.Fatalf("unexpected title %q", got)
	}
}
