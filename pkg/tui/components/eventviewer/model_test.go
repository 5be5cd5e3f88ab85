package eventviewer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
)

type described struct{}

func (described) Describe() string { return `entry:"1"` }

func TestFromMsg(t *testing.T) {
	r := FromMsg("root", described{})
	if r.Detail != `entry:"1"` || r.Source != "root" {
		t.Fatalf("unexpected record %+v", r)
	}
	r = FromMsg("root", tea.WindowSizeMsg{Width: 80, Height: 24})
	if r.Detail != "size=80x24" {
		t.Fatalf("unexpected size detail %q", r.Detail)
	}
}

func TestAppendKeepsNewestWithinLimit(t *testing.T) {
	m := New(2)
	m.SetSize(60, 6)
	m.Append(Record{Kind: "first"})
	m.Append(Record{Kind: "second"})
	m.Append(Record{Kind: "third"})

	if m.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", m.Len())
	}
	if m.Records()[0].Kind != "third" {
		t.Fatalf("expected newest first, got %q", m.Records()[0].Kind)
	}
	if !strings.Contains(m.View(), "third") {
		t.Fatalf("expected newest record in view:\n%s", m.View())
	}
}
