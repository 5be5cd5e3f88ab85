package catalog

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/nurhuda/pkg/glyph"
)

var (
	// ErrDuplicateID is reported when two entries share an id.
	ErrDuplicateID = errors.New("duplicate entry id")
	// ErrUnknownGlyph is reported for a glyph name the resolver lacks.
	ErrUnknownGlyph = errors.New("unknown glyph")
	// ErrMissingField is reported when a required field is empty.
	ErrMissingField = errors.New("missing required field")
	// ErrCategoryMismatch is reported when an entry declares a category
	// other than the sequence it was listed under.
	ErrCategoryMismatch = errors.New("category mismatch")
	// ErrNotFound is returned by Find for an unknown id.
	ErrNotFound = errors.New("entry not found")
)

// Entry is one biographical record. Entries are never mutated after the
// catalog is built.
type Entry struct {
	ID       string     `json:"id" yaml:"id"`
	Category Category   `json:"category" yaml:"category,omitempty"`
	Name     string     `json:"name" yaml:"name"`
	Title    string     `json:"title" yaml:"title"`
	Glyph    glyph.Name `json:"glyph" yaml:"glyph"`
	Accent   string     `json:"accent,omitempty" yaml:"accent,omitempty"`
	Summary  string     `json:"summary" yaml:"summary"`
	Insight  string     `json:"insight,omitempty" yaml:"insight,omitempty"`
	Activity string     `json:"activity,omitempty" yaml:"activity,omitempty"`
}

// Catalog is the ordered, validated set of entries. All category A entries
// precede category B entries, each in the order they were supplied.
type Catalog struct {
	entries []*Entry
	byID    map[string]*Entry
}

// New builds a catalog from the two ordered sequences. Every defect found is
// reported in the returned error.
func New(prophets, infallibles []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]*Entry, 0, len(prophets)+len(infallibles)),
		byID:    make(map[string]*Entry, len(prophets)+len(infallibles)),
	}

	var errs []error
	add := func(category Category, seq []Entry) {
		for i := range seq {
			e := seq[i]
			if e.Category == "" {
				e.Category = category
			} else if e.Category != category {
				errs = append(errs, fmt.Errorf("%s[%d] %q: %w: declared %q", category, i, e.ID, ErrCategoryMismatch, e.Category))
				continue
			}
			if err := validate(&e); err != nil {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", category, i, err))
				continue
			}
			if _, ok := c.byID[e.ID]; ok {
				errs = append(errs, fmt.Errorf("%s[%d]: %w: %q", category, i, ErrDuplicateID, e.ID))
				continue
			}
			ptr := &e
			c.entries = append(c.entries, ptr)
			c.byID[e.ID] = ptr
		}
	}
	add(CategoryProphets, prophets)
	add(CategoryInfallibles, infallibles)

	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog: invalid: %w", errors.Join(errs...))
	}
	return c, nil
}

func validate(e *Entry) error {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"id", e.ID},
		{"name", e.Name},
		{"title", e.Title},
		{"glyph", string(e.Glyph)},
		{"summary", e.Summary},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	if !glyph.Known(e.Glyph) {
		return fmt.Errorf("%q: %w: %q", e.ID, ErrUnknownGlyph, e.Glyph)
	}
	return nil
}

// Entries returns every entry in catalog order.
func (c *Catalog) Entries() []*Entry {
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Filter returns the entries in category, preserving catalog order.
func (c *Catalog) Filter(category Category) []*Entry {
	category = category.Normalize()
	out := make([]*Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the entry with id.
func (c *Catalog) Find(id string) (*Entry, error) {
	if e, ok := c.byID[strings.TrimSpace(id)]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("catalog: %w: %q", ErrNotFound, id)
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Resolve returns the glyph drawn for the entry.
func (e *Entry) Resolve() glyph.Glyph {
	return glyph.Resolve(e.Glyph)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s (%s)", e.Resolve(), e.Name, e.Title)
}
