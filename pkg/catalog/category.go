// Package catalog holds the immutable gallery entries and the two fixed
// categories they are partitioned into.
package catalog

import (
	"fmt"
	"strings"
)

// Category selects which tab lists an entry. The zero value is
// CategoryProphets.
type Category string

const (
	// CategoryProphets is the first tab and the default on start.
	CategoryProphets Category = "prophets"
	// CategoryInfallibles is the second tab.
	CategoryInfallibles Category = "infallibles"
)

// AllCategories returns the categories in tab order.
func AllCategories() []Category {
	return []Category{
		CategoryProphets,
		CategoryInfallibles,
	}
}

// ParseCategory converts raw into a Category. Empty input selects the
// default category.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return CategoryProphets, nil
	}
	for _, candidate := range AllCategories() {
		if candidate == c {
			return candidate, nil
		}
	}
	return CategoryProphets, fmt.Errorf("catalog: unknown category %q", raw)
}

// Normalize maps the zero value to CategoryProphets.
func (c Category) Normalize() Category {
	if c == "" {
		return CategoryProphets
	}
	return c
}

// Label is the tab caption.
func (c Category) Label() string {
	switch c {
	case CategoryInfallibles:
		return "The Infallibles"
	default:
		return "The Prophets"
	}
}

// Heading is the intro headline shown above the gallery.
func (c Category) Heading() string {
	switch c {
	case CategoryInfallibles:
		return "The Lives of the Fourteen Infallibles"
	default:
		return "Stories of the Great Prophets"
	}
}

// Next returns the other category.
func (c Category) Next() Category {
	if c.Normalize() == CategoryInfallibles {
		return CategoryProphets
	}
	return CategoryInfallibles
}

func (c Category) String() string {
	return string(c.Normalize())
}
