package show

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"

	"tableflip.dev/nurhuda/pkg/catalog"
)

// ErrNoEntries is returned when there is nothing to pick from.
var ErrNoEntries = errors.New("catalog has no entries")

// Pick asks the user to choose an entry and returns its id.
func Pick(c *catalog.Catalog, in io.ReadCloser, out io.WriteCloser) (string, error) {
	entries := c.Entries()
	if len(entries) == 0 {
		return "", ErrNoEntries
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | cyan }} {{ .Title | faint }}",
		Inactive: "   {{ .Name }} {{ .Title | faint }}",
		Selected: "➜  {{ .Name | cyan }}",
		Details: `
--------- {{ .Category.Label }} ----------
{{ .Summary }}
`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Which story",
		Items:     entries,
		Templates: templates,
		Size:      10,
		Stdin:     in,
		Stdout:    out,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return entries[i].ID, nil
}
