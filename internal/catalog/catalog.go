// Package catalog holds the read-only label, assignee and theme catalogs
// seeded once at startup.
package catalog

import (
	"github.com/google/uuid"

	"kanban/internal/models"
)

const defaultAvatar = "https://avatars.githubusercontent.com/u/85826727?v=4"

// namespace scopes the name-derived catalog ids so they are stable across restarts.
var namespace = uuid.MustParse("6f1c2b8e-3a5d-4f0e-9b7a-2d4c8e1f0a93")

var themeNames = []string{
	"light",
	"dark",
	"cupcake",
	"bumblebee",
	"emerald",
	"corporate",
	"synthwave",
	"retro",
	"cyberpunk",
	"halloween",
	"garden",
	"forest",
	"lofi",
	"pastel",
	"fantasy",
	"wireframe",
	"black",
	"luxury",
	"dracula",
	"autumn",
	"business",
	"night",
	"coffee",
	"winter",
}

// Catalog is the set of fixed choices offered to the presentation layer.
type Catalog struct {
	labels    []models.Label
	assignees []models.Assignee
	themes    []models.Theme
}

// Default returns the built-in catalog.
func Default() *Catalog {
	labels := []models.Label{
		newLabel("High Priority", "red"),
		newLabel("Medium Priority", "brown"),
		newLabel("Low Priority", "green"),
	}
	assignees := []models.Assignee{
		newAssignee("Harvi"),
		newAssignee("Mang"),
		newAssignee("Vinay"),
	}
	themes := make([]models.Theme, 0, len(themeNames))
	for _, name := range themeNames {
		themes = append(themes, models.Theme(name))
	}
	return New(labels, assignees, themes)
}

// New builds a catalog from explicit entries.
func New(labels []models.Label, assignees []models.Assignee, themes []models.Theme) *Catalog {
	c := &Catalog{
		labels:    make([]models.Label, len(labels)),
		assignees: make([]models.Assignee, len(assignees)),
		themes:    make([]models.Theme, len(themes)),
	}
	copy(c.labels, labels)
	copy(c.assignees, assignees)
	copy(c.themes, themes)
	return c
}

func newLabel(name, color string) models.Label {
	return models.Label{
		ID:        uuid.NewSHA1(namespace, []byte("label:"+name)).String(),
		ColorCode: color,
		Name:      name,
	}
}

func newAssignee(name string) models.Assignee {
	return models.Assignee{
		ID:     uuid.NewSHA1(namespace, []byte("assignee:"+name)).String(),
		Name:   name,
		Avatar: defaultAvatar,
	}
}

func (c *Catalog) Labels() []models.Label {
	out := make([]models.Label, len(c.labels))
	copy(out, c.labels)
	return out
}

func (c *Catalog) Assignees() []models.Assignee {
	out := make([]models.Assignee, len(c.assignees))
	copy(out, c.assignees)
	return out
}

func (c *Catalog) Themes() []models.Theme {
	out := make([]models.Theme, len(c.themes))
	copy(out, c.themes)
	return out
}

// DefaultTheme is the first catalog theme, or "" for an empty catalog.
func (c *Catalog) DefaultTheme() models.Theme {
	if len(c.themes) == 0 {
		return ""
	}
	return c.themes[0]
}

// Label looks up a label by id, falling back to a case-insensitive name match.
func (c *Catalog) Label(ref string) (models.Label, bool) {
	for _, l := range c.labels {
		if l.ID == ref {
			return l, true
		}
	}
	for _, l := range c.labels {
		if equalFold(l.Name, ref) {
			return l, true
		}
	}
	return models.Label{}, false
}

// Assignee looks up an assignee by id, falling back to a case-insensitive name match.
func (c *Catalog) Assignee(ref string) (models.Assignee, bool) {
	for _, a := range c.assignees {
		if a.ID == ref {
			return a, true
		}
	}
	for _, a := range c.assignees {
		if equalFold(a.Name, ref) {
			return a, true
		}
	}
	return models.Assignee{}, false
}

func (c *Catalog) HasTheme(theme models.Theme) bool {
	for _, t := range c.themes {
		if t == theme {
			return true
		}
	}
	return false
}
