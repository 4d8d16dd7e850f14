package catalog

import (
	"testing"

	"kanban/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if got := len(c.Labels()); got != 3 {
		t.Fatalf("expected 3 labels, got %d", got)
	}
	if got := len(c.Assignees()); got != 3 {
		t.Fatalf("expected 3 assignees, got %d", got)
	}
	if got := len(c.Themes()); got != 24 {
		t.Fatalf("expected 24 themes, got %d", got)
	}
	if c.DefaultTheme() != "light" {
		t.Fatalf("expected default theme light, got %q", c.DefaultTheme())
	}
}

func TestCatalogIDsAreStable(t *testing.T) {
	a := Default()
	b := Default()
	for i, l := range a.Labels() {
		if l.ID != b.Labels()[i].ID {
			t.Fatalf("label %q id changed between seeds", l.Name)
		}
	}
	for i, as := range a.Assignees() {
		if as.ID != b.Assignees()[i].ID {
			t.Fatalf("assignee %q id changed between seeds", as.Name)
		}
	}
}

func TestLookupByIDAndName(t *testing.T) {
	c := Default()
	high := c.Labels()[0]

	got, ok := c.Label(high.ID)
	if !ok || got != high {
		t.Fatalf("lookup by id failed: %+v %v", got, ok)
	}
	got, ok = c.Label("high priority")
	if !ok || got.ID != high.ID {
		t.Fatalf("lookup by name failed: %+v %v", got, ok)
	}
	if _, ok := c.Label("urgent"); ok {
		t.Fatal("expected unknown label lookup to fail")
	}

	harvi, ok := c.Assignee("Harvi")
	if !ok || harvi.Avatar == "" {
		t.Fatalf("lookup assignee failed: %+v %v", harvi, ok)
	}
	if _, ok := c.Assignee("nobody"); ok {
		t.Fatal("expected unknown assignee lookup to fail")
	}
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	c := Default()
	labels := c.Labels()
	labels[0].Name = "mutated"
	if c.Labels()[0].Name != "High Priority" {
		t.Fatal("Labels must return a copy")
	}
	themes := c.Themes()
	themes[0] = "mutated"
	if !c.HasTheme("light") || c.HasTheme("mutated") {
		t.Fatal("Themes must return a copy")
	}
	if c.HasTheme(models.Theme("neon")) {
		t.Fatal("unexpected theme membership")
	}
}
