package models

import "testing"

func TestParseColumnKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    ColumnKind
		wantErr bool
	}{
		{raw: "todo", want: ColumnTodo},
		{raw: "todos", want: ColumnTodo},
		{raw: "inProgress", want: ColumnInProgress},
		{raw: "in-progress", want: ColumnInProgress},
		{raw: " progress ", want: ColumnInProgress},
		{raw: "Review", want: ColumnReview},
		{raw: "done", want: ColumnDone},
		{raw: "", wantErr: true},
		{raw: "backlog", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseColumnKind(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parse %q: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("parse %q: expected %q, got %q", tt.raw, tt.want, got)
		}
	}
}

func TestColumnKindsAreFixed(t *testing.T) {
	kinds := ColumnKinds()
	if len(kinds) != 4 {
		t.Fatalf("expected 4 column kinds, got %d", len(kinds))
	}
	kinds[0] = "mutated"
	if ColumnKinds()[0] != ColumnTodo {
		t.Fatal("ColumnKinds must return a copy")
	}
	for _, kind := range ColumnKinds() {
		if kind.WireKey() == "" {
			t.Fatalf("missing wire key for %q", kind)
		}
	}
}

func TestBoardColumnsAndFind(t *testing.T) {
	b := NewBoard("b1", "Sprint 1")
	b.SetColumn(ColumnReview, []WorkItem{{ID: "i1"}, {ID: "i2"}})
	b.SetColumn(ColumnDone, nil)

	if b.Done == nil {
		t.Fatal("expected nil column to be normalized to empty")
	}
	if b.ItemCount() != 2 {
		t.Fatalf("expected 2 items, got %d", b.ItemCount())
	}
	kind, idx, ok := b.FindItem("i2")
	if !ok || kind != ColumnReview || idx != 1 {
		t.Fatalf("unexpected find result: %q %d %v", kind, idx, ok)
	}
	if _, _, ok := b.FindItem("missing"); ok {
		t.Fatal("expected missing item not to be found")
	}
}

func TestBoardCloneIsDeep(t *testing.T) {
	b := NewBoard("b1", "Sprint 1")
	b.Todos = append(b.Todos, WorkItem{ID: "i1", Title: "Fix bug"})

	clone := b.Clone()
	clone.Todos[0].Title = "changed"
	clone.Todos = append(clone.Todos, WorkItem{ID: "i2"})

	if b.Todos[0].Title != "Fix bug" {
		t.Fatal("clone shares item storage with original")
	}
	if len(b.Todos) != 1 {
		t.Fatalf("expected original to keep 1 item, got %d", len(b.Todos))
	}
}
