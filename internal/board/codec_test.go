package board

import (
	"reflect"
	"strings"
	"testing"

	"kanban/internal/models"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	label := models.Label{ID: "l1", ColorCode: "red", Name: "High Priority"}
	assignee := models.Assignee{ID: "a1", Name: "Harvi", Avatar: "https://example.com/a.png"}
	boards := []models.Board{
		{
			ID:   "b1",
			Name: "Sprint 1",
			Todos: []models.WorkItem{{
				ID: "i1", Label: label, Title: "Fix bug", Description: validDescription,
				Date: "3/14/2026, 3:09:26 PM", Assignee: assignee,
			}},
			Progress: []models.WorkItem{},
			Review:   []models.WorkItem{},
			Done:     []models.WorkItem{},
		},
		models.NewBoard("b2", "Sprint 2"),
	}

	raw, err := EncodeBoards(boards)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeBoards(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(boards, got) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", boards, got)
	}
}

func TestEncodeUsesStoredLayout(t *testing.T) {
	raw, err := EncodeBoards([]models.Board{{ID: "b1", Name: "Sprint 1"}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, key := range []string{`"todos":[]`, `"progress":[]`, `"review":[]`, `"done":[]`} {
		if !strings.Contains(raw, key) {
			t.Fatalf("expected %s in %s", key, raw)
		}
	}

	empty, err := EncodeBoards(nil)
	if err != nil || empty != "[]" {
		t.Fatalf("expected [] for nil collection, got %q (%v)", empty, err)
	}
}

func TestDecodeAcceptsMissingAndNullColumns(t *testing.T) {
	got, err := DecodeBoards(`[{"id":"b1","name":"Sprint 1","todos":null}]`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got[0].Todos == nil || got[0].Done == nil {
		t.Fatal("expected columns normalized to empty")
	}
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	for _, raw := range []string{
		"",
		"null",
		"[",
		`{"id":"b1"}`,
		`[{"name":"no id"}]`,
		`[{"id":"b1","name":"Sprint","review":[{"id":"","title":"t","description":"d"}]}]`,
	} {
		if _, err := DecodeBoards(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
