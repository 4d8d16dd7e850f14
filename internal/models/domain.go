package models

import (
	"fmt"
	"strings"
)

// ColumnKind identifies one of the four fixed board columns.
type ColumnKind string

const (
	ColumnTodo       ColumnKind = "todo"
	ColumnInProgress ColumnKind = "inProgress"
	ColumnReview     ColumnKind = "review"
	ColumnDone       ColumnKind = "done"
)

const (
	BoardNameMinLength       = 4
	ItemTitleMinLength       = 4
	ItemDescriptionMinLength = 20

	// DateLayout renders creation timestamps the way the board displays them.
	DateLayout = "1/2/2006, 3:04:05 PM"
)

// columnKinds lists every column in display order.
var columnKinds = []ColumnKind{
	ColumnTodo,
	ColumnInProgress,
	ColumnReview,
	ColumnDone,
}

// columnWireKeys maps a column to the key it is stored under in a serialized board.
var columnWireKeys = map[ColumnKind]string{
	ColumnTodo:       "todos",
	ColumnInProgress: "progress",
	ColumnReview:     "review",
	ColumnDone:       "done",
}

var columnAliases = map[string]ColumnKind{
	"todo":        ColumnTodo,
	"todos":       ColumnTodo,
	"inprogress":  ColumnInProgress,
	"in-progress": ColumnInProgress,
	"in_progress": ColumnInProgress,
	"progress":    ColumnInProgress,
	"review":      ColumnReview,
	"done":        ColumnDone,
}

// ColumnKinds returns the four column kinds in display order.
func ColumnKinds() []ColumnKind {
	out := make([]ColumnKind, len(columnKinds))
	copy(out, columnKinds)
	return out
}

func IsValidColumnKind(kind ColumnKind) bool {
	_, ok := columnWireKeys[kind]
	return ok
}

// WireKey returns the serialized field name for the column.
func (k ColumnKind) WireKey() string {
	return columnWireKeys[k]
}

func (k ColumnKind) String() string {
	return string(k)
}

// ParseColumnKind accepts canonical names, storage keys and common spellings.
func ParseColumnKind(raw string) (ColumnKind, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "", fmt.Errorf("column is required")
	}
	kind, ok := columnAliases[value]
	if !ok {
		return "", fmt.Errorf("invalid column: %s", raw)
	}
	return kind, nil
}

func ColumnKindStrings() []string {
	out := make([]string, 0, len(columnKinds))
	for _, kind := range columnKinds {
		out = append(out, string(kind))
	}
	return out
}
