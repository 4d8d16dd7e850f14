package models

// WorkItem is a single task card. It is never edited after creation.
type WorkItem struct {
	ID          string   `json:"id" yaml:"id"`
	Label       Label    `json:"label" yaml:"label"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Date        string   `json:"date" yaml:"date"`
	Assignee    Assignee `json:"assignee" yaml:"assignee"`
}

// Board is a named workspace with four ordered columns.
type Board struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Todos    []WorkItem `json:"todos" yaml:"todos"`
	Progress []WorkItem `json:"progress" yaml:"progress"`
	Review   []WorkItem `json:"review" yaml:"review"`
	Done     []WorkItem `json:"done" yaml:"done"`
}

// NewBoard returns a board with four empty columns.
func NewBoard(id, name string) Board {
	return Board{
		ID:       id,
		Name:     name,
		Todos:    []WorkItem{},
		Progress: []WorkItem{},
		Review:   []WorkItem{},
		Done:     []WorkItem{},
	}
}

// Column returns the items of the given column. The slice aliases the board.
func (b *Board) Column(kind ColumnKind) []WorkItem {
	switch kind {
	case ColumnTodo:
		return b.Todos
	case ColumnInProgress:
		return b.Progress
	case ColumnReview:
		return b.Review
	case ColumnDone:
		return b.Done
	default:
		return nil
	}
}

// SetColumn replaces the items of the given column.
func (b *Board) SetColumn(kind ColumnKind, items []WorkItem) {
	if items == nil {
		items = []WorkItem{}
	}
	switch kind {
	case ColumnTodo:
		b.Todos = items
	case ColumnInProgress:
		b.Progress = items
	case ColumnReview:
		b.Review = items
	case ColumnDone:
		b.Done = items
	}
}

// ItemCount returns the number of items across all columns.
func (b *Board) ItemCount() int {
	return len(b.Todos) + len(b.Progress) + len(b.Review) + len(b.Done)
}

// FindItem locates an item by id and reports the column and position it occupies.
func (b *Board) FindItem(id string) (ColumnKind, int, bool) {
	for _, kind := range columnKinds {
		for i, item := range b.Column(kind) {
			if item.ID == id {
				return kind, i, true
			}
		}
	}
	return "", -1, false
}

// Clone returns a deep copy with non-nil columns.
func (b Board) Clone() Board {
	out := Board{ID: b.ID, Name: b.Name}
	for _, kind := range columnKinds {
		src := b.Column(kind)
		items := make([]WorkItem, len(src))
		copy(items, src)
		out.SetColumn(kind, items)
	}
	return out
}

// CloneBoards deep-copies a board collection.
func CloneBoards(boards []Board) []Board {
	out := make([]Board, len(boards))
	for i, b := range boards {
		out[i] = b.Clone()
	}
	return out
}
