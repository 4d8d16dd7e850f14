package board

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"kanban/internal/models"
)

// These rules are the single authority for input validation; front ends may
// mirror them for early feedback but the Store always enforces them.

// Lengths count runes of the input as typed; accepted values are stored
// unchanged.

func normalizeBoardName(raw string) (string, error) {
	if raw == "" {
		return "", invalid("name", "board name is required")
	}
	if utf8.RuneCountInString(raw) < models.BoardNameMinLength {
		return "", invalid("name", "board name must be at least %d characters", models.BoardNameMinLength)
	}
	return raw, nil
}

func normalizeTitle(raw string) (string, error) {
	if raw == "" {
		return "", invalid("title", "title is required")
	}
	if utf8.RuneCountInString(raw) < models.ItemTitleMinLength {
		return "", invalid("title", "title must be at least %d characters", models.ItemTitleMinLength)
	}
	return raw, nil
}

func normalizeDescription(raw string) (string, error) {
	if raw == "" {
		return "", invalid("description", "description is required")
	}
	if utf8.RuneCountInString(raw) < models.ItemDescriptionMinLength {
		return "", invalid("description", "description must be at least %d characters", models.ItemDescriptionMinLength)
	}
	return raw, nil
}

// checkUniqueIDs reports the first board or item id that appears twice. Item
// ids are unique across all boards and columns.
func checkUniqueIDs(boards []models.Board) error {
	boardIDs := map[string]struct{}{}
	itemIDs := map[string]struct{}{}
	for _, b := range boards {
		if _, dup := boardIDs[b.ID]; dup {
			return invalid("boards", "duplicate board id %s", b.ID)
		}
		boardIDs[b.ID] = struct{}{}
		for _, kind := range models.ColumnKinds() {
			for _, item := range b.Column(kind) {
				if _, dup := itemIDs[item.ID]; dup {
					return invalid("items", "duplicate item id %s", item.ID)
				}
				itemIDs[item.ID] = struct{}{}
			}
		}
	}
	return nil
}

// validateCollection checks a full board document before it replaces state.
// Missing ids are filled in with fresh ones.
func validateCollection(boards []models.Board) ([]models.Board, error) {
	out := models.CloneBoards(boards)
	boardIDs := map[string]struct{}{}
	itemIDs := map[string]struct{}{}

	for i := range out {
		b := &out[i]
		name, err := normalizeBoardName(b.Name)
		if err != nil {
			return nil, invalid(fmt.Sprintf("boards[%d].name", i), "%s", err.(*ValidationError).Message)
		}
		b.Name = name
		if strings.TrimSpace(b.ID) == "" {
			id, err := GenerateID(func(id string) bool { _, ok := boardIDs[id]; return ok })
			if err != nil {
				return nil, err
			}
			b.ID = id
		}
		if _, dup := boardIDs[b.ID]; dup {
			return nil, invalid("boards", "duplicate board id %s", b.ID)
		}
		boardIDs[b.ID] = struct{}{}

		for _, kind := range models.ColumnKinds() {
			items := b.Column(kind)
			for j := range items {
				item := &items[j]
				if _, err := normalizeTitle(item.Title); err != nil {
					return nil, invalid("items", "board %s item %d in %s: %s", b.ID, j, kind, err.(*ValidationError).Message)
				}
				if _, err := normalizeDescription(item.Description); err != nil {
					return nil, invalid("items", "board %s item %d in %s: %s", b.ID, j, kind, err.(*ValidationError).Message)
				}
				if strings.TrimSpace(item.ID) == "" {
					id, err := GenerateID(func(id string) bool { _, ok := itemIDs[id]; return ok })
					if err != nil {
						return nil, err
					}
					item.ID = id
				}
				if _, dup := itemIDs[item.ID]; dup {
					return nil, invalid("items", "duplicate item id %s", item.ID)
				}
				itemIDs[item.ID] = struct{}{}
			}
		}
	}
	return out, nil
}
