package board

import (
	"context"

	"kanban/internal/models"
)

// DragPayload is what a drag carries from drag-start to drop: where the item
// came from and its id, never a copy of the item itself.
type DragPayload struct {
	BoardIndex int               `json:"board_index"`
	Column     models.ColumnKind `json:"column"`
	ItemID     string            `json:"item_id"`
}

// Drop completes a drag onto target.
func (s *Store) Drop(ctx context.Context, payload DragPayload, target models.ColumnKind) error {
	return s.MoveWorkItem(ctx, payload.BoardIndex, payload.Column, target, payload.ItemID)
}
