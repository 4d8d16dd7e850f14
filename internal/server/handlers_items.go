package server

import (
	"fmt"
	"net/http"
	"strings"

	"kanban/internal/api"
	"kanban/internal/board"
	"kanban/internal/models"
)

// columnFromRequest accepts the column aliases the CLI uses. Unknown names pass
// through unchanged so the store reports them as missing columns.
func columnFromRequest(raw string) models.ColumnKind {
	kind, err := models.ParseColumnKind(raw)
	if err != nil {
		return models.ColumnKind(strings.TrimSpace(raw))
	}
	return kind
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	index, ok := s.pathIndexOrBadRequest(w, r, "index")
	if !ok {
		return
	}
	var req api.ItemCreateRequest
	if !s.decodeJSONReq(w, r, &req) {
		return
	}

	item, err := s.boards.AddWorkItem(r.Context(), index, board.ItemInput{
		Title:       req.Title,
		Description: req.Description,
		Label:       req.LabelID,
		Assignee:    req.AssigneeID,
	})
	if err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, api.ItemResponse{
		BoardIndex: index,
		Column:     string(models.ColumnTodo),
		Item:       item,
	})
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	index, ok := s.pathIndexOrBadRequest(w, r, "index")
	if !ok {
		return
	}
	itemIndex, ok := s.pathIndexOrBadRequest(w, r, "item")
	if !ok {
		return
	}
	column := columnFromRequest(r.PathValue("column"))

	if err := s.boards.DeleteWorkItem(r.Context(), index, column, itemIndex); err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.StatusResponse{Status: "deleted"})
}

// dropRequest is the move body: a drag payload plus the target column. The
// board always comes from the path.
type dropRequest struct {
	board.DragPayload
	To string `json:"to"`
}

func (s *Server) handleMoveItem(w http.ResponseWriter, r *http.Request) {
	index, ok := s.pathIndexOrBadRequest(w, r, "index")
	if !ok {
		return
	}
	var req dropRequest
	if !s.decodeJSONReq(w, r, &req) {
		return
	}
	payload := req.DragPayload
	payload.BoardIndex = index
	payload.ItemID = strings.TrimSpace(payload.ItemID)
	if payload.ItemID == "" {
		s.writeErrorReq(w, r, http.StatusBadRequest, badRequestCode(fmt.Errorf("item_id is required"), ErrCodeMissingRequired))
		return
	}
	payload.Column = columnFromRequest(string(payload.Column))
	to := columnFromRequest(req.To)

	if err := s.boards.Drop(r.Context(), payload, to); err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.MoveResponse{Moved: payload.Column != to, From: string(payload.Column), To: string(to)})
}
