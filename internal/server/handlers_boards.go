package server

import (
	"net/http"

	"kanban/internal/api"
	"kanban/internal/models"
)

func boardSummary(index, active int, b models.Board) api.BoardSummary {
	columns := make(map[string]int, len(models.ColumnKinds()))
	for _, kind := range models.ColumnKinds() {
		columns[string(kind)] = len(b.Column(kind))
	}
	return api.BoardSummary{
		Index:   index,
		ID:      b.ID,
		Name:    b.Name,
		Active:  index == active,
		Columns: columns,
		Items:   b.ItemCount(),
	}
}

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	snap, err := s.boards.Snapshot()
	if err != nil {
		s.writeServiceError(w, r, internalError(err))
		return
	}
	resp := make([]api.BoardSummary, 0, len(snap.Boards))
	for i, b := range snap.Boards {
		resp = append(resp, boardSummary(i, snap.ActiveIndex, b))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	var req api.BoardCreateRequest
	if !s.decodeJSONReq(w, r, &req) {
		return
	}

	created, err := s.boards.CreateBoard(r.Context(), req.Name)
	if err != nil {
		s.writeBoardError(w, r, err)
		return
	}

	boards := s.boards.Boards()
	index := len(boards) - 1
	for i := range boards {
		if boards[i].ID == created.ID {
			index = i
			break
		}
	}
	s.writeJSON(w, http.StatusCreated, api.BoardResponse{
		Index:  index,
		Active: index == s.boards.ActiveIndex(),
		Board:  created,
	})
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	index, ok := s.pathIndexOrBadRequest(w, r, "index")
	if !ok {
		return
	}
	b, err := s.boards.Board(index)
	if err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.BoardResponse{
		Index:  index,
		Active: index == s.boards.ActiveIndex(),
		Board:  b,
	})
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	index, ok := s.pathIndexOrBadRequest(w, r, "index")
	if !ok {
		return
	}
	if err := s.boards.DeleteBoard(r.Context(), index); err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.StatusResponse{Status: "deleted"})
}

func (s *Server) handleSelectBoard(w http.ResponseWriter, r *http.Request) {
	index, ok := s.pathIndexOrBadRequest(w, r, "index")
	if !ok {
		return
	}
	if err := s.boards.SelectBoard(index); err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	b, err := s.boards.Board(index)
	if err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.BoardResponse{Index: index, Active: true, Board: b})
}
