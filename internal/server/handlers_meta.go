package server

import (
	"net/http"

	"kanban/internal/api"
	"kanban/internal/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	boardCount, itemCount := s.boards.Counts()
	resp := api.InfoResponse{
		BoardCount:  boardCount,
		ItemCount:   itemCount,
		ActiveIndex: s.boards.ActiveIndex(),
		Theme:       s.boards.Theme(),
	}

	if s.storage != nil {
		info, err := s.storage.Info(r.Context())
		if err != nil {
			s.writeErrorReq(w, r, http.StatusInternalServerError,
				makeAPIError(http.StatusInternalServerError, "internal", ErrCodeStoreFailure, err))
			return
		}
		resp.DBPath = info.Path
		resp.SchemaVersion = info.SchemaVersion
		resp.StoredKeys = info.Keys
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap, err := s.boards.Snapshot()
	if err != nil {
		s.writeServiceError(w, r, internalError(err))
		return
	}
	w.Header().Set("ETag", `"`+snap.Revision+`"`)
	s.writeJSON(w, http.StatusOK, api.StateResponse{
		Boards:      snap.Boards,
		ActiveIndex: snap.ActiveIndex,
		Theme:       snap.Theme,
		Revision:    snap.Revision,
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, api.CatalogResponse{
		Labels:    s.boards.Labels(),
		Assignees: s.boards.Assignees(),
		Themes:    s.boards.Themes(),
	})
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, api.ThemeResponse{Theme: s.boards.Theme()})
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req api.ThemeRequest
	if !s.decodeJSONReq(w, r, &req) {
		return
	}
	if err := s.boards.SetTheme(r.Context(), models.Theme(req.Theme)); err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.ThemeResponse{Theme: s.boards.Theme()})
}
