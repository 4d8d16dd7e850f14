package server

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"kanban/internal/api"
	"kanban/internal/format"
	"kanban/internal/models"
)

const exportVersion = 1

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.withLimiter(w, r, s.exportLimiter, "export", func() {
		formatter, err := format.ByName(r.URL.Query().Get("format"))
		if err != nil {
			s.writeErrorReq(w, r, http.StatusBadRequest, badRequestCode(err, ErrCodeInvalidQuery))
			return
		}
		download, err := queryBool(r, "download")
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}

		snap, err := s.boards.Snapshot()
		if err != nil {
			s.writeErrorReq(w, r, http.StatusInternalServerError,
				makeAPIError(http.StatusInternalServerError, "internal", ErrCodeExportFailed, err))
			return
		}
		doc := api.ExportDocument{
			Version:    exportVersion,
			ExportedAt: time.Now().UTC(),
			Theme:      snap.Theme,
			Boards:     snap.Boards,
		}

		w.Header().Set("Content-Type", formatter.ContentType())
		w.Header().Set("ETag", `"`+snap.Revision+`"`)
		if download {
			ext := "json"
			if _, ok := formatter.(format.YAMLFormatter); ok {
				ext = "yaml"
			}
			w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="kanban-export.%s"`, ext))
		}
		w.WriteHeader(http.StatusOK)
		if err := formatter.Write(w, doc); err != nil {
			s.log().Error("write export", "error", err)
		}
	})
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	s.withLimiter(w, r, s.importLimiter, "import", func() {
		var doc api.ExportDocument
		if isYAMLRequest(r) {
			r.Body = http.MaxBytesReader(w, r.Body, importJSONMaxBody)
			if err := format.Decode("yaml", r.Body, &doc); err != nil {
				s.writeErrorReq(w, r, http.StatusBadRequest, badRequestCode(fmt.Errorf("invalid YAML payload: %w", err), ErrCodeInvalidImport))
				return
			}
		} else if !s.decodeJSONReq(w, r, &doc) {
			return
		}

		if doc.Version > exportVersion {
			s.writeErrorReq(w, r, http.StatusBadRequest, badRequest(fmt.Errorf("unsupported export version %d", doc.Version)))
			return
		}
		theme := models.Theme(strings.TrimSpace(string(doc.Theme)))
		if theme != "" && !s.boards.Catalog().HasTheme(theme) {
			s.writeErrorReq(w, r, http.StatusBadRequest, badRequestCode(fmt.Errorf("unknown theme %q", theme), ErrCodeInvalidTheme))
			return
		}

		if err := s.boards.ReplaceBoards(r.Context(), doc.Boards); err != nil {
			s.writeBoardError(w, r, err)
			return
		}
		if theme != "" {
			if err := s.boards.SetTheme(r.Context(), theme); err != nil {
				s.writeBoardError(w, r, err)
				return
			}
		}

		boardCount, itemCount := s.boards.Counts()
		s.log().Info("boards imported", "boards", boardCount, "items", itemCount)
		s.writeJSON(w, http.StatusOK, api.ImportResponse{
			Boards: boardCount,
			Items:  itemCount,
			Theme:  s.boards.Theme(),
		})
	})
}

func isYAMLRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	default:
		return false
	}
}
