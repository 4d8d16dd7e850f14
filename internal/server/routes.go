package server

import (
	"net/http"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Health check and info.
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /v1/info", s.handleInfo)

	// Read-only state.
	mux.HandleFunc("GET /v1/state", s.handleState)
	mux.HandleFunc("GET /v1/catalog", s.handleCatalog)

	// Boards collection.
	mux.HandleFunc("GET /v1/boards", s.handleListBoards)
	mux.HandleFunc("POST /v1/boards", s.handleCreateBoard)

	// Single board.
	mux.HandleFunc("GET /v1/boards/{index}", s.handleGetBoard)
	mux.HandleFunc("DELETE /v1/boards/{index}", s.handleDeleteBoard)
	mux.HandleFunc("POST /v1/boards/{index}/select", s.handleSelectBoard)

	// Work items.
	mux.HandleFunc("POST /v1/boards/{index}/items", s.handleAddItem)
	mux.HandleFunc("DELETE /v1/boards/{index}/columns/{column}/items/{item}", s.handleDeleteItem)
	mux.HandleFunc("POST /v1/boards/{index}/move", s.handleMoveItem)

	// Theme.
	mux.HandleFunc("GET /v1/theme", s.handleGetTheme)
	mux.HandleFunc("PUT /v1/theme", s.handleSetTheme)

	// Import/Export.
	mux.HandleFunc("GET /v1/export", s.handleExport)
	mux.HandleFunc("POST /v1/import", s.handleImport)

	// Change feed.
	mux.HandleFunc("GET /v1/events", s.handleEvents)

	return mux
}
