package api

import (
	"time"

	"kanban/internal/models"
)

// ErrorResponse is a generic JSON error wrapper.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	ErrorCode int    `json:"error_code,omitempty"`
}

// StatusResponse acknowledges a mutation that has no other result.
type StatusResponse struct {
	Status string `json:"status"`
}

// InfoResponse is the response from GET /v1/info.
type InfoResponse struct {
	DBPath        string       `json:"db_path,omitempty"`
	SchemaVersion int          `json:"schema_version"`
	BoardCount    int          `json:"board_count"`
	ItemCount     int          `json:"item_count"`
	ActiveIndex   int          `json:"active_index"`
	Theme         models.Theme `json:"theme"`
	StoredKeys    []string     `json:"stored_keys,omitempty"`
}

// StateResponse is the full readable state from GET /v1/state.
type StateResponse struct {
	Boards      []models.Board `json:"boards"`
	ActiveIndex int            `json:"active_index"`
	Theme       models.Theme   `json:"theme"`
	Revision    string         `json:"revision"`
}

// CatalogResponse lists the fixed labels, assignees and themes.
type CatalogResponse struct {
	Labels    []models.Label    `json:"labels"`
	Assignees []models.Assignee `json:"assignees"`
	Themes    []models.Theme    `json:"themes"`
}

// BoardSummary is one row of GET /v1/boards.
type BoardSummary struct {
	Index   int            `json:"index"`
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Active  bool           `json:"active"`
	Columns map[string]int `json:"columns"`
	Items   int            `json:"items"`
}

// BoardCreateRequest defines the payload for creating a board.
type BoardCreateRequest struct {
	Name string `json:"name"`
}

// BoardResponse wraps a board together with its position.
type BoardResponse struct {
	Index  int          `json:"index"`
	Active bool         `json:"active"`
	Board  models.Board `json:"board"`
}

// ItemCreateRequest defines the payload for adding a work item to a board's todo column.
// Empty label or assignee ids select the first catalog entry.
type ItemCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	LabelID     string `json:"label_id,omitempty"`
	AssigneeID  string `json:"assignee_id,omitempty"`
}

// MoveRequest drops a dragged item onto another column of one board. Column
// and ItemID are the drag payload: where the item was picked up and its id.
type MoveRequest struct {
	Column string `json:"column"`
	ItemID string `json:"item_id"`
	To     string `json:"to"`
}

// MoveResponse reports whether the item changed column.
type MoveResponse struct {
	Moved bool   `json:"moved"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// ThemeRequest sets the current theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse reports the current theme.
type ThemeResponse struct {
	Theme models.Theme `json:"theme"`
}

// ExportDocument is the portable form of all boards and the theme.
type ExportDocument struct {
	Version    int            `json:"version" yaml:"version"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Theme      models.Theme   `json:"theme,omitempty" yaml:"theme,omitempty"`
	Boards     []models.Board `json:"boards" yaml:"boards"`
}

// ImportResponse summarizes an import.
type ImportResponse struct {
	Boards int          `json:"boards"`
	Items  int          `json:"items"`
	Theme  models.Theme `json:"theme"`
}

// ItemResponse wraps a created work item with its location.
type ItemResponse struct {
	BoardIndex int             `json:"board_index"`
	Column     string          `json:"column"`
	Item       models.WorkItem `json:"item"`
}
