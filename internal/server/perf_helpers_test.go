package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"kanban/internal/board"
	"kanban/internal/models"
	"kanban/internal/storage"
)

// newPerfStore opens a store backed by sqlite and seeds it with boardCount
// boards holding itemsPerBoard items each.
func newPerfStore(tb testing.TB, boardCount, itemsPerBoard int) *board.Store {
	tb.Helper()

	dbPath := filepath.Join(tb.TempDir(), "perf.db")
	st, err := storage.Open(dbPath)
	if err != nil {
		tb.Fatalf("open perf storage: %v", err)
	}
	tb.Cleanup(func() {
		_ = st.Close()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := board.Open(context.Background(), st, board.Options{Logger: logger})
	if err != nil {
		tb.Fatalf("open perf store: %v", err)
	}

	if boardCount > 0 {
		if err := store.ReplaceBoards(context.Background(), perfBoards(boardCount, itemsPerBoard)); err != nil {
			tb.Fatalf("seed perf boards: %v", err)
		}
	}
	return store
}

func perfBoards(boardCount, itemsPerBoard int) []models.Board {
	columns := models.ColumnKinds()
	boards := make([]models.Board, 0, boardCount)
	for b := 0; b < boardCount; b++ {
		bd := models.NewBoard(fmt.Sprintf("perf-board-%04d", b), fmt.Sprintf("Board %d", b))
		for i := 0; i < itemsPerBoard; i++ {
			kind := columns[i%len(columns)]
			items := bd.Column(kind)
			items = append(items, models.WorkItem{
				ID:          fmt.Sprintf("perf-item-%04d-%05d", b, i),
				Label:       models.Label{ID: "label-1", Name: "High Priority"},
				Title:       fmt.Sprintf("Item %d", i),
				Description: fmt.Sprintf("Background processing ticket %d for board %d", i, b),
				Date:        "1/2/2026, 3:04:05 PM",
				Assignee:    models.Assignee{ID: "assignee-1", Name: "Harvi"},
			})
			bd.SetColumn(kind, items)
		}
		boards = append(boards, bd)
	}
	return boards
}

func perfItemInput(i int) board.ItemInput {
	return board.ItemInput{
		Title:       fmt.Sprintf("Bench item %d", i),
		Description: fmt.Sprintf("Benchmark work item number %d", i),
	}
}
