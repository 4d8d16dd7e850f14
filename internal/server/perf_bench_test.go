package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kanban/internal/board"
	"kanban/internal/models"
)

func BenchmarkStoreAddWorkItem(b *testing.B) {
	store := newPerfStore(b, 20, 40)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.AddWorkItem(ctx, i%20, perfItemInput(i)); err != nil {
			b.Fatalf("add item: %v", err)
		}
	}
}

func BenchmarkStoreMoveWorkItem(b *testing.B) {
	store := newPerfStore(b, 20, 40)
	ctx := context.Background()
	item, err := store.AddWorkItem(ctx, 0, perfItemInput(0))
	if err != nil {
		b.Fatalf("add item: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from, to := models.ColumnTodo, models.ColumnInProgress
		if i%2 == 1 {
			from, to = to, from
		}
		if err := store.MoveWorkItem(ctx, 0, from, to, item.ID); err != nil {
			b.Fatalf("move item: %v", err)
		}
	}
}

func BenchmarkStoreReplaceBoards(b *testing.B) {
	store := newPerfStore(b, 0, 0)
	ctx := context.Background()
	boards := perfBoards(30, 60)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.ReplaceBoards(ctx, boards); err != nil {
			b.Fatalf("replace boards: %v", err)
		}
	}
}

func BenchmarkCodecEncodeDecode(b *testing.B) {
	boards := perfBoards(30, 60)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		raw, err := board.EncodeBoards(boards)
		if err != nil {
			b.Fatalf("encode: %v", err)
		}
		if _, err := board.DecodeBoards(raw); err != nil {
			b.Fatalf("decode: %v", err)
		}
	}
}

func BenchmarkHandleState(b *testing.B) {
	store := newPerfStore(b, 30, 60)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New("127.0.0.1:0", store, Options{Logger: logger}).Handler()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/state", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("state: expected 200, got %d", w.Code)
		}
	}
}
