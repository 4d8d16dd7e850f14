package main

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"kanban/internal/api"
	"kanban/internal/board"
	"kanban/internal/server"
	"kanban/internal/storage"
)

func TestWatchEventsReceivesBoardCreated(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := board.Open(context.Background(), storage.NewMemory(), board.Options{Logger: logger})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ts := httptest.NewServer(server.New("127.0.0.1:0", store, server.Options{Logger: logger}).Handler())
	defer ts.Close()

	client := api.NewClient(ts.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan board.Event, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchEvents(ctx, client.EventsURL(), func(event board.Event) error {
			select {
			case received <- event:
			default:
			}
			return nil
		})
	}()

	// The feed subscribes after the handshake; keep mutating until an event shows up.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case event := <-received:
			if event.Kind != board.EventBoardCreated {
				t.Fatalf("unexpected event %+v", event)
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("watch returned error: %v", err)
			}
			return
		case <-ticker.C:
			if _, err := client.CreateBoard(context.Background(), api.BoardCreateRequest{Name: "Watched board"}); err != nil {
				t.Fatalf("create board: %v", err)
			}
		case <-ctx.Done():
			t.Fatal("timed out waiting for event")
		}
	}
}
