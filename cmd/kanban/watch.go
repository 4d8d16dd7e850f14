package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"kanban/internal/api"
	"kanban/internal/board"
	"kanban/internal/config"
)

func newWatchCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream board changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return withClient(cfg, func(client *api.Client) error {
				return watchEvents(ctx, client.EventsURL(), func(event board.Event) error {
					if *jsonOutput {
						return writeJSON(event)
					}
					return writePlain("%s\n", formatEvent(time.Now(), event))
				})
			})
		},
	}
}

// watchEvents reads the change feed until ctx is cancelled or the server closes it.
func watchEvents(ctx context.Context, url string, fn func(board.Event) error) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connect to change feed: %w", err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	for {
		var event board.Event
		if err := conn.ReadJSON(&event); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}

func formatEvent(at time.Time, event board.Event) string {
	line := fmt.Sprintf("%s %s", at.Format(time.TimeOnly), event.Kind)
	if event.BoardID != "" {
		line += " board=" + shortID(event.BoardID)
	}
	if event.ItemID != "" {
		line += " item=" + shortID(event.ItemID)
	}
	if event.From != "" || event.To != "" {
		line += fmt.Sprintf(" %s->%s", event.From, event.To)
	}
	if event.Theme != "" {
		line += " theme=" + string(event.Theme)
	}
	if event.Stale {
		line += " (not saved)"
	}
	return line
}
