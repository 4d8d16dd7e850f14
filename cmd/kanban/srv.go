package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kanban/internal/board"
	"kanban/internal/config"
	"kanban/internal/server"
	"kanban/internal/storage"
)

func newSrvCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "srv",
		Short: "Run the kanban API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				return fmt.Errorf("config not initialized")
			}
			if cfg.DBPath == "" {
				return fmt.Errorf("db path is required")
			}

			logger := slog.Default().With("component", "server")

			addr, err := server.ListenAddr(cfg.APIURL)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("opening database", "path", cfg.DBPath)
			st, err := storage.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			boards, err := board.Open(ctx, st, board.Options{
				Logger: slog.Default().With("component", "store"),
			})
			if err != nil {
				return err
			}

			srv := server.New(addr, boards, server.Options{
				Storage:        st,
				AllowedOrigins: cfg.CORS.AllowedOrigins,
				Logger:         logger,
			})
			return srv.ListenAndServe(ctx)
		},
	}
}
