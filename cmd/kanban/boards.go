package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kanban/internal/api"
	"kanban/internal/config"
)

func newBoardCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "board",
		Aliases: []string{"boards"},
		Short:   "Manage boards",
	}

	cmd.AddCommand(
		newBoardListCmd(cfg, jsonOutput),
		newBoardCreateCmd(cfg, jsonOutput),
		newBoardDeleteCmd(cfg, jsonOutput),
		newBoardSelectCmd(cfg, jsonOutput),
		newBoardShowCmd(cfg, jsonOutput),
	)
	return cmd
}

func newBoardListCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List boards; the selected board is marked with *",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cfg, func(client *api.Client) error {
				boards, err := client.ListBoards(cmd.Context())
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(boards)
				}
				return writeBoardList(boards)
			})
		},
	}
}

func newBoardCreateCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a board (name must be at least 4 characters)",
		Args:  requireAtLeastArgs(1, "board name is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cfg, func(client *api.Client) error {
				resp, err := client.CreateBoard(cmd.Context(), api.BoardCreateRequest{Name: strings.Join(args, " ")})
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(resp)
				}
				return writePlain("%d %s\n", resp.Index, resp.Board.ID)
			})
		},
	}
}

func newBoardDeleteCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <index>",
		Aliases: []string{"rm"},
		Short:   "Delete a board and all of its items",
		Args:    requireExactlyArgs(1, "board index is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex("board index", args[0])
			if err != nil {
				return err
			}
			return withClient(cfg, func(client *api.Client) error {
				if err := client.DeleteBoard(cmd.Context(), index); err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(api.StatusResponse{Status: "deleted"})
				}
				return writePlain("deleted board %d\n", index)
			})
		},
	}
}

func newBoardSelectCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "select <index>",
		Short: "Select the active board (kept until the server restarts)",
		Args:  requireExactlyArgs(1, "board index is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex("board index", args[0])
			if err != nil {
				return err
			}
			return withClient(cfg, func(client *api.Client) error {
				resp, err := client.SelectBoard(cmd.Context(), index)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(resp)
				}
				return writePlain("selected %d %s\n", resp.Index, resp.Board.Name)
			})
		},
	}
}

func newBoardShowCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show [index]",
		Short: "Show a board's columns (default: the selected board)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cfg, func(client *api.Client) error {
				var index int
				if len(args) == 1 {
					parsed, err := parseIndex("board index", args[0])
					if err != nil {
						return err
					}
					index = parsed
				} else {
					state, err := client.GetState(cmd.Context())
					if err != nil {
						return err
					}
					if len(state.Boards) == 0 {
						return writePlain("no boards; create one with: kanban board create <name>\n")
					}
					index = state.ActiveIndex
				}

				resp, err := client.GetBoard(cmd.Context(), index)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(resp)
				}
				return writePlain("%s\n", renderBoard(resp.Board, time.Now()))
			})
		},
	}
}
