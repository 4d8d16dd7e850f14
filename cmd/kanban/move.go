package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kanban/internal/api"
	"kanban/internal/config"
	"kanban/internal/models"
)

func newMoveCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "move <item-id> <column>",
		Short: "Move a work item to the end of another column",
		Long: "Move a work item to the end of another column on the same board.\n" +
			"Columns: " + strings.Join(models.ColumnKindStrings(), ", ") + ".\n" +
			"The item is looked up by id (a unique prefix is enough); --from pins the expected origin column.",
		Args: requireExactlyArgs(2, "item id and destination column are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := models.ParseColumnKind(args[1])
			if err != nil {
				return err
			}
			return withClient(cfg, func(client *api.Client) error {
				state, err := client.GetState(cmd.Context())
				if err != nil {
					return err
				}
				boardIndex, column, item, ok := findItem(state.Boards, strings.TrimSpace(args[0]))
				if !ok {
					return fmt.Errorf("item not found: %s", args[0])
				}
				if from != "" {
					pinned, err := models.ParseColumnKind(from)
					if err != nil {
						return err
					}
					column = pinned
				}

				resp, err := client.MoveItem(cmd.Context(), boardIndex, api.MoveRequest{
					Column: string(column),
					ItemID: item.ID,
					To:     string(to),
				})
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(resp)
				}
				if !resp.Moved {
					return writePlain("%s already in %s\n", shortID(item.ID), to)
				}
				return writePlain("moved %s from %s to %s\n", shortID(item.ID), resp.From, resp.To)
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin column (default: where the item currently is)")
	return cmd
}
