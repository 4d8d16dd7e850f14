package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"kanban/internal/api"
	"kanban/internal/config"
	"kanban/internal/models"
)

type taskAddOptions struct {
	board       int
	description string
	label       string
	assignee    string
	filePath    string
}

func newTaskCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "item"},
		Short:   "Manage work items",
	}

	cmd.AddCommand(
		newTaskAddCmd(cfg, jsonOutput),
		newTaskDeleteCmd(cfg, jsonOutput),
		newTaskShowCmd(cfg, jsonOutput),
	)
	return cmd
}

func newTaskAddCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	opts := &taskAddOptions{}
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a work item to the todo column",
		Long: "Add a work item to the todo column of a board (default: the selected board).\n" +
			"Titles need at least 4 characters and descriptions at least 20.\n" +
			"With -f, every markdown list entry becomes an item; front matter may set board, label, assignee and description.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cfg, func(client *api.Client) error {
				if opts.filePath != "" {
					return runTaskAddFromFile(cmd.Context(), client, cmd, opts, jsonOutput)
				}
				if len(args) == 0 {
					return errors.New("title is required")
				}

				boardIndex, err := resolveBoardIndex(cmd.Context(), client, cmd.Flags().Changed("board"), opts.board)
				if err != nil {
					return err
				}
				resp, err := client.AddItem(cmd.Context(), boardIndex, api.ItemCreateRequest{
					Title:       strings.Join(args, " "),
					Description: opts.description,
					LabelID:     opts.label,
					AssigneeID:  opts.assignee,
				})
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(resp)
				}
				return writePlain("%s\n", resp.Item.ID)
			})
		},
	}

	cmd.Flags().IntVarP(&opts.board, "board", "b", 0, "board index (default: selected board)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "item description")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "label name or id (default: first label)")
	cmd.Flags().StringVarP(&opts.assignee, "assignee", "a", "", "assignee name or id (default: first assignee)")
	cmd.Flags().StringVarP(&opts.filePath, "file", "f", "", "markdown file for batch add")
	return cmd
}

// resolveBoardIndex returns the explicit board index, or the selected board when none was given.
func resolveBoardIndex(ctx context.Context, client *api.Client, explicit bool, index int) (int, error) {
	if explicit {
		if index < 0 {
			return 0, fmt.Errorf("board index must be a non-negative integer, got %d", index)
		}
		return index, nil
	}
	state, err := client.GetState(ctx)
	if err != nil {
		return 0, err
	}
	if len(state.Boards) == 0 {
		return 0, errors.New("no boards; create one with: kanban board create <name>")
	}
	return state.ActiveIndex, nil
}

func runTaskAddFromFile(ctx context.Context, client *api.Client, cmd *cobra.Command, opts *taskAddOptions, jsonOutput *bool) error {
	data, err := os.ReadFile(opts.filePath)
	if err != nil {
		return err
	}

	frontMatter, items, err := parseMarkdown(string(data))
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no list items found in %s", opts.filePath)
	}

	// Flags override front matter.
	if cmd.Flags().Changed("description") {
		frontMatter.Description = opts.description
	}
	if cmd.Flags().Changed("label") {
		frontMatter.Label = opts.label
	}
	if cmd.Flags().Changed("assignee") {
		frontMatter.Assignee = opts.assignee
	}
	explicit, index := cmd.Flags().Changed("board"), opts.board
	if !explicit && frontMatter.Board != nil {
		explicit, index = true, *frontMatter.Board
	}
	boardIndex, err := resolveBoardIndex(ctx, client, explicit, index)
	if err != nil {
		return err
	}

	created := make([]api.ItemResponse, 0, len(items))
	for _, req := range itemRequests(frontMatter, items) {
		resp, err := client.AddItem(ctx, boardIndex, req)
		if err != nil {
			return fmt.Errorf("add %q: %w", req.Title, err)
		}
		created = append(created, resp)
	}

	if *jsonOutput {
		return writeJSON(created)
	}
	for _, resp := range created {
		if err := writePlain("%s\n", resp.Item.ID); err != nil {
			return err
		}
	}
	return nil
}

func newTaskDeleteCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <board-index> <column> <item-index>",
		Aliases: []string{"rm"},
		Short:   "Delete the item at a position in a column",
		Long:    "Delete the item at a position in a column. Columns: " + strings.Join(models.ColumnKindStrings(), ", ") + ".",
		Args:    requireExactlyArgs(3, "board index, column and item index are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			boardIndex, err := parseIndex("board index", args[0])
			if err != nil {
				return err
			}
			column, err := models.ParseColumnKind(args[1])
			if err != nil {
				return err
			}
			itemIndex, err := parseIndex("item index", args[2])
			if err != nil {
				return err
			}
			return withClient(cfg, func(client *api.Client) error {
				if err := client.DeleteItem(cmd.Context(), boardIndex, string(column), itemIndex); err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(api.StatusResponse{Status: "deleted"})
				}
				return writePlain("deleted %s[%d] on board %d\n", column, itemIndex, boardIndex)
			})
		},
	}
}

func newTaskShowCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show a work item by id",
		Args:  requireExactlyArgs(1, "item id is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID := strings.TrimSpace(args[0])
			return withClient(cfg, func(client *api.Client) error {
				state, err := client.GetState(cmd.Context())
				if err != nil {
					return err
				}
				boardIndex, column, item, ok := findItem(state.Boards, itemID)
				if !ok {
					return fmt.Errorf("item not found: %s", itemID)
				}
				if *jsonOutput {
					return writeJSON(api.ItemResponse{BoardIndex: boardIndex, Column: string(column), Item: item})
				}
				return writeItemDetail(boardIndex, string(column), item)
			})
		},
	}
}

// findItem locates an item by id, accepting a unique id prefix.
func findItem(boards []models.Board, ref string) (int, models.ColumnKind, models.WorkItem, bool) {
	var (
		matchBoard  int
		matchColumn models.ColumnKind
		matchItem   models.WorkItem
		matches     int
	)
	for i := range boards {
		for _, kind := range models.ColumnKinds() {
			for _, item := range boards[i].Column(kind) {
				if item.ID == ref {
					return i, kind, item, true
				}
				if ref != "" && strings.HasPrefix(item.ID, ref) {
					matchBoard, matchColumn, matchItem = i, kind, item
					matches++
				}
			}
		}
	}
	if matches == 1 {
		return matchBoard, matchColumn, matchItem, true
	}
	return 0, "", models.WorkItem{}, false
}
