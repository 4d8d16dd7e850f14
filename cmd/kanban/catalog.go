package main

import (
	"github.com/spf13/cobra"

	"kanban/internal/api"
	"kanban/internal/config"
)

func newLabelsCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List labels available for work items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cfg, func(client *api.Client) error {
				catalog, err := client.GetCatalog(cmd.Context())
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(catalog.Labels)
				}
				for _, label := range catalog.Labels {
					if err := writePlain("%s  %-16s %s\n", shortID(label.ID), label.Name, label.ColorCode); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newAssigneesCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "assignees",
		Short: "List people work items can be assigned to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cfg, func(client *api.Client) error {
				catalog, err := client.GetCatalog(cmd.Context())
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(catalog.Assignees)
				}
				for _, assignee := range catalog.Assignees {
					if err := writePlain("%s  %s\n", shortID(assignee.ID), assignee.Name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
