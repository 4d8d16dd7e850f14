package main

import (
	"strings"

	"github.com/spf13/cobra"

	"kanban/internal/api"
	"kanban/internal/config"
)

func newInfoCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show server, storage and board counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cfg, func(client *api.Client) error {
				info, err := client.GetInfo(cmd.Context())
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(info)
				}
				return writePlain("api_url: %s\ndb_path: %s (%s)\nschema_version: %d\nstored_keys: %s\nboards: %d\nitems: %d\nactive_board: %d\ntheme: %s\n",
					client.BaseURL(), info.DBPath, formatFileSize(info.DBPath), info.SchemaVersion,
					strings.Join(info.StoredKeys, ", "), info.BoardCount, info.ItemCount, info.ActiveIndex, info.Theme)
			})
		},
	}
}
