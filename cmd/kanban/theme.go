package main

import (
	"github.com/spf13/cobra"

	"kanban/internal/api"
	"kanban/internal/config"
)

func newThemeCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cfg, func(client *api.Client) error {
				resp, err := client.GetTheme(cmd.Context())
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(resp)
				}
				return writePlain("%s\n", resp.Theme)
			})
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List available themes; the current one is marked with *",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withClient(cfg, func(client *api.Client) error {
					catalog, err := client.GetCatalog(cmd.Context())
					if err != nil {
						return err
					}
					current, err := client.GetTheme(cmd.Context())
					if err != nil {
						return err
					}
					if *jsonOutput {
						return writeJSON(catalog.Themes)
					}
					for _, theme := range catalog.Themes {
						marker := " "
						if theme == current.Theme {
							marker = "*"
						}
						if err := writePlain("%s %s\n", marker, theme); err != nil {
							return err
						}
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "set <name>",
			Short: "Set the theme",
			Args:  requireExactlyArgs(1, "theme name is required"),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withClient(cfg, func(client *api.Client) error {
					resp, err := client.SetTheme(cmd.Context(), api.ThemeRequest{Theme: args[0]})
					if err != nil {
						return err
					}
					if *jsonOutput {
						return writeJSON(resp)
					}
					return writePlain("%s\n", resp.Theme)
				})
			},
		},
	)
	return cmd
}
