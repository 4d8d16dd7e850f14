package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"kanban/internal/api"
	"kanban/internal/config"
	"kanban/internal/format"
)

func newExportCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var (
		outputPath string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all boards and the theme as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput != nil && *jsonOutput {
				if cmd.Flags().Changed("format") && formatName != "json" {
					return fmt.Errorf("--json conflicts with --format %s", formatName)
				}
				formatName = "json"
			}
			if !cmd.Flags().Changed("format") && outputPath != "" {
				formatName = formatFromPath(outputPath, formatName)
			}
			if _, err := format.ByName(formatName); err != nil {
				return err
			}

			return withClient(cfg, func(client *api.Client) error {
				w := os.Stdout
				if outputPath != "" {
					f, err := os.Create(outputPath)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				return client.Export(cmd.Context(), formatName, w)
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&formatName, "format", "json", "output format: json|yaml (default: from --output extension)")

	return cmd
}

// formatFromPath picks yaml for .yaml/.yml files and json for .json files.
func formatFromPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return fallback
	}
}
