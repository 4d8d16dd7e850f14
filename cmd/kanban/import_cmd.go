package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kanban/internal/api"
	"kanban/internal/config"
	"kanban/internal/format"
)

func newImportCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var (
		inputPath  string
		formatName string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace all boards with an exported JSON or YAML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return errors.New("--input is required")
			}
			if !yes {
				return errors.New("import replaces every board; re-run with --yes to confirm")
			}
			if !cmd.Flags().Changed("format") {
				formatName = formatFromPath(inputPath, formatName)
			}

			doc, err := readExportDocument(inputPath, formatName)
			if err != nil {
				return err
			}

			return withClient(cfg, func(client *api.Client) error {
				resp, err := client.Import(cmd.Context(), doc)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(resp)
				}
				return writePlain("boards: %d, items: %d, theme: %s\n", resp.Boards, resp.Items, resp.Theme)
			})
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file")
	cmd.Flags().StringVar(&formatName, "format", "json", "input format: json|yaml (default: from --input extension)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm replacing all boards")

	return cmd
}

func readExportDocument(path, formatName string) (api.ExportDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return api.ExportDocument{}, err
	}
	defer f.Close()

	var doc api.ExportDocument
	if err := format.Decode(formatName, f, &doc); err != nil {
		return api.ExportDocument{}, fmt.Errorf("read %s: %w", path, err)
	}
	return doc, nil
}
