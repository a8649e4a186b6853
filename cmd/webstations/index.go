package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Regenerate the playlists index file",
		Long:  "Scans the output directory for paired CSV/JSON renditions and rewrites the index file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Playlists directory (overrides config)")

	return cmd
}

func runIndex(cmd *cobra.Command, outputDir string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if outputDir == "" {
			outputDir = d.Config.OutputDir
		}

		result, err := d.IndexHandler.Handle(outputDir, d.Config.IndexFile)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(result.Entries))
		for _, entry := range result.Entries {
			rows = append(rows, []string{entry.Name, entry.CSV, entry.JSON, entry.Total})
		}
		printTable([]string{"Playlist", "CSV", "JSON", "Stations"}, rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight})

		fmt.Printf("Wrote %s (%d playlists)\n", result.Path, len(result.Entries))
		return nil
	})
}
