package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trip5/webstations/internal/domain/entities"
	"github.com/trip5/webstations/internal/domain/ports"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit int
		runID string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversion runs",
		Long:  "Lists conversion runs recorded in the catalog, or the playlists of one run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, limit, runID)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of runs to display")
	cmd.Flags().StringVarP(&runID, "run", "r", "", "Show the playlists of a specific run")

	return cmd
}

func runHistory(cmd *cobra.Command, limit int, runID string) error {
	ctx := cmd.Context()

	return withCatalog(ctx, func(catalog ports.Catalog) error {
		if runID != "" {
			playlists, err := catalog.ListPlaylists(ctx, runID)
			if err != nil {
				return fmt.Errorf("listing playlists: %w", err)
			}
			if len(playlists) == 0 {
				fmt.Println("No playlists found for run.")
				return nil
			}
			displayPlaylists(playlists)
			return nil
		}

		runs, err := catalog.ListRuns(ctx, limit)
		if err != nil {
			return fmt.Errorf("listing runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No conversion runs recorded.")
			return nil
		}
		displayRuns(runs)
		return nil
	})
}

func displayRuns(runs []entities.ConversionRun) {
	printTable([]string{"Run", "Started", "Files", "Stations"}, runRows(runs),
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight})
	fmt.Printf("%d runs\n", len(runs))
}

func runRows(runs []entities.ConversionRun) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			run.StartedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(run.Files),
			strconv.Itoa(run.Stations),
		})
	}
	return rows
}

func displayPlaylists(playlists []entities.PlaylistRecord) {
	rows := make([][]string, 0, len(playlists))
	for _, pl := range playlists {
		rows = append(rows, []string{pl.Name, pl.SourceFile, strconv.Itoa(pl.Stations)})
	}
	printTable([]string{"Playlist", "Source", "Stations"}, rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight})
	fmt.Printf("%d playlists\n", len(playlists))
}

// shortID trims a UUID down to its first group for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
