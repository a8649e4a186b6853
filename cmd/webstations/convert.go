package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trip5/webstations/internal/application/handlers"
)

func newConvertCmd() *cobra.Command {
	var (
		inputDir  string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert playlist sources into CSV and JSON renditions",
		Long: "Converts a single playlist file, or every .csv/.json file in the input " +
			"directory, into normalized CSV and JSON renditions plus an index file.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, inputDir, outputDir)
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Input directory (overrides config)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, inputDir, outputDir string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if inputDir == "" {
			inputDir = d.Config.InputDir
		}
		if outputDir == "" {
			outputDir = d.Config.OutputDir
		}

		if len(args) == 1 {
			return convertFile(cmd, d, args[0], outputDir)
		}
		return convertDirectory(cmd, d, inputDir, outputDir)
	})
}

func convertFile(cmd *cobra.Command, d *Deps, filePath, outputDir string) error {
	result, err := d.ConvertHandler.Handle(cmd.Context(), filePath, outputDir)
	if err != nil {
		return err
	}

	if !result.Written {
		fmt.Printf("No stations recognized in %s, nothing written\n", filepath.Base(filePath))
		return nil
	}

	fmt.Printf("Converted %s: %d stations -> %s.{csv,json}\n",
		filepath.Base(filePath), len(result.Playlist.Stations),
		filepath.Join(outputDir, result.Playlist.Name))
	return nil
}

func convertDirectory(cmd *cobra.Command, d *Deps, inputDir, outputDir string) error {
	fmt.Printf("Converting %s -> %s\n", inputDir, outputDir)

	result, err := d.ConvertHandler.HandleDirectory(cmd.Context(), inputDir, outputDir, func(file string) {
		fmt.Printf("  %s\n", filepath.Base(file))
	})
	if err != nil {
		return err
	}

	indexResult, err := d.IndexHandler.Handle(outputDir, d.Config.IndexFile)
	if err != nil {
		return err
	}

	displayBatch(result)
	fmt.Printf("Indexed %d playlists in %s\n", len(indexResult.Entries), indexResult.Path)

	for _, convErr := range result.Errors {
		fmt.Printf("warning: %v\n", convErr)
	}
	return nil
}

func displayBatch(result *handlers.ConvertBatchResult) {
	rows := make([][]string, 0, len(result.FileResults))
	for _, fr := range result.FileResults {
		status := "written"
		if !fr.Written {
			status = "skipped"
		}
		rows = append(rows, []string{
			fr.Playlist.Name,
			strconv.Itoa(len(fr.Playlist.Stations)),
			status,
		})
	}

	printTable([]string{"Playlist", "Stations", "Status"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft})
	fmt.Printf("%d playlists, %d stations (%d skipped)\n",
		result.TotalFiles, result.TotalStations, result.Skipped)
}
