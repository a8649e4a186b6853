package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trip5/webstations/internal/domain/entities"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a playlist file without writing renditions",
		Long:  "Parses a playlist source and prints the recognized stations, for checking how a master file will be interpreted.",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		playlist, err := d.ConvertHandler.Preview(ctx, args[0])
		if err != nil {
			return err
		}

		if len(playlist.Stations) == 0 {
			fmt.Println("No stations recognized.")
			return nil
		}

		printTable([]string{"Name", "URL", "Ovol"}, stationRows(playlist.Stations),
			[]columnAlignment{alignLeft, alignLeft, alignRight})
		fmt.Printf("%d stations\n", len(playlist.Stations))
		return nil
	})
}

func stationRows(stations []entities.Station) [][]string {
	rows := make([][]string, 0, len(stations))
	for _, st := range stations {
		rows = append(rows, []string{st.Name, st.URL, strconv.Itoa(st.VolumeOffset)})
	}
	return rows
}
