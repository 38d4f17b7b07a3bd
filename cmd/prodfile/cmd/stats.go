/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ssargent/prodfile/pkg/store"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show data file statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cat, err := openCatalog(true)
		if errors.Is(err, store.ErrStoreNotFound) {
			fmt.Fprintln(out, dataFileMissingMessage)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to open data file: %w", err)
		}
		defer cat.Close()

		stats := cat.Stats()
		if outputFormat == formatJSON {
			return writeJSON(out, stats)
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Data file:\t%s\n", stats.Path)
		fmt.Fprintf(tw, "Records:\t%d\n", stats.Records)
		fmt.Fprintf(tw, "Size:\t%d bytes\n", stats.SizeBytes)
		fmt.Fprintf(tw, "Record size:\t%d bytes\n", stats.RecordSize)
		if trailing := stats.SizeBytes - stats.Records*int64(stats.RecordSize); trailing > 0 {
			fmt.Fprintf(tw, "Partial tail:\t%d bytes\n", trailing)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
