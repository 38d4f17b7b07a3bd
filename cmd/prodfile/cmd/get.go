/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ssargent/prodfile/pkg/store"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <index>",
	Short: "Read a product record by index",
	Long: `Read the record at the given zero-based index.

Example:
  prodfile get 0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid index %q: must be an integer", args[0])
		}

		cat, err := openCatalog(true)
		if errors.Is(err, store.ErrStoreNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), dataFileMissingMessage)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to open data file: %w", err)
		}
		defer cat.Close()

		p, err := cat.Get(index)
		if errors.Is(err, store.ErrOutOfRange) {
			return fmt.Errorf("no record at index %d (%d records in file)", index, cat.Stats().Records)
		}
		if err != nil {
			return err
		}

		return writeProduct(cmd.OutOrStdout(), outputFormat, index, p)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
