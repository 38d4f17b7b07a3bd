/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/prodfile/pkg/store"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all product records",
	Long: `List every record in the data file in storage order.

Examples:
  prodfile list
  prodfile list --format csv > products.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog(true)
		if errors.Is(err, store.ErrStoreNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), dataFileMissingMessage)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to open data file: %w", err)
		}
		defer cat.Close()

		products, err := cat.List()
		if err != nil {
			return err
		}

		return writeProducts(cmd.OutOrStdout(), outputFormat, products)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
