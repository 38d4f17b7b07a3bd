/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product record",
	Long: `Validate a product and append it to the data file.

Names may be up to 35 characters, descriptions up to 75, and the ID must be
exactly 6 characters. The cost must be a non-negative number.

Example:
  prodfile add --name Bolt --description "Steel bolt" --id 000123 --cost 1.50`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		id, _ := cmd.Flags().GetString("id")
		cost, _ := cmd.Flags().GetString("cost")

		cat, err := openCatalog(false)
		if err != nil {
			return fmt.Errorf("failed to open data file: %w", err)
		}
		defer cat.Close()

		index, err := cat.AddRecord(name, description, id, cost)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Record added successfully!\n")
		fmt.Fprintf(out, "Record #%d (index %d) in %s\n", index+1, index, cat.Stats().Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().String("name", "", "Product name (max 35 characters)")
	addCmd.Flags().String("description", "", "Product description (max 75 characters)")
	addCmd.Flags().String("id", "", "Product ID (exactly 6 characters)")
	addCmd.Flags().String("cost", "", "Product cost")
}
