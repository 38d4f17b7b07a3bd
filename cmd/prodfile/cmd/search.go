/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/spf13/cobra"
	"github.com/ssargent/prodfile/pkg/codec"
	"github.com/ssargent/prodfile/pkg/store"
)

const (
	dataFileMissingMessage = "Product data file not found! Please create products first using 'prodfile add'."

	reportWidth          = 80
	displayNameWidth     = 35
	displayDescWidth     = 40
	displayEllipsis      = "..."
	displayEllipsisWidth = 3
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search products by name",
	Long: `Search the data file for products whose name contains the term,
ignoring case. The data file is opened read-only.

Example:
  prodfile search bolt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.TrimSpace(args[0])
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

		products, err := cat.Search(term)
		if err != nil {
			return err
		}

		if outputFormat != formatTable {
			return writeProducts(out, outputFormat, products)
		}
		renderSearchResults(out, term, products)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// renderSearchResults writes the search report for term
func renderSearchResults(w io.Writer, term string, products []codec.Product) {
	if len(products) == 0 {
		fmt.Fprintf(w, "No products found matching: \"%s\"\n", term)
		return
	}

	fmt.Fprintf(w, "Search Results for: \"%s\"\n", term)
	fmt.Fprintf(w, "Found %d matching product(s)\n", len(products))
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", reportWidth))

	fmt.Fprintf(w, "%-8s %-35s %-40s %10s\n", "ID", "Name", "Description", "Cost")
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", reportWidth))

	for _, p := range products {
		fmt.Fprintf(w, "%-8s %-35s %-40s $%9.2f\n",
			p.ID,
			shorten(p.Name, displayNameWidth),
			shorten(p.Description, displayDescWidth),
			p.Cost)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", reportWidth))
}

// shorten cuts s to width code units, ending in an ellipsis, when it is longer
func shorten(s string, width int) string {
	if codec.CodeUnits(s) <= width {
		return s
	}

	units := utf16.Encode([]rune(s))[:width-displayEllipsisWidth]
	if n := len(units); n > 0 && utf16.IsSurrogate(rune(units[n-1])) && units[n-1] < 0xDC00 {
		units = units[:n-1]
	}
	return string(utf16.Decode(units)) + displayEllipsis
}
