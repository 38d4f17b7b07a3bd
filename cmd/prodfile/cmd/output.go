package cmd

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/ssargent/prodfile/pkg/codec"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
	formatXML   = "xml"
)

// productList is the XML document for a list of products
type productList struct {
	XMLName  xml.Name        `xml:"Products"`
	Products []codec.Product `xml:"Product"`
}

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatCSV, formatXML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json, csv or xml)", format)
	}
}

// writeProducts displays products in storage order
func writeProducts(w io.Writer, format string, products []codec.Product) error {
	if products == nil {
		products = []codec.Product{}
	}

	switch format {
	case formatJSON:
		return writeJSON(w, products)
	case formatCSV:
		return writeCSV(w, products...)
	case formatXML:
		return writeXML(w, productList{Products: products})
	default:
		return writeProductsTable(w, products)
	}
}

// writeProduct displays a single product with its index
func writeProduct(w io.Writer, format string, index int64, p codec.Product) error {
	switch format {
	case formatJSON:
		return writeJSON(w, p)
	case formatCSV:
		return writeCSV(w, p)
	case formatXML:
		return writeXML(w, p)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Index:\t%d\n", index)
	fmt.Fprintf(tw, "ID:\t%s\n", p.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Description:\t%s\n", p.Description)
	fmt.Fprintf(tw, "Cost:\t%.2f\n", p.Cost)
	return tw.Flush()
}

func writeProductsTable(w io.Writer, products []codec.Product) error {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tID\tNAME\tDESCRIPTION\tCOST")
	for i, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\n", i, p.ID, p.Name, shorten(p.Description, displayDescWidth), p.Cost)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeCSV writes name, description, ID and cost per row, without a header
func writeCSV(w io.Writer, products ...codec.Product) error {
	cw := csv.NewWriter(w)
	for _, p := range products {
		record := []string{p.Name, p.Description, p.ID, strconv.FormatFloat(p.Cost, 'f', -1, 64)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXML(w io.Writer, v interface{}) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
