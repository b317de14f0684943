package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matst80/slask-inventory/pkg/facet"
	"github.com/matst80/slask-inventory/pkg/view"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const emptyMessage = "No items found with current filters."

var headers = []string{"Make", "Model", "Mileage", "Year", "Last Update"}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
		}),
	)
}

// renderPage prints the page as a table followed by the paging footer, or
// the empty state with a hint on how to reset.
func renderPage(w io.Writer, result view.Result) error {
	if result.Empty {
		_, err := fmt.Fprintf(w, "%s\nRun without -query to reset the filters.\n", emptyMessage)
		return err
	}
	rows := make([][]string, len(result.Items))
	for i := range result.Items {
		rows[i] = result.Items[i].ToStringList()
	}
	table := newTable(w)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Page %d of %d, %d vehicles, sorted by %s %s\n",
		result.Page, result.TotalPages, result.TotalHits, result.Sort.Column, result.Sort.Direction)
	return err
}

func renderOptions(w io.Writer, options facet.Options) error {
	years := make([]string, len(options.Years))
	for i, y := range options.Years {
		years[i] = strconv.Itoa(y)
	}
	_, err := fmt.Fprintf(w, "Makes:  %s\nModels: %s\nYears:  %s\n",
		strings.Join(options.Makes, ", "),
		strings.Join(options.Models, ", "),
		strings.Join(years, ", "))
	return err
}
