package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/matst80/slask-inventory/pkg/index"
	"github.com/matst80/slask-inventory/pkg/paging"
	"github.com/matst80/slask-inventory/pkg/storage"
	"github.com/matst80/slask-inventory/pkg/view"
	"github.com/matst80/slask-inventory/pkg/viewstate"
)

var dataFile = flag.String("data", "data/vehicles.json", "record file (json, jsonl, csv, optionally gzipped)")
var query = flag.String("query", "", "view state query string, e.g. make=Ford&sort=year&page=2")
var pageSize = flag.Int("page-size", paging.DefaultPageSize, "records per page")
var showOptions = flag.Bool("options", false, "print the filter options")

func main() {
	flag.Parse()

	s := storage.NewDiskStorage(path.Dir(*dataFile))
	records, err := s.LoadRecords(path.Base(*dataFile))
	if err != nil {
		log.Fatalf("Could not load records: %v", err)
	}
	source := index.NewSource(records)
	controller := view.NewController(*pageSize)
	ctx := context.Background()

	if *showOptions {
		if err := renderOptions(os.Stdout, controller.Options(ctx, source)); err != nil {
			log.Fatalf("Could not print options: %v", err)
		}
	}

	state := viewstate.Decode(*query)
	result := controller.Render(ctx, source, state)
	if err := renderPage(os.Stdout, result); err != nil {
		log.Fatalf("Could not render table: %v", err)
	}
	if canonical := viewstate.Canonical(state); canonical != *query {
		log.Printf("Canonical query: %s", canonical)
	}
}
