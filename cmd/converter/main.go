package main

import (
	"flag"
	"log"
	"os"
	"path"

	"github.com/matst80/slask-inventory/pkg/storage"
	"github.com/matst80/slask-inventory/pkg/types"
)

var input = flag.String("in", "data/vehicles.json", "source file (json, jsonl or csv, optionally gzipped)")
var output = flag.String("out", "data/"+storage.RecordsFile, "gzipped json lines output")
var publish = flag.Bool("publish", false, "send the converted records to vehicles_changed on RABBIT_URL")
var prefix = os.Getenv("NODE_NAME")

func main() {
	flag.Parse()

	records, err := convert(*input, *output)
	if err != nil {
		log.Fatalf("Could not convert %s: %v", *input, err)
	}
	log.Printf("Converted %d records to %s", len(records), *output)

	if !*publish {
		return
	}
	rabbitUrl, ok := os.LookupEnv("RABBIT_URL")
	if !ok {
		log.Fatalf("RABBIT_URL is required with -publish")
	}
	if prefix == "" {
		prefix = "inventory"
	}
	sender, err := NewAmqpSender(rabbitUrl, prefix)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	if err = publishRecords(sender, records); err != nil {
		log.Fatalf("Failed to publish records: %v", err)
	}
	log.Printf("Published %d records to %s_%s", len(records), prefix, "vehicles_changed")
}

type recordSender interface {
	SendRecords(records []types.VehicleRecord) error
	Close() error
}

// publishRecords sends the records and always closes the sender, the caller
// may exit right after.
func publishRecords(sender recordSender, records []types.VehicleRecord) error {
	err := sender.SendRecords(records)
	if closeErr := sender.Close(); closeErr != nil {
		log.Printf("Failed to close sender: %v", closeErr)
	}
	return err
}

func convert(in, out string) ([]types.VehicleRecord, error) {
	source := storage.NewDiskStorage(path.Dir(in))
	records, err := source.LoadRecords(path.Base(in))
	if err != nil {
		return nil, err
	}
	target := storage.NewDiskStorage(path.Dir(out))
	if err = target.SaveRecords(records, path.Base(out)); err != nil {
		return nil, err
	}
	return records, nil
}
