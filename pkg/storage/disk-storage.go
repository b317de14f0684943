package storage

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/matst80/slask-inventory/pkg/types"
)

const RecordsFile = "vehicles.jsonl.gz"

// LoadRecords reads a record file relative to the root folder. The format
// follows the file extension.
func (d *DiskStorage) LoadRecords(name string) ([]types.VehicleRecord, error) {
	format, gzipped, err := FormatFor(name)
	if err != nil {
		return nil, err
	}
	fileName, _ := d.GetFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var reader io.Reader = file
	if gzipped {
		zipReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", fileName, err)
		}
		defer zipReader.Close()
		reader = zipReader
	}

	records, err := ReadRecords(reader, format)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fileName, err)
	}
	log.Printf("Loaded %d records from %s", len(records), fileName)
	return Dedup(records), nil
}

func ReadRecords(r io.Reader, format Format) ([]types.VehicleRecord, error) {
	if format == FormatCsv {
		return readCsvRecords(r)
	}
	return readJsonRecords(r)
}

// readJsonRecords accepts a single JSON array or a stream of objects, so
// .json and .jsonl files share one reader.
func readJsonRecords(r io.Reader) ([]types.VehicleRecord, error) {
	buffered := bufio.NewReader(r)
	first, err := peekNonSpace(buffered)
	if errors.Is(err, io.EOF) {
		return []types.VehicleRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(buffered)
	if first == '[' {
		ret := make([]types.VehicleRecord, 0)
		if err = decoder.Decode(&ret); err != nil {
			return nil, err
		}
		return ret, nil
	}

	ret := make([]types.VehicleRecord, 0)
	for {
		tmp := types.VehicleRecord{}
		if err = decoder.Decode(&tmp); err != nil {
			break
		}
		ret = append(ret, tmp)
	}
	if errors.Is(err, io.EOF) {
		return ret, nil
	}
	return nil, err
}

func peekNonSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, r.UnreadByte()
	}
}

// Dedup drops records whose unique_id was already seen, keeping the first.
func Dedup(records []types.VehicleRecord) []types.VehicleRecord {
	seen := make(map[string]struct{}, len(records))
	ret := records[:0:0]
	for _, record := range records {
		if _, ok := seen[record.UniqueId]; ok {
			log.Printf("Skipping duplicate record %s", record.UniqueId)
			continue
		}
		seen[record.UniqueId] = struct{}{}
		ret = append(ret, record)
	}
	return ret
}

// SaveRecords writes gzipped JSON lines to a temporary file and renames it
// into place.
func (d *DiskStorage) SaveRecords(records []types.VehicleRecord, name string) error {
	fileName, tmpFileName := d.GetFileName(name)

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}

	zipWriter := gzip.NewWriter(file)
	if err = WriteRecords(zipWriter, records); err != nil {
		_ = zipWriter.Close()
		_ = file.Close()
		_ = os.Remove(tmpFileName)
		return err
	}

	if err = zipWriter.Close(); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFileName)
		return err
	}

	if err = file.Close(); err != nil {
		_ = os.Remove(tmpFileName)
		return err
	}

	if err = os.Rename(tmpFileName, fileName); err != nil {
		_ = os.Remove(tmpFileName)
		return err
	}
	log.Printf("Saved %d records to %s", len(records), fileName)
	return nil
}

func WriteRecords(w io.Writer, records []types.VehicleRecord) error {
	enc := json.NewEncoder(w)
	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			return err
		}
	}
	return nil
}

func (d *DiskStorage) StreamContent(w io.Writer, fileName string) (int64, error) {
	osFileName, _ := d.GetFileName(fileName)
	file, err := os.Open(osFileName)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return file.WriteTo(w)
}
