package storage

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matst80/slask-inventory/pkg/types"
)

// readCsvRecords reads a header row naming the record fields followed by one
// record per row. Both ',' and ';' separated files are accepted.
func readCsvRecords(r io.Reader) ([]types.VehicleRecord, error) {
	buffered := bufio.NewReader(r)
	csvReader := csv.NewReader(buffered)
	csvReader.Comma = detectComma(buffered)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return []types.VehicleRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := columns["unique_id"]; !ok {
		return nil, fmt.Errorf("%w: csv header is missing unique_id", types.ErrUnsupportedFormat)
	}

	ret := make([]types.VehicleRecord, 0)
	line := 1
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			return ret, nil
		}
		if err != nil {
			return nil, err
		}
		line++
		record, err := recordFromLine(columns, row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ret = append(ret, record)
	}
}

func detectComma(r *bufio.Reader) rune {
	head, _ := r.Peek(512)
	first := string(head)
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';'
	}
	return ','
}

func recordFromLine(columns map[string]int, row []string) (types.VehicleRecord, error) {
	get := func(name string) string {
		if i, ok := columns[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	year, err := types.ParseFlexInt(get("year"))
	if err != nil {
		return types.VehicleRecord{}, err
	}
	mileage, err := types.ParseFlexInt(get("mileage"))
	if err != nil {
		return types.VehicleRecord{}, err
	}
	return types.VehicleRecord{
		UniqueId:  get("unique_id"),
		Make:      get("make"),
		Model:     get("model"),
		Year:      year,
		Mileage:   mileage,
		UpdatedAt: get("updated_at"),
	}, nil
}
