package storage

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/matst80/slask-inventory/pkg/types"
)

type DiskStorage struct {
	RootFolder string
}

func NewDiskStorage(rootFolder string) *DiskStorage {
	return &DiskStorage{
		RootFolder: rootFolder,
	}
}

func (ds *DiskStorage) GetFileName(name string) (string, string) {
	fileName := name
	if !path.IsAbs(name) {
		fileName = path.Join(ds.RootFolder, name)
	}
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixMilli())
	return fileName, tmpFileName
}

type Format int

const (
	FormatJson Format = iota
	FormatJsonLines
	FormatCsv
)

func (f Format) String() string {
	switch f {
	case FormatJsonLines:
		return "jsonl"
	case FormatCsv:
		return "csv"
	default:
		return "json"
	}
}

// FormatFor picks the record format from a file name. A trailing .gz marks a
// gzipped file of the inner format.
func FormatFor(name string) (Format, bool, error) {
	lower := strings.ToLower(name)
	gzipped := strings.HasSuffix(lower, ".gz")
	lower = strings.TrimSuffix(lower, ".gz")
	switch path.Ext(lower) {
	case ".json":
		return FormatJson, gzipped, nil
	case ".jsonl", ".ndjson":
		return FormatJsonLines, gzipped, nil
	case ".csv":
		return FormatCsv, gzipped, nil
	}
	return FormatJson, gzipped, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, name)
}
