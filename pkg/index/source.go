package index

import (
	"time"

	"github.com/google/uuid"
	"github.com/matst80/slask-inventory/pkg/types"
)

// Source is an immutable record set. Anything derived from it can be keyed
// by Version.
type Source struct {
	Records  []types.VehicleRecord
	Version  string
	LoadedAt time.Time
	byId     map[string]int
}

func NewSource(records []types.VehicleRecord) *Source {
	byId := make(map[string]int, len(records))
	for i := range records {
		if _, ok := byId[records[i].UniqueId]; !ok {
			byId[records[i].UniqueId] = i
		}
	}
	return &Source{
		Records:  records,
		Version:  uuid.NewString(),
		LoadedAt: time.Now(),
		byId:     byId,
	}
}

func (s *Source) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

func (s *Source) GetRecord(id string) (*types.VehicleRecord, bool) {
	if s == nil {
		return nil, false
	}
	idx, ok := s.byId[id]
	if !ok {
		return nil, false
	}
	return &s.Records[idx], true
}
