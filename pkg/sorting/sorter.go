package sorting

import (
	"slices"

	"github.com/matst80/slask-inventory/pkg/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter orders records by a single column. A Sorter holds a collator and
// must not be shared between goroutines.
type Sorter struct {
	collator *collate.Collator
}

func NewSorter() *Sorter {
	return &Sorter{
		collator: collate.New(language.Und),
	}
}

// Compare returns the ordering of a and b for the sort state. Descending
// flips the sign, so equal records stay equal in both directions.
func (s *Sorter) Compare(state types.SortState, a, b *types.VehicleRecord) int {
	c := compareKeys(s.collator, keyFor(state.Column, a), keyFor(state.Column, b))
	if state.Direction == types.Descending {
		return -c
	}
	return c
}

type keyed struct {
	key    sortKey
	record *types.VehicleRecord
}

// Sort returns a new slice ordered by the sort state. The sort is stable:
// records with equal keys keep their input order in either direction.
func (s *Sorter) Sort(records []types.VehicleRecord, state types.SortState) []types.VehicleRecord {
	if !state.Column.Valid() {
		state.Column = types.ColumnMake
	}
	items := make([]keyed, len(records))
	for i := range records {
		items[i] = keyed{key: keyFor(state.Column, &records[i]), record: &records[i]}
	}
	reverse := state.Direction == types.Descending
	slices.SortStableFunc(items, func(a, b keyed) int {
		c := compareKeys(s.collator, a.key, b.key)
		if reverse {
			return -c
		}
		return c
	})
	ret := make([]types.VehicleRecord, len(items))
	for i, item := range items {
		ret[i] = *item.record
	}
	return ret
}

// Sort orders the records with a fresh Sorter.
func Sort(records []types.VehicleRecord, state types.SortState) []types.VehicleRecord {
	return NewSorter().Sort(records, state)
}
