package facet

import (
	"github.com/matst80/slask-inventory/pkg/types"
)

// Match returns the records satisfying every constraint of the filter, in
// input order. The input slice is never modified.
func Match(records []types.VehicleRecord, filter types.FilterState) []types.VehicleRecord {
	if filter.IsEmpty() {
		ret := make([]types.VehicleRecord, len(records))
		copy(ret, records)
		return ret
	}
	ret := make([]types.VehicleRecord, 0, len(records))
	for i := range records {
		if filter.Matches(&records[i]) {
			ret = append(ret, records[i])
		}
	}
	return ret
}

