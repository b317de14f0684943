package facet

import (
	"github.com/matst80/slask-inventory/pkg/types"
)

// Options are the selectable values of the filter controls.
type Options struct {
	Makes  []string `json:"makes"`
	Models []string `json:"models"`
	Years  []int    `json:"years"`
}

// DeriveOptions computes the option lists from the records. Makes and models
// keep first-seen order, years are ascending.
func DeriveOptions(records []types.VehicleRecord) Options {
	makes := NewKeyField(string(types.ColumnMake))
	models := NewKeyField(string(types.ColumnModel))
	years := NewIntegerField(string(types.ColumnYear))
	for i := range records {
		makes.AddValue(records[i].Make)
		models.AddValue(records[i].Model)
		years.AddValue(int(records[i].Year))
	}
	return Options{
		Makes:  makes.GetValues(),
		Models: models.GetValues(),
		Years:  years.GetValues(),
	}
}
