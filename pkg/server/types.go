package server

import (
	"github.com/matst80/slask-inventory/pkg/types"
	"github.com/matst80/slask-inventory/pkg/view"
	"github.com/matst80/slask-inventory/pkg/viewstate"
)

// VehicleRow is a record with its last update formatted for display.
type VehicleRow struct {
	types.VehicleRecord
	UpdatedAtDisplay string `json:"updated_at_display"`
}

type VehiclesResponse struct {
	Items      []VehicleRow      `json:"items"`
	TotalPages int               `json:"totalPages"`
	TotalHits  int               `json:"totalHits"`
	Empty      bool              `json:"empty"`
	Page       int               `json:"page"`
	Sort       types.SortState   `json:"sort"`
	Filters    types.FilterState `json:"filters"`
	Query      string            `json:"query"`
	ResetQuery *string           `json:"resetQuery,omitempty"`
	PrevQuery  *string           `json:"prevQuery,omitempty"`
	NextQuery  *string           `json:"nextQuery,omitempty"`
}

const (
	ActionFilter = "filter"
	ActionSort   = "sort"
	ActionPage   = "page"
	ActionReset  = "reset"
)

type NavigateRequest struct {
	Query  string `json:"query"`
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
	Column string `json:"column,omitempty"`
	Page   int    `json:"page,omitempty"`
}

func rowsFrom(records []types.VehicleRecord) []VehicleRow {
	ret := make([]VehicleRow, len(records))
	for i := range records {
		ret[i] = VehicleRow{
			VehicleRecord:    records[i],
			UpdatedAtDisplay: types.FormatTimestamp(records[i].UpdatedAt),
		}
	}
	return ret
}

func responseFrom(result view.Result, query string) VehiclesResponse {
	ret := VehiclesResponse{
		Items:      rowsFrom(result.Items),
		TotalPages: result.TotalPages,
		TotalHits:  result.TotalHits,
		Empty:      result.Empty,
		Page:       result.Page,
		Sort:       result.Sort,
		Filters:    result.Filters,
		Query:      query,
	}
	if result.Empty {
		reset := ""
		ret.ResetQuery = &reset
	}
	ret.PrevQuery = pageQuery(query, result.PrevPage)
	ret.NextQuery = pageQuery(query, result.NextPage)
	return ret
}

func pageQuery(query string, page int) *string {
	if page < types.FirstPage {
		return nil
	}
	q := viewstate.Encode(query, viewstate.Patch{viewstate.KeyPage: viewstate.PageValue(page)})
	return &q
}
