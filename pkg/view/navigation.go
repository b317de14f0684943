package view

import (
	"strconv"
	"strings"

	"github.com/matst80/slask-inventory/pkg/types"
	"github.com/matst80/slask-inventory/pkg/viewstate"
)

func navigate(action string, query string, patch viewstate.Patch) Navigation {
	mode := viewstate.ModeFor(patch)
	navigations.WithLabelValues(action, string(mode)).Inc()
	return Navigation{
		Query: viewstate.Encode(query, patch),
		Mode:  mode,
	}
}

// SetFilter sets or clears one filter key. Numeric bounds that are not
// integers clear the key. Keys that are not filters are left alone.
func SetFilter(query, key, value string) Navigation {
	if !viewstate.IsFilterKey(key) {
		return Navigation{Query: viewstate.Encode(query, viewstate.Patch{}), Mode: viewstate.Replace}
	}
	value = strings.TrimSpace(value)
	switch key {
	case viewstate.KeyMake, viewstate.KeyModel:
	default:
		if value != "" {
			if i, err := strconv.Atoi(value); err == nil {
				value = strconv.Itoa(i)
			} else {
				value = ""
			}
		}
	}
	return navigate("filter", query, viewstate.Patch{key: value})
}

// ToggleSort is a column header click: the active column flips direction,
// any other column starts ascending. The default sort is written by
// removing the keys.
func ToggleSort(query string, column types.Column) Navigation {
	if !column.Valid() {
		return Navigation{Query: viewstate.Encode(query, viewstate.Patch{}), Mode: viewstate.Replace}
	}
	current := viewstate.Decode(query).Sort
	next := current.Toggle(column)
	patch := viewstate.Patch{
		viewstate.KeySort:      "",
		viewstate.KeyDirection: "",
	}
	if next.Column != types.ColumnMake {
		patch[viewstate.KeySort] = string(next.Column)
	}
	if next.Direction != types.Ascending {
		patch[viewstate.KeyDirection] = string(next.Direction)
	}
	return navigate("sort", query, patch)
}

func SetPage(query string, page int) Navigation {
	return navigate("page", query, viewstate.Patch{viewstate.KeyPage: viewstate.PageValue(page)})
}

// ResetFilters returns to the unfiltered first page with the default sort.
func ResetFilters() Navigation {
	navigations.WithLabelValues("reset", string(viewstate.Push)).Inc()
	return Navigation{Query: "", Mode: viewstate.Push}
}
