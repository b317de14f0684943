package view

import (
	"net/url"
	"testing"

	"github.com/matst80/slask-inventory/pkg/types"
	"github.com/matst80/slask-inventory/pkg/viewstate"
)

func parse(t *testing.T, query string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("Expected a valid query, got %v", err)
	}
	return v
}

func TestSetFilterClearsPage(t *testing.T) {
	nav := SetFilter("make=Ford&page=3&utm=x", viewstate.KeyModel, "Focus")
	v := parse(t, nav.Query)
	if v.Get("model") != "Focus" || v.Get("make") != "Ford" {
		t.Errorf("Expected make and model, got %s", nav.Query)
	}
	if v.Has("page") {
		t.Errorf("Expected page to be cleared, got %s", nav.Query)
	}
	if v.Get("utm") != "x" {
		t.Errorf("Expected unknown keys to be kept, got %s", nav.Query)
	}
	if nav.Mode != viewstate.Replace {
		t.Errorf("Expected replace, got %s", nav.Mode)
	}
}

func TestSetFilterEmptyValueRemovesKey(t *testing.T) {
	nav := SetFilter("make=Ford&yearFrom=2019", viewstate.KeyMake, "")
	if nav.Query != "yearFrom=2019" {
		t.Errorf("Expected yearFrom=2019, got %s", nav.Query)
	}
}

func TestSetFilterNumeric(t *testing.T) {
	nav := SetFilter("", viewstate.KeyMileageFrom, " 0 ")
	if nav.Query != "mileageFrom=0" {
		t.Errorf("Expected mileageFrom=0, got %s", nav.Query)
	}
	nav = SetFilter("mileageFrom=5", viewstate.KeyMileageFrom, "lots")
	if nav.Query != "" {
		t.Errorf("Expected non numeric bound to clear the key, got %s", nav.Query)
	}
}

func TestSetFilterUnknownKey(t *testing.T) {
	nav := SetFilter("make=Ford", "color", "red")
	if nav.Query != "make=Ford" {
		t.Errorf("Expected query to be unchanged, got %s", nav.Query)
	}
}

func TestToggleSort(t *testing.T) {
	nav := ToggleSort("make=Ford&page=2", types.ColumnYear)
	v := parse(t, nav.Query)
	if v.Get("sort") != "year" || v.Has("dir") || v.Has("page") {
		t.Errorf("Expected year ascending without page, got %s", nav.Query)
	}
	if nav.Mode != viewstate.Replace {
		t.Errorf("Expected replace, got %s", nav.Mode)
	}

	nav = ToggleSort(nav.Query, types.ColumnYear)
	v = parse(t, nav.Query)
	if v.Get("sort") != "year" || v.Get("dir") != "descending" {
		t.Errorf("Expected year descending, got %s", nav.Query)
	}

	nav = ToggleSort(nav.Query, types.ColumnModel)
	v = parse(t, nav.Query)
	if v.Get("sort") != "model" || v.Has("dir") {
		t.Errorf("Expected model ascending, got %s", nav.Query)
	}
}

func TestToggleSortDefaultColumn(t *testing.T) {
	nav := ToggleSort("", types.ColumnMake)
	if nav.Query != "dir=descending" {
		t.Errorf("Expected dir=descending, got %s", nav.Query)
	}
	nav = ToggleSort(nav.Query, types.ColumnMake)
	if nav.Query != "" {
		t.Errorf("Expected default sort to leave an empty query, got %s", nav.Query)
	}
}

func TestToggleSortInvalidColumn(t *testing.T) {
	nav := ToggleSort("sort=year&page=2", types.Column("colour"))
	if nav.Query != "page=2&sort=year" {
		t.Errorf("Expected unchanged query, got %s", nav.Query)
	}
}

func TestSetPage(t *testing.T) {
	nav := SetPage("make=Ford", 3)
	if nav.Query != "make=Ford&page=3" || nav.Mode != viewstate.Push {
		t.Errorf("Expected page 3 with push, got %+v", nav)
	}
	nav = SetPage(nav.Query, 1)
	if nav.Query != "make=Ford" || nav.Mode != viewstate.Push {
		t.Errorf("Expected page 1 to remove the key, got %+v", nav)
	}
}

func TestResetFilters(t *testing.T) {
	nav := ResetFilters()
	if nav.Query != "" || nav.Mode != viewstate.Push {
		t.Errorf("Expected empty query with push, got %+v", nav)
	}
	state := viewstate.Decode(nav.Query)
	if !state.Filters.IsEmpty() || !state.Sort.IsDefault() || state.Page != 1 {
		t.Errorf("Expected default view state, got %+v", state)
	}
}
