package viewstate

import (
	"net/url"
	"testing"

	"github.com/matst80/slask-inventory/pkg/types"
)

func TestDecodeQuery(t *testing.T) {
	state := Decode("?make=Ford&model=Focus&yearFrom=2015&yearTo=2020&mileageFrom=0&mileageTo=90000&sort=year&dir=descending&page=3")

	f := state.Filters
	if f.Make != "Ford" || f.Model != "Focus" {
		t.Errorf("Expected Ford Focus, got %s %s", f.Make, f.Model)
	}
	if f.YearFrom == nil || *f.YearFrom != 2015 || f.YearTo == nil || *f.YearTo != 2020 {
		t.Errorf("Expected year range 2015-2020, got %v-%v", f.YearFrom, f.YearTo)
	}
	if f.MileageFrom == nil || *f.MileageFrom != 0 {
		t.Errorf("Expected mileageFrom 0 to be kept as a bound, got %v", f.MileageFrom)
	}
	if f.MileageTo == nil || *f.MileageTo != 90000 {
		t.Errorf("Expected mileageTo 90000, got %v", f.MileageTo)
	}
	if state.Sort.Column != types.ColumnYear || state.Sort.Direction != types.Descending {
		t.Errorf("Expected year descending, got %v", state.Sort)
	}
	if state.Page != 3 {
		t.Errorf("Expected page 3, got %d", state.Page)
	}
	if len(state.Extra) != 0 {
		t.Errorf("Expected no extra keys, got %v", state.Extra)
	}
}

func TestDecodeDefaults(t *testing.T) {
	state := Decode("")
	if !state.Filters.IsEmpty() {
		t.Errorf("Expected empty filters, got %+v", state.Filters)
	}
	if !state.Sort.IsDefault() {
		t.Errorf("Expected default sort, got %v", state.Sort)
	}
	if state.Page != 1 {
		t.Errorf("Expected page 1, got %d", state.Page)
	}
}

func TestDecodeInvalidValuesAreUnset(t *testing.T) {
	state := Decode("yearFrom=abc&yearTo=&mileageFrom=12.5&mileageTo=1e3&make=&sort=price&dir=up&page=zero")
	f := state.Filters
	if f.YearFrom != nil || f.YearTo != nil || f.MileageFrom != nil || f.MileageTo != nil {
		t.Errorf("Expected numeric filters to be unset, got %+v", f)
	}
	if f.Make != "" {
		t.Errorf("Expected empty make to be unset, got %q", f.Make)
	}
	if !state.Sort.IsDefault() {
		t.Errorf("Expected unknown sort values to fall back to default, got %v", state.Sort)
	}
	if state.Page != 1 {
		t.Errorf("Expected page 1, got %d", state.Page)
	}
}

func TestDecodePageBelowOne(t *testing.T) {
	for _, q := range []string{"page=0", "page=-4", "page=1"} {
		if state := Decode(q); state.Page != 1 {
			t.Errorf("%s: expected page 1, got %d", q, state.Page)
		}
	}
}

func TestDecodeFirstValueWins(t *testing.T) {
	state := Decode("make=Ford&make=Volvo")
	if state.Filters.Make != "Ford" {
		t.Errorf("Expected first value Ford, got %s", state.Filters.Make)
	}
}

func TestDecodeKeepsUnknownKeys(t *testing.T) {
	state := Decode("make=Ford&utm_source=mail&tab=a&tab=b")
	if got := state.Extra["utm_source"]; len(got) != 1 || got[0] != "mail" {
		t.Errorf("Expected utm_source to pass through, got %v", got)
	}
	if got := state.Extra["tab"]; len(got) != 2 {
		t.Errorf("Expected both tab values, got %v", got)
	}
	values := Values(state)
	if values.Get("utm_source") != "mail" || values.Get("make") != "Ford" {
		t.Errorf("Expected canonical values to keep extra keys, got %v", values)
	}
}

func TestDecodeMalformedQuery(t *testing.T) {
	state := Decode("%zz=1&make=Ford&yearFrom=%ZZ")
	if state.Filters.Make != "Ford" {
		t.Errorf("Expected make to survive malformed pairs, got %q", state.Filters.Make)
	}
	if state.Filters.YearFrom != nil {
		t.Errorf("Expected broken yearFrom to be unset, got %v", *state.Filters.YearFrom)
	}
}

func TestEncodeSetAndDelete(t *testing.T) {
	q := Encode("make=Ford&model=Focus", Patch{KeyModel: "", KeyYearFrom: "2019"})
	values, _ := url.ParseQuery(q)
	if values.Has(KeyModel) {
		t.Errorf("Expected model to be removed, got %s", q)
	}
	if values.Get(KeyYearFrom) != "2019" || values.Get(KeyMake) != "Ford" {
		t.Errorf("Expected make and yearFrom, got %s", q)
	}
}

func TestEncodeFilterOrSortChangeClearsPage(t *testing.T) {
	for _, key := range []string{KeyMake, KeyModel, KeyYearFrom, KeyYearTo, KeyMileageFrom, KeyMileageTo, KeySort, KeyDirection} {
		q := Encode("page=4&other=x", Patch{key: "1"})
		values, _ := url.ParseQuery(q)
		if values.Has(KeyPage) {
			t.Errorf("%s: expected page to be cleared, got %s", key, q)
		}
		if values.Get("other") != "x" {
			t.Errorf("%s: expected unrelated key to survive, got %s", key, q)
		}
		if state := Decode(q); state.Page != 1 {
			t.Errorf("%s: expected decoded page 1, got %d", key, state.Page)
		}
	}
	q := Encode("make=Ford&page=4", Patch{KeyMake: ""})
	if q != "" {
		t.Errorf("Expected deleting a filter to also clear the page, got %q", q)
	}
}

func TestEncodePage(t *testing.T) {
	if q := Encode("make=Ford", Patch{KeyPage: "2"}); q != "make=Ford&page=2" {
		t.Errorf("Expected make=Ford&page=2, got %s", q)
	}
	if q := Encode("make=Ford&page=2", Patch{KeyPage: "1"}); q != "make=Ford" {
		t.Errorf("Expected page 1 to be removed, got %s", q)
	}
	if q := Encode("page=2&tab=x", Patch{"tab": "y"}); q != "page=2&tab=y" {
		t.Errorf("Expected unrelated patch to keep the page, got %s", q)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		key   string
		value string
		get   func(types.ViewState) string
	}{
		{KeyMake, "Ford", func(s types.ViewState) string { return s.Filters.Make }},
		{KeyModel, "Model S", func(s types.ViewState) string { return s.Filters.Model }},
		{KeyYearFrom, "2019", func(s types.ViewState) string { return FormatInt(s.Filters.YearFrom) }},
		{KeyYearTo, "2021", func(s types.ViewState) string { return FormatInt(s.Filters.YearTo) }},
		{KeyMileageFrom, "0", func(s types.ViewState) string { return FormatInt(s.Filters.MileageFrom) }},
		{KeyMileageTo, "150000", func(s types.ViewState) string { return FormatInt(s.Filters.MileageTo) }},
		{KeySort, "updated_at", func(s types.ViewState) string { return string(s.Sort.Column) }},
		{KeyDirection, "descending", func(s types.ViewState) string { return string(s.Sort.Direction) }},
		{KeyPage, "7", func(s types.ViewState) string { return PageValue(s.Page) }},
	}
	for _, c := range cases {
		q := Encode("unrelated=1", Patch{c.key: c.value})
		state := Decode(q)
		if got := c.get(state); got != c.value {
			t.Errorf("%s: expected %q after round trip, got %q (query %s)", c.key, c.value, got, q)
		}
		cleared := Decode(Encode(q, Patch{c.key: ""}))
		if got := c.get(cleared); got == c.value {
			t.Errorf("%s: expected value to be removed, still %q", c.key, got)
		}
	}
}

func TestValuesCanonical(t *testing.T) {
	state := types.DefaultViewState()
	if q := Canonical(state); q != "" {
		t.Errorf("Expected default state to encode empty, got %q", q)
	}
	state.Filters.MileageFrom = types.IntPtr(0)
	state.Sort = types.SortState{Column: types.ColumnMake, Direction: types.Descending}
	state.Page = 2
	if q := Canonical(state); q != "dir=descending&mileageFrom=0&page=2" {
		t.Errorf("Unexpected canonical query %q", q)
	}
	if again := Canonical(Decode(Canonical(state))); again != Canonical(state) {
		t.Errorf("Expected canonical form to be stable, got %q", again)
	}
}

func TestModeFor(t *testing.T) {
	if ModeFor(Patch{KeyMake: "Ford"}) != Replace {
		t.Errorf("Expected filter edits to replace history")
	}
	if ModeFor(Patch{KeyPage: "2"}) != Push {
		t.Errorf("Expected page changes to push history")
	}
}
