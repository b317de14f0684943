package viewstate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/matst80/slask-inventory/pkg/types"
)

// rawState is the string form of the recognised query keys.
type rawState struct {
	Make        string `schema:"make,omitempty"`
	Model       string `schema:"model,omitempty"`
	YearFrom    string `schema:"yearFrom,omitempty"`
	YearTo      string `schema:"yearTo,omitempty"`
	MileageFrom string `schema:"mileageFrom,omitempty"`
	MileageTo   string `schema:"mileageTo,omitempty"`
	Sort        string `schema:"sort,omitempty"`
	Direction   string `schema:"dir,omitempty"`
	Page        string `schema:"page,omitempty"`
}

var decoder = schema.NewDecoder()
var encoder = schema.NewEncoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// ParseQuery never fails; whatever url.ParseQuery salvaged from a malformed
// query is kept.
func ParseQuery(query string) url.Values {
	query = strings.TrimPrefix(query, "?")
	values, _ := url.ParseQuery(query)
	if values == nil {
		values = url.Values{}
	}
	return values
}

func Decode(query string) types.ViewState {
	return DecodeValues(ParseQuery(query))
}

// DecodeValues builds a view state from query values. Only the first value
// of a repeated key is used, unparseable numbers are treated as unset.
func DecodeValues(values url.Values) types.ViewState {
	state := types.DefaultViewState()
	first := url.Values{}
	extra := url.Values{}
	for key, v := range values {
		if !IsRecognized(key) {
			extra[key] = append([]string(nil), v...)
			continue
		}
		if len(v) > 0 {
			first[key] = v[:1]
		}
	}
	if len(extra) > 0 {
		state.Extra = extra
	}

	raw := rawState{}
	if err := decoder.Decode(&raw, first); err != nil {
		// only string fields, nothing can fail to convert
		return state
	}

	state.Filters = types.FilterState{
		Make:        raw.Make,
		Model:       raw.Model,
		YearFrom:    parseInt(raw.YearFrom),
		YearTo:      parseInt(raw.YearTo),
		MileageFrom: parseInt(raw.MileageFrom),
		MileageTo:   parseInt(raw.MileageTo),
	}
	if column := types.Column(raw.Sort); column.Valid() {
		state.Sort.Column = column
	}
	if direction := types.Direction(raw.Direction); direction.Valid() {
		state.Sort.Direction = direction
	}
	if page := parseInt(raw.Page); page != nil && *page >= types.FirstPage {
		state.Page = *page
	}
	return state
}

func parseInt(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &i
}

// FormatInt is the canonical string form of an optional integer, empty
// when unset.
func FormatInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

// Values returns the canonical query values of a view state. Defaults (sort
// by make ascending, first page) are left out so equal views share one URL.
func Values(state types.ViewState) url.Values {
	raw := rawState{
		Make:        state.Filters.Make,
		Model:       state.Filters.Model,
		YearFrom:    FormatInt(state.Filters.YearFrom),
		YearTo:      FormatInt(state.Filters.YearTo),
		MileageFrom: FormatInt(state.Filters.MileageFrom),
		MileageTo:   FormatInt(state.Filters.MileageTo),
	}
	if state.Sort.Column != types.ColumnMake && state.Sort.Column.Valid() {
		raw.Sort = string(state.Sort.Column)
	}
	if state.Sort.Direction == types.Descending {
		raw.Direction = string(state.Sort.Direction)
	}
	if state.Page > types.FirstPage {
		raw.Page = strconv.Itoa(state.Page)
	}
	values := url.Values{}
	for key, v := range state.Extra {
		if IsRecognized(key) {
			continue
		}
		values[key] = append([]string(nil), v...)
	}
	if err := encoder.Encode(raw, values); err != nil {
		return values
	}
	return values
}

func Canonical(state types.ViewState) string {
	return Values(state).Encode()
}
