package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// VehicleRecord is a single row of the inventory listing. Records are
// immutable once they are part of a loaded source.
type VehicleRecord struct {
	UniqueId  string  `json:"unique_id"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Year      FlexInt `json:"year"`
	Mileage   FlexInt `json:"mileage"`
	UpdatedAt string  `json:"updated_at"`
}

// ToStringList returns the display columns in table order
// (make, model, mileage, year, last update).
func (v *VehicleRecord) ToStringList() []string {
	return []string{
		v.Make,
		v.Model,
		strconv.Itoa(int(v.Mileage)),
		strconv.Itoa(int(v.Year)),
		FormatTimestamp(v.UpdatedAt),
	}
}

// FlexInt decodes from a JSON number or a numeric string. Datasets exported
// from spreadsheets tend to carry the year as "2019".
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		return f.parse(s)
	}
	return f.parse(string(data))
}

func (f *FlexInt) parse(s string) error {
	if i, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(i)
		return nil
	}
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %q: %w", s, err)
	}
	*f = FlexInt(int(fl))
	return nil
}

// ParseFlexInt parses a textual integer the same way the JSON decoder does,
// blank values are zero.
func ParseFlexInt(s string) (FlexInt, error) {
	var f FlexInt
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	err := f.parse(s)
	return f, err
}
