package types

// FilterState holds the optional constraints of the listing. A nil bound or
// an empty string means no constraint; zero is a real bound.
type FilterState struct {
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	YearFrom    *int   `json:"yearFrom,omitempty"`
	YearTo      *int   `json:"yearTo,omitempty"`
	MileageFrom *int   `json:"mileageFrom,omitempty"`
	MileageTo   *int   `json:"mileageTo,omitempty"`
}

func (f *FilterState) IsEmpty() bool {
	return f.Make == "" && f.Model == "" &&
		f.YearFrom == nil && f.YearTo == nil &&
		f.MileageFrom == nil && f.MileageTo == nil
}

// Matches reports whether the record satisfies every set constraint.
func (f *FilterState) Matches(v *VehicleRecord) bool {
	if f.Make != "" && v.Make != f.Make {
		return false
	}
	if f.Model != "" && v.Model != f.Model {
		return false
	}
	year := int(v.Year)
	if f.YearFrom != nil && year < *f.YearFrom {
		return false
	}
	if f.YearTo != nil && year > *f.YearTo {
		return false
	}
	mileage := int(v.Mileage)
	if f.MileageFrom != nil && mileage < *f.MileageFrom {
		return false
	}
	if f.MileageTo != nil && mileage > *f.MileageTo {
		return false
	}
	return true
}

// IntPtr is a small helper for building filter bounds.
func IntPtr(i int) *int {
	return &i
}
