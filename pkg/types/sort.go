package types

type Column string

const (
	ColumnMake      Column = "make"
	ColumnModel     Column = "model"
	ColumnMileage   Column = "mileage"
	ColumnYear      Column = "year"
	ColumnUpdatedAt Column = "updated_at"
)

// Columns lists the sortable columns in table order.
var Columns = []Column{ColumnMake, ColumnModel, ColumnMileage, ColumnYear, ColumnUpdatedAt}

// ColumnKind selects the comparator used for a column.
type ColumnKind uint8

const (
	KindText ColumnKind = iota
	KindNumeric
	KindTemporal
)

func (c Column) Kind() ColumnKind {
	switch c {
	case ColumnMileage, ColumnYear:
		return KindNumeric
	case ColumnUpdatedAt:
		return KindTemporal
	default:
		return KindText
	}
}

func (c Column) Valid() bool {
	switch c {
	case ColumnMake, ColumnModel, ColumnMileage, ColumnYear, ColumnUpdatedAt:
		return true
	}
	return false
}

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

type SortState struct {
	Column    Column    `json:"column"`
	Direction Direction `json:"direction"`
}

func DefaultSort() SortState {
	return SortState{Column: ColumnMake, Direction: Ascending}
}

func (s SortState) IsDefault() bool {
	return s == DefaultSort()
}

// Toggle returns the sort state after a click on a column header: the active
// column flips direction, any other column starts ascending.
func (s SortState) Toggle(column Column) SortState {
	if s.Column == column {
		return SortState{Column: column, Direction: s.Direction.Toggle()}
	}
	return SortState{Column: column, Direction: Ascending}
}
