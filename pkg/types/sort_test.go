package types

import "testing"

func TestSortStateToggle(t *testing.T) {
	s := DefaultSort()
	s = s.Toggle(ColumnMake)
	if s.Column != ColumnMake || s.Direction != Descending {
		t.Errorf("Expected make descending, got %v", s)
	}
	s = s.Toggle(ColumnYear)
	if s.Column != ColumnYear || s.Direction != Ascending {
		t.Errorf("Expected year ascending, got %v", s)
	}
	s = s.Toggle(ColumnYear).Toggle(ColumnYear)
	if s.Direction != Ascending {
		t.Errorf("Expected two toggles to return to ascending, got %v", s)
	}
}

func TestColumnKind(t *testing.T) {
	kinds := map[Column]ColumnKind{
		ColumnMake:      KindText,
		ColumnModel:     KindText,
		ColumnMileage:   KindNumeric,
		ColumnYear:      KindNumeric,
		ColumnUpdatedAt: KindTemporal,
	}
	for c, k := range kinds {
		if c.Kind() != k {
			t.Errorf("Expected %s to be kind %d, got %d", c, k, c.Kind())
		}
	}
	if Column("price").Valid() {
		t.Errorf("Expected price to be an invalid column")
	}
}
