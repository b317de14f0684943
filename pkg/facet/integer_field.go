package facet

import "slices"

// IntegerField collects the distinct values of a numeric column.
type IntegerField struct {
	Name string
	seen map[int]struct{}
}

func NewIntegerField(name string) *IntegerField {
	return &IntegerField{
		Name: name,
		seen: make(map[int]struct{}),
	}
}

func (f *IntegerField) AddValue(value int) {
	f.seen[value] = struct{}{}
}

func (f *IntegerField) Len() int {
	return len(f.seen)
}

// GetValues returns the distinct values in ascending order.
func (f *IntegerField) GetValues() []int {
	ret := make([]int, 0, len(f.seen))
	for v := range f.seen {
		ret = append(ret, v)
	}
	slices.Sort(ret)
	return ret
}
