package facet

// KeyField collects the distinct values of a text column in the order they
// are first seen.
type KeyField struct {
	Name   string
	values []string
	seen   map[string]struct{}
}

func NewKeyField(name string) *KeyField {
	return &KeyField{
		Name:   name,
		values: make([]string, 0),
		seen:   make(map[string]struct{}),
	}
}

func (f *KeyField) AddValue(value string) {
	if _, ok := f.seen[value]; ok {
		return
	}
	f.seen[value] = struct{}{}
	f.values = append(f.values, value)
}

func (f *KeyField) Len() int {
	return len(f.values)
}

func (f *KeyField) GetValues() []string {
	ret := make([]string, len(f.values))
	copy(ret, f.values)
	return ret
}
