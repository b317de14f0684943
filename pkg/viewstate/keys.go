package viewstate

const (
	KeyMake        = "make"
	KeyModel       = "model"
	KeyYearFrom    = "yearFrom"
	KeyYearTo      = "yearTo"
	KeyMileageFrom = "mileageFrom"
	KeyMileageTo   = "mileageTo"
	KeySort        = "sort"
	KeyDirection   = "dir"
	KeyPage        = "page"
)

var filterKeys = []string{KeyMake, KeyModel, KeyYearFrom, KeyYearTo, KeyMileageFrom, KeyMileageTo}
var sortKeys = []string{KeySort, KeyDirection}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func IsFilterKey(key string) bool {
	return contains(filterKeys, key)
}

func IsSortKey(key string) bool {
	return contains(sortKeys, key)
}

// IsRecognized reports whether the key belongs to the view state. Every
// other key is carried through untouched.
func IsRecognized(key string) bool {
	return key == KeyPage || IsFilterKey(key) || IsSortKey(key)
}

// resetsPage reports whether changing the key changes the result set, which
// makes the current page position meaningless.
func resetsPage(key string) bool {
	return IsFilterKey(key) || IsSortKey(key)
}
