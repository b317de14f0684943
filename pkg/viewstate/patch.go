package viewstate

import (
	"strconv"
)

// Patch maps query keys to their new value; an empty value removes the key.
type Patch map[string]string

// HistoryMode tells the caller how to apply a rewritten query: filter and
// sort edits replace the current history entry, page moves push one.
type HistoryMode string

const (
	Replace HistoryMode = "replace"
	Push    HistoryMode = "push"
)

// Encode applies the patch to the current query and returns the new query.
// Touching a filter or sort key drops the page, since the result set the
// page pointed into has changed. Keys the view does not own are preserved.
func Encode(current string, patch Patch) string {
	values := ParseQuery(current)
	clearPage := false
	for key, value := range patch {
		if value == "" {
			values.Del(key)
		} else {
			values.Set(key, value)
		}
		if resetsPage(key) {
			clearPage = true
		}
	}
	if clearPage {
		values.Del(KeyPage)
	} else if page, ok := patch[KeyPage]; ok && page == strconv.Itoa(1) {
		values.Del(KeyPage)
	}
	return values.Encode()
}

// ModeFor returns the history mode for a patch.
func ModeFor(patch Patch) HistoryMode {
	for key := range patch {
		if resetsPage(key) {
			return Replace
		}
	}
	if _, ok := patch[KeyPage]; ok {
		return Push
	}
	return Replace
}

func PageValue(page int) string {
	if page <= 1 {
		return ""
	}
	return strconv.Itoa(page)
}
