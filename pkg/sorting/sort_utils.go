package sorting

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/matst80/slask-inventory/pkg/types"
	"golang.org/x/text/collate"
)

// sortKey is the comparable form of one cell. Numeric keys compare as
// numbers; as soon as one side is textual both sides compare as text.
type sortKey struct {
	numeric bool
	num     int64
	text    string
}

func numericKey(n int64) sortKey {
	return sortKey{numeric: true, num: n}
}

func textKey(s string) sortKey {
	return sortKey{text: strings.ToLower(s)}
}

func (k sortKey) String() string {
	if k.numeric {
		return strconv.FormatInt(k.num, 10)
	}
	return k.text
}

func keyFor(column types.Column, v *types.VehicleRecord) sortKey {
	switch column.Kind() {
	case types.KindNumeric:
		if column == types.ColumnYear {
			return numericKey(int64(v.Year))
		}
		return numericKey(int64(v.Mileage))
	case types.KindTemporal:
		if t, ok := types.ParseTimestamp(v.UpdatedAt); ok {
			return numericKey(t.UnixMilli())
		}
		return textKey(v.UpdatedAt)
	default:
		if column == types.ColumnModel {
			return textKey(v.Model)
		}
		return textKey(v.Make)
	}
}

func compareKeys(c *collate.Collator, a, b sortKey) int {
	if a.numeric && b.numeric {
		return cmp.Compare(a.num, b.num)
	}
	return c.CompareString(a.String(), b.String())
}
