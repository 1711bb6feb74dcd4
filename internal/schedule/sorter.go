package schedule

import (
	"strconv"
	"strings"
)

// OrdinalKey converts a dotted WBS identifier into its integer component
// sequence ("1.2.10" => [1 2 10]). Non-numeric components sort as 0; an empty
// identifier yields [0], the smallest possible key.
func OrdinalKey(wbsID string) []int {
	if wbsID == "" {
		return []int{0}
	}
	parts := strings.Split(wbsID, ".")
	key := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		key[i] = n
	}
	return key
}

// CompareWBSIDs orders dotted WBS identifiers by numeric component value, so
// "1.2" < "1.10" < "1.10.1". A key that is a prefix of another sorts first.
// Returns -1, 0, or 1.
func CompareWBSIDs(a, b string) int {
	ka, kb := OrdinalKey(a), OrdinalKey(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if ka[i] != kb[i] {
			if ka[i] < kb[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ka) < len(kb):
		return -1
	case len(ka) > len(kb):
		return 1
	default:
		return 0
	}
}
