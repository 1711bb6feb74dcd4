package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdinalKey(t *testing.T) {
	assert.Equal(t, []int{1, 2, 10}, OrdinalKey("1.2.10"))
	assert.Equal(t, []int{0}, OrdinalKey(""))
	assert.Equal(t, []int{1, 0, 3}, OrdinalKey("1.x.3"), "non-numeric component sorts as 0")
}

func TestCompareWBSIDs_NumericNotLexical(t *testing.T) {
	assert.Equal(t, -1, CompareWBSIDs("1.2", "1.10"))
	assert.Equal(t, -1, CompareWBSIDs("1.10", "2.1"))
	assert.Equal(t, 1, CompareWBSIDs("1.10", "1.2"))
}

func TestCompareWBSIDs_PrefixSortsFirst(t *testing.T) {
	assert.Equal(t, -1, CompareWBSIDs("1", "1.1"))
	assert.Equal(t, -1, CompareWBSIDs("1.10", "1.10.1"))
	assert.Equal(t, 1, CompareWBSIDs("1.10.1", "1.10"))
}

func TestCompareWBSIDs_EmptySortsSmallest(t *testing.T) {
	assert.Equal(t, -1, CompareWBSIDs("", "1"))
	assert.Equal(t, 0, CompareWBSIDs("", ""))
}

func TestCompareWBSIDs_Equal(t *testing.T) {
	assert.Equal(t, 0, CompareWBSIDs("2.3.4", "2.3.4"))
}
