package buf

import (
	"fmt"
	"math"
	"math/bits"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative sizes, returning ok = false when the
// result would overflow int. Element counts and element sizes are never negative,
// so mixed-sign products are rejected.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// NearestPow returns the smallest power of two that is >= n.
// Values that cannot be rounded up without overflowing return n unchanged,
// matching what an allocator would be asked for anyway.
func NearestPow(n int) int {
	if n <= 1 {
		return 1
	}
	shift := bits.Len(uint(n - 1))
	if shift >= bits.UintSize-1 {
		return n
	}
	return 1 << shift
}

// MaxElements is the largest element count a block may hold: the byte size must
// fit into half the address space, and a terminated block keeps one slot in reserve.
func MaxElements(elemSize int, terminated bool) int {
	if elemSize <= 0 {
		return 0
	}
	max := math.MaxInt / 2 / elemSize
	if terminated {
		max--
	}
	return max
}

// CheckRange validates that [index, index+count) lies within [0, length).
//
// This is the recommended way to validate removal ranges before touching data:
//
//	if err := buf.CheckRange(n, idx, count); err != nil {
//	    panic(fmt.Sprintf("remove range: %v", err))
//	}
func CheckRange(length, index, count int) error {
	if index < 0 {
		return fmt.Errorf("negative index: %d", index)
	}
	if count < 0 {
		return fmt.Errorf("negative count: %d", count)
	}
	if index > length {
		return fmt.Errorf("bounds: index=%d > len=%d", index, length)
	}
	end, ok := AddOverflowSafe(index, count)
	if !ok {
		return fmt.Errorf("overflow: index=%d + count=%d", index, count)
	}
	if end > length {
		return fmt.Errorf("bounds: end=%d > len=%d", end, length)
	}
	return nil
}
