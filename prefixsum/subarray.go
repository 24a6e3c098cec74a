package prefixsum

import "math/big"

// SubarraySumCount returns how many contiguous, non-empty subarrays of nums
// sum to exactly k.
//
// It scans once, keeping a running prefix sum and how often each prefix sum
// has been seen. A subarray ending at the current index sums to k exactly
// when an earlier prefix equals prefix-k. The lookup must happen before the
// current prefix is recorded, otherwise an empty subarray would be counted
// when k == 0.
//
// Sums are exact: if a prefix sum overflows int the scan restarts over
// math/big.
func SubarraySumCount(nums []int, k int) int {
	counter := map[int]int{0: 1}
	prefix := 0
	result := 0

	for _, num := range nums {
		var ok bool
		if prefix, ok = addExact(prefix, num); !ok {
			return subarraySumCountWide(nums, k)
		}
		// a target outside the int range cannot match a recorded prefix
		if target, ok := subExact(prefix, k); ok {
			result += counter[target]
		}
		counter[prefix]++
	}
	return result
}

func subarraySumCountWide(nums []int, k int) int {
	counter := map[string]int{"0": 1}
	prefix := new(big.Int)
	target := new(big.Int)
	bigK := big.NewInt(int64(k))
	result := 0

	for _, num := range nums {
		prefix.Add(prefix, big.NewInt(int64(num)))
		result += counter[target.Sub(prefix, bigK).String()]
		counter[prefix.String()]++
	}
	return result
}

// addExact returns a+b and whether it was computed without overflow.
func addExact(a, b int) (int, bool) {
	c := a + b
	return c, (b >= 0) == (c >= a)
}

// subExact returns a-b and whether it was computed without overflow.
func subExact(a, b int) (int, bool) {
	c := a - b
	return c, (b >= 0) == (c <= a)
}
