// Package prefixsum implements the prefix-sum family of array problems:
// product of array except self and subarray sum equals k.
package prefixsum

import (
	"math"
	"math/big"
)

// ProductExceptSelf returns a slice where result[i] is the product of every
// element of nums except nums[i].
//
// The total product is computed once and divided by nums[i]. A zero element
// cannot be divided out, so its position is filled by multiplying all other
// elements directly. With a single zero every other position ends up 0 and
// the zero position holds the product of the rest; with two or more zeros
// every position is 0. A single element yields [1].
//
// An empty nums yields an empty slice. When the total product overflows int
// the division is done over math/big, so result[i] is exact whenever it fits
// in an int. A result that does not fit is truncated to its low-order bits,
// the same value plain int multiplication would give. Use
// ProductExceptSelfBig for exact results at any magnitude.
func ProductExceptSelf(nums []int) []int {
	product := 1
	for _, num := range nums {
		var ok bool
		if product, ok = mulExact(product, num); !ok {
			return productExceptSelfWide(nums)
		}
	}

	result := make([]int, len(nums))
	for i, num := range nums {
		if num == 0 {
			result[i] = productWithout(nums, i)
			continue
		}
		result[i] = product / num
	}
	return result
}

// productWithout multiplies every element except the one at skip.
func productWithout(nums []int, skip int) int {
	val := 1
	for j, num := range nums {
		if j == skip {
			continue
		}
		val *= num
	}
	return val
}

// mulExact returns a*b and whether it was computed without overflow.
func mulExact(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) || c/b != a {
		return c, false
	}
	return c, true
}

// productExceptSelfWide solves nums over math/big and narrows each result
// back to an int.
func productExceptSelfWide(nums []int) []int {
	wide := make([]*big.Int, len(nums))
	for i, num := range nums {
		wide[i] = big.NewInt(int64(num))
	}

	result := make([]int, len(nums))
	for i, val := range ProductExceptSelfBig(wide) {
		result[i] = truncateInt(val)
	}
	return result
}

var lowBits = new(big.Int).SetUint64(math.MaxUint64)

// truncateInt keeps the low-order 64 bits of v in two's complement.
func truncateInt(v *big.Int) int {
	if v.IsInt64() {
		return int(v.Int64())
	}
	return int(int64(new(big.Int).And(v, lowBits).Uint64()))
}

// ProductExceptSelfBig is ProductExceptSelf over arbitrary precision integers.
// The input is not modified. Nil elements are treated as zero.
func ProductExceptSelfBig(nums []*big.Int) []*big.Int {
	product := big.NewInt(1)
	for _, num := range nums {
		product.Mul(product, orZero(num))
	}

	result := make([]*big.Int, len(nums))
	for i, num := range nums {
		num = orZero(num)
		if num.Sign() == 0 {
			val := big.NewInt(1)
			for j, other := range nums {
				if j != i {
					val.Mul(val, orZero(other))
				}
			}
			result[i] = val
			continue
		}
		// exact: num always divides the total product
		result[i] = new(big.Int).Quo(product, num)
	}
	return result
}

func orZero(n *big.Int) *big.Int {
	if n == nil {
		return new(big.Int)
	}
	return n
}
