// Package selftest runs catalog cases against the prefixsum solvers and
// prints the expected and actual output of each one.
package selftest

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/YoungY620/prefixsum/catalog"
	"github.com/YoungY620/prefixsum/prefixsum"
)

// ErrOutOfRange is returned by Solve when an exact result does not fit in an
// int and so cannot be compared with a case expectation.
var ErrOutOfRange = errors.New("result out of int range")

// Solve runs the solver for c.Problem on the case input. Products are
// computed over math/big so a result is never silently truncated.
func Solve(c catalog.Case) (catalog.Expected, error) {
	switch c.Problem {
	case catalog.SubarraySumEqualsK:
		return catalog.Count(prefixsum.SubarraySumCount(c.Nums, c.K)), nil
	case catalog.ProductOfArrayExceptSelf:
		return solveProduct(c.Nums)
	default:
		return catalog.Expected{}, fmt.Errorf("%w: %q", catalog.ErrUnknownProblem, c.Problem)
	}
}

func solveProduct(nums []int) (catalog.Expected, error) {
	wide := make([]*big.Int, len(nums))
	for i, num := range nums {
		wide[i] = big.NewInt(int64(num))
	}

	exact := prefixsum.ProductExceptSelfBig(wide)
	list := make([]int, len(exact))
	for i, val := range exact {
		if !val.IsInt64() || int64(int(val.Int64())) != val.Int64() {
			return catalog.Expected{}, fmt.Errorf("%w: %s", ErrOutOfRange, formatBig(exact))
		}
		list[i] = int(val.Int64())
	}
	return catalog.List(list...), nil
}

func formatBig(nums []*big.Int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}
