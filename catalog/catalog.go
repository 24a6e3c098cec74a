// Package catalog lists the prefix-sum problems and the self-test cases
// that exercise them.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
)

// Problem IDs.
const (
	SubarraySumEqualsK       = "subarray-sum-equals-k"
	ProductOfArrayExceptSelf = "product-of-array-except-self"
)

// ErrUnknownProblem is returned when a problem ID or number is not in the catalog.
var ErrUnknownProblem = errors.New("unknown problem")

// Problem is one LeetCode problem with a solution in this module.
type Problem struct {
	ID          string
	Number      int
	Title       string
	Description string
	URL         string
	Topic       string
}

// Topic groups problems solved with the same technique.
type Topic struct {
	ID          string
	Name        string
	Description string
	KeyIdeas    []string
	Complexity  string
	Problems    []Problem
}

// Catalog is an ordered list of topics.
type Catalog struct {
	Topics []Topic
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Topics: []Topic{
			{
				ID:          "prefix-sum",
				Name:        "Prefix Sum",
				Description: "Preprocess an array so subarray queries become constant time lookups",
				KeyIdeas: []string{
					"Preprocess array to compute subarray results efficiently",
					"O(n) complexity for O(1) range sum queries",
				},
				Complexity: "Time O(n), single pass; space O(n) for prefix sums and counter",
				Problems: []Problem{
					{
						ID:          SubarraySumEqualsK,
						Number:      560,
						Title:       "Subarray Sum Equals K",
						Description: "Count subarrays with sum equal to k",
						URL:         "https://leetcode.com/problems/subarray-sum-equals-k/",
						Topic:       "prefix-sum",
					},
					{
						ID:          ProductOfArrayExceptSelf,
						Number:      238,
						Title:       "Product of Array Except Self",
						Description: "Calculate product of array except self",
						URL:         "https://leetcode.com/problems/product-of-array-except-self/",
						Topic:       "prefix-sum",
					},
				},
			},
		},
	}
}

// Problems returns every problem in topic order.
func (c *Catalog) Problems() []Problem {
	var out []Problem
	for _, t := range c.Topics {
		out = append(out, t.Problems...)
	}
	return out
}

// Lookup finds a problem by ID or by LeetCode number.
func (c *Catalog) Lookup(key string) (Problem, error) {
	num, numErr := strconv.Atoi(key)
	for _, p := range c.Problems() {
		if p.ID == key || (numErr == nil && p.Number == num) {
			return p, nil
		}
	}
	return Problem{}, fmt.Errorf("%w: %q", ErrUnknownProblem, key)
}
