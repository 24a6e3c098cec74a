package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Case is one self-test input with its expected output.
type Case struct {
	Name    string   `yaml:"name,omitempty"`
	Problem string   `yaml:"problem"`
	Nums    []int    `yaml:"nums"`
	K       int      `yaml:"k"`
	Want    Expected `yaml:"want"`
}

// MarshalYAML writes k for subarray cases, k: 0 included, and leaves it out
// for the other problems.
func (c Case) MarshalYAML() (any, error) {
	type caseDoc struct {
		Name    string   `yaml:"name,omitempty"`
		Problem string   `yaml:"problem"`
		Nums    []int    `yaml:"nums"`
		K       *int     `yaml:"k,omitempty"`
		Want    Expected `yaml:"want"`
	}
	doc := caseDoc{Name: c.Name, Problem: c.Problem, Nums: c.Nums, Want: c.Want}
	if c.Problem == SubarraySumEqualsK {
		k := c.K
		doc.K = &k
	}
	if doc.Nums == nil {
		doc.Nums = []int{}
	}
	return doc, nil
}

// Expected holds either a count (subarray sum) or a list (product).
type Expected struct {
	Count  int
	List   []int
	IsList bool
}

// Count builds a scalar expectation.
func Count(n int) Expected {
	return Expected{Count: n}
}

// List builds a list expectation.
func List(nums ...int) Expected {
	if nums == nil {
		nums = []int{}
	}
	return Expected{List: nums, IsList: true}
}

// Equal reports whether both expectations hold the same value.
func (e Expected) Equal(other Expected) bool {
	if e.IsList != other.IsList {
		return false
	}
	if !e.IsList {
		return e.Count == other.Count
	}
	if len(e.List) != len(other.List) {
		return false
	}
	for i := range e.List {
		if e.List[i] != other.List[i] {
			return false
		}
	}
	return true
}

func (e Expected) String() string {
	if e.IsList {
		return FormatInts(e.List)
	}
	return strconv.Itoa(e.Count)
}

// UnmarshalYAML accepts either a scalar integer or a sequence of integers.
func (e *Expected) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		*e = Count(n)
	case yaml.SequenceNode:
		var nums []int
		if err := node.Decode(&nums); err != nil {
			return err
		}
		*e = List(nums...)
	default:
		return fmt.Errorf("line %d: want must be an integer or a list of integers", node.Line)
	}
	return nil
}

// MarshalYAML writes the expectation back in the same shape it was read.
func (e Expected) MarshalYAML() (any, error) {
	if e.IsList {
		return e.List, nil
	}
	return e.Count, nil
}

// Input renders the case input the way the self-test prints it.
func (c Case) Input() string {
	if c.Problem == SubarraySumEqualsK {
		return fmt.Sprintf("nums = %s, k = %d", FormatInts(c.Nums), c.K)
	}
	return "nums = " + FormatInts(c.Nums)
}

// FormatInts renders nums as [1,2,3].
func FormatInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// BuiltinCases returns the reference cases for every problem in the catalog.
func BuiltinCases() []Case {
	cases := []Case{
		{Problem: SubarraySumEqualsK, Nums: []int{1, 1, 1}, K: 2, Want: Count(2)},
		{Problem: SubarraySumEqualsK, Nums: []int{1, 2, 3}, K: 3, Want: Count(2)},
		{Problem: SubarraySumEqualsK, Nums: []int{1, -1, 0}, K: 0, Want: Count(3)},
		{Problem: SubarraySumEqualsK, Nums: []int{3, 4, 7, 2, -3, 1, 4, 2}, K: 7, Want: Count(4)},
		{Problem: SubarraySumEqualsK, Nums: []int{1}, K: 0, Want: Count(0)},
		{Problem: ProductOfArrayExceptSelf, Nums: []int{1, 2, 3, 4}, Want: List(24, 12, 8, 6)},
		{Problem: ProductOfArrayExceptSelf, Nums: []int{-1, 1, 0, -3, 3}, Want: List(0, 0, 9, 0, 0)},
		{Problem: ProductOfArrayExceptSelf, Nums: []int{0, 0}, Want: List(0, 0)},
		{Problem: ProductOfArrayExceptSelf, Nums: []int{5}, Want: List(1)},
	}
	return nameCases("builtin", cases)
}

// nameCases fills empty names with <prefix>/<problem>#<n>, n counted per problem.
func nameCases(prefix string, cases []Case) []Case {
	seen := make(map[string]int)
	for i := range cases {
		seen[cases[i].Problem]++
		if cases[i].Name == "" {
			cases[i].Name = fmt.Sprintf("%s/%s#%d", prefix, cases[i].Problem, seen[cases[i].Problem])
		}
	}
	return cases
}
