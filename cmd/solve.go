package cmd

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/YoungY620/prefixsum/prefixsum"
	"github.com/spf13/cobra"
)

var kFlag int

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve mode - runs one solver on integers given on the command line",
	Long: `Runs a solver on the given integers. Integers may be separate arguments,
comma separated, or a bracketed list. Put "--" before a list whose first
integer is negative.

  prefixsum solve product 1 2 3 4
  prefixsum solve product "[-1,1,0,-3,3]"
  prefixsum solve subarray --k 7 -- 3 4 7 2 -3 1 4 2`,
}

var solveProductCmd = &cobra.Command{
	Use:     "product [integers...]",
	Aliases: []string{"238"},
	Short:   "Product of array except self (arbitrary precision)",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSolveProduct,
}

var solveSubarrayCmd = &cobra.Command{
	Use:     "subarray [integers...]",
	Aliases: []string{"560"},
	Short:   "Count subarrays summing to k",
	RunE:    runSolveSubarray,
}

func init() {
	solveSubarrayCmd.Flags().IntVar(&kFlag, "k", 0, "target sum")
	solveCmd.AddCommand(solveProductCmd, solveSubarrayCmd)
	rootCmd.AddCommand(solveCmd)
}

func runSolveProduct(cmd *cobra.Command, args []string) error {
	tokens := splitIntegers(args)
	if len(tokens) == 0 {
		return fmt.Errorf("product needs at least one integer")
	}

	nums := make([]*big.Int, len(tokens))
	for i, tok := range tokens {
		n, ok := new(big.Int).SetString(tok, 10)
		if !ok {
			return fmt.Errorf("invalid integer %q", tok)
		}
		nums[i] = n
	}

	result := prefixsum.ProductExceptSelfBig(nums)
	parts := make([]string, len(result))
	for i, n := range result {
		parts[i] = n.String()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n", strings.Join(parts, ","))
	return nil
}

func runSolveSubarray(cmd *cobra.Command, args []string) error {
	tokens := splitIntegers(args)
	nums := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", tok, err)
		}
		nums[i] = n
	}

	fmt.Fprintln(cmd.OutOrStdout(), prefixsum.SubarraySumCount(nums, kFlag))
	return nil
}

// splitIntegers flattens "1 2", "1,2" and "[1,2]" style arguments into tokens
func splitIntegers(args []string) []string {
	var tokens []string
	for _, arg := range args {
		arg = strings.Trim(arg, "[] ")
		for _, tok := range strings.Split(arg, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}
