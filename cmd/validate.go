package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/YoungY620/prefixsum/catalog"
	"github.com/spf13/cobra"
)

var errInvalidFiles = errors.New("some case files are invalid")

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>...",
	Short: "Checks YAML case files against the case schema",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		dirFiles, err := catalog.CaseFiles(arg)
		if err != nil {
			return err
		}
		files = append(files, dirFiles...)
	}

	invalid := 0
	for _, f := range files {
		cases, err := catalog.LoadCaseFile(f)
		if err != nil {
			invalid++
			fmt.Fprintf(out, "FAIL %s\n%v\n", f, err)
			continue
		}
		fmt.Fprintf(out, "OK   %s (%d cases)\n", f, len(cases))
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidFiles, invalid, len(files))
	}
	return nil
}
