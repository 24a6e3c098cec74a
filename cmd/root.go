package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	// Version is set by main.go from build flags
	Version = "dev"

	// Global flags
	pathFlag   string
	logLevel   string
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "prefixsum",
	Short: "Prefix-sum problem solutions with a self-test harness",
	Long: `prefixsum solves the prefix-sum family of array problems and checks the
solutions against reference cases.

Commands:
  run       Self-test mode - runs every case and prints expected vs actual output (default)
  solve     Solve mode     - runs one solver on integers given on the command line
  list      Lists the problems in the catalog
  validate  Checks YAML case files against the case schema
  watch     Watch mode     - re-runs the self-test whenever case files change`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&pathFlag, "path", "p", "", "work directory (default: current dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: error/notice/info/debug")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "prefixsum.yaml", "config file path, relative to the work directory")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// resolveWorkDir resolves the working directory from the path flag
func resolveWorkDir() (string, error) {
	workDir := pathFlag
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	return filepath.Abs(workDir)
}
