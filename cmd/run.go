package cmd

import (
	"io"

	"github.com/YoungY620/prefixsum/config"
	"github.com/YoungY620/prefixsum/internal"
	"github.com/YoungY620/prefixsum/selftest"
	"github.com/spf13/cobra"
)

var (
	casesFlag   string
	strictFlag  bool
	problemFlag string
	noBanner    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Self-test mode - runs every case and prints expected vs actual output",
	Long: `Runs the builtin reference cases, plus any YAML case files from the cases
directory, and prints the input, expected output and actual output of each.

The exit code is 0 even when cases mismatch unless --strict (or strict: true
in the config) is set.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&casesFlag, "cases", "", "directory with extra YAML case files")
	runCmd.Flags().BoolVar(&strictFlag, "strict", false, "exit non-zero when any case mismatches")
	runCmd.Flags().StringVar(&problemFlag, "problem", "", "only run cases for this problem (id or number)")
	runCmd.Flags().BoolVar(&noBanner, "no-banner", false, "do not print the banner")
	rootCmd.AddCommand(runCmd)

	// Set run as the default command when no subcommand is provided
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runRun(cmd, args)
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	workDir, err := resolveWorkDir()
	if err != nil {
		return err
	}

	cfg, err := loadConfigAndSetup(workDir)
	if err != nil {
		return err
	}

	if err := initStateDir(cfg.StateDir); err != nil {
		return err
	}
	internal.InitHistoryLogger(cfg.StateDir, "run")
	defer internal.CloseHistoryLogger()

	report, err := runSelfTest(cmd.OutOrStdout(), cfg, !noBanner)
	if err != nil {
		return err
	}
	if cfg.Strict {
		return report.Err()
	}
	if report.Failed > 0 {
		internal.LogNotice("%d of %d cases mismatched", report.Failed, report.Total)
	}
	return nil
}

// runSelfTest loads the cases, runs them and persists the report
func runSelfTest(out io.Writer, cfg *config.Config, banner bool) (selftest.Report, error) {
	cases, err := loadCases(cfg.CasesDir, problemFlag)
	if err != nil {
		internal.History().LogError("Failed to load cases", err)
		return selftest.Report{}, err
	}

	if banner {
		selftest.PrintBanner(out, selftest.BannerOptions{
			Version:   Version,
			Source:    caseSource(cfg.CasesDir),
			CaseCount: len(cases),
		})
	}

	runner := selftest.NewRunner(out)
	runner.History = internal.History()
	report := runner.Run(cases)
	internal.LogInfo("Self-test finished: %d passed, %d failed in %s", report.Passed, report.Failed, report.Duration)

	if err := selftest.WriteReport(cfg.StateDir, report); err != nil {
		internal.LogError("Failed to write report: %v", err)
	}
	return report, nil
}
