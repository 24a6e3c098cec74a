package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/YoungY620/prefixsum/internal"
	"github.com/YoungY620/prefixsum/selftest"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch mode - re-runs the self-test whenever case files change",
	Long:  `Runs the self-test once, then watches the cases directory and runs it again after every change.`,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&casesFlag, "cases", "", "directory with extra YAML case files")
	watchCmd.Flags().StringVar(&problemFlag, "problem", "", "only run cases for this problem (id or number)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	workDir, err := resolveWorkDir()
	if err != nil {
		return err
	}

	cfg, err := loadConfigAndSetup(workDir)
	if err != nil {
		return err
	}
	if cfg.CasesDir == "" {
		return errors.New("watch needs a cases directory: set --cases or cases_dir")
	}

	if err := initStateDir(cfg.StateDir); err != nil {
		return err
	}

	// Acquire single instance lock
	lock, err := selftest.TryLock(cfg.StateDir)
	if err != nil {
		return err
	}
	defer lock.Release()

	internal.InitHistoryLogger(cfg.StateDir, "watch")
	defer internal.CloseHistoryLogger()

	out := cmd.OutOrStdout()
	rerun := func(changed []string) {
		internal.LogInfo("Case files changed: %s", strings.Join(changed, ", "))
		if _, err := runSelfTest(out, cfg, false); err != nil {
			internal.LogError("Self-test failed: %v", err)
		}
	}

	watcher, err := selftest.NewWatcher(cfg.CasesDir, cfg.Watch.IgnorePatterns, cfg.Watch.DebounceMs, cfg.Watch.MaxWaitMs, rerun)
	if err != nil {
		return err
	}
	defer watcher.Close()

	if _, err := runSelfTest(out, cfg, true); err != nil {
		internal.LogError("Self-test failed: %v", err)
	}

	internal.LogInfo("Watching: %s", cfg.CasesDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	internal.LogInfo("Shutting down...")
	return nil
}
