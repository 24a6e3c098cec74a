package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/YoungY620/prefixsum/catalog"
	"github.com/YoungY620/prefixsum/config"
	"github.com/YoungY620/prefixsum/internal"
)

// loadConfigAndSetup loads config, applies env and flag overrides and sets up logging
func loadConfigAndSetup(workDir string) (*config.Config, error) {
	path := configFlag
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(workDir); err != nil {
		return nil, err
	}

	// Flag takes precedence over config and environment
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if casesFlag != "" {
		cfg.CasesDir = casesFlag
	}
	if strictFlag {
		cfg.Strict = true
	}

	if err := cfg.Normalize(workDir); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	internal.SetLogLevel(cfg.LogLevel)
	internal.LogDebug("Config loaded from %s:\n%s", cfg.Source(), cfg.PrettyYAML())

	return cfg, nil
}

// initStateDir creates the state directory and its .gitignore
func initStateDir(stateDir string) error {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return err
	}

	gitignoreFile := filepath.Join(stateDir, ".gitignore")
	if _, err := os.Stat(gitignoreFile); os.IsNotExist(err) {
		gitignoreContent := `# Runtime files - do not commit
watch.lock
report.json
.history
`
		internal.LogDebug("Creating %s", gitignoreFile)
		if err := os.WriteFile(gitignoreFile, []byte(gitignoreContent), 0644); err != nil {
			return err
		}
	}
	return nil
}

// loadCases returns the builtin cases followed by the cases in casesDir,
// keeping only those for problem when it is set
func loadCases(casesDir, problem string) ([]catalog.Case, error) {
	cases := catalog.BuiltinCases()
	if casesDir != "" {
		extra, err := catalog.LoadCaseDir(casesDir)
		if err != nil {
			return nil, err
		}
		internal.LogDebug("Loaded %d cases from %s", len(extra), casesDir)
		cases = append(cases, extra...)
	}

	if problem == "" {
		return cases, nil
	}
	p, err := catalog.Default().Lookup(problem)
	if err != nil {
		return nil, err
	}
	filtered := cases[:0]
	for _, c := range cases {
		if c.Problem == p.ID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func caseSource(casesDir string) string {
	if casesDir == "" {
		return "builtin cases"
	}
	return fmt.Sprintf("builtin cases + %s", casesDir)
}
