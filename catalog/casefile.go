package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCaseFile marks a case file that failed schema or consistency checks.
var ErrInvalidCaseFile = errors.New("invalid case file")

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCaseFile validates and parses one YAML case file. Unnamed cases are
// named after the file.
func LoadCaseFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	return ParseCases(filepath.Base(path), data)
}

// ParseCases validates and parses a YAML case document.
func ParseCases(source string, data []byte) ([]Case, error) {
	if result := ValidateCaseDocument(data); !result.Valid {
		return nil, fmt.Errorf("%w %s:\n%s", ErrInvalidCaseFile, source, FormatValidationErrors(result))
	}

	var f caseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidCaseFile, source, err)
	}

	for i, c := range f.Cases {
		if c.Problem == ProductOfArrayExceptSelf && len(c.Want.List) != len(c.Nums) {
			return nil, fmt.Errorf("%w %s: case %d: want has %d elements, nums has %d",
				ErrInvalidCaseFile, source, i+1, len(c.Want.List), len(c.Nums))
		}
	}

	prefix := strings.TrimSuffix(source, filepath.Ext(source))
	return nameCases(prefix, f.Cases), nil
}

// CaseFiles lists the *.yaml and *.yml files directly inside dir, sorted.
func CaseFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read cases dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && IsCaseFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// IsCaseFile reports whether name has a case file extension (.yaml or .yml).
func IsCaseFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadCaseDir loads every case file in dir in name order.
func LoadCaseDir(dir string) ([]Case, error) {
	files, err := CaseFiles(dir)
	if err != nil {
		return nil, err
	}
	var cases []Case
	for _, f := range files {
		fileCases, err := LoadCaseFile(f)
		if err != nil {
			return nil, err
		}
		cases = append(cases, fileCases...)
	}
	return cases, nil
}
