package selftest

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ReportFileName is the last-run report inside the state directory
const ReportFileName = "report.json"

// WriteReport writes the report to <state-dir>/report.json
func WriteReport(stateDir string, report Report) error {
	path := filepath.Join(stateDir, ReportFileName)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadReport reads the last report from <state-dir>/report.json
// Returns an empty report if the file doesn't exist or is invalid
func ReadReport(stateDir string) Report {
	path := filepath.Join(stateDir, ReportFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}
	}

	return r
}
