package batch

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/cornerbrand/cornerbrand/naming"
	"github.com/cornerbrand/cornerbrand/stamp"
)

// Report is the JSON run summary written next to the outputs. Settings
// echoes the shared input after normalization, without per-file
// overrides.
type Report struct {
	Timestamp int64               `json:"timestamp"`
	Settings  stamp.SettingsInput `json:"settings"`
	Results   []stamp.FileResult  `json:"results"`
}

// writeReports persists the run summary. With an output directory
// override a single report covers the whole run; otherwise results are
// grouped by their input's parent directory and each group gets its own
// report beside its inputs. Report failures are logged, never returned,
// so a read-only report location cannot fail a finished batch.
func (r *Runner) writeReports(results []stamp.FileResult, settings stamp.SettingsInput, outputDir string) {
	if outputDir != "" {
		r.writeReport(outputDir, outputDir, settings, results)
		return
	}

	groups := make(map[string][]stamp.FileResult)
	for _, result := range results {
		parent, ok := parentOf(result.InputPath)
		if !ok {
			r.logger.Warn("report skipped, input has no parent directory", "path", result.InputPath)
			continue
		}
		groups[parent] = append(groups[parent], result)
	}

	dirs := make([]string, 0, len(groups))
	for dir := range groups {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		r.writeReport(dir, "", settings, groups[dir])
	}
}

func (r *Runner) writeReport(inputDir, baseDir string, settings stamp.SettingsInput, results []stamp.FileResult) {
	path, err := naming.ReportPath(inputDir, baseDir)
	if err != nil {
		r.logger.Warn("report path allocation failed", "dir", inputDir, "error", err)
		return
	}

	report := Report{
		Timestamp: time.Now().Unix(),
		Settings:  settings,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		r.logger.Warn("report encoding failed", "error", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		r.logger.Warn("report write failed", "path", path, "error", err)
		return
	}
	r.logger.Debug("report written", "path", path)
}
