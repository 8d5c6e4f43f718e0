// Package batch runs multi-file stamping jobs sequentially with
// cooperative cancellation, per-file progress and JSON run reports.
//
// A batch never aborts on individual file failures: every input yields a
// FileResult and the reports are written even when the run is cancelled
// midway.
package batch

import (
	"log/slog"
	"path/filepath"

	"github.com/cornerbrand/cornerbrand/messages"
	"github.com/cornerbrand/cornerbrand/naming"
	"github.com/cornerbrand/cornerbrand/stamp"
)

// Request describes one batch run.
type Request struct {
	// RequestID keys cancellation in the registry. Callers register it
	// with Registry.Begin before running.
	RequestID string
	Paths     []string
	Settings  stamp.SettingsInput
	LogoPath  string
	// OutputDir, when set, collects every output and the single report
	// beneath one base directory instead of next to each input.
	OutputDir string
	// SizeOverrides maps input paths to explicit size percentages that
	// replace the shared size for just that file.
	SizeOverrides map[string]float64
}

// Progress is emitted after each attempted file. Cancelled leftovers
// emit nothing.
type Progress struct {
	Total     int    `json:"total"`
	Done      int    `json:"done"`
	InputPath string `json:"inputPath"`
	OK        bool   `json:"ok"`
}

// Runner executes batch requests against a shared cancellation registry.
type Runner struct {
	registry *Registry
	logger   *slog.Logger
}

// NewRunner returns a Runner polling the given registry.
func NewRunner(registry *Registry, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{registry: registry, logger: logger.With("component", "batch")}
}

// Run stamps every requested path in order and returns one result per
// path. The logo is loaded once up front; when that fails, every path
// fails with the load error. Settings are validated per file so a single
// run can mix raster and PDF inputs with their different size limits.
// Reports are written before returning, regardless of outcome.
func (r *Runner) Run(req Request, onProgress func(Progress)) []stamp.FileResult {
	settings := req.Settings.Normalized()
	total := len(req.Paths)
	results := make([]stamp.FileResult, 0, total)

	r.logger.Info("batch started", "request", req.RequestID, "files", total)

	logo, err := stamp.LoadLogo(req.LogoPath)
	if err != nil {
		r.logger.Warn("logo load failed", "path", req.LogoPath, "error", err)
		for _, path := range req.Paths {
			results = append(results, stamp.FileResult{InputPath: path, Error: err.Error()})
		}
		r.writeReports(results, settings, req.OutputDir)
		return results
	}
	flat := logo.Flatten()

	for idx, path := range req.Paths {
		if r.registry != nil && r.registry.Cancelled(req.RequestID) {
			r.logger.Info("batch cancelled", "request", req.RequestID, "done", idx, "total", total)
			for _, rest := range req.Paths[idx:] {
				results = append(results, stamp.FileResult{InputPath: rest, Error: messages.Cancelled()})
			}
			break
		}

		effective := settings
		if percent, ok := req.SizeOverrides[path]; ok {
			effective = settings.WithSizePercent(clampOverride(percent))
		}

		result := r.stampOne(path, effective, logo, flat, req.OutputDir)
		results = append(results, result)

		if result.OK {
			r.logger.Debug("stamped", "path", path, "output", result.OutputPath)
		} else {
			r.logger.Warn("stamp failed", "path", path, "error", result.Error)
		}
		if onProgress != nil {
			onProgress(Progress{Total: total, Done: idx + 1, InputPath: path, OK: result.OK})
		}
	}

	r.writeReports(results, settings, req.OutputDir)

	ok := 0
	for _, result := range results {
		if result.OK {
			ok++
		}
	}
	r.logger.Info("batch finished", "request", req.RequestID, "ok", ok, "failed", len(results)-ok)
	return results
}

func (r *Runner) stampOne(path string, input stamp.SettingsInput, logo *stamp.Logo, flat *stamp.FlatLogo, outputDir string) stamp.FileResult {
	if _, ok := naming.DetectImage(path); ok {
		settings, err := input.ResolveImage()
		if err != nil {
			return stamp.FileResult{InputPath: path, Error: err.Error()}
		}
		outputPath, err := stamp.StampImage(path, logo, settings, outputDir)
		return toResult(path, outputPath, err)
	}

	if naming.IsPDF(path) {
		settings, err := input.ResolvePDF()
		if err != nil {
			return stamp.FileResult{InputPath: path, Error: err.Error()}
		}
		outputPath, err := stamp.StampPDF(path, flat, settings, outputDir)
		return toResult(path, outputPath, err)
	}

	return stamp.FileResult{InputPath: path, Error: messages.UnsupportedFileType()}
}

func toResult(path string, outputPath string, err error) stamp.FileResult {
	if err != nil {
		return stamp.FileResult{InputPath: path, Error: err.Error()}
	}
	return stamp.FileResult{InputPath: path, OK: true, OutputPath: outputPath}
}

// clampOverride bounds a per-file percentage to the raster limits; the
// PDF path narrows it further during its own validation. Non-finite
// values pass through and fall back to the preset there.
func clampOverride(percent float64) float64 {
	if percent < stamp.MinSizePercent {
		return stamp.MinSizePercent
	}
	if percent > stamp.MaxImageSizePercent {
		return stamp.MaxImageSizePercent
	}
	return percent
}

func parentOf(path string) (string, bool) {
	dir := filepath.Dir(path)
	if dir == path {
		return "", false
	}
	return dir, true
}
