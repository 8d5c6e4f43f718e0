package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cornerbrand/cornerbrand/batch"
	"github.com/cornerbrand/cornerbrand/config"
	"github.com/cornerbrand/cornerbrand/messages"
	"github.com/cornerbrand/cornerbrand/stamp"
	"github.com/cornerbrand/cornerbrand/tui"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// stampOptions carries the settings flags shared by the stamp and
// preview commands.
type stampOptions struct {
	Position    string
	SizePreset  string
	SizePercent float64
	Margin      float64
	Logo        string
	ConfigFile  string
}

var (
	stampOpts      stampOptions
	stampOutput    string
	stampOverrides []string
	stampRequestID string
	stampJSON      bool
	stampPlain     bool
)

var stampCmd = &cobra.Command{
	Use:   "stamp [flags] <path>...",
	Short: "Stamp the logo onto images and PDFs",
	Long: "Stamp the logo into one corner of every given file. Images receive a\n" +
		"single overlay, PDFs one per page. Failures never abort the batch:\n" +
		"each file reports its own outcome and a JSON report is written next\n" +
		"to the outputs.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveAppConfig(cmd, &stampOpts)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("output") {
			cfg.OutputDir = stampOutput
		}
		overrides, err := parseSizeOverrides(stampOverrides)
		if err != nil {
			return err
		}
		for path, percent := range overrides {
			if cfg.SizeOverrides == nil {
				cfg.SizeOverrides = make(map[string]float64)
			}
			cfg.SizeOverrides[path] = percent
		}

		logoPath, err := resolveLogoPath(cfg.Logo)
		if err != nil {
			return fmt.Errorf("%s: %w", messages.LogoResolveFailed(), err)
		}

		requestID := stampRequestID
		if requestID == "" {
			requestID = uuid.NewString()
		}

		registry := batch.NewRegistry()
		release := registry.Begin(requestID)
		defer release()
		stopSignals := cancelOnInterrupt(registry, requestID)
		defer stopSignals()

		interactive := !stampJSON && !stampPlain && isatty.IsTerminal(os.Stdout.Fd())

		logger := newLogger(cfg.Logging)
		if interactive {
			// bubbletea owns the terminal during interactive runs, so
			// batch logs have nowhere safe to go.
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		runner := batch.NewRunner(registry, logger)

		req := batch.Request{
			RequestID:     requestID,
			Paths:         args,
			Settings:      cfg.Stamp.Settings(),
			LogoPath:      logoPath,
			OutputDir:     cfg.OutputDir,
			SizeOverrides: cfg.SizeOverrides,
		}

		var results []stamp.FileResult
		switch {
		case interactive:
			results = runWithTUI(runner, req, func() { registry.Cancel(requestID) })
		case stampJSON:
			results = runGuarded(runner, req, nil)
		default:
			results = runGuarded(runner, req, plainProgress)
		}

		if stampJSON {
			if err := writeResultsJSON(os.Stdout, requestID, results); err != nil {
				return err
			}
		} else {
			printSummary(results)
		}

		if failedCount(results) > 0 {
			osExit(1)
		}
		return nil
	},
}

func init() {
	registerStampFlags(stampCmd, &stampOpts)
	stampCmd.Flags().StringVarP(&stampOutput, "output", "o", "", "base directory collecting every output and the report")
	stampCmd.Flags().StringArrayVar(&stampOverrides, "size-override", nil, "per-file size as path=percent (repeatable)")
	stampCmd.Flags().StringVar(&stampRequestID, "request-id", "", "cancellation key for this run (default: random UUID)")
	stampCmd.Flags().BoolVar(&stampJSON, "json", false, "print one JSON document with all results")
	stampCmd.Flags().BoolVar(&stampPlain, "plain", false, "line-per-file progress instead of the interactive view")

	rootCmd.AddCommand(stampCmd)
}

// registerStampFlags registers the settings flags shared by stamp and
// preview on cmd, bound to opts.
func registerStampFlags(cmd *cobra.Command, opts *stampOptions) {
	cmd.Flags().StringVar(&opts.Position, "position", config.DefaultPosition, "corner label: 좌상단, 우상단, 좌하단 or 우하단")
	cmd.Flags().StringVar(&opts.SizePreset, "size-preset", stamp.DefaultSizePreset, "logo size preset: 작음, 보통 or 큼")
	cmd.Flags().Float64Var(&opts.SizePercent, "size-percent", 0, "explicit logo size as percent of the shorter side; wins over the preset")
	cmd.Flags().Float64Var(&opts.Margin, "margin", 2, "corner margin as percent of the shorter side")
	cmd.Flags().StringVarP(&opts.Logo, "logo", "l", "", "logo image path (default: logo.png or logo.webp in the working directory)")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML config file")
}

// resolveAppConfig builds the effective configuration: the config file
// when given, otherwise defaults, with explicitly set flags layered on
// top. Without a file the flag defaults are authoritative.
func resolveAppConfig(cmd *cobra.Command, opts *stampOptions) (*config.AppConfig, error) {
	var cfg *config.AppConfig
	var err error
	if opts.ConfigFile != "" {
		cfg, err = config.LoadConfig(opts.ConfigFile)
	} else {
		cfg, err = config.ParseConfig(nil)
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	use := func(name string) bool { return opts.ConfigFile == "" || flags.Changed(name) }
	if use("position") {
		cfg.Stamp.Position = opts.Position
	}
	if use("size-preset") {
		cfg.Stamp.SizePreset = opts.SizePreset
	}
	if use("margin") {
		cfg.Stamp.MarginPercent = opts.Margin
	}
	if flags.Changed("size-percent") {
		percent := opts.SizePercent
		cfg.Stamp.SizePercent = &percent
	}
	if flags.Changed("logo") {
		cfg.Logo = opts.Logo
	}
	return cfg, nil
}

// parseSizeOverrides parses repeated path=percent flag values.
func parseSizeOverrides(entries []string) (map[string]float64, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	overrides := make(map[string]float64, len(entries))
	for _, entry := range entries {
		path, value, found := strings.Cut(entry, "=")
		if !found || path == "" {
			return nil, fmt.Errorf("invalid size override %q: expected path=percent", entry)
		}
		percent, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size override %q: %w", entry, err)
		}
		overrides[path] = percent
	}
	return overrides, nil
}

// resolveLogoPath picks the logo file. An explicit path must be a
// regular file; with none, logo.png then logo.webp are probed in the
// working directory.
func resolveLogoPath(explicit string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil || !info.Mode().IsRegular() {
			return "", errors.New(messages.LogoPathNotFile())
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%s: %w", messages.WorkingDirFailed(), err)
	}
	for _, name := range []string{"logo.png", "logo.webp"} {
		candidate := filepath.Join(cwd, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", errors.New(messages.DefaultLogoNotFound())
}

// newLogger builds the slog logger described by the logging section.
func newLogger(cfg *config.LoggingConfig) *slog.Logger {
	out := os.Stderr
	if cfg.Output == "stdout" {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// cancelOnInterrupt maps SIGINT to a cooperative cancel of the given
// request. The returned stop function releases the signal handler.
func cancelOnInterrupt(registry *batch.Registry, requestID string) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		for range sigCh {
			registry.Cancel(requestID)
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}

// runGuarded runs the batch and converts a panic into a batch-wide
// failure, so a crashed run still yields one result per path.
func runGuarded(runner *batch.Runner, req batch.Request, onProgress func(batch.Progress)) (results []stamp.FileResult) {
	defer func() {
		if cause := recover(); cause != nil {
			message := fmt.Sprintf("%s: %v", messages.BatchAborted(), cause)
			results = results[:0]
			for _, path := range req.Paths {
				results = append(results, stamp.FileResult{InputPath: path, Error: message})
			}
		}
	}()
	return runner.Run(req, onProgress)
}

// runWithTUI drives the batch from a worker goroutine while bubbletea
// owns the terminal. Progress sends never block, so a torn-down UI
// cannot stall stamping.
func runWithTUI(runner *batch.Runner, req batch.Request, cancel func()) []stamp.FileResult {
	updates := make(chan batch.Progress, 64)
	done := make(chan []stamp.FileResult, 1)

	go func() {
		results := runGuarded(runner, req, func(p batch.Progress) {
			select {
			case updates <- p:
			default:
			}
		})
		close(updates)
		done <- results
	}()

	program := tea.NewProgram(tui.NewModel(updates, cancel))
	_, _ = program.Run()
	return <-done
}

func plainProgress(p batch.Progress) {
	status := "ok"
	if !p.OK {
		status = "fail"
	}
	fmt.Fprintf(os.Stdout, "[%d/%d] %s %s\n", p.Done, p.Total, status, p.InputPath)
}

// RunOutput is the JSON document printed by --json runs.
type RunOutput struct {
	RequestID string             `json:"requestId"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Results   []stamp.FileResult `json:"results"`
}

func writeResultsJSON(w io.Writer, requestID string, results []stamp.FileResult) error {
	out := RunOutput{RequestID: requestID, Results: results}
	for _, result := range results {
		if result.OK {
			out.Succeeded++
		} else {
			out.Failed++
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printSummary(results []stamp.FileResult) {
	failed := failedCount(results)
	rows := []tui.SummaryRow{
		{Label: "Files processed", Value: strconv.Itoa(len(results))},
		{Label: "Succeeded", Value: strconv.Itoa(len(results) - failed)},
		{Label: "Failed", Value: strconv.Itoa(failed)},
	}
	fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))
	for _, result := range results {
		if !result.OK {
			fmt.Fprintf(os.Stdout, "%s: %s\n", result.InputPath, result.Error)
		}
	}
}

func failedCount(results []stamp.FileResult) int {
	failed := 0
	for _, result := range results {
		if !result.OK {
			failed++
		}
	}
	return failed
}
