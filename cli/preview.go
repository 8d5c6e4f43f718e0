package cli

import (
	"fmt"
	"os"

	"github.com/cornerbrand/cornerbrand/batch"
	"github.com/cornerbrand/cornerbrand/messages"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	previewOpts      stampOptions
	previewRequestID string
)

var previewCmd = &cobra.Command{
	Use:   "preview [flags] <path>...",
	Short: "Stamp into a scratch directory without touching the originals' folders",
	Long: "Stamp the given files into a per-request scratch directory under the\n" +
		"system temp dir. A previous preview for the same request id is wiped\n" +
		"first, so repeated previews never accumulate stale outputs.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveAppConfig(cmd, &previewOpts)
		if err != nil {
			return err
		}

		logoPath, err := resolveLogoPath(cfg.Logo)
		if err != nil {
			return fmt.Errorf("%s: %w", messages.LogoResolveFailed(), err)
		}

		requestID := previewRequestID
		if requestID == "" {
			requestID = uuid.NewString()
		}

		dir, err := batch.PreviewDir(requestID)
		if err != nil {
			return fmt.Errorf("%s: %w", messages.PreviewPrepareFailed(), err)
		}

		registry := batch.NewRegistry()
		release := registry.Begin(requestID)
		defer release()
		stopSignals := cancelOnInterrupt(registry, requestID)
		defer stopSignals()

		runner := batch.NewRunner(registry, newLogger(cfg.Logging))
		results := runGuarded(runner, batch.Request{
			RequestID: requestID,
			Paths:     args,
			Settings:  cfg.Stamp.Settings(),
			LogoPath:  logoPath,
			OutputDir: dir,
		}, plainProgress)

		printSummary(results)
		fmt.Fprintf(os.Stdout, "Preview written to: %s\n", dir)

		if failedCount(results) > 0 {
			osExit(1)
		}
		return nil
	},
}

func init() {
	registerStampFlags(previewCmd, &previewOpts)
	previewCmd.Flags().StringVar(&previewRequestID, "request-id", "", "cancellation key for this run (default: random UUID)")

	rootCmd.AddCommand(previewCmd)
}
