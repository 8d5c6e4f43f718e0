// Command cornerbrand is a CLI tool for stamping a corner logo onto
// images and PDFs in batch.
//
// Usage:
//
//	cornerbrand <command> [flags] <args>
//
// Commands:
//
//	stamp    Stamp the logo onto images and PDFs
//	preview  Stamp into a scratch directory without touching the originals' folders
//	version  Show version information
//
// Examples:
//
//	# Stamp two files into the bottom-right corner
//	cornerbrand stamp photo.png report.pdf
//
//	# Large logo in the top-left corner, all outputs under one directory
//	cornerbrand stamp --position 좌상단 --size-preset 큼 --output out ./scans/*.png
//
//	# Per-file size override with machine-readable results
//	cornerbrand stamp --size-override banner.png=40 --json banner.png deck.pdf
package main

import (
	"github.com/cornerbrand/cornerbrand/cli"
)

// These variables are set at build time using ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/cornerbrand
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Set version info
	cli.Version = version
	cli.BuildTime = buildTime

	// Run the CLI
	cli.Execute()
}
