// Package naming decides where stamped files and batch reports are written.
//
// Outputs land in a CornerBrand_Output subfolder next to the input (or
// under an explicit base directory) and are named <stem>_cornerbrand with
// the input's own extension. Existing files are never overwritten: on a
// name collision the allocator probes <name>(1), <name>(2), ... until a
// free slot is found.
package naming

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cornerbrand/cornerbrand/messages"
)

// OutputDirName is the subfolder created for stamped files and reports.
const OutputDirName = "CornerBrand_Output"

const (
	stampSuffix    = "_cornerbrand"
	reportBaseName = "cornerbrand_report"
)

// Format enumerates the raster encodings stamped images are written in.
type Format int

const (
	FormatJPEG Format = iota
	FormatPNG
	FormatWebP
)

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// SupportedImage describes how a recognized raster input is re-encoded.
// Extension is the lowercased input extension and is reused on output, so
// a .JPG input yields a .jpg result.
type SupportedImage struct {
	Format    Format
	Extension string
}

// DetectImage classifies a path by its extension against the supported
// raster set. Names whose only dot is a leading one count as extensionless.
func DetectImage(path string) (SupportedImage, bool) {
	_, ext := splitBase(path)
	ext = strings.ToLower(ext)
	switch ext {
	case "jpg", "jpeg":
		return SupportedImage{Format: FormatJPEG, Extension: ext}, true
	case "png":
		return SupportedImage{Format: FormatPNG, Extension: ext}, true
	case "webp":
		return SupportedImage{Format: FormatWebP, Extension: ext}, true
	}
	return SupportedImage{}, false
}

// IsPDF reports whether the path carries a .pdf extension, case-insensitive.
func IsPDF(path string) bool {
	_, ext := splitBase(path)
	return strings.EqualFold(ext, "pdf")
}

// OutputImagePath allocates a collision-free output path for a stamped
// image. An empty baseDir places the output subfolder next to the input
// file.
func OutputImagePath(inputPath, baseDir string) (string, error) {
	img, ok := DetectImage(inputPath)
	if !ok {
		return "", errors.New(messages.UnsupportedImageFormat())
	}

	parent, err := parentDir(inputPath)
	if err != nil {
		return "", err
	}
	outDir, err := resolveOutputDir(parent, baseDir)
	if err != nil {
		return "", err
	}

	stem, _ := splitBase(inputPath)
	if stem == "" {
		stem = "image"
	}
	return allocate(outDir, stem+stampSuffix, img.Extension), nil
}

// OutputPDFPath allocates a collision-free output path for a stamped PDF.
func OutputPDFPath(inputPath, baseDir string) (string, error) {
	if !IsPDF(inputPath) {
		return "", errors.New(messages.UnsupportedPDFFile())
	}

	parent, err := parentDir(inputPath)
	if err != nil {
		return "", err
	}
	outDir, err := resolveOutputDir(parent, baseDir)
	if err != nil {
		return "", err
	}

	stem, _ := splitBase(inputPath)
	if stem == "" {
		stem = "file"
	}
	return allocate(outDir, stem+stampSuffix, "pdf"), nil
}

// ReportPath allocates a collision-free path for a batch report beneath
// inputDir's output subfolder (or baseDir's, when given).
func ReportPath(inputDir, baseDir string) (string, error) {
	outDir, err := resolveOutputDir(inputDir, baseDir)
	if err != nil {
		return "", err
	}
	return allocate(outDir, reportBaseName, "json"), nil
}

// splitBase returns the final path element without its extension and the
// extension itself, dot stripped. Dotfiles such as ".webp" have no
// extension.
func splitBase(path string) (stem, ext string) {
	name := filepath.Base(path)
	e := filepath.Ext(name)
	if e == "" || e == name {
		return name, ""
	}
	return strings.TrimSuffix(name, e), e[1:]
}

func parentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if dir == path {
		return "", errors.New(messages.NoParentDirectory())
	}
	return dir, nil
}

func resolveOutputDir(inputDir, baseDir string) (string, error) {
	base := inputDir
	if baseDir != "" {
		if err := ensureDirectory(baseDir); err != nil {
			return "", err
		}
		base = baseDir
	}

	outDir := filepath.Join(base, OutputDirName)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", messages.OutputDirCreateFailed(), err)
	}
	if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
		return "", errors.New(messages.OutputPathNotDirectory())
	}
	return outDir, nil
}

func ensureDirectory(path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return nil
		}
		return errors.New(messages.OutputBaseNotDirectory())
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("%s: %w", messages.OutputDirCreateFailed(), err)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return errors.New(messages.OutputBaseNotDirectory())
	}
	return nil
}

// allocate returns the first free path for base.ext in dir, probing
// base(1).ext, base(2).ext, ... past existing files.
func allocate(dir, base, ext string) string {
	first := filepath.Join(dir, base+"."+ext)
	if !exists(first) {
		return first
	}
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s(%d).%s", base, i, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
