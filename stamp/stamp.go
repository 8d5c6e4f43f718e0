// Package stamp applies a corner logo to raster images and PDF documents.
//
// Both file kinds share the same validated settings and the same
// margin-then-clamp placement geometry; they differ in coordinate origin
// and numeric precision. All user-facing failures carry catalog messages
// and are returned as values, never as panics.
package stamp

// FileResult is the per-file outcome of a stamping operation. Exactly one
// of OutputPath and Error is populated, keyed by OK.
type FileResult struct {
	InputPath  string `json:"inputPath"`
	OK         bool   `json:"ok"`
	OutputPath string `json:"outputPath,omitempty"`
	Error      string `json:"error,omitempty"`
}

// StampImages stamps every path with shared settings, loading the logo
// once. A settings or logo failure fails every path with the same error.
func StampImages(paths []string, input SettingsInput, logoPath, outputBaseDir string) []FileResult {
	settings, err := input.Normalized().ResolveImage()
	if err != nil {
		return failAll(paths, err.Error())
	}
	logo, err := LoadLogo(logoPath)
	if err != nil {
		return failAll(paths, err.Error())
	}

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		out, err := StampImage(path, logo, settings, outputBaseDir)
		results = append(results, resultFor(path, out, err))
	}
	return results
}

// StampPDFs stamps every path with shared settings, loading and
// flattening the logo once. A settings or logo failure fails every path
// with the same error.
func StampPDFs(paths []string, input SettingsInput, logoPath, outputBaseDir string) []FileResult {
	settings, err := input.Normalized().ResolvePDF()
	if err != nil {
		return failAll(paths, err.Error())
	}
	logo, err := LoadLogo(logoPath)
	if err != nil {
		return failAll(paths, err.Error())
	}
	flat := logo.Flatten()

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		out, err := StampPDF(path, flat, settings, outputBaseDir)
		results = append(results, resultFor(path, out, err))
	}
	return results
}

func resultFor(inputPath, outputPath string, err error) FileResult {
	if err != nil {
		return FileResult{InputPath: inputPath, Error: err.Error()}
	}
	return FileResult{InputPath: inputPath, OK: true, OutputPath: outputPath}
}

func failAll(paths []string, message string) []FileResult {
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, FileResult{InputPath: path, Error: message})
	}
	return results
}
