package stamp

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/cornerbrand/cornerbrand/messages"
	"github.com/cornerbrand/cornerbrand/naming"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoding
)

var (
	// ErrUnsupportedImage indicates an input extension outside the
	// supported raster set.
	ErrUnsupportedImage = errors.New(messages.UnsupportedImageFile())
	// ErrInvalidImageSize indicates a decoded image with a zero dimension.
	ErrInvalidImageSize = errors.New(messages.InvalidImageSize())
)

// StampImage stamps one raster file and returns the allocated output
// path. The output is re-encoded in the format matching the input's own
// extension. An empty outputBaseDir places the output subfolder next to
// the input.
func StampImage(inputPath string, logo *Logo, s Settings, outputBaseDir string) (string, error) {
	img, ok := naming.DetectImage(inputPath)
	if !ok {
		return "", ErrUnsupportedImage
	}

	src, err := imaging.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", messages.ImageReadFailed(), err)
	}
	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return "", ErrInvalidImageSize
	}

	x, y, drawW, drawH := PlacePixels(bounds.Dx(), bounds.Dy(), logo.Width, logo.Height, s)

	// Lanczos resampling: the logo is shown at arbitrary scale on
	// arbitrary backgrounds, so filter quality is visible in the result.
	resized := imaging.Resize(logo.Image, drawW, drawH, imaging.Lanczos)
	merged := imaging.Overlay(src, resized, image.Pt(x, y), 1.0)

	outputPath, err := naming.OutputImagePath(inputPath, outputBaseDir)
	if err != nil {
		return "", err
	}
	if err := saveImage(merged, outputPath, img.Format); err != nil {
		return "", fmt.Errorf("%s: %w", messages.ImageSaveFailed(), err)
	}
	return outputPath, nil
}

func saveImage(img image.Image, path string, format naming.Format) error {
	if format == naming.FormatWebP {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := nativewebp.Encode(f, img, nil); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return imaging.Save(img, path)
}
