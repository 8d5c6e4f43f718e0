package stamp

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/cornerbrand/cornerbrand/messages"
	"github.com/disintegration/imaging"
)

// writeTestWebP writes a uniformly colored lossless WebP and returns its
// path.
func writeTestWebP(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		t.Fatalf("nativewebp.Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return path
}

func loadTestLogo(t *testing.T, dir string, c color.NRGBA) *Logo {
	t.Helper()
	path := writeTestPNG(t, dir, "logo.png", 8, 8, c)
	logo, err := LoadLogo(path)
	if err != nil {
		t.Fatalf("LoadLogo() error = %v", err)
	}
	return logo
}

func TestStampImageBottomRight(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, "canvas.png", 48, 48, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	logo := loadTestLogo(t, dir, color.NRGBA{R: 255, A: 255})

	settings, err := SettingsInput{Position: "우하단", SizePreset: "보통", MarginPercent: 2}.ResolveImage()
	if err != nil {
		t.Fatalf("ResolveImage() error = %v", err)
	}

	out, err := StampImage(input, logo, settings, "")
	if err != nil {
		t.Fatalf("StampImage() error = %v", err)
	}
	if want := filepath.Join(dir, "CornerBrand_Output", "canvas_cornerbrand.png"); out != want {
		t.Errorf("output path = %q, want %q", out, want)
	}

	stamped, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("imaging.Open() error = %v", err)
	}

	// Logo rectangle is (41, 41) through (46, 46) for these settings.
	inside := color.NRGBAModel.Convert(stamped.At(43, 43)).(color.NRGBA)
	if inside.R < 200 || inside.G > 50 {
		t.Errorf("pixel inside stamp = %+v, want red", inside)
	}
	outside := color.NRGBAModel.Convert(stamped.At(10, 10)).(color.NRGBA)
	if outside.R != 255 || outside.G != 255 || outside.B != 255 {
		t.Errorf("pixel outside stamp = %+v, want white", outside)
	}
}

func TestStampImageRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	logo := loadTestLogo(t, dir, color.NRGBA{R: 255, A: 255})
	settings := Settings{Position: CornerBottomRight, SizeRatio: 0.12, MarginPercent: 2}

	_, err := StampImage(filepath.Join(dir, "animation.gif"), logo, settings, "")
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("StampImage() error = %v, want ErrUnsupportedImage", err)
	}
}

func TestStampImageMissingFile(t *testing.T) {
	dir := t.TempDir()
	logo := loadTestLogo(t, dir, color.NRGBA{R: 255, A: 255})
	settings := Settings{Position: CornerBottomRight, SizeRatio: 0.12, MarginPercent: 2}

	_, err := StampImage(filepath.Join(dir, "absent.png"), logo, settings, "")
	if err == nil {
		t.Fatal("StampImage() expected error for missing file")
	}
	if !strings.HasPrefix(err.Error(), messages.ImageReadFailed()) {
		t.Errorf("StampImage() error = %q, want prefix %q", err, messages.ImageReadFailed())
	}
}

func TestStampImagePercentsBeyondLimitMatch(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, "canvas.png", 40, 40, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	logo := loadTestLogo(t, dir, color.NRGBA{B: 255, A: 255})
	base := SettingsInput{Position: "우하단", SizePreset: "보통", MarginPercent: 2}

	var outputs []string
	for _, percent := range []float64{300, 1000} {
		settings, err := base.WithSizePercent(percent).ResolveImage()
		if err != nil {
			t.Fatalf("ResolveImage() error = %v", err)
		}
		out, err := StampImage(input, logo, settings, "")
		if err != nil {
			t.Fatalf("StampImage() percent %v error = %v", percent, err)
		}
		outputs = append(outputs, out)
	}

	first, err := imaging.Open(outputs[0])
	if err != nil {
		t.Fatalf("imaging.Open() error = %v", err)
	}
	second, err := imaging.Open(outputs[1])
	if err != nil {
		t.Fatalf("imaging.Open() error = %v", err)
	}
	if !bytes.Equal(imaging.Clone(first).Pix, imaging.Clone(second).Pix) {
		t.Error("outputs for 300% and 1000% differ, want identical pixels")
	}
}

func TestStampImageWebPRoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := writeTestWebP(t, dir, "photo.webp", 48, 48, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	logo := loadTestLogo(t, dir, color.NRGBA{G: 255, A: 255})
	settings := Settings{Position: CornerTopLeft, SizeRatio: 0.12, MarginPercent: 2}

	out, err := StampImage(input, logo, settings, "")
	if err != nil {
		t.Fatalf("StampImage() error = %v", err)
	}
	if want := filepath.Join(dir, "CornerBrand_Output", "photo_cornerbrand.webp"); out != want {
		t.Errorf("output path = %q, want %q", out, want)
	}

	stamped, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("imaging.Open() error = %v", err)
	}
	if b := stamped.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Errorf("output size = %dx%d, want 48x48", b.Dx(), b.Dy())
	}
	inside := color.NRGBAModel.Convert(stamped.At(3, 3)).(color.NRGBA)
	if inside.G < 200 {
		t.Errorf("pixel inside stamp = %+v, want green", inside)
	}
}

func TestStampImageOutputDirOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "exports")
	input := writeTestPNG(t, dir, "canvas.png", 48, 48, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	logo := loadTestLogo(t, dir, color.NRGBA{R: 255, A: 255})
	settings := Settings{Position: CornerBottomRight, SizeRatio: 0.12, MarginPercent: 2}

	out, err := StampImage(input, logo, settings, override)
	if err != nil {
		t.Fatalf("StampImage() error = %v", err)
	}
	want := filepath.Join(override, "CornerBrand_Output", "canvas_cornerbrand.png")
	if out != want {
		t.Errorf("output path = %q, want %q", out, want)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("os.Stat(%q) error = %v", out, err)
	}
}
