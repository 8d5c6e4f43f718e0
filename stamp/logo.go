package stamp

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/cornerbrand/cornerbrand/messages"
	"github.com/disintegration/imaging"
)

// Logo is the decoded logo bitmap, loaded once per batch and shared
// read-only across every file in the run. It is never mutated after
// loading.
type Logo struct {
	Image  image.Image
	Width  int
	Height int
}

// LoadLogo reads and decodes the logo file.
func LoadLogo(path string) (*Logo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", messages.LogoReadFailed(), err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", messages.LogoDecodeFailed(), err)
	}
	bounds := img.Bounds()
	return &Logo{Image: img, Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// FlatLogo is the logo flattened against a white background for PDF
// embedding, stored as raw 8-bit RGB rows.
type FlatLogo struct {
	Width  int
	Height int
	RGB    []byte
}

// Flatten composites the logo's alpha channel against white, dropping
// transparency. PDF embedding expects an opaque raster image.
func (l *Logo) Flatten() *FlatLogo {
	src := imaging.Clone(l.Image)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	rgb := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			a := float64(row[x+3]) / 255
			rgb = append(rgb,
				flattenChannel(row[x], a),
				flattenChannel(row[x+1], a),
				flattenChannel(row[x+2], a))
		}
	}
	return &FlatLogo{Width: w, Height: h, RGB: rgb}
}

func flattenChannel(c byte, a float64) byte {
	return byte(math.Round(float64(c)*a + 255*(1-a)))
}
