package stamp

import "math"

// PlacePixels computes the logo rectangle for a raster canvas, origin
// top-left. The logo's longer side is scaled to SizeRatio of the canvas's
// shorter side; the margin shrinks to zero before the logo is allowed to
// leave the canvas.
func PlacePixels(canvasW, canvasH, logoW, logoH int, s Settings) (x, y, drawW, drawH int) {
	short := float64(min(canvasW, canvasH))
	marginPx := int(math.Round(short * s.MarginPercent / 100))
	logoMax := max(logoW, logoH, 1)
	targetMax := max(int(math.Round(short*s.SizeRatio)), 1)
	scale := float64(targetMax) / float64(logoMax)

	drawW = max(int(math.Round(float64(logoW)*scale)), 1)
	drawH = max(int(math.Round(float64(logoH)*scale)), 1)

	maxX := max(canvasW-drawW, 0)
	maxY := max(canvasH-drawH, 0)

	switch s.Position {
	case CornerTopLeft:
		x, y = min(marginPx, maxX), min(marginPx, maxY)
	case CornerTopRight:
		x, y = max(maxX-marginPx, 0), min(marginPx, maxY)
	case CornerBottomLeft:
		x, y = min(marginPx, maxX), max(maxY-marginPx, 0)
	default:
		x, y = max(maxX-marginPx, 0), max(maxY-marginPx, 0)
	}
	return x, y, drawW, drawH
}

// PlacePage computes the logo rectangle in PDF user space, origin
// bottom-left. Corner semantics match PlacePixels mirrored vertically;
// dimensions stay fractional and are floored at 1 point. Page and logo
// dimensions must be positive.
func PlacePage(pageW, pageH float64, logoW, logoH int, s Settings) (x, y, drawW, drawH float64) {
	short := math.Min(pageW, pageH)
	margin := short * s.MarginPercent / 100
	targetMax := math.Max(short*s.SizeRatio, 1)
	logoMax := float64(max(logoW, logoH))
	scale := targetMax / logoMax

	drawW = math.Max(float64(logoW)*scale, 1)
	drawH = math.Max(float64(logoH)*scale, 1)

	maxX := math.Max(pageW-drawW, 0)
	maxY := math.Max(pageH-drawH, 0)

	leftX := math.Min(margin, maxX)
	rightX := math.Min(math.Max(pageW-drawW-margin, 0), maxX)
	bottomY := math.Min(margin, maxY)
	topY := math.Min(math.Max(pageH-drawH-margin, 0), maxY)

	switch s.Position {
	case CornerTopLeft:
		x, y = leftX, topY
	case CornerTopRight:
		x, y = rightX, topY
	case CornerBottomLeft:
		x, y = leftX, bottomY
	default:
		x, y = rightX, bottomY
	}
	return x, y, drawW, drawH
}
