package stamp

import (
	"errors"
	"math"

	"github.com/cornerbrand/cornerbrand/messages"
)

// Validation errors surfaced to callers. The texts are the user-facing
// contract, so they come from the message catalog.
var (
	// ErrInvalidPosition indicates an unrecognized corner label.
	ErrInvalidPosition = errors.New(messages.InvalidPosition())
	// ErrInvalidSizePreset indicates an unrecognized size preset label.
	ErrInvalidSizePreset = errors.New(messages.InvalidSizePreset())
)

// Corner identifies which corner of the canvas receives the logo.
type Corner int

const (
	// CornerTopLeft places the logo in the top-left corner.
	CornerTopLeft Corner = iota
	// CornerTopRight places the logo in the top-right corner.
	CornerTopRight
	// CornerBottomLeft places the logo in the bottom-left corner.
	CornerBottomLeft
	// CornerBottomRight places the logo in the bottom-right corner.
	CornerBottomRight
)

// String returns a string representation of the corner.
func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top-left"
	case CornerTopRight:
		return "top-right"
	case CornerBottomLeft:
		return "bottom-left"
	case CornerBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// ParseCorner maps a position label to its corner. Labels are the Korean
// strings callers supply: 좌상단, 우상단, 좌하단, 우하단.
func ParseCorner(label string) (Corner, error) {
	switch label {
	case "좌상단":
		return CornerTopLeft, nil
	case "우상단":
		return CornerTopRight, nil
	case "좌하단":
		return CornerBottomLeft, nil
	case "우하단":
		return CornerBottomRight, nil
	default:
		return CornerTopLeft, ErrInvalidPosition
	}
}

// DefaultSizePreset is assumed when a caller leaves the preset empty.
const DefaultSizePreset = "보통"

// Size preset ratios, as fractions of the canvas's shorter side.
const (
	presetSmallRatio  = 0.08
	presetMediumRatio = 0.12
	presetLargeRatio  = 0.16
)

// Clamp bounds for explicit size percentages. Oversized raster overlays
// are visually tolerable while oversized PDF-page stamps are not, hence
// the asymmetric ceilings.
const (
	MinSizePercent      = 1.0
	MaxImageSizePercent = 300.0
	MaxPDFSizePercent   = 50.0
)

const maxMarginPercent = 20.0

// SettingsInput is the stamp configuration as supplied by callers.
// SizePercent, when finite, wins over SizePreset.
type SettingsInput struct {
	Position      string   `json:"position" yaml:"position"`
	SizePreset    string   `json:"sizePreset" yaml:"size-preset"`
	SizePercent   *float64 `json:"sizePercent" yaml:"size-percent"`
	MarginPercent float64  `json:"marginPercent" yaml:"margin-percent"`
}

// Normalized fills in the default size preset when none was supplied.
// Reports echo the normalized input.
func (in SettingsInput) Normalized() SettingsInput {
	if in.SizePreset == "" {
		in.SizePreset = DefaultSizePreset
	}
	return in
}

// WithSizePercent returns a copy carrying an explicit size percentage,
// leaving the receiver untouched.
func (in SettingsInput) WithSizePercent(percent float64) SettingsInput {
	in.SizePercent = &percent
	return in
}

// Settings is the validated stamp configuration shared by the image and
// PDF paths.
type Settings struct {
	Position      Corner
	SizeRatio     float64
	MarginPercent float64
}

// ResolveImage validates the input for raster stamping. Explicit size
// percentages are clamped to [1, 300].
func (in SettingsInput) ResolveImage() (Settings, error) {
	return in.resolve(MaxImageSizePercent)
}

// ResolvePDF validates the input for PDF stamping. Explicit size
// percentages are clamped to [1, 50].
func (in SettingsInput) ResolvePDF() (Settings, error) {
	return in.resolve(MaxPDFSizePercent)
}

func (in SettingsInput) resolve(maxSizePercent float64) (Settings, error) {
	position, err := ParseCorner(in.Position)
	if err != nil {
		return Settings{}, err
	}

	var sizeRatio float64
	if in.SizePercent != nil && isFinite(*in.SizePercent) {
		sizeRatio = clamp(*in.SizePercent, MinSizePercent, maxSizePercent) / 100
	} else {
		// The preset is only consulted, and only then validated, when no
		// usable explicit percentage was given.
		sizeRatio, err = presetRatio(in.SizePreset)
		if err != nil {
			return Settings{}, err
		}
	}

	margin := in.MarginPercent
	if !isFinite(margin) {
		margin = 0
	}

	return Settings{
		Position:      position,
		SizeRatio:     sizeRatio,
		MarginPercent: clamp(margin, 0, maxMarginPercent),
	}, nil
}

func presetRatio(preset string) (float64, error) {
	switch preset {
	case "작음":
		return presetSmallRatio, nil
	case "보통":
		return presetMediumRatio, nil
	case "큼":
		return presetLargeRatio, nil
	default:
		return 0, ErrInvalidSizePreset
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
