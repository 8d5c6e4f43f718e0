package stamp

import (
	"errors"
	"math"
	"testing"
)

func TestParseCorner(t *testing.T) {
	tests := []struct {
		label    string
		expected Corner
		wantErr  bool
	}{
		{"좌상단", CornerTopLeft, false},
		{"우상단", CornerTopRight, false},
		{"좌하단", CornerBottomLeft, false},
		{"우하단", CornerBottomRight, false},
		{"가운데", CornerTopLeft, true},
		{"bottom-right", CornerTopLeft, true},
		{"", CornerTopLeft, true},
	}

	for _, tc := range tests {
		got, err := ParseCorner(tc.label)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseCorner(%q) error = %v, wantErr %v", tc.label, err, tc.wantErr)
			continue
		}
		if tc.wantErr && !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("ParseCorner(%q) error = %v, want ErrInvalidPosition", tc.label, err)
		}
		if got != tc.expected {
			t.Errorf("ParseCorner(%q) = %v, want %v", tc.label, got, tc.expected)
		}
	}
}

func TestCorner_String(t *testing.T) {
	tests := []struct {
		corner   Corner
		expected string
	}{
		{CornerTopLeft, "top-left"},
		{CornerTopRight, "top-right"},
		{CornerBottomLeft, "bottom-left"},
		{CornerBottomRight, "bottom-right"},
		{Corner(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.corner.String(); got != tc.expected {
			t.Errorf("Corner(%d).String() = %q, want %q", tc.corner, got, tc.expected)
		}
	}
}

func TestResolveImagePresets(t *testing.T) {
	tests := []struct {
		preset   string
		expected float64
	}{
		{"작음", 0.08},
		{"보통", 0.12},
		{"큼", 0.16},
	}

	for _, tc := range tests {
		in := SettingsInput{Position: "우하단", SizePreset: tc.preset, MarginPercent: 2}
		got, err := in.ResolveImage()
		if err != nil {
			t.Errorf("ResolveImage() preset %q error = %v", tc.preset, err)
			continue
		}
		if got.SizeRatio != tc.expected {
			t.Errorf("ResolveImage() preset %q ratio = %v, want %v", tc.preset, got.SizeRatio, tc.expected)
		}
	}
}

func TestResolveImageClampsExplicitPercent(t *testing.T) {
	tests := []struct {
		percent  float64
		expected float64
	}{
		{40, 0.4},
		{999, 3.0},
		{0.5, 0.01},
		{-10, 0.01},
	}

	for _, tc := range tests {
		in := SettingsInput{Position: "좌상단", SizePreset: "보통"}.WithSizePercent(tc.percent)
		got, err := in.ResolveImage()
		if err != nil {
			t.Errorf("ResolveImage() percent %v error = %v", tc.percent, err)
			continue
		}
		if got.SizeRatio != tc.expected {
			t.Errorf("ResolveImage() percent %v ratio = %v, want %v", tc.percent, got.SizeRatio, tc.expected)
		}
	}
}

func TestResolveImageTreatsOverLimitPercentsAlike(t *testing.T) {
	base := SettingsInput{Position: "우하단", SizePreset: "보통", MarginPercent: 2}

	atLimit, err := base.WithSizePercent(300).ResolveImage()
	if err != nil {
		t.Fatalf("ResolveImage() error = %v", err)
	}
	overLimit, err := base.WithSizePercent(1000).ResolveImage()
	if err != nil {
		t.Fatalf("ResolveImage() error = %v", err)
	}

	if atLimit.SizeRatio != overLimit.SizeRatio {
		t.Errorf("ratios differ: 300%% = %v, 1000%% = %v", atLimit.SizeRatio, overLimit.SizeRatio)
	}
	if atLimit.SizeRatio != 3.0 {
		t.Errorf("clamped ratio = %v, want 3.0", atLimit.SizeRatio)
	}
}

func TestResolvePDFClampsLowerThanImage(t *testing.T) {
	in := SettingsInput{Position: "우하단", SizePreset: "보통"}.WithSizePercent(1000)

	pdf, err := in.ResolvePDF()
	if err != nil {
		t.Fatalf("ResolvePDF() error = %v", err)
	}
	if pdf.SizeRatio != 0.5 {
		t.Errorf("ResolvePDF() ratio = %v, want 0.5", pdf.SizeRatio)
	}

	img, err := in.ResolveImage()
	if err != nil {
		t.Fatalf("ResolveImage() error = %v", err)
	}
	if img.SizeRatio != 3.0 {
		t.Errorf("ResolveImage() ratio = %v, want 3.0", img.SizeRatio)
	}
}

func TestResolveSkipsPresetWhenPercentGiven(t *testing.T) {
	// An unknown preset must not fail while an explicit percentage is in
	// effect.
	in := SettingsInput{Position: "좌하단", SizePreset: "거대함"}.WithSizePercent(40)

	got, err := in.ResolveImage()
	if err != nil {
		t.Fatalf("ResolveImage() error = %v", err)
	}
	if got.SizeRatio != 0.4 {
		t.Errorf("ResolveImage() ratio = %v, want 0.4", got.SizeRatio)
	}
}

func TestResolveRejectsUnknownPreset(t *testing.T) {
	in := SettingsInput{Position: "좌하단", SizePreset: "거대함"}

	if _, err := in.ResolveImage(); !errors.Is(err, ErrInvalidSizePreset) {
		t.Errorf("ResolveImage() error = %v, want ErrInvalidSizePreset", err)
	}
}

func TestResolveRejectsUnknownPosition(t *testing.T) {
	in := SettingsInput{Position: "중앙", SizePreset: "보통"}

	if _, err := in.ResolveImage(); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("ResolveImage() error = %v, want ErrInvalidPosition", err)
	}
}

func TestResolveNonFinitePercentFallsBackToPreset(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
	}{
		{"NaN", math.NaN()},
		{"PosInf", math.Inf(1)},
		{"NegInf", math.Inf(-1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := SettingsInput{Position: "우상단", SizePreset: "작음"}.WithSizePercent(tc.percent)
			got, err := in.ResolveImage()
			if err != nil {
				t.Fatalf("ResolveImage() error = %v", err)
			}
			if got.SizeRatio != 0.08 {
				t.Errorf("ResolveImage() ratio = %v, want 0.08", got.SizeRatio)
			}
		})
	}
}

func TestResolveClampsMargin(t *testing.T) {
	tests := []struct {
		margin   float64
		expected float64
	}{
		{2, 2},
		{-5, 0},
		{50, 20},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tc := range tests {
		in := SettingsInput{Position: "우하단", SizePreset: "보통", MarginPercent: tc.margin}
		got, err := in.ResolveImage()
		if err != nil {
			t.Errorf("ResolveImage() margin %v error = %v", tc.margin, err)
			continue
		}
		if got.MarginPercent != tc.expected {
			t.Errorf("ResolveImage() margin %v = %v, want %v", tc.margin, got.MarginPercent, tc.expected)
		}
	}
}

func TestSettingsInputNormalized(t *testing.T) {
	in := SettingsInput{Position: "우하단", MarginPercent: 2}

	got := in.Normalized()
	if got.SizePreset != DefaultSizePreset {
		t.Errorf("Normalized() preset = %q, want %q", got.SizePreset, DefaultSizePreset)
	}
	if got.Position != "우하단" || got.MarginPercent != 2 {
		t.Errorf("Normalized() altered unrelated fields: %+v", got)
	}

	kept := SettingsInput{Position: "우하단", SizePreset: "큼"}.Normalized()
	if kept.SizePreset != "큼" {
		t.Errorf("Normalized() preset = %q, want 큼", kept.SizePreset)
	}
}

func TestSettingsInputWithSizePercent(t *testing.T) {
	in := SettingsInput{Position: "우하단", SizePreset: "보통"}

	got := in.WithSizePercent(40)
	if got.SizePercent == nil || *got.SizePercent != 40 {
		t.Fatalf("WithSizePercent(40) percent = %v, want 40", got.SizePercent)
	}
	if in.SizePercent != nil {
		t.Error("WithSizePercent() mutated the receiver")
	}
}
