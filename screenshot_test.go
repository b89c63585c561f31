package panzoom

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"after-drag", "after-drag"},
		{"zoom level 2", "zoom_level_2"},
		{"a/b\\c", "a_b_c"},
		{"v1.2", "v1.2"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotName(t *testing.T) {
	stamp := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	tests := []struct {
		label string
		state InteractionState
		scale float32
		want  string
	}{
		{"start", Idle{}, 4, "20260304_050607_start_idle_s4.png"},
		{"zoomed in", ZoomingIn{}, 0.125, "20260304_050607_zoomed_in_zoom-in_s0.125.png"},
		{"", Panning{}, 2.5, "20260304_050607_unlabeled_panning_s2.5.png"},
		{"deep", ZoomingIn{}, 1e-7, "20260304_050607_deep_zoom-in_s1e-07.png"},
	}
	for _, tt := range tests {
		if got := screenshotName(stamp, tt.label, tt.state, tt.scale); got != tt.want {
			t.Errorf("screenshotName(%q, %v, %v) = %q, want %q", tt.label, tt.state, tt.scale, got, tt.want)
		}
	}
}

func TestStateSlugDistinct(t *testing.T) {
	seen := map[string]InteractionState{}
	for _, s := range allStates {
		slug := stateSlug(s)
		if slug != sanitizeLabel(slug) {
			t.Errorf("stateSlug(%v) = %q is not file-name safe", s, slug)
		}
		if prev, ok := seen[slug]; ok {
			t.Errorf("stateSlug(%v) = %q collides with %v", s, slug, prev)
		}
		seen[slug] = s
	}
}

// Captures are stored premultiplied; the PNG must hold straight alpha.
func TestPremultipliedCaptureEncodesStraightAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	copy(img.Pix, []byte{
		255, 0, 0, 255,
		64, 32, 0, 128,
	})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}

	want := []color.NRGBA{
		{R: 255, A: 255},
		{R: 127, G: 63, A: 128},
	}
	for x, w := range want {
		got := color.NRGBAModel.Convert(decoded.At(x, 0)).(color.NRGBA)
		if got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := newTestSurface(nil)
	s.Screenshot("one")
	s.Screenshot("two")
	if len(s.screenshotQueue) != 2 {
		t.Errorf("queue = %v, want 2 entries", s.screenshotQueue)
	}
}
