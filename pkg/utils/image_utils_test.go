package utils

import (
	"image/color"
	"testing"
)

// TestLerpRGBA verifies endpoint, midpoint and clamping behavior.
func TestLerpRGBA(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 100, G: 200, B: 100, A: 55}

	if got := LerpRGBA(a, b, 0); got != a {
		t.Errorf("LerpRGBA(t=0) = %v, want %v", got, a)
	}
	if got := LerpRGBA(a, b, 1); got != b {
		t.Errorf("LerpRGBA(t=1) = %v, want %v", got, b)
	}

	mid := LerpRGBA(a, b, 0.5)
	want := color.RGBA{R: 50, G: 150, B: 150, A: 155}
	if mid != want {
		t.Errorf("LerpRGBA(t=0.5) = %v, want %v", mid, want)
	}

	// t 越界时截断到端点
	if got := LerpRGBA(a, b, -5); got != a {
		t.Errorf("LerpRGBA(t=-5) = %v, want %v", got, a)
	}
	if got := LerpRGBA(a, b, 5); got != b {
		t.Errorf("LerpRGBA(t=5) = %v, want %v", got, b)
	}
}

// TestPremultiply verifies alpha premultiplication and clamping.
func TestPremultiply(t *testing.T) {
	clr := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := premultiply(clr, 1); got != clr {
		t.Errorf("premultiply(alpha=1) = %v, want %v", got, clr)
	}

	half := premultiply(clr, 0.5)
	want := color.RGBA{R: 100, G: 50, B: 25, A: 127}
	if half != want {
		t.Errorf("premultiply(alpha=0.5) = %v, want %v", half, want)
	}

	zero := premultiply(clr, 0)
	if zero != (color.RGBA{}) {
		t.Errorf("premultiply(alpha=0) = %v, want zero", zero)
	}

	if got := premultiply(clr, 2); got != clr {
		t.Errorf("premultiply(alpha=2) = %v, want clamped to %v", got, clr)
	}
}

// TestTextureDimensions verifies generated texture sizes.
func TestTextureDimensions(t *testing.T) {
	grad := NewVerticalGradient(64, 32, color.RGBA{A: 255}, color.RGBA{R: 255, A: 255})
	if b := grad.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("gradient bounds = %v, want 64x32", b)
	}

	glow := NewRadialGlow(16, color.RGBA{R: 255, A: 255}, 200)
	if b := glow.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("glow bounds = %v, want 32x32", b)
	}

	disc := NewSoftDisc(8)
	if b := disc.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("disc bounds = %v, want 16x16", b)
	}

	ellipse := NewSoftEllipse(320, 120)
	if b := ellipse.Bounds(); b.Dx() != 320 || b.Dy() != 120 {
		t.Errorf("ellipse bounds = %v, want 320x120", b)
	}

	ramp := NewAlphaRamp(100, 40, color.RGBA{R: 120, G: 140, B: 130, A: 255}, 120)
	if b := ramp.Bounds(); b.Dx() != 100 || b.Dy() != 40 {
		t.Errorf("ramp bounds = %v, want 100x40", b)
	}
}

// TestEasingEndpoints verifies every easing curve maps 0->0 and 1->1.
func TestEasingEndpoints(t *testing.T) {
	curves := []struct {
		name string
		fn   func(float64) float64
	}{
		{"EaseLinear", EaseLinear},
		{"EaseInQuad", EaseInQuad},
		{"EaseOutQuad", EaseOutQuad},
		{"EaseOutCubic", EaseOutCubic},
	}
	for _, c := range curves {
		if got := c.fn(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", c.name, got)
		}
		if got := c.fn(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", c.name, got)
		}
	}
}
