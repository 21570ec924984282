package curveplot

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/decker502/motionkit/pkg/utils"
)

func closeTo(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestToPixel(t *testing.T) {
	tests := []struct {
		t, v         float64
		wantX, wantY float64
	}{
		{0, PlotMaxY, 10, 10},
		{1, PlotMinY, 90, 90},
		{0.5, 0.5, 50, 50},
		{0, 0, 10, 70},
		{1, 1, 90, 30},
	}
	for _, tt := range tests {
		x, y := ToPixel(tt.t, tt.v, 100)
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("ToPixel(%v, %v) = (%v, %v), want (%v, %v)", tt.t, tt.v, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestRender(t *testing.T) {
	style := DefaultStyle()
	style.LineWidth = 4
	img, err := Render(utils.EaseLinear, 64, style)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 64, 64) {
		t.Fatalf("bounds = %v, want 64x64", img.Bounds())
	}

	// 角落只有背景
	corner := img.NRGBAAt(1, 1)
	if !closeTo(corner.R, style.Background.R, 2) || !closeTo(corner.G, style.Background.G, 2) || !closeTo(corner.B, style.Background.B, 2) {
		t.Errorf("corner pixel = %v, want background %v", corner, style.Background)
	}

	// 线性曲线经过 (0.5, 0.5)，即像素 (31, 32) 的中心附近
	mid := img.NRGBAAt(31, 32)
	if mid.G < 140 || mid.B < 180 {
		t.Errorf("pixel on the curve = %v, want close to %v", mid, style.Curve)
	}
}

func TestRenderOvershootIsClamped(t *testing.T) {
	// 越界值贴边绘制，不应 panic
	wild := func(t float64) float64 { return 10 * (t - 0.5) }
	if _, err := Render(wild, 32, DefaultStyle()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if _, err := Render(func(float64) float64 { return math.NaN() }, 32, DefaultStyle()); err != nil {
		t.Fatalf("Render() with NaN error: %v", err)
	}
}

func TestRenderTooSmall(t *testing.T) {
	if _, err := Render(utils.EaseLinear, MinSize-1, DefaultStyle()); err == nil {
		t.Error("expected error for size below MinSize")
	}
}

func TestDownsample(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	fill := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			src.SetNRGBA(x, y, fill)
		}
	}

	out := Downsample(src, 10)
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 10 {
		t.Fatalf("bounds = %v, want 10x10", out.Bounds())
	}
	got := out.NRGBAAt(5, 5)
	if !closeTo(got.R, fill.R, 1) || !closeTo(got.G, fill.G, 1) || !closeTo(got.B, fill.B, 1) || got.A != 255 {
		t.Errorf("uniform image should stay uniform, got %v", got)
	}

	if Downsample(src, 40) != src {
		t.Error("same-size downsample should return the input")
	}
}

func TestEncode(t *testing.T) {
	img, err := Render(utils.EaseOutBounce, 32, DefaultStyle())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	data := buf.Bytes()
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("output is not a WebP container: % x", data[:min(len(data), 12)])
	}
}
