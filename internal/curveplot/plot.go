// Package curveplot 把缓动曲线渲染为图像
//
// 曲线先在 Supersample 倍尺寸上光栅化，再用 CatmullRom 缩小到目标尺寸，
// 输出编码为 WebP。
package curveplot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/HugoSmits86/nativewebp"
	"github.com/decker502/motionkit/pkg/utils"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

const (
	// Supersample 光栅化时的放大倍数
	Supersample = 4

	// MinSize 最小输出边长
	MinSize = 16

	// PlotMinY / PlotMaxY 纵轴显示范围，留出回弹和弹性曲线的越界空间
	PlotMinY = -0.5
	PlotMaxY = 1.5

	// Samples 曲线采样点数
	Samples = 512

	paddingRatio = 0.1
)

// Style 绘图配色和线宽（线宽以输出像素计）
type Style struct {
	Background color.NRGBA
	Grid       color.NRGBA
	Axis       color.NRGBA
	Curve      color.NRGBA
	LineWidth  float64
}

// DefaultStyle 深色背景、浅蓝曲线
func DefaultStyle() Style {
	return Style{
		Background: color.NRGBA{R: 15, G: 23, B: 42, A: 255},
		Grid:       color.NRGBA{R: 51, G: 65, B: 85, A: 255},
		Axis:       color.NRGBA{R: 100, G: 116, B: 139, A: 255},
		Curve:      color.NRGBA{R: 56, G: 189, B: 248, A: 255},
		LineWidth:  2,
	}
}

// ToPixel 把曲线坐标 (t, v) 映射到边长 size 的图像坐标
func ToPixel(t, v float64, size int) (float64, float64) {
	s := float64(size)
	pad := s * paddingRatio
	inner := s - 2*pad
	x := pad + t*inner
	y := pad + (PlotMaxY-v)/(PlotMaxY-PlotMinY)*inner
	return x, y
}

// Render 渲染一条曲线
//
// 参数:
//   - fn: 缓动函数，在 [0, 1] 上采样
//   - size: 输出边长（像素），不小于 MinSize
//   - style: 配色和线宽
func Render(fn utils.EasingFunc, size int, style Style) (*image.NRGBA, error) {
	if size < MinSize {
		return nil, fmt.Errorf("plot size must be >= %d, got %d", MinSize, size)
	}

	big := size * Supersample
	img := image.NewNRGBA(image.Rect(0, 0, big, big))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	grid := vector.NewRasterizer(big, big)
	axis := vector.NewRasterizer(big, big)
	gridWidth := float64(Supersample) * 0.5
	for _, v := range []float64{0.25, 0.5, 0.75} {
		x0, y0 := ToPixel(v, PlotMinY, big)
		x1, y1 := ToPixel(v, PlotMaxY, big)
		strokeSegment(grid, x0, y0, x1, y1, gridWidth)
	}
	hx0, hy0 := ToPixel(0, 0.5, big)
	hx1, hy1 := ToPixel(1, 0.5, big)
	strokeSegment(grid, hx0, hy0, hx1, hy1, gridWidth)
	// 起止值 0 和 1 以及时间轴两端
	for _, v := range []float64{0, 1} {
		x0, y0 := ToPixel(0, v, big)
		x1, y1 := ToPixel(1, v, big)
		strokeSegment(axis, x0, y0, x1, y1, gridWidth*2)

		x0, y0 = ToPixel(v, PlotMinY, big)
		x1, y1 = ToPixel(v, PlotMaxY, big)
		strokeSegment(axis, x0, y0, x1, y1, gridWidth*2)
	}
	grid.Draw(img, img.Bounds(), image.NewUniform(style.Grid), image.Point{})
	axis.Draw(img, img.Bounds(), image.NewUniform(style.Axis), image.Point{})

	curve := vector.NewRasterizer(big, big)
	lineWidth := style.LineWidth * Supersample
	px, py := ToPixel(0, clampPlot(fn(0)), big)
	for i := 1; i <= Samples; i++ {
		t := float64(i) / Samples
		x, y := ToPixel(t, clampPlot(fn(t)), big)
		strokeSegment(curve, px, py, x, y, lineWidth)
		px, py = x, y
	}
	curve.Draw(img, img.Bounds(), image.NewUniform(style.Curve), image.Point{})

	return Downsample(img, size), nil
}

// clampPlot 超出显示范围的值贴边绘制
func clampPlot(v float64) float64 {
	if math.IsNaN(v) {
		return PlotMinY
	}
	return math.Max(PlotMinY, math.Min(PlotMaxY, v))
}

// strokeSegment 把线段作为带宽度的四边形加入路径
func strokeSegment(r *vector.Rasterizer, x0, y0, x1, y1, width float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// 两端各延长半个线宽，相邻线段在拐角处重叠
	half := width / 2
	ux, uy := dx/length*half, dy/length*half
	nx, ny := -uy, ux

	x0, y0 = x0-ux, y0-uy
	x1, y1 = x1+ux, y1+uy

	r.MoveTo(float32(x0+nx), float32(y0+ny))
	r.LineTo(float32(x1+nx), float32(y1+ny))
	r.LineTo(float32(x1-nx), float32(y1-ny))
	r.LineTo(float32(x0-nx), float32(y0-ny))
	r.ClosePath()
}

// Downsample 预乘 alpha 后用 CatmullRom 缩小到 size×size，避免透明边缘发暗
func Downsample(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}

	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), premul, b, draw.Src, nil)

	out := image.NewNRGBA(scaled.Bounds())
	draw.Draw(out, out.Bounds(), scaled, image.Point{}, draw.Src)
	return out
}

// Encode 以 WebP 无损格式写出图像
func Encode(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}
