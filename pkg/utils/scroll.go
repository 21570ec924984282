package utils

import "math"

// Scroll Mapping Functions (滚动映射)
//
// 把页面滚动偏移量映射为视觉属性（视差位移、透明度、缩放）。
// scrollY 可以是任意符号和大小；只做下限截断，不做上限截断，
// 因此负的 scrollY 会得到大于 1 的透明度/缩放值，调用方自行处理。

// 默认参数
const (
	DefaultParallaxSpeed  = 0.5
	DefaultFadeThreshold  = 100.0
	DefaultScaleThreshold = 200.0

	// MinScrollScale 滚动缩放的下限
	MinScrollScale = 0.5
)

// Parallax 视差位移（默认速度 0.5）
func Parallax(scrollY float64) float64 {
	return ParallaxWithSpeed(scrollY, DefaultParallaxSpeed)
}

// ParallaxWithSpeed 视差位移
// 公式：scrollY · speed
func ParallaxWithSpeed(scrollY, speed float64) float64 {
	return scrollY * speed
}

// FadeOnScroll 滚动淡出（默认阈值 100）
func FadeOnScroll(scrollY float64) float64 {
	return FadeOnScrollWithThreshold(scrollY, DefaultFadeThreshold)
}

// FadeOnScrollWithThreshold 滚动淡出
// 公式：max(0, 1 - scrollY/threshold)
func FadeOnScrollWithThreshold(scrollY, threshold float64) float64 {
	return math.Max(0, 1-scrollY/threshold)
}

// ScaleOnScroll 滚动缩小（默认阈值 200）
func ScaleOnScroll(scrollY float64) float64 {
	return ScaleOnScrollWithThreshold(scrollY, DefaultScaleThreshold)
}

// ScaleOnScrollWithThreshold 滚动缩小
// 公式：max(0.5, 1 - (scrollY/threshold)·0.5)
func ScaleOnScrollWithThreshold(scrollY, threshold float64) float64 {
	return math.Max(MinScrollScale, 1-float64(scrollY/threshold*0.5))
}
