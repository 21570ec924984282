package utils

import "math"

// CubicBezier CSS 风格的三次贝塞尔缓动曲线
//
// 起点固定为 (0, 0)，终点固定为 (1, 1)，(X1, Y1) 和 (X2, Y2) 为两个控制点。
// X1、X2 应位于 [0, 1] 内，否则曲线在 x 方向不单调，求解结果无意义。
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// 预设曲线（与 CSS timing-function 关键字一致），按值返回，调用方无法改写

// BezierEaseIn 对应 CSS ease-in
func BezierEaseIn() CubicBezier { return CubicBezier{0.42, 0, 1, 1} }

// BezierEaseOut 对应 CSS ease-out
func BezierEaseOut() CubicBezier { return CubicBezier{0, 0, 0.58, 1} }

// BezierEaseInOut 对应 CSS ease-in-out
func BezierEaseInOut() CubicBezier { return CubicBezier{0.42, 0, 0.58, 1} }

const (
	bezierNewtonIterations = 8
	bezierEpsilon          = 1e-7
)

// NewCubicBezier 从四元组 [x1, y1, x2, y2] 创建曲线
func NewCubicBezier(points [4]float64) CubicBezier {
	return CubicBezier{X1: points[0], Y1: points[1], X2: points[2], Y2: points[3]}
}

// Points 返回控制点四元组
func (b CubicBezier) Points() [4]float64 {
	return [4]float64{b.X1, b.Y1, b.X2, b.Y2}
}

// Ease 计算进度 t 对应的缓动值
//
// 先用牛顿迭代求解 x(s) = t 的参数 s，斜率过小时退回二分法，再返回 y(s)。
// t <= 0 返回 0，t >= 1 返回 1。
func (b CubicBezier) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return bezierCalc(b.Y1, b.Y2, b.solveX(t))
}

// Func 将曲线转换为 EasingFunc
func (b CubicBezier) Func() EasingFunc {
	return b.Ease
}

func (b CubicBezier) solveX(x float64) float64 {
	s := x
	for i := 0; i < bezierNewtonIterations; i++ {
		err := bezierCalc(b.X1, b.X2, s) - x
		if math.Abs(err) < bezierEpsilon {
			return s
		}
		d := bezierSlope(b.X1, b.X2, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= err / d
	}

	// 二分法兜底
	lo, hi := 0.0, 1.0
	s = x
	for lo < hi {
		xEst := bezierCalc(b.X1, b.X2, s)
		if math.Abs(xEst-x) < bezierEpsilon {
			return s
		}
		if xEst < x {
			lo = s
		} else {
			hi = s
		}
		next := (lo + hi) / 2
		if next == s {
			break
		}
		s = next
	}
	return s
}

// bezierCalc 计算单轴贝塞尔值：3a(1-s)²s + 3b(1-s)s² + s³
func bezierCalc(a, b, s float64) float64 {
	return 3*a*(1-s)*(1-s)*s + 3*b*(1-s)*s*s + s*s*s
}

// bezierSlope 单轴贝塞尔对 s 的导数
func bezierSlope(a, b, s float64) float64 {
	return 3*a*(1-s)*(1-s) + 6*(b-a)*(1-s)*s + 3*(1-b)*s*s
}
