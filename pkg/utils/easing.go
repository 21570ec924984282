package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t（约定范围 [0, 1]），返回缓动后的值。
// 超出 [0, 1] 的输入不会报错，直接按公式外推。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数签名：进度 → 缓动后进度
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出（区块切换使用）
// 特点：开始慢，中间快，结束慢；中点处导数连续
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(float64(-2*t)+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - float64((1-t)*(1-t))
}

// EaseInQuad 二次方缓入
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutExpo 指数缓出
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// 弹跳分段常量
const (
	bounceN1 = 7.5625
	bounceD1 = 2.75
)

// EaseOutBounce 弹跳缓出（模拟带回弹的重力下落）
//
// 四段二次曲线，断点为 1/2.75、2/2.75、2.5/2.75。
// 每段先减去本段的中心偏移，再加上本段常量（0、0.75、0.9375、0.984375）。
// 断点和常量必须保持原值，否则落地的视觉节奏会变。
// float64(...) 转换阻止编译器把乘加融合为 FMA，保证各平台结果逐位一致。
func EaseOutBounce(t float64) float64 {
	switch {
	case t < 1/bounceD1:
		return bounceN1 * t * t
	case t < 2/bounceD1:
		t -= 1.5 / bounceD1
		return float64(bounceN1*t*t) + 0.75
	case t < 2.5/bounceD1:
		t -= 2.25 / bounceD1
		return float64(bounceN1*t*t) + 0.9375
	default:
		t -= 2.625 / bounceD1
		return float64(bounceN1*t*t) + 0.984375
	}
}

// EaseOutElastic 弹性缓出（弹簧式回弹）
// 公式：f(t) = 2^(-10t) · sin((10t - 0.75) · 2π/3) + 1
// t == 0 和 t == 1 时精确返回 0 和 1
func EaseOutElastic(t float64) float64 {
	c4 := (2 * pi) / 3
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return float64(math.Pow(2, -10*t)*math.Sin((float64(t*10)-0.75)*c4)) + 1
}

// BackOvershoot 回退缓动的越界系数 c1
const BackOvershoot = 1.70158

// pi 以 float64 变量参与运算，与运行时浮点求值的结果保持一致
var pi float64 = math.Pi

// EaseOutBack 回退缓出（物理下落后的轻微越界）
// 公式：f(t) = 1 + c3·(t-1)³ + c1·(t-1)²，c1 = 1.70158，c3 = c1 + 1
// 接近终点时会短暂超过 1 再回落；t = 0 时为 1 - c3 + c1（约为 0）
func EaseOutBack(t float64) float64 {
	c1 := float64(BackOvershoot)
	c3 := c1 + 1
	return 1 + float64(c3*math.Pow(t-1, 3)) + float64(c1*math.Pow(t-1, 2))
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + float64((b-a)*t)
}
