package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/decker502/motionkit/pkg/utils"
)

// PropertyValue 动画属性值
//
// 可以是单个数值（直接作为目标值），也可以是关键帧序列
// （在一次过渡内依次播放，如 rotateZ: [0, -1, 1, 0]）。
type PropertyValue struct {
	frames    []float64
	keyframed bool
}

// Scalar 创建单值属性
func Scalar(v float64) PropertyValue {
	return PropertyValue{frames: []float64{v}}
}

// Keyframes 创建关键帧属性
func Keyframes(values ...float64) PropertyValue {
	frames := make([]float64, len(values))
	copy(frames, values)
	return PropertyValue{frames: frames, keyframed: true}
}

// IsKeyframes 是否为关键帧序列
func (p PropertyValue) IsKeyframes() bool {
	return p.keyframed
}

// Frames 返回关键帧副本（单值属性返回长度为 1 的切片）
func (p PropertyValue) Frames() []float64 {
	out := make([]float64, len(p.frames))
	copy(out, p.frames)
	return out
}

// Len 关键帧数量
func (p PropertyValue) Len() int {
	return len(p.frames)
}

// First 第一帧的值；空值返回 0
func (p PropertyValue) First() float64 {
	if len(p.frames) == 0 {
		return 0
	}
	return p.frames[0]
}

// Final 最后一帧的值（过渡结束后的静止值）；空值返回 0
func (p PropertyValue) Final() float64 {
	if len(p.frames) == 0 {
		return 0
	}
	return p.frames[len(p.frames)-1]
}

// Equal 判断两个属性值是否完全一致
func (p PropertyValue) Equal(o PropertyValue) bool {
	if p.keyframed != o.keyframed || len(p.frames) != len(o.frames) {
		return false
	}
	for i := range p.frames {
		if p.frames[i] != o.frames[i] {
			return false
		}
	}
	return true
}

// repeatKind 重复策略的种类
type repeatKind int

const (
	repeatNone repeatKind = iota
	repeatFinite
	repeatInfinite
)

// RepeatPolicy 过渡重复策略
//
// 有限次重复与无限循环是两种不同的取值，不用数值哨兵（如 +Inf）表示无限，
// 避免调用方误对哨兵做算术。无限循环由播放方负责在需要时取消。
type RepeatPolicy struct {
	kind  repeatKind
	count int
}

// NoRepeat 只播放一次
func NoRepeat() RepeatPolicy { return RepeatPolicy{} }

// RepeatForever 无限循环，直到被播放方取消
func RepeatForever() RepeatPolicy { return RepeatPolicy{kind: repeatInfinite} }

// RepeatTimes 在首次播放后再重复 n 次；n <= 0 等同于 NoRepeat
func RepeatTimes(n int) RepeatPolicy {
	if n <= 0 {
		return NoRepeat()
	}
	return RepeatPolicy{kind: repeatFinite, count: n}
}

// IsForever 是否无限循环
func (r RepeatPolicy) IsForever() bool {
	return r.kind == repeatInfinite
}

// Count 额外重复次数；无限循环返回 0，需先检查 IsForever
func (r RepeatPolicy) Count() int {
	if r.kind != repeatFinite {
		return 0
	}
	return r.count
}

// String 便于日志输出
func (r RepeatPolicy) String() string {
	switch r.kind {
	case repeatInfinite:
		return "forever"
	case repeatFinite:
		return strconv.Itoa(r.count)
	default:
		return "none"
	}
}

// TransitionKind 过渡类型
type TransitionKind int

const (
	// TransitionSpring 弹簧过渡（刚度/阻尼/质量）
	TransitionSpring TransitionKind = iota
	// TransitionTween 定时曲线过渡（时长 + 缓动曲线）
	TransitionTween
)

// Transition 过渡参数
//
// 只有 SpringTransition 和 TweenTransition 两种实现，调用方用类型 switch 区分。
type Transition interface {
	Kind() TransitionKind
	isTransition()
}

// DefaultSpringMass 弹簧未指定质量时的默认值
const DefaultSpringMass = 1.0

// SpringTransition 弹簧过渡参数，由播放方自己的弹簧积分器使用
type SpringTransition struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Kind 实现 Transition
func (SpringTransition) Kind() TransitionKind { return TransitionSpring }
func (SpringTransition) isTransition()        {}

// EffectiveMass 返回质量，未设置（<= 0）时返回默认值
func (s SpringTransition) EffectiveMass() float64 {
	if s.Mass <= 0 {
		return DefaultSpringMass
	}
	return s.Mass
}

// AngularFrequency 无阻尼角频率 ω = √(k/m)
func (s SpringTransition) AngularFrequency() float64 {
	if s.Stiffness <= 0 {
		return 0
	}
	return math.Sqrt(s.Stiffness / s.EffectiveMass())
}

// DampingRatio 阻尼比 ζ = c / (2√(k·m))
//
// ζ < 1 欠阻尼（会越过目标值），ζ = 1 临界阻尼，ζ > 1 过阻尼。
func (s SpringTransition) DampingRatio() float64 {
	if s.Stiffness <= 0 {
		return 0
	}
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.EffectiveMass()))
}

// TweenTransition 定时曲线过渡参数
type TweenTransition struct {
	// Duration 时长（秒）
	Duration float64
	// Ease 缓动曲线；零值使用 DefaultEaseName
	Ease EaseCurve
	// Repeat 重复策略
	Repeat RepeatPolicy
}

// Kind 实现 Transition
func (TweenTransition) Kind() TransitionKind { return TransitionTween }
func (TweenTransition) isTransition()        {}

// DefaultEaseName 定时过渡未指定曲线时使用的命名曲线
const DefaultEaseName = "easeInOut"

// EaseCurve 缓动曲线：命名标识符或显式三次贝塞尔控制点，二选一
type EaseCurve struct {
	Name   string
	Bezier *utils.CubicBezier
}

// NamedEase 按名称引用缓动曲线
func NamedEase(name string) EaseCurve {
	return EaseCurve{Name: name}
}

// BezierEase 使用显式控制点 [x1, y1, x2, y2]
func BezierEase(points [4]float64) EaseCurve {
	b := utils.NewCubicBezier(points)
	return EaseCurve{Bezier: &b}
}

// IsZero 是否未指定
func (e EaseCurve) IsZero() bool {
	return e.Name == "" && e.Bezier == nil
}

// IsBezier 是否为显式贝塞尔曲线
func (e EaseCurve) IsBezier() bool {
	return e.Bezier != nil
}

// Func 解析为缓动函数
//
// 返回:
//   - utils.EasingFunc: 缓动函数
//   - error: 名称未注册时返回 utils.ErrUnknownEasing
func (e EaseCurve) Func() (utils.EasingFunc, error) {
	if e.Bezier != nil {
		return e.Bezier.Ease, nil
	}
	name := e.Name
	if name == "" {
		name = DefaultEaseName
	}
	return utils.EasingByName(name)
}

// String 便于日志输出
func (e EaseCurve) String() string {
	if e.Bezier != nil {
		p := e.Bezier.Points()
		parts := make([]string, len(p))
		for i, v := range p {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return "cubicBezier(" + strings.Join(parts, ",") + ")"
	}
	if e.Name == "" {
		return DefaultEaseName
	}
	return e.Name
}

// DefaultTransitionDuration 默认过渡时长（秒）
const DefaultTransitionDuration = 0.3

// DefaultTransition 状态未声明过渡参数时使用，每次返回新值
func DefaultTransition() Transition {
	return TweenTransition{
		Duration: DefaultTransitionDuration,
		Ease:     NamedEase("easeOut"),
	}
}

// VariantState 动画变体中的一个状态（如 hidden / visible / hover）
type VariantState struct {
	// Properties 目标属性值，键为属性名（y、opacity、scale、rotateX ...）
	Properties map[string]PropertyValue
	// Transition 进入该状态时的过渡参数；nil 表示使用 DefaultTransition
	Transition Transition
}

// Property 查询属性
func (s VariantState) Property(name string) (PropertyValue, bool) {
	v, ok := s.Properties[name]
	return v, ok
}

// EffectiveTransition 返回过渡参数，未声明时返回 DefaultTransition
func (s VariantState) EffectiveTransition() Transition {
	if s.Transition == nil {
		return DefaultTransition()
	}
	return s.Transition
}

// Clone 深拷贝
func (s VariantState) Clone() VariantState {
	props := make(map[string]PropertyValue, len(s.Properties))
	for k, v := range s.Properties {
		props[k] = PropertyValue{frames: v.Frames(), keyframed: v.keyframed}
	}
	tr := s.Transition
	if tw, ok := tr.(TweenTransition); ok && tw.Ease.Bezier != nil {
		b := *tw.Ease.Bezier
		tw.Ease.Bezier = &b
		tr = tw
	}
	return VariantState{Properties: props, Transition: tr}
}

// Variant 动画变体：状态名 → 状态
type Variant map[string]VariantState

// State 查询状态
func (v Variant) State(name string) (VariantState, bool) {
	s, ok := v[name]
	return s, ok
}

// Clone 深拷贝
func (v Variant) Clone() Variant {
	out := make(Variant, len(v))
	for name, s := range v {
		out[name] = s.Clone()
	}
	return out
}
