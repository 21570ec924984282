package systems

import (
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/harmonica"
	"github.com/decker502/motionkit/pkg/components"
	"github.com/decker502/motionkit/pkg/utils"
)

const (
	// SpringRestSpeed 速度低于该值且位移低于 SpringRestDelta 时视为静止
	SpringRestSpeed = 0.01

	// SpringRestDelta 静止判定的位移阈值
	SpringRestDelta = 0.005
)

// propertyTrack 单个属性的播放轨道
type propertyTrack struct {
	from     float64   // 播放开始时的值（单值属性插值起点）
	frames   []float64 // 关键帧；单值属性只有一个目标值
	keyed    bool      // 是否按关键帧播放（起点取 frames[0]）
	velocity float64   // 弹簧速度
}

func (tr *propertyTrack) target() float64 {
	return tr.frames[len(tr.frames)-1]
}

// sample 按缓动后的进度 eased 和原始进度 progress 采样
//
// 关键帧被均分为 n-1 段，每段在自己的时间片内独立缓动。
func (tr *propertyTrack) sample(progress float64, ease utils.EasingFunc) float64 {
	if !tr.keyed {
		return utils.Lerp(tr.from, tr.frames[0], ease(progress))
	}

	segments := len(tr.frames) - 1
	if segments == 0 {
		return tr.frames[0]
	}
	pos := progress * float64(segments)
	idx := int(math.Floor(pos))
	if idx < 0 {
		idx = 0
	}
	if idx >= segments {
		idx = segments - 1
	}
	local := pos - float64(idx)
	return utils.Lerp(tr.frames[idx], tr.frames[idx+1], ease(local))
}

// MotionPlayer 动画状态播放器
//
// 把变体状态中的目标值和过渡参数转换为随时间变化的属性值。
// 定时曲线过渡按时长和缓动函数插值，弹簧过渡用阻尼振子积分。
// 无限循环的过渡会一直播放，直到调用 Stop 或 Play 新的状态。
//
// 播放器不是并发安全的，每个动画元素各持有一个实例。
type MotionPlayer struct {
	values map[string]float64
	tracks map[string]*propertyTrack

	transition components.Transition
	ease       utils.EasingFunc
	spring     harmonica.Spring // 按 springDT 预计算的弹簧系数
	springDT   float64
	elapsed    float64
	cycle      int
	animating  bool
}

// NewMotionPlayer 创建播放器
//
// 参数:
//   - initial: 初始属性值，可为 nil
func NewMotionPlayer(initial map[string]float64) *MotionPlayer {
	values := make(map[string]float64, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &MotionPlayer{
		values: values,
		tracks: make(map[string]*propertyTrack),
	}
}

// NewMotionPlayerAt 创建停在指定状态上的播放器（如 hidden / rest）
func NewMotionPlayerAt(state components.VariantState) *MotionPlayer {
	p := NewMotionPlayer(nil)
	p.JumpTo(state)
	return p
}

// DefaultPropertyValue 属性未初始化时的默认值：opacity 和 scale 为 1，其余为 0
func DefaultPropertyValue(name string) float64 {
	switch name {
	case "opacity", "scale", "scaleX", "scaleY":
		return 1
	}
	return 0
}

// Play 开始向目标状态过渡
//
// 正在进行的过渡（包括无限循环）会被取消，新过渡从当前值开始。
// 状态中未出现的属性保持当前值。
//
// 返回:
//   - error: 缓动曲线无法解析或时长不是有限值时返回错误，此时播放器状态不变
func (p *MotionPlayer) Play(state components.VariantState) error {
	transition := state.EffectiveTransition()

	var ease utils.EasingFunc
	if tw, ok := transition.(components.TweenTransition); ok {
		if math.IsNaN(tw.Duration) || math.IsInf(tw.Duration, 0) {
			return fmt.Errorf("tween duration must be finite, got %v", tw.Duration)
		}
		fn, err := tw.Ease.Func()
		if err != nil {
			return fmt.Errorf("resolve ease %s: %w", tw.Ease, err)
		}
		ease = fn
	}

	tracks := make(map[string]*propertyTrack, len(state.Properties))
	for name, value := range state.Properties {
		if value.Len() == 0 {
			continue
		}
		current := p.valueOrDefault(name)
		track := &propertyTrack{
			from:   current,
			frames: value.Frames(),
			keyed:  value.IsKeyframes() && value.Len() > 1,
		}
		if old, ok := p.tracks[name]; ok && p.animating {
			track.velocity = old.velocity
		}
		tracks[name] = track
		p.values[name] = current
	}

	p.tracks = tracks
	p.transition = transition
	p.ease = ease
	p.springDT = 0
	p.elapsed = 0
	p.cycle = 0
	p.animating = len(tracks) > 0

	// 零时长直接到达终点
	if tw, ok := transition.(components.TweenTransition); ok && tw.Duration <= 0 {
		p.finish()
	}
	return nil
}

// JumpTo 不经过渡直接停在目标状态的终值上
func (p *MotionPlayer) JumpTo(state components.VariantState) {
	p.Stop()
	for name, value := range state.Properties {
		if value.Len() == 0 {
			continue
		}
		p.values[name] = value.Final()
	}
}

// Stop 取消当前过渡，属性停在当前值
func (p *MotionPlayer) Stop() {
	p.animating = false
	p.tracks = make(map[string]*propertyTrack)
	p.transition = nil
	p.ease = nil
}

// Update 推进动画
//
// 参数:
//   - dt: 距上一帧的时间（秒），<= 0 时不做任何事
func (p *MotionPlayer) Update(dt float64) {
	if !p.animating || dt <= 0 {
		return
	}

	switch tr := p.transition.(type) {
	case components.TweenTransition:
		p.updateTween(tr, dt)
	case components.SpringTransition:
		p.updateSpring(tr, dt)
	}
}

func (p *MotionPlayer) updateTween(tr components.TweenTransition, dt float64) {
	p.elapsed += dt
	if p.elapsed >= tr.Duration {
		// 一帧可能跨过多个周期，按整除一次性结算
		wraps := math.Floor(p.elapsed / tr.Duration)
		if !tr.Repeat.IsForever() && wraps > float64(tr.Repeat.Count()-p.cycle) {
			p.finish()
			return
		}
		p.cycle = addCycles(p.cycle, wraps)
		p.elapsed = math.Mod(p.elapsed, tr.Duration)
	}

	progress := p.elapsed / tr.Duration
	for name, track := range p.tracks {
		p.values[name] = track.sample(progress, p.ease)
	}
}

// addCycles 累加周期数，无限循环时在 MaxInt32 处饱和
func addCycles(cycle int, wraps float64) int {
	if wraps >= float64(math.MaxInt32-cycle) {
		return math.MaxInt32
	}
	return cycle + int(wraps)
}

// updateSpring 用 harmonica 的解析解推进弹簧，任意 dt 都不需要子步
func (p *MotionPlayer) updateSpring(tr components.SpringTransition, dt float64) {
	omega := tr.AngularFrequency()
	if omega <= 0 {
		p.finish()
		return
	}
	if dt != p.springDT {
		p.spring = harmonica.NewSpring(dt, omega, tr.DampingRatio())
		p.springDT = dt
	}

	for name, track := range p.tracks {
		p.values[name], track.velocity = p.spring.Update(p.values[name], track.velocity, track.target())
	}

	for name, track := range p.tracks {
		if math.Abs(track.velocity) >= SpringRestSpeed ||
			math.Abs(p.values[name]-track.target()) >= SpringRestDelta {
			return
		}
	}
	p.finish()
}

// finish 所有属性停在终值，结束过渡
func (p *MotionPlayer) finish() {
	for name, track := range p.tracks {
		p.values[name] = track.target()
		track.velocity = 0
	}
	p.animating = false
}

func (p *MotionPlayer) valueOrDefault(name string) float64 {
	if v, ok := p.values[name]; ok {
		return v
	}
	return DefaultPropertyValue(name)
}

// Value 查询属性当前值
func (p *MotionPlayer) Value(name string) (float64, bool) {
	v, ok := p.values[name]
	return v, ok
}

// ValueOr 查询属性当前值，未设置时返回 DefaultPropertyValue
func (p *MotionPlayer) ValueOr(name string) float64 {
	return p.valueOrDefault(name)
}

// Values 返回所有属性当前值的副本
func (p *MotionPlayer) Values() map[string]float64 {
	out := make(map[string]float64, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// PropertyNames 返回已设置的属性名（已排序）
func (p *MotionPlayer) PropertyNames() []string {
	names := make([]string, 0, len(p.values))
	for name := range p.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsAnimating 是否正在过渡
func (p *MotionPlayer) IsAnimating() bool {
	return p.animating
}

// Cycle 当前是第几轮重复（从 0 开始）
func (p *MotionPlayer) Cycle() int {
	return p.cycle
}
