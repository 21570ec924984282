package scenes

import (
	"log"
	"math"

	"github.com/decker502/motionkit/pkg/components"
	"github.com/decker502/motionkit/pkg/config"
	"github.com/decker502/motionkit/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// initialStateName 元素出现前停留的状态：hidden，没有时 rest
func initialStateName(v components.Variant) string {
	for _, name := range []string{config.StateHidden, config.StateRest} {
		if _, ok := v.State(name); ok {
			return name
		}
	}
	return ""
}

// revealStateName 元素进入视口时播放的状态：visible，没有时 animate
func revealStateName(v components.Variant) string {
	for _, name := range []string{config.StateVisible, config.StateAnimate} {
		if _, ok := v.State(name); ok {
			return name
		}
	}
	return ""
}

// restStateName 尚未出现的元素在悬停或按压结束后回到的状态
func restStateName(v components.Variant) string {
	for _, name := range []string{config.StateVisible, config.StateRest, config.StateAnimate} {
		if _, ok := v.State(name); ok {
			return name
		}
	}
	return ""
}

// isLooping 状态是否为无限循环的定时过渡
func isLooping(state components.VariantState) bool {
	tw, ok := state.Transition.(components.TweenTransition)
	return ok && tw.Repeat.IsForever()
}

// variantCard 一个由变体驱动的展示元素
type variantCard struct {
	name    string
	variant components.Variant
	player  *systems.MotionPlayer

	x, y          float64 // 页面坐标左上角
	width, height float64

	current  string // 最近播放的状态
	settled  string // reveal 播放的状态，悬停或按压结束后回到这里
	revealed bool
	hovered  bool
	pressed  bool
}

func newVariantCard(name string, v components.Variant, x, y, w, h float64) *variantCard {
	c := &variantCard{
		name:    name,
		variant: v,
		player:  systems.NewMotionPlayer(nil),
		x:       x,
		y:       y,
		width:   w,
		height:  h,
	}
	if initial := initialStateName(v); initial != "" {
		state, _ := v.State(initial)
		c.player.JumpTo(state)
		c.current = initial
	}
	return c
}

// play 播放指定状态，变体没有该状态时什么也不做
//
// reduced 为 true 时循环状态直接跳到终值，不播放。
func (c *variantCard) play(stateName string, reduced bool) {
	if stateName == "" {
		return
	}
	state, ok := c.variant.State(stateName)
	if !ok {
		return
	}

	c.current = stateName
	if reduced && isLooping(state) {
		c.player.JumpTo(state)
		return
	}
	if err := c.player.Play(state); err != nil {
		log.Printf("[PortfolioScene] %s.%s: %v", c.name, stateName, err)
	}
}

// inView 卡片是否与当前视口相交
func (c *variantCard) inView(scrollY float64) bool {
	top := c.y - scrollY
	return top+c.height > 0 && top < float64(config.ScreenHeight)
}

// contains 页面坐标点是否落在卡片静止矩形内
func (c *variantCard) contains(px, py float64) bool {
	return px >= c.x && px < c.x+c.width && py >= c.y && py < c.y+c.height
}

func (c *variantCard) reveal(reduced bool) {
	c.revealed = true
	c.settled = revealStateName(c.variant)
	c.play(c.settled, reduced)
}

// restState 交互结束后回到的状态；已出现的元素回到出现时的状态（循环会重新开始）
func (c *variantCard) restState() string {
	if c.settled != "" {
		return c.settled
	}
	return restStateName(c.variant)
}

func (c *variantCard) has(stateName string) bool {
	_, ok := c.variant.State(stateName)
	return ok
}

// setHovered 没有 hover 状态的变体只记录悬停，不切换动画
func (c *variantCard) setHovered(hovered, reduced bool) {
	if c.hovered == hovered {
		return
	}
	c.hovered = hovered
	if !c.has(config.StateHover) {
		return
	}
	if hovered {
		c.play(config.StateHover, reduced)
		return
	}
	c.pressed = false
	c.play(c.restState(), reduced)
}

func (c *variantCard) press(reduced bool) {
	if !c.has(config.StateTap) {
		return
	}
	c.pressed = true
	c.play(config.StateTap, reduced)
}

func (c *variantCard) release(reduced bool) {
	if !c.pressed {
		return
	}
	c.pressed = false
	if c.hovered && c.has(config.StateHover) {
		c.play(config.StateHover, reduced)
	} else {
		c.play(c.restState(), reduced)
	}
}

// cardPose 播放器属性到 2D 绘制参数的映射
type cardPose struct {
	OffsetX, OffsetY float64
	ScaleX, ScaleY   float64
	Rotation         float64 // 弧度
	Alpha            float64
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// poseOf 把播放器当前值转换为绘制参数
//
// rotateX / rotateY 用余弦压缩高度 / 宽度模拟翻转，z 转换为额外缩放，
// rotate 和 rotateZ 都作为平面旋转叠加。
func poseOf(p *systems.MotionPlayer) cardPose {
	scale := p.ValueOr("scale") * (1 + p.ValueOr("z")/config.CardDepthScale)
	return cardPose{
		OffsetX:  p.ValueOr("x"),
		OffsetY:  p.ValueOr("y"),
		ScaleX:   scale * p.ValueOr("scaleX") * math.Cos(degToRad(p.ValueOr("rotateY"))),
		ScaleY:   scale * p.ValueOr("scaleY") * math.Cos(degToRad(p.ValueOr("rotateX"))),
		Rotation: degToRad(p.ValueOr("rotate") + p.ValueOr("rotateZ")),
		Alpha:    math.Max(0, math.Min(1, p.ValueOr("opacity"))),
	}
}

// centerGeoM 以 (cx, cy) 为中心应用姿态
func (pose cardPose) centerGeoM(cx, cy float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(pose.ScaleX, pose.ScaleY)
	g.Rotate(pose.Rotation)
	g.Translate(cx+pose.OffsetX, cy+pose.OffsetY)
	return g
}
