package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerState 一帧内统一的指针状态（鼠标左键或第一个触摸点）
type PointerState struct {
	X, Y   int
	DX, DY int // 相对上一帧的位移，仅在按住时有效

	Pressed      bool
	JustPressed  bool
	JustReleased bool

	// Touch 本帧输入来自触摸
	Touch bool
	// Hovering 指针位置可用于悬停判断
	// 鼠标始终可悬停；触摸只在按住期间可悬停
	Hovering bool
}

// pointerSample 一帧的原始指针采样
type pointerSample struct {
	x, y  int
	down  bool
	touch bool
}

// PointerTracker 跟踪鼠标和触摸输入，给出按下、释放和拖动位移
//
// 触摸释放的那一帧已经读不到触摸坐标，此时沿用最后一次触摸位置。
type PointerTracker struct {
	state     PointerState
	lastTouch bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Update 读取本帧输入并返回指针状态，每个 tick 调用一次
func (pt *PointerTracker) Update() PointerState {
	return pt.apply(readPointer(pt.lastTouch))
}

// State 返回最近一次 Update 的结果
func (pt *PointerTracker) State() PointerState {
	return pt.state
}

// readPointer 优先读取触摸，没有触摸时读取鼠标
//
// 上一帧是触摸而本帧触摸已结束时，返回一个位置无效的释放采样。
func readPointer(wasTouch bool) pointerSample {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return pointerSample{x: x, y: y, down: true, touch: true}
	}
	if wasTouch {
		return pointerSample{x: -1, y: -1, touch: true}
	}
	x, y := ebiten.CursorPosition()
	return pointerSample{x: x, y: y, down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)}
}

// apply 根据采样推进状态
func (pt *PointerTracker) apply(s pointerSample) PointerState {
	prev := pt.state
	next := PointerState{
		X:        s.x,
		Y:        s.y,
		Pressed:  s.down,
		Touch:    s.touch,
		Hovering: s.down || !s.touch,
	}

	// 触摸刚释放：保留最后一次触摸坐标
	if s.touch && !s.down {
		next.X, next.Y = prev.X, prev.Y
	}

	next.JustPressed = s.down && !prev.Pressed
	next.JustReleased = !s.down && prev.Pressed
	if s.down && prev.Pressed {
		next.DX, next.DY = next.X-prev.X, next.Y-prev.Y
	}

	pt.state = next
	pt.lastTouch = s.touch && s.down
	return next
}
