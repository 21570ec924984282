package systems

import (
	"math"

	"github.com/decker502/motionkit/pkg/config"
)

const (
	// DropRestSpeed 落地反弹后竖直速度低于该值（像素/秒）时停止弹跳
	DropRestSpeed = 30.0

	// DropMinSlideSpeed 地面滑动速度低于该值（像素/秒）时停止滑动
	DropMinSlideSpeed = 1.0
)

// DropBody 受重力下落并在地面反弹的物体
//
// 使用 config.PhysicsConfig 中的重力、反弹、摩擦、空气阻力参数。
// 坐标系 Y 轴向下，floorY 为地面高度。
type DropBody struct {
	X, Y   float64
	VX, VY float64

	onFloor bool
}

// NewDropBody 在指定位置创建静止物体
func NewDropBody(x, y float64) *DropBody {
	return &DropBody{X: x, Y: y}
}

// Step 推进一步物理模拟
//
// 参数:
//   - cfg: 物理参数
//   - dt: 时间步长（秒），<= 0 时不做任何事
//   - floorY: 地面 Y 坐标
func (b *DropBody) Step(cfg config.PhysicsConfig, dt, floorY float64) {
	if dt <= 0 {
		return
	}

	b.VY += cfg.Gravity * dt
	b.VX *= cfg.AirResistance
	b.VY *= cfg.AirResistance

	b.X += b.VX * dt
	b.Y += b.VY * dt

	b.onFloor = false
	if b.Y < floorY {
		return
	}

	// 落地：反弹并施加地面摩擦
	b.Y = floorY
	b.onFloor = true
	if b.VY > 0 {
		b.VY = -b.VY * cfg.Bounce
		if -b.VY < DropRestSpeed {
			b.VY = 0
		}
	}
	b.VX *= cfg.Friction
	if math.Abs(b.VX) < DropMinSlideSpeed {
		b.VX = 0
	}
}

// Drop 从指定高度重新开始下落
func (b *DropBody) Drop(x, y, vx float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = vx, 0
	b.onFloor = false
}

// OnFloor 上一步结束时是否接触地面
func (b *DropBody) OnFloor() bool {
	return b.onFloor
}

// AtRest 是否已静止在地面上
func (b *DropBody) AtRest() bool {
	return b.onFloor && b.VY == 0 && b.VX == 0
}
