package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the showcase (splash, portfolio).
// Each scene owns its update and rendering logic.
type Scene interface {
	// Update advances the scene; deltaTime is in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出时持久化状态（如偏好中的 LastSection）
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
