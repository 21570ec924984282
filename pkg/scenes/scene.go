package scenes

import (
	"github.com/decker502/motionkit/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// 已注册场景名
const (
	SceneNameLoading   = "loading"
	SceneNamePortfolio = "portfolio"
)
