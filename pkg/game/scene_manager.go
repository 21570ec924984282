package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数
// 场景按名字注册，切换时才创建，避免 game 包依赖 scenes 包
type SceneFactory func() Scene

// SceneManager controls which scene is active.
// Only the active scene's Update and Draw are called.
type SceneManager struct {
	currentScene Scene
	currentName  string
	factories    map[string]SceneFactory
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
	}
}

// Register 注册场景工厂，同名覆盖
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	sm.factories[name] = factory
}

// SceneNames 返回已注册的场景名（已排序）
func (sm *SceneManager) SceneNames() []string {
	names := make([]string, 0, len(sm.factories))
	for name := range sm.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build 创建已注册的场景但不切换
//
// 返回：
//   - error: 场景未注册或工厂返回 nil
func (sm *SceneManager) Build(name string) (Scene, error) {
	factory, ok := sm.factories[name]
	if !ok {
		return nil, fmt.Errorf("scene %q is not registered", name)
	}
	scene := factory()
	if scene == nil {
		return nil, fmt.Errorf("scene factory %q returned nil", name)
	}
	return scene, nil
}

// Switch 创建并切换到已注册的场景，失败时保留当前场景
func (sm *SceneManager) Switch(name string) error {
	scene, err := sm.Build(name)
	if err != nil {
		return err
	}
	sm.Activate(name, scene)
	return nil
}

// Activate 切换到一个已创建的具名场景（通常来自 Build）
func (sm *SceneManager) Activate(name string, scene Scene) {
	sm.currentScene = scene
	sm.currentName = name
	log.Printf("[SceneManager] 切换到场景: %s", name)
}

// SwitchTo changes the active scene to an already built scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentName = ""
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回通过 Switch 切换到的场景名，SwitchTo 设置的场景返回空串
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// SaveOnExit 让实现了 Saveable 的当前场景保存状态
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}

// Update updates the active scene; deltaTime is in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
