package game

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene records calls made by the SceneManager.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	saveResult   bool
	saveCalled   bool
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) SaveOnExit() bool {
	m.saveCalled = true
	return m.saveResult
}

// plainScene 不实现 Saveable
type plainScene struct{}

func (plainScene) Update(float64)     {}
func (plainScene) Draw(*ebiten.Image) {}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected current scene to be nil initially")
	}
	if len(sm.SceneNames()) != 0 {
		t.Errorf("Expected no registered scenes, got %v", sm.SceneNames())
	}
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016
	sm.Update(deltaTime)
	sm.Draw(nil)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	// 没有活动场景时不应 panic
	sm.Update(0.016)
	sm.Draw(nil)
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without a scene should succeed")
	}
}

func TestSceneManagerSwitchByName(t *testing.T) {
	sm := NewSceneManager()
	created := 0
	sm.Register("splash", func() Scene {
		created++
		return &MockScene{}
	})
	sm.Register("portfolio", func() Scene { return &MockScene{} })
	sm.Register("broken", func() Scene { return nil })

	if got, want := sm.SceneNames(), []string{"broken", "portfolio", "splash"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SceneNames() = %v, want %v", got, want)
	}

	if err := sm.Switch("splash"); err != nil {
		t.Fatalf("Switch(splash) error: %v", err)
	}
	if sm.CurrentName() != "splash" || created != 1 {
		t.Errorf("CurrentName() = %q, created = %d", sm.CurrentName(), created)
	}
	first := sm.GetCurrentScene()

	// 每次切换都创建新实例
	if err := sm.Switch("splash"); err != nil {
		t.Fatalf("Switch(splash) error: %v", err)
	}
	if sm.GetCurrentScene() == first || created != 2 {
		t.Error("Switch should build a fresh scene every time")
	}

	if err := sm.Switch("missing"); err == nil {
		t.Error("Switch to unregistered scene should fail")
	}
	if err := sm.Switch("broken"); err == nil {
		t.Error("Switch to a nil-returning factory should fail")
	}
	if sm.CurrentName() != "splash" {
		t.Errorf("failed Switch must keep the current scene, got %q", sm.CurrentName())
	}

	// Build 不改变当前场景
	built, err := sm.Build("portfolio")
	if err != nil || built == nil {
		t.Fatalf("Build(portfolio) = %v, %v", built, err)
	}
	if sm.CurrentName() != "splash" {
		t.Errorf("Build must not switch scenes, current = %q", sm.CurrentName())
	}
	sm.Activate("portfolio", built)
	if sm.GetCurrentScene() != built || sm.CurrentName() != "portfolio" {
		t.Error("Activate should make the built scene current")
	}
}

func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)
	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}
	if scene2.updateCalled {
		t.Error("Scene2's Update should not have been called yet")
	}

	sm.SwitchTo(scene2)
	sm.Update(0.016)
	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
	if sm.CurrentName() != "" {
		t.Errorf("SwitchTo should clear the scene name, got %q", sm.CurrentName())
	}
}

func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()

	sm.SwitchTo(plainScene{})
	if !sm.SaveOnExit() {
		t.Error("non-Saveable scene should report success")
	}

	scene := &MockScene{saveResult: false}
	sm.SwitchTo(scene)
	if sm.SaveOnExit() {
		t.Error("SaveOnExit should forward the scene's failure")
	}
	if !scene.saveCalled {
		t.Error("Saveable scene was not asked to save")
	}
}
