// Package app 提供展示应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/motionkit/pkg/config"
	"github.com/decker502/motionkit/pkg/embedded"
	"github.com/decker502/motionkit/pkg/game"
	"github.com/decker502/motionkit/pkg/scenes"
	"github.com/decker502/motionkit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	// AppName gdata 存储目录名
	AppName = "motionkit"

	// DefaultConfigPath 嵌入的默认动画配置
	DefaultConfigPath = "data/motion.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 动画配置文件路径，为空时使用嵌入的 data/motion.yaml
	ConfigPath string
	// PhysicsPath 单独的物理参数文件，非空时整体替换动画配置中的 physics 段
	PhysicsPath string
	// SkipLoadingScene 跳过启动画面，直接进入展示页
	SkipLoadingScene bool
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadMotionConfig 按优先级加载动画配置：命令行路径、嵌入文件、内置默认值
func LoadMotionConfig(path string) (*config.MotionConfig, error) {
	if path != "" {
		return config.LoadMotionConfig(path)
	}

	if embedded.Exists(DefaultConfigPath) {
		data, err := embedded.ReadFile(DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded motion config: %w", err)
		}
		cfg, err := config.ParseMotionConfig(data)
		if err != nil {
			return nil, fmt.Errorf("invalid embedded motion config: %w", err)
		}
		log.Printf("[App] Using embedded %s", DefaultConfigPath)
		return cfg, nil
	}

	log.Printf("[App] No motion config found, using built-in defaults")
	return config.DefaultMotionConfig(), nil
}

// loadConfigs 加载动画配置，再按需用单独的物理参数文件替换 physics 段
func loadConfigs(cfg Config) (*config.MotionConfig, error) {
	motionConfig, err := LoadMotionConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("动画配置加载失败: %w", err)
	}
	if cfg.PhysicsPath == "" {
		return motionConfig, nil
	}

	physics, err := config.LoadPhysicsConfig(cfg.PhysicsPath)
	if err != nil {
		return nil, fmt.Errorf("物理配置加载失败: %w", err)
	}
	motionConfig.Physics = physics
	log.Printf("[App] Physics overridden by %s: gravity=%.0f bounce=%.2f",
		cfg.PhysicsPath, physics.Gravity, physics.Bounce)
	return motionConfig, nil
}

// PreferenceDefaults 用配置文件中的滚动参数作为偏好默认值
func PreferenceDefaults(cfg *config.MotionConfig) game.ViewerPreferences {
	defaults := *game.DefaultPreferences()
	defaults.ParallaxSpeed = cfg.Scroll.ParallaxSpeed
	defaults.FadeThreshold = cfg.Scroll.FadeThreshold
	defaults.ScaleThreshold = cfg.Scroll.ScaleThreshold
	return defaults
}

// NewApp 创建并初始化展示应用
//
// 使用嵌入配置前，需要先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	motionConfig, err := loadConfigs(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] %d variants available", len(motionConfig.Variants()))

	// 偏好存储不可用时以内存模式运行
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, preferences will not persist: %v", err)
		gdataManager = nil
	}
	prefs := game.NewPreferencesManagerWithDefaults(gdataManager, PreferenceDefaults(motionConfig))

	sceneManager := game.NewSceneManager()
	sceneManager.Register(scenes.SceneNamePortfolio, func() game.Scene {
		return scenes.NewPortfolioScene(motionConfig, prefs)
	})
	sceneManager.Register(scenes.SceneNameLoading, func() game.Scene {
		return scenes.NewLoadingScene(sceneManager, scenes.SceneNamePortfolio)
	})

	start := scenes.SceneNameLoading
	if cfg.SkipLoadingScene {
		log.Printf("[App] SkipLoadingScene enabled")
		start = scenes.SceneNamePortfolio
	}
	if err := sceneManager.Switch(start); err != nil {
		return nil, err
	}

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑，每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭时保存偏好
	if ebiten.IsWindowBeingClosed() {
		if !a.sceneManager.SaveOnExit() {
			log.Printf("[App] Failed to save state on exit")
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时用黑色 letterbox，并以线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
