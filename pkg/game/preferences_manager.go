package game

import (
	"fmt"
	"log"

	"github.com/decker502/motionkit/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 偏好值范围
const (
	MaxParallaxSpeed = 2.0
	MinThreshold     = 1.0
)

// ViewerPreferences 观看者偏好
// 注意：偏好是全局的，不区分用户
type ViewerPreferences struct {
	ReducedMotion  bool    `yaml:"reducedMotion"`  // 减少动态效果：跳过循环动画
	ParallaxSpeed  float64 `yaml:"parallaxSpeed"`  // 视差速度 0.0 ~ 2.0
	FadeThreshold  float64 `yaml:"fadeThreshold"`  // 淡出距离（像素），>= 1
	ScaleThreshold float64 `yaml:"scaleThreshold"` // 缩放距离（像素），>= 1
	LastSection    int     `yaml:"lastSection"`    // 上次浏览的区块
}

// DefaultPreferences 返回默认偏好
func DefaultPreferences() *ViewerPreferences {
	return &ViewerPreferences{
		ReducedMotion:  false,
		ParallaxSpeed:  utils.DefaultParallaxSpeed,
		FadeThreshold:  utils.DefaultFadeThreshold,
		ScaleThreshold: utils.DefaultScaleThreshold,
		LastSection:    0,
	}
}

// PreferencesManager 偏好管理器
// 负责偏好的加载、保存和内存管理
type PreferencesManager struct {
	gdataManager *gdata.Manager     // 可为 nil（降级模式）
	prefs        *ViewerPreferences // 当前偏好
	defaults     ViewerPreferences  // 无存档或存档损坏时使用
}

const (
	preferencesObject   = "preferences"
	preferencesProperty = "global"
)

// NewPreferencesManager 创建偏好管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存偏好）
//
// 返回：
//   - *PreferencesManager: 偏好管理器实例，加载失败时使用默认偏好
func NewPreferencesManager(gdataManager *gdata.Manager) *PreferencesManager {
	return NewPreferencesManagerWithDefaults(gdataManager, *DefaultPreferences())
}

// NewPreferencesManagerWithDefaults 创建偏好管理器，无存档时使用 defaults
//
// defaults 同样经过 setter 的范围限制（如配置文件给出的滚动参数）。
func NewPreferencesManagerWithDefaults(gdataManager *gdata.Manager, defaults ViewerPreferences) *PreferencesManager {
	pm := &PreferencesManager{gdataManager: gdataManager}
	pm.prefs = &defaults
	pm.clampAll()
	pm.defaults = *pm.prefs

	if err := pm.Load(); err != nil {
		log.Printf("[PreferencesManager] Warning: Failed to load preferences: %v (using defaults)", err)
	}
	return pm
}

// Defaults 返回无存档时使用的偏好
func (pm *PreferencesManager) Defaults() ViewerPreferences {
	return pm.defaults
}

// Load 从 gdata 加载偏好
//
// gdataManager 为 nil 或数据不存在时使用默认偏好，存档中缺少的字段也取默认值。
// 读到的数值会按 setter 的规则重新收敛到合法范围。
func (pm *PreferencesManager) Load() error {
	if pm.gdataManager == nil || !pm.gdataManager.ObjectPropExists(preferencesObject, preferencesProperty) {
		pm.reset()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		pm.reset()
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := pm.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		pm.reset()
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	pm.prefs = &loaded
	pm.clampAll()
	log.Printf("[PreferencesManager] Preferences loaded")
	return nil
}

// reset 回到默认偏好
func (pm *PreferencesManager) reset() {
	prefs := pm.defaults
	pm.prefs = &prefs
}

// clampAll 按 setter 的规则把当前偏好收敛到合法范围
func (pm *PreferencesManager) clampAll() {
	pm.SetParallaxSpeed(pm.prefs.ParallaxSpeed)
	pm.SetFadeThreshold(pm.prefs.FadeThreshold)
	pm.SetScaleThreshold(pm.prefs.ScaleThreshold)
	pm.SetLastSection(pm.prefs.LastSection)
}

// Save 保存偏好到 gdata，降级模式下直接返回 nil
func (pm *PreferencesManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[PreferencesManager] Preferences saved")
	return nil
}

// Get 获取当前偏好（返回副本）
func (pm *PreferencesManager) Get() ViewerPreferences {
	return *pm.prefs
}

// SetReducedMotion 设置是否减少动态效果
//
// 注意：仅修改内存中的偏好，需调用 Save() 方法持久化
func (pm *PreferencesManager) SetReducedMotion(enabled bool) {
	pm.prefs.ReducedMotion = enabled
}

// SetParallaxSpeed 设置视差速度，限制在 0.0 ~ 2.0
func (pm *PreferencesManager) SetParallaxSpeed(speed float64) {
	pm.prefs.ParallaxSpeed = clamp(speed, 0, MaxParallaxSpeed)
}

// SetFadeThreshold 设置淡出距离，最小为 1
func (pm *PreferencesManager) SetFadeThreshold(threshold float64) {
	pm.prefs.FadeThreshold = max(threshold, MinThreshold)
}

// SetScaleThreshold 设置缩放距离，最小为 1
func (pm *PreferencesManager) SetScaleThreshold(threshold float64) {
	pm.prefs.ScaleThreshold = max(threshold, MinThreshold)
}

// SetLastSection 记录上次浏览的区块，负数按 0 处理
func (pm *PreferencesManager) SetLastSection(section int) {
	pm.prefs.LastSection = max(section, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
