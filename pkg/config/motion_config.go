package config

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/decker502/motionkit/pkg/components"
	"github.com/decker502/motionkit/pkg/utils"
	"gopkg.in/yaml.v3"
)

// ScrollConfig 滚动映射参数
type ScrollConfig struct {
	// ParallaxSpeed 视差速度
	ParallaxSpeed float64 `yaml:"parallaxSpeed"`

	// FadeThreshold 淡出阈值（像素）
	FadeThreshold float64 `yaml:"fadeThreshold"`

	// ScaleThreshold 缩放阈值（像素）
	ScaleThreshold float64 `yaml:"scaleThreshold"`
}

// DefaultScrollConfig 返回默认滚动参数
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{
		ParallaxSpeed:  utils.DefaultParallaxSpeed,
		FadeThreshold:  utils.DefaultFadeThreshold,
		ScaleThreshold: utils.DefaultScaleThreshold,
	}
}

// Parallax 按配置的速度计算视差位移
func (s ScrollConfig) Parallax(scrollY float64) float64 {
	return utils.ParallaxWithSpeed(scrollY, s.ParallaxSpeed)
}

// Fade 按配置的阈值计算淡出透明度
func (s ScrollConfig) Fade(scrollY float64) float64 {
	return utils.FadeOnScrollWithThreshold(scrollY, s.FadeThreshold)
}

// Scale 按配置的阈值计算缩放
func (s ScrollConfig) Scale(scrollY float64) float64 {
	return utils.ScaleOnScrollWithThreshold(scrollY, s.ScaleThreshold)
}

// Validate 阈值必须为正，否则映射会除以零
func (s ScrollConfig) Validate() error {
	if s.FadeThreshold <= 0 {
		return fmt.Errorf("fadeThreshold must be > 0, got %.2f", s.FadeThreshold)
	}
	if s.ScaleThreshold <= 0 {
		return fmt.Errorf("scaleThreshold must be > 0, got %.2f", s.ScaleThreshold)
	}
	return nil
}

// MotionConfig 动画配置
//
// 在内置变体表之上叠加配置文件中的覆盖项。
// 覆盖以状态为单位：文件中出现的状态整体替换内置状态，新的变体名直接添加。
//
// 配置文件示例:
//
//	physics:
//	  gravity: 1200
//	scroll:
//	  parallaxSpeed: 0.3
//	variants:
//	  cardHover:
//	    hover:
//	      scale: 1.08
//	      transition: {duration: 0.25, ease: easeOut}
type MotionConfig struct {
	Physics   PhysicsConfig                 `yaml:"physics"`
	Scroll    ScrollConfig                  `yaml:"scroll"`
	Overrides map[string]components.Variant `yaml:"variants"`
}

// DefaultMotionConfig 返回只包含内置数据的配置
func DefaultMotionConfig() *MotionConfig {
	return &MotionConfig{
		Physics: DefaultPhysicsConfig(),
		Scroll:  DefaultScrollConfig(),
	}
}

// LoadMotionConfig 加载动画配置文件
//
// 参数:
//   - path: 配置文件路径（如 "data/motion.yaml"）
//
// 返回:
//   - *MotionConfig: 加载成功后的配置，未出现的字段保留默认值
//   - error: 读取、解析或验证失败时返回错误
func LoadMotionConfig(path string) (*MotionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read motion config: %w", err)
	}

	config, err := ParseMotionConfig(data)
	if err != nil {
		return nil, err
	}

	log.Printf("[MotionConfig] Loaded motion config '%s' (overrides=%d, gravity=%.0f)",
		path, len(config.Overrides), config.Physics.Gravity)
	return config, nil
}

// ParseMotionConfig 从 YAML 数据解析动画配置
func ParseMotionConfig(data []byte) (*MotionConfig, error) {
	config := DefaultMotionConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse motion config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid motion config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *MotionConfig) Validate() error {
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("physics: %w", err)
	}
	if err := c.Scroll.Validate(); err != nil {
		return fmt.Errorf("scroll: %w", err)
	}

	for _, variantName := range sortedVariantNames(c.Overrides) {
		variant := c.Overrides[variantName]
		if len(variant) == 0 {
			return fmt.Errorf("variant %q has no states", variantName)
		}
		for stateName, state := range variant {
			if err := ValidateVariantState(state); err != nil {
				return fmt.Errorf("variant %s.%s: %w", variantName, stateName, err)
			}
		}
	}
	return nil
}

// ValidateVariantState 验证单个动画状态
//
// 检查：
//   - 关键帧序列不能为空，取值必须有限
//   - 弹簧：参数有限，stiffness > 0，damping >= 0，mass > 0
//   - 定时曲线：duration 有限且 >= 0，无限循环时 duration > 0，
//     命名曲线必须已注册，贝塞尔控制点 x 在 [0, 1] 内
func ValidateVariantState(s components.VariantState) error {
	for name, value := range s.Properties {
		if value.Len() == 0 {
			return fmt.Errorf("property %q has no keyframes", name)
		}
		for _, v := range value.Frames() {
			if !isFinite(v) {
				return fmt.Errorf("property %q has non-finite value %v", name, v)
			}
		}
	}

	switch tr := s.Transition.(type) {
	case nil:
		return nil
	case components.SpringTransition:
		if !isFinite(tr.Stiffness) || !isFinite(tr.Damping) || !isFinite(tr.Mass) {
			return fmt.Errorf("spring parameters must be finite, got stiffness=%v damping=%v mass=%v",
				tr.Stiffness, tr.Damping, tr.Mass)
		}
		if tr.Stiffness <= 0 {
			return fmt.Errorf("spring stiffness must be > 0, got %.2f", tr.Stiffness)
		}
		if tr.Damping < 0 {
			return fmt.Errorf("spring damping must be >= 0, got %.2f", tr.Damping)
		}
		if tr.Mass <= 0 {
			return fmt.Errorf("spring mass must be > 0, got %.2f", tr.Mass)
		}
	case components.TweenTransition:
		if math.IsNaN(tr.Duration) || math.IsInf(tr.Duration, 0) || tr.Duration < 0 {
			return fmt.Errorf("duration must be a finite value >= 0, got %v", tr.Duration)
		}
		if tr.Duration == 0 && tr.Repeat.IsForever() {
			return fmt.Errorf("repeat: forever requires duration > 0")
		}
		if tr.Ease.IsBezier() {
			b := tr.Ease.Bezier
			if b.X1 < 0 || b.X1 > 1 || b.X2 < 0 || b.X2 > 1 {
				return fmt.Errorf("bezier x control values must be within [0, 1], got %v", b.Points())
			}
		} else if _, err := tr.Ease.Func(); err != nil {
			return err
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Variants 返回内置变体与覆盖项合并后的表（深拷贝）
func (c *MotionConfig) Variants() map[string]components.Variant {
	merged := BuiltinVariants()
	for variantName, variant := range c.Overrides {
		target, ok := merged[variantName]
		if !ok {
			target = make(components.Variant, len(variant))
			merged[variantName] = target
		}
		for stateName, state := range variant {
			target[stateName] = state.Clone()
		}
	}
	return merged
}

// LookupState 在合并后的表中查询状态
func (c *MotionConfig) LookupState(variant, state string) (components.VariantState, error) {
	if override, ok := c.Overrides[variant]; ok {
		if s, ok := override[state]; ok {
			return s.Clone(), nil
		}
	}
	if _, ok := builtinVariants[variant]; !ok {
		if _, ok := c.Overrides[variant]; ok {
			return components.VariantState{}, fmt.Errorf("%w: %s.%s", ErrUnknownState, variant, state)
		}
	}
	return LookupState(variant, state)
}
