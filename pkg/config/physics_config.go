package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 物理模拟默认参数
const (
	// DefaultGravity 重力加速度（像素/秒²）
	DefaultGravity = 980.0

	// DefaultBounce 落地反弹系数（每次落地保留的速度比例）
	DefaultBounce = 0.7

	// DefaultFriction 地面摩擦系数（每步保留的水平速度比例）
	DefaultFriction = 0.98

	// DefaultAirResistance 空气阻力系数（每步保留的速度比例）
	DefaultAirResistance = 0.99
)

// PhysicsConfig 物理模拟参数
//
// 纯数据，本身没有行为；由调用方自己的物理步进使用。
// 除 Gravity 外均为 [0, 1] 内的无量纲乘法系数。
//
// 配置文件示例:
//
//	physics:
//	  gravity: 980
//	  bounce: 0.7
//	  friction: 0.98
//	  airResistance: 0.99
type PhysicsConfig struct {
	// Gravity 重力加速度（像素/秒²）
	Gravity float64 `yaml:"gravity"`

	// Bounce 反弹系数
	Bounce float64 `yaml:"bounce"`

	// Friction 摩擦系数
	Friction float64 `yaml:"friction"`

	// AirResistance 空气阻力系数
	AirResistance float64 `yaml:"airResistance"`
}

// DefaultPhysicsConfig 返回默认物理参数
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity:       DefaultGravity,
		Bounce:        DefaultBounce,
		Friction:      DefaultFriction,
		AirResistance: DefaultAirResistance,
	}
}

// LoadPhysicsConfig 加载物理参数配置
//
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/physics.yaml"）
//
// 返回:
//   - PhysicsConfig: 加载后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadPhysicsConfig(path string) (PhysicsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PhysicsConfig{}, fmt.Errorf("failed to read physics config: %w", err)
	}

	config := DefaultPhysicsConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return PhysicsConfig{}, fmt.Errorf("failed to parse physics config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return PhysicsConfig{}, fmt.Errorf("invalid physics config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 重力不能为负
//   - 反弹、摩擦、空气阻力系数必须在 [0, 1] 内
func (c PhysicsConfig) Validate() error {
	if c.Gravity < 0 {
		return fmt.Errorf("gravity must be >= 0, got %.2f", c.Gravity)
	}

	coefficients := []struct {
		name  string
		value float64
	}{
		{"bounce", c.Bounce},
		{"friction", c.Friction},
		{"airResistance", c.AirResistance},
	}
	for _, coef := range coefficients {
		if coef.value < 0 || coef.value > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %.3f", coef.name, coef.value)
		}
	}

	return nil
}
