package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/decker502/motionkit/pkg/components"
)

// 内置动画变体表
//
// 这里的数值是视觉设计数据，必须原样保留，不能重新推导。
// 表本身不对外暴露，调用方只能拿到深拷贝，保证加载后不可变。

// 变体名称
const (
	VariantDroppingText  = "droppingText"
	VariantCardHover     = "cardHover"
	VariantButtonPhysics = "buttonPhysics"
	VariantSectionReveal = "sectionReveal"
	VariantFloating      = "floating"
	VariantSkillTag      = "skillTag"
)

// 状态名称
const (
	StateHidden  = "hidden"
	StateVisible = "visible"
	StateRest    = "rest"
	StateHover   = "hover"
	StateTap     = "tap"
	StateAnimate = "animate"
)

var (
	// ErrUnknownVariant 变体名称不存在
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrUnknownState 状态名称不存在
	ErrUnknownState = errors.New("unknown variant state")
)

type props = map[string]components.PropertyValue

var scalar = components.Scalar
var keyframes = components.Keyframes

var builtinVariants = map[string]components.Variant{
	// 文字下落
	VariantDroppingText: {
		StateHidden: {
			Properties: props{"y": scalar(-100), "opacity": scalar(0), "rotateX": scalar(-90), "scale": scalar(0.5)},
		},
		StateVisible: {
			Properties: props{"y": scalar(0), "opacity": scalar(1), "rotateX": scalar(0), "scale": scalar(1)},
			Transition: components.SpringTransition{Stiffness: 100, Damping: 15, Mass: 0.8},
		},
	},

	// 卡片悬停
	VariantCardHover: {
		StateRest: {
			Properties: props{"scale": scalar(1), "rotateX": scalar(0), "rotateY": scalar(0), "z": scalar(0)},
		},
		StateHover: {
			Properties: props{"scale": scalar(1.05), "rotateX": scalar(5), "rotateY": scalar(5), "z": scalar(20)},
			Transition: components.TweenTransition{Duration: 0.3, Ease: components.NamedEase("easeOut")},
		},
	},

	// 按钮按压
	VariantButtonPhysics: {
		StateRest: {
			Properties: props{"scale": scalar(1), "rotateZ": scalar(0)},
		},
		StateHover: {
			Properties: props{"scale": scalar(1.05), "rotateZ": keyframes(0, -1, 1, 0)},
			Transition: components.TweenTransition{Duration: 0.3, Ease: components.NamedEase("easeOut")},
		},
		StateTap: {
			Properties: props{"scale": scalar(0.95)},
			Transition: components.TweenTransition{Duration: 0.1},
		},
	},

	// 区块展开
	VariantSectionReveal: {
		StateHidden: {
			Properties: props{"opacity": scalar(0), "y": scalar(50), "scale": scalar(0.9)},
		},
		StateVisible: {
			Properties: props{"opacity": scalar(1), "y": scalar(0), "scale": scalar(1)},
			Transition: components.TweenTransition{
				Duration: 0.8,
				Ease:     components.BezierEase([4]float64{0.25, 0.46, 0.45, 0.94}),
			},
		},
	},

	// 悬浮元素（单状态，自身无限循环）
	VariantFloating: {
		StateAnimate: {
			Properties: props{"y": keyframes(0, -20, 0), "rotateZ": keyframes(0, 5, -5, 0)},
			Transition: components.TweenTransition{
				Duration: 4,
				Ease:     components.NamedEase("easeInOut"),
				Repeat:   components.RepeatForever(),
			},
		},
	},

	// 技能标签
	VariantSkillTag: {
		StateHidden: {
			Properties: props{"opacity": scalar(0), "scale": scalar(0), "rotate": scalar(-180)},
		},
		StateVisible: {
			Properties: props{"opacity": scalar(1), "scale": scalar(1), "rotate": scalar(0)},
			Transition: components.SpringTransition{Stiffness: 150, Damping: 8, Mass: components.DefaultSpringMass},
		},
		StateHover: {
			Properties: props{"scale": scalar(1.1), "rotate": keyframes(0, -5, 5, 0)},
			Transition: components.TweenTransition{Duration: 0.3},
		},
	},
}

// BuiltinVariants 返回内置变体表的深拷贝
func BuiltinVariants() map[string]components.Variant {
	out := make(map[string]components.Variant, len(builtinVariants))
	for name, v := range builtinVariants {
		out[name] = v.Clone()
	}
	return out
}

// BuiltinVariantNames 返回内置变体名称（已排序）
func BuiltinVariantNames() []string {
	return sortedVariantNames(builtinVariants)
}

// LookupVariant 按名称查询内置变体
//
// 返回:
//   - components.Variant: 变体的深拷贝
//   - error: 名称不存在时返回包装了 ErrUnknownVariant 的错误
func LookupVariant(name string) (components.Variant, error) {
	return lookupVariant(builtinVariants, name)
}

// LookupState 按变体名和状态名查询内置状态
//
// 返回:
//   - components.VariantState: 状态的深拷贝
//   - error: 变体不存在返回 ErrUnknownVariant，状态不存在返回 ErrUnknownState
func LookupState(variant, state string) (components.VariantState, error) {
	return lookupState(builtinVariants, variant, state)
}

func lookupVariant(table map[string]components.Variant, name string) (components.Variant, error) {
	v, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v.Clone(), nil
}

func lookupState(table map[string]components.Variant, variant, state string) (components.VariantState, error) {
	v, ok := table[variant]
	if !ok {
		return components.VariantState{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	s, ok := v[state]
	if !ok {
		return components.VariantState{}, fmt.Errorf("%w: %s.%s", ErrUnknownState, variant, state)
	}
	return s.Clone(), nil
}

func sortedVariantNames(table map[string]components.Variant) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
