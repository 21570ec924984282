package utils

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEasing 缓动名称未注册
var ErrUnknownEasing = errors.New("unknown easing")

// 命名缓动曲线表，键与动画变体表中的 ease 标识符一致
var easingByName = map[string]EasingFunc{
	"linear":         EaseLinear,
	"easeIn":         BezierEaseIn().Ease,
	"easeOut":        BezierEaseOut().Ease,
	"easeInOut":      BezierEaseInOut().Ease,
	"easeInQuad":     EaseInQuad,
	"easeOutQuad":    EaseOutQuad,
	"easeInCubic":    EaseInCubic,
	"easeOutCubic":   EaseOutCubic,
	"easeInOutCubic": EaseInOutCubic,
	"easeOutExpo":    EaseOutExpo,
	"easeOutBounce":  EaseOutBounce,
	"easeOutElastic": EaseOutElastic,
	"easeOutBack":    EaseOutBack,
}

// EasingByName 按名称查找缓动函数
//
// 返回:
//   - EasingFunc: 找到的缓动函数
//   - error: 名称未注册时返回包装了 ErrUnknownEasing 的错误
func EasingByName(name string) (EasingFunc, error) {
	fn, ok := easingByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// IsKnownEasing 判断名称是否已注册
func IsKnownEasing(name string) bool {
	_, ok := easingByName[name]
	return ok
}

// EasingNames 返回所有已注册的缓动名称（已排序）
func EasingNames() []string {
	names := make([]string, 0, len(easingByName))
	for name := range easingByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
