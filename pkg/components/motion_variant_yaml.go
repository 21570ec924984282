package components

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML 解码
//
// 动画状态在配置文件中的写法：
//
//	hover:
//	  scale: 1.05
//	  rotateZ: [0, -1, 1, 0]
//	  transition:
//	    duration: 0.3
//	    ease: easeOut            # 或 [0.25, 0.46, 0.45, 0.94]
//	    repeat: forever          # 或非负整数
//
// 弹簧过渡写 type: spring 以及 stiffness / damping / mass。

// UnmarshalYAML 数值解码为单值，数组解码为关键帧
func (p *PropertyValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: property value must be a number: %w", node.Line, err)
		}
		*p = Scalar(v)
	case yaml.SequenceNode:
		var values []float64
		if err := node.Decode(&values); err != nil {
			return fmt.Errorf("line %d: keyframes must be numbers: %w", node.Line, err)
		}
		*p = Keyframes(values...)
	default:
		return fmt.Errorf("line %d: property value must be a number or a list of numbers", node.Line)
	}
	return nil
}

// UnmarshalYAML 接受 forever / Infinity / .inf 或非负整数
func (r *RepeatPolicy) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: repeat must be a scalar", node.Line)
	}
	switch strings.ToLower(node.Value) {
	case "forever", "infinity", "inf", ".inf", "+.inf":
		*r = RepeatForever()
		return nil
	}

	var n int
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("line %d: repeat must be 'forever' or an integer: %w", node.Line, err)
	}
	if n < 0 {
		return fmt.Errorf("line %d: repeat count must be >= 0, got %d", node.Line, n)
	}
	*r = RepeatTimes(n)
	return nil
}

// transitionDoc 过渡参数在 YAML 中的原始形态
type transitionDoc struct {
	Type      string       `yaml:"type"`
	Stiffness *float64     `yaml:"stiffness"`
	Damping   *float64     `yaml:"damping"`
	Mass      *float64     `yaml:"mass"`
	Duration  *float64     `yaml:"duration"`
	Ease      yaml.Node    `yaml:"ease"`
	Repeat    RepeatPolicy `yaml:"repeat"`
}

// decodeTransition 解码过渡参数
//
// type 缺省时：出现 stiffness/damping 且没有 duration 视为弹簧，否则视为定时曲线。
func decodeTransition(node *yaml.Node) (Transition, error) {
	var doc transitionDoc
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("line %d: invalid transition: %w", node.Line, err)
	}

	kind := doc.Type
	if kind == "" {
		if (doc.Stiffness != nil || doc.Damping != nil) && doc.Duration == nil {
			kind = "spring"
		} else {
			kind = "tween"
		}
	}

	switch kind {
	case "spring":
		if doc.Duration != nil || doc.Ease.Kind != 0 {
			return nil, fmt.Errorf("line %d: spring transition cannot have duration or ease", node.Line)
		}
		s := SpringTransition{Mass: DefaultSpringMass}
		if doc.Stiffness != nil {
			s.Stiffness = *doc.Stiffness
		}
		if doc.Damping != nil {
			s.Damping = *doc.Damping
		}
		if doc.Mass != nil {
			s.Mass = *doc.Mass
		}
		return s, nil

	case "tween":
		if doc.Stiffness != nil || doc.Damping != nil || doc.Mass != nil {
			return nil, fmt.Errorf("line %d: tween transition cannot have spring parameters", node.Line)
		}
		t := TweenTransition{Repeat: doc.Repeat}
		if doc.Duration != nil {
			t.Duration = *doc.Duration
		} else {
			t.Duration = DefaultTransitionDuration
		}
		ease, err := decodeEase(&doc.Ease)
		if err != nil {
			return nil, err
		}
		t.Ease = ease
		return t, nil

	default:
		return nil, fmt.Errorf("line %d: unknown transition type %q", node.Line, kind)
	}
}

// decodeEase 名称字符串或 4 个数的控制点数组
func decodeEase(node *yaml.Node) (EaseCurve, error) {
	switch node.Kind {
	case 0:
		return EaseCurve{}, nil
	case yaml.ScalarNode:
		return NamedEase(node.Value), nil
	case yaml.SequenceNode:
		var points []float64
		if err := node.Decode(&points); err != nil {
			return EaseCurve{}, fmt.Errorf("line %d: bezier points must be numbers: %w", node.Line, err)
		}
		if len(points) != 4 {
			return EaseCurve{}, fmt.Errorf("line %d: bezier ease needs 4 control values, got %d", node.Line, len(points))
		}
		return BezierEase([4]float64{points[0], points[1], points[2], points[3]}), nil
	default:
		return EaseCurve{}, fmt.Errorf("line %d: ease must be a name or [x1, y1, x2, y2]", node.Line)
	}
}

// UnmarshalYAML 解码一个动画状态：transition 键为过渡参数，其余键为属性
func (s *VariantState) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variant state must be a mapping", node.Line)
	}

	state := VariantState{Properties: make(map[string]PropertyValue)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]

		if key == "transition" {
			tr, err := decodeTransition(value)
			if err != nil {
				return err
			}
			state.Transition = tr
			continue
		}

		var pv PropertyValue
		if err := value.Decode(&pv); err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		state.Properties[key] = pv
	}

	*s = state
	return nil
}
