package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/motionkit/pkg/components"
	"github.com/decker502/motionkit/pkg/utils"
)

func TestDefaultMotionConfig(t *testing.T) {
	cfg := DefaultMotionConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Scroll.Parallax(100) != utils.Parallax(100) {
		t.Error("default scroll config should match default parallax")
	}
	if cfg.Scroll.Fade(50) != utils.FadeOnScroll(50) {
		t.Error("default scroll config should match default fade")
	}
	if cfg.Scroll.Scale(100) != utils.ScaleOnScroll(100) {
		t.Error("default scroll config should match default scale")
	}
	if len(cfg.Variants()) != len(BuiltinVariantNames()) {
		t.Error("default config should expose exactly the built-in variants")
	}
}

func TestParseMotionConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *MotionConfig)
	}{
		{
			name: "overrides and new variant",
			yamlContent: `
physics:
  gravity: 1200
scroll:
  parallaxSpeed: 0.3
variants:
  cardHover:
    hover:
      scale: 1.08
      transition: {duration: 0.25, ease: easeOut}
  pulse:
    animate:
      scale: [1, 1.1, 1]
      transition: {duration: 1.5, ease: easeInOutCubic, repeat: 3}
`,
			validate: func(t *testing.T, cfg *MotionConfig) {
				if cfg.Physics.Gravity != 1200 {
					t.Errorf("gravity = %v, want 1200", cfg.Physics.Gravity)
				}
				if cfg.Physics.Bounce != DefaultBounce {
					t.Errorf("bounce should keep default, got %v", cfg.Physics.Bounce)
				}
				if cfg.Scroll.ParallaxSpeed != 0.3 {
					t.Errorf("parallaxSpeed = %v, want 0.3", cfg.Scroll.ParallaxSpeed)
				}
				if cfg.Scroll.FadeThreshold != utils.DefaultFadeThreshold {
					t.Errorf("fadeThreshold should keep default, got %v", cfg.Scroll.FadeThreshold)
				}

				merged := cfg.Variants()
				if got := merged[VariantCardHover][StateHover].Properties["scale"].Final(); got != 1.08 {
					t.Errorf("cardHover.hover.scale = %v, want 1.08", got)
				}
				if _, ok := merged[VariantCardHover][StateRest]; !ok {
					t.Error("cardHover.rest should survive a hover override")
				}
				pulse, ok := merged["pulse"]
				if !ok {
					t.Fatal("new variant pulse missing")
				}
				tw := pulse["animate"].Transition.(components.TweenTransition)
				if tw.Repeat.Count() != 3 {
					t.Errorf("pulse repeat = %v, want 3", tw.Repeat)
				}

				s, err := cfg.LookupState(VariantCardHover, StateHover)
				if err != nil || s.Properties["scale"].Final() != 1.08 {
					t.Errorf("LookupState override = %v, %v", s.Properties["scale"].Final(), err)
				}
				s, err = cfg.LookupState(VariantCardHover, StateRest)
				if err != nil || s.Properties["scale"].Final() != 1 {
					t.Errorf("LookupState built-in fallback = %v, %v", s.Properties["scale"].Final(), err)
				}
				if _, err := cfg.LookupState("pulse", StateHover); !errors.Is(err, ErrUnknownState) {
					t.Errorf("expected ErrUnknownState, got %v", err)
				}
				if _, err := cfg.LookupState("nope", StateHover); !errors.Is(err, ErrUnknownVariant) {
					t.Errorf("expected ErrUnknownVariant, got %v", err)
				}
			},
		},
		{
			name:        "empty document",
			yamlContent: "",
			validate: func(t *testing.T, cfg *MotionConfig) {
				if cfg.Physics != DefaultPhysicsConfig() {
					t.Errorf("empty document should keep default physics: %+v", cfg.Physics)
				}
			},
		},
		{
			name:        "unknown easing",
			yamlContent: "variants:\n  cardHover:\n    hover:\n      scale: 1\n      transition: {duration: 0.3, ease: wobble}\n",
			wantErr:     true,
			errContains: "unknown easing",
		},
		{
			name:        "zero stiffness",
			yamlContent: "variants:\n  droppingText:\n    visible:\n      y: 0\n      transition: {type: spring, stiffness: 0, damping: 10}\n",
			wantErr:     true,
			errContains: "stiffness must be > 0",
		},
		{
			name:        "negative damping",
			yamlContent: "variants:\n  droppingText:\n    visible:\n      y: 0\n      transition: {type: spring, stiffness: 10, damping: -1}\n",
			wantErr:     true,
			errContains: "damping must be >= 0",
		},
		{
			name:        "negative duration",
			yamlContent: "variants:\n  cardHover:\n    hover:\n      scale: 1\n      transition: {duration: -0.1}\n",
			wantErr:     true,
			errContains: "duration must be >= 0",
		},
		{
			name:        "empty keyframes",
			yamlContent: "variants:\n  floating:\n    animate:\n      y: []\n",
			wantErr:     true,
			errContains: "has no keyframes",
		},
		{
			name:        "bezier x out of range",
			yamlContent: "variants:\n  cardHover:\n    hover:\n      scale: 1\n      transition: {duration: 0.3, ease: [1.5, 0, 0.5, 1]}\n",
			wantErr:     true,
			errContains: "bezier x control values",
		},
		{
			name:        "nan duration",
			yamlContent: "variants:\n  cardHover:\n    hover:\n      scale: 1\n      transition: {duration: .nan}\n",
			wantErr:     true,
			errContains: "duration must be a finite value",
		},
		{
			name:        "infinite duration",
			yamlContent: "variants:\n  cardHover:\n    hover:\n      scale: 1\n      transition: {duration: .inf}\n",
			wantErr:     true,
			errContains: "duration must be a finite value",
		},
		{
			name:        "zero duration forever",
			yamlContent: "variants:\n  pulse:\n    animate:\n      scale: [1, 1.1, 1]\n      transition: {duration: 0, repeat: forever}\n",
			wantErr:     true,
			errContains: "repeat: forever requires duration > 0",
		},
		{
			name:        "non-finite keyframe",
			yamlContent: "variants:\n  pulse:\n    animate:\n      scale: [1, .inf, 1]\n",
			wantErr:     true,
			errContains: "non-finite value",
		},
		{
			name:        "nan spring stiffness",
			yamlContent: "variants:\n  cardHover:\n    hover:\n      scale: 1\n      transition: {type: spring, stiffness: .nan, damping: 10}\n",
			wantErr:     true,
			errContains: "spring parameters must be finite",
		},
		{
			name:        "variant without states",
			yamlContent: "variants:\n  empty: {}\n",
			wantErr:     true,
			errContains: "has no states",
		},
		{
			name:        "zero scroll threshold",
			yamlContent: "scroll:\n  fadeThreshold: 0\n",
			wantErr:     true,
			errContains: "fadeThreshold must be > 0",
		},
		{
			name:        "invalid physics",
			yamlContent: "physics:\n  airResistance: 2\n",
			wantErr:     true,
			errContains: "airResistance must be within [0, 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseMotionConfig([]byte(tt.yamlContent))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMotionConfig(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "motion.yaml")
	content := "scroll:\n  scaleThreshold: 400\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	cfg, err := LoadMotionConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadMotionConfig() error: %v", err)
	}
	if cfg.Scroll.Scale(400) != 0.5 {
		t.Errorf("Scale(400) = %v, want 0.5", cfg.Scroll.Scale(400))
	}
	if cfg.Scroll.Scale(200) != 0.75 {
		t.Errorf("Scale(200) = %v, want 0.75", cfg.Scroll.Scale(200))
	}

	if _, err := LoadMotionConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMotionConfigVariantsIsolated(t *testing.T) {
	cfg, err := ParseMotionConfig([]byte("variants:\n  cardHover:\n    hover:\n      scale: 1.2\n"))
	if err != nil {
		t.Fatalf("ParseMotionConfig() error: %v", err)
	}

	merged := cfg.Variants()
	merged[VariantCardHover][StateHover].Properties["scale"] = components.Scalar(9)

	if got := cfg.Variants()[VariantCardHover][StateHover].Properties["scale"].Final(); got != 1.2 {
		t.Errorf("merged table should be a fresh copy each call, got %v", got)
	}
	if got := mustState(t, VariantCardHover, StateHover).Properties["scale"].Final(); got != 1.05 {
		t.Errorf("built-in table must not change, got %v", got)
	}
}

func TestShippedMotionConfig(t *testing.T) {
	cfg, err := LoadMotionConfig(filepath.Join("..", "..", "data", "motion.yaml"))
	if err != nil {
		t.Fatalf("data/motion.yaml should load: %v", err)
	}

	merged := cfg.Variants()
	for _, name := range []string{"pulse", "bounceIn"} {
		if _, ok := merged[name]; !ok {
			t.Errorf("variant %q missing from shipped config", name)
		}
	}
	hover := merged["pulse"][StateHover]
	if _, ok := hover.Transition.(components.SpringTransition); !ok {
		t.Errorf("pulse.hover should be a spring, got %T", hover.Transition)
	}
	if len(merged) != len(BuiltinVariantNames())+2 {
		t.Errorf("got %d variants, want built-ins plus 2", len(merged))
	}
}
