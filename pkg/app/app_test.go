package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/motionkit/pkg/config"
	"github.com/decker502/motionkit/pkg/embedded"
	"github.com/decker502/motionkit/pkg/scenes"
)

func TestLoadMotionConfigSources(t *testing.T) {
	defer embedded.Init(nil)

	t.Run("内置默认值", func(t *testing.T) {
		embedded.Init(nil)
		cfg, err := LoadMotionConfig("")
		if err != nil {
			t.Fatalf("LoadMotionConfig() error: %v", err)
		}
		if cfg.Physics != config.DefaultPhysicsConfig() {
			t.Errorf("expected default physics, got %+v", cfg.Physics)
		}
	})

	t.Run("嵌入文件", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			DefaultConfigPath: {Data: []byte("physics:\n  gravity: 500\n")},
		})
		cfg, err := LoadMotionConfig("")
		if err != nil {
			t.Fatalf("LoadMotionConfig() error: %v", err)
		}
		if cfg.Physics.Gravity != 500 {
			t.Errorf("gravity = %v, want 500", cfg.Physics.Gravity)
		}
	})

	t.Run("嵌入文件无效", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			DefaultConfigPath: {Data: []byte("physics:\n  bounce: 3\n")},
		})
		if _, err := LoadMotionConfig(""); err == nil {
			t.Error("expected error for invalid embedded config")
		}
	})

	t.Run("命令行路径优先", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			DefaultConfigPath: {Data: []byte("physics:\n  gravity: 500\n")},
		})
		path := filepath.Join(t.TempDir(), "motion.yaml")
		if err := os.WriteFile(path, []byte("physics:\n  gravity: 1500\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		cfg, err := LoadMotionConfig(path)
		if err != nil {
			t.Fatalf("LoadMotionConfig() error: %v", err)
		}
		if cfg.Physics.Gravity != 1500 {
			t.Errorf("gravity = %v, want 1500", cfg.Physics.Gravity)
		}
	})

	t.Run("路径不存在", func(t *testing.T) {
		if _, err := LoadMotionConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}

func TestLoadConfigsPhysicsFile(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultConfigPath: {Data: []byte("physics:\n  gravity: 500\n  bounce: 0.4\n")},
	})
	defer embedded.Init(nil)

	dir := t.TempDir()
	physicsPath := filepath.Join(dir, "physics.yaml")
	if err := os.WriteFile(physicsPath, []byte("gravity: 1600\n"), 0644); err != nil {
		t.Fatalf("failed to write physics file: %v", err)
	}
	badPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("bounce: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write physics file: %v", err)
	}

	tests := []struct {
		name        string
		physicsPath string
		wantErr     bool
		wantGravity float64
		wantBounce  float64
	}{
		{"不指定物理文件", "", false, 500, 0.4},
		{"物理文件整体替换", physicsPath, false, 1600, config.DefaultBounce},
		{"物理文件无效", badPath, true, 0, 0},
		{"物理文件不存在", filepath.Join(dir, "missing.yaml"), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfigs(Config{PhysicsPath: tt.physicsPath})
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfigs() error: %v", err)
			}
			if cfg.Physics.Gravity != tt.wantGravity || cfg.Physics.Bounce != tt.wantBounce {
				t.Errorf("physics = %+v, want gravity %v bounce %v", cfg.Physics, tt.wantGravity, tt.wantBounce)
			}
		})
	}
}

func TestNewApp(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)
	embedded.Init(nil)

	tests := []struct {
		name      string
		cfg       Config
		wantScene string
		wantErr   bool
	}{
		{"启动画面", Config{Verbose: true}, scenes.SceneNameLoading, false},
		{"跳过启动画面", Config{Verbose: true, SkipLoadingScene: true}, scenes.SceneNamePortfolio, false},
		{"配置文件不存在", Config{Verbose: true, ConfigPath: filepath.Join(tempDir, "missing.yaml")}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewApp(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewApp() error: %v", err)
			}
			if got := a.GetSceneManager().CurrentName(); got != tt.wantScene {
				t.Errorf("start scene = %q, want %q", got, tt.wantScene)
			}
			if !a.IsVerbose() {
				t.Error("IsVerbose() should reflect the config")
			}
			if w, h := a.Layout(0, 0); w != config.ScreenWidth || h != config.ScreenHeight {
				t.Errorf("Layout() = %dx%d", w, h)
			}
		})
	}
}

func TestPreferenceDefaults(t *testing.T) {
	cfg, err := config.ParseMotionConfig([]byte("scroll:\n  parallaxSpeed: 0.8\n  fadeThreshold: 150\n  scaleThreshold: 300\n"))
	if err != nil {
		t.Fatalf("ParseMotionConfig() error: %v", err)
	}

	got := PreferenceDefaults(cfg)
	if got.ParallaxSpeed != 0.8 || got.FadeThreshold != 150 || got.ScaleThreshold != 300 {
		t.Errorf("PreferenceDefaults() = %+v", got)
	}
	if got.ReducedMotion || got.LastSection != 0 {
		t.Errorf("non-scroll fields should keep defaults, got %+v", got)
	}
}
