package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPhysicsConfig(t *testing.T) {
	cfg := DefaultPhysicsConfig()

	if cfg.Gravity != 980 {
		t.Errorf("Gravity: got %v, want 980", cfg.Gravity)
	}
	if cfg.Bounce != 0.7 {
		t.Errorf("Bounce: got %v, want 0.7", cfg.Bounce)
	}
	if cfg.Friction != 0.98 {
		t.Errorf("Friction: got %v, want 0.98", cfg.Friction)
	}
	if cfg.AirResistance != 0.99 {
		t.Errorf("AirResistance: got %v, want 0.99", cfg.AirResistance)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadPhysicsConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, PhysicsConfig)
	}{
		{
			name: "full config",
			yamlContent: `
gravity: 1200
bounce: 0.5
friction: 0.9
airResistance: 0.95
`,
			validate: func(t *testing.T, cfg PhysicsConfig) {
				if cfg.Gravity != 1200 || cfg.Bounce != 0.5 || cfg.Friction != 0.9 || cfg.AirResistance != 0.95 {
					t.Errorf("unexpected config: %+v", cfg)
				}
			},
		},
		{
			name:        "partial config keeps defaults",
			yamlContent: "gravity: 500\n",
			validate: func(t *testing.T, cfg PhysicsConfig) {
				if cfg.Gravity != 500 {
					t.Errorf("expected gravity = 500, got %v", cfg.Gravity)
				}
				if cfg.Bounce != DefaultBounce {
					t.Errorf("expected default bounce, got %v", cfg.Bounce)
				}
			},
		},
		{
			name:        "negative gravity",
			yamlContent: "gravity: -1\n",
			wantErr:     true,
			errContains: "gravity must be >= 0",
		},
		{
			name:        "bounce above one",
			yamlContent: "bounce: 1.2\n",
			wantErr:     true,
			errContains: "bounce must be within [0, 1]",
		},
		{
			name:        "negative friction",
			yamlContent: "friction: -0.1\n",
			wantErr:     true,
			errContains: "friction must be within [0, 1]",
		},
		{
			name:        "malformed yaml",
			yamlContent: "gravity: [1, 2\n",
			wantErr:     true,
			errContains: "failed to parse physics config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "physics.yaml")
			if err := os.WriteFile(tmpFile, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to create temp file: %v", err)
			}

			cfg, err := LoadPhysicsConfig(tmpFile)

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

func TestLoadPhysicsConfigMissingFile(t *testing.T) {
	_, err := LoadPhysicsConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
