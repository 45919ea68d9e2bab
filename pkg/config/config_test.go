package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTulipConstants(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults failed validation: %v", err)
	}

	if cfg.Tulip.StemHeight != (RandRange{Min: 200, Max: 350}) {
		t.Errorf("expected stemHeight 200..350, got %+v", cfg.Tulip.StemHeight)
	}
	if cfg.Tulip.GrowthRate != (RandRange{Min: 1, Max: 3}) {
		t.Errorf("expected growthRate 1..3, got %+v", cfg.Tulip.GrowthRate)
	}
	if cfg.Tulip.BloomSize != (RandRange{Min: 20, Max: 30}) {
		t.Errorf("expected bloomSize 20..30, got %+v", cfg.Tulip.BloomSize)
	}
	if cfg.Tulip.BloomStep != 0.5 {
		t.Errorf("expected bloomStep 0.5, got %f", cfg.Tulip.BloomStep)
	}
	if cfg.Tulip.LeafThreshold != 100 {
		t.Errorf("expected leafThreshold 100, got %f", cfg.Tulip.LeafThreshold)
	}
	if cfg.Tulip.GlowBlur != 20 {
		t.Errorf("expected glowBlur 20, got %f", cfg.Tulip.GlowBlur)
	}
	if cfg.Tulip.StemColor != "#2d6a4f" {
		t.Errorf("expected stemColor #2d6a4f, got %s", cfg.Tulip.StemColor)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg.Window.Title != Default().Window.Title {
		t.Errorf("expected default title, got %q", cfg.Window.Title)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "partial override keeps other defaults",
			yamlContent: `
window:
  title: "Spring"
tulip:
  stemHeight:
    min: 100
    max: 150
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Window.Title != "Spring" {
					t.Errorf("expected title Spring, got %q", cfg.Window.Title)
				}
				if cfg.Tulip.StemHeight.Max != 150 {
					t.Errorf("expected stemHeight max 150, got %f", cfg.Tulip.StemHeight.Max)
				}
				// 未覆盖的键保持默认值
				if cfg.Tulip.GrowthRate.Max != 3 {
					t.Errorf("expected growthRate max 3, got %f", cfg.Tulip.GrowthRate.Max)
				}
				if cfg.Window.Width != 1280 {
					t.Errorf("expected default width 1280, got %d", cfg.Window.Width)
				}
			},
		},
		{
			name: "inverted range",
			yamlContent: `
tulip:
  bloomSize:
    min: 40
    max: 30
`,
			wantErr:     true,
			errContains: "tulip.bloomSize",
		},
		{
			name: "zero growth rate",
			yamlContent: `
tulip:
  growthRate:
    min: 0
    max: 3
`,
			wantErr:     true,
			errContains: "tulip.growthRate.min",
		},
		{
			name: "bad colour",
			yamlContent: `
tulip:
  leafColor: "green"
`,
			wantErr:     true,
			errContains: "tulip.leafColor",
		},
		{
			name: "volume out of range",
			yamlContent: `
audio:
  volume: 1.5
`,
			wantErr:     true,
			errContains: "audio.volume",
		},
		{
			name:        "malformed yaml",
			yamlContent: "tulip: [unclosed",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "garden.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
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

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#2d6a4f", color.RGBA{R: 0x2d, G: 0x6a, B: 0x4f, A: 0xff}, false},
		{"40916c", color.RGBA{R: 0x40, G: 0x91, B: 0x6c, A: 0xff}, false},
		{"#00000080", color.RGBA{A: 0x80}, false},
		// 半透明颜色按 alpha 预乘
		{"#ffffff80", color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}, false},
		{"#ff000000", color.RGBA{}, false},
		{"#40916c80", color.RGBA{R: 0x20, G: 0x49, B: 0x36, A: 0x80}, false},
		{"#fff", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexColorFallback(t *testing.T) {
	if got := HexColor("nope"); got != (color.RGBA{A: 0xff}) {
		t.Errorf("expected opaque black fallback, got %v", got)
	}
}

func TestRandRangeSpan(t *testing.T) {
	if got := (RandRange{Min: 200, Max: 350}).Span(); got != 150 {
		t.Errorf("expected span 150, got %f", got)
	}
}
