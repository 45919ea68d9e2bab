// Package config 提供郁金香花园的配置加载与校验
//
// 默认值通过 //go:embed 嵌入 defaults.yaml，用户配置文件只覆盖其中出现的键。
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config 应用全部配置
type Config struct {
	Window     WindowConfig  `yaml:"window"`
	Background string        `yaml:"background"`
	Tulip      TulipConfig   `yaml:"tulip"`
	Overlay    OverlayConfig `yaml:"overlay"`
	Audio      AudioConfig   `yaml:"audio"`
}

// WindowConfig 窗口初始参数
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// RandRange 均匀分布的取值区间 [Min, Max)
type RandRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Span 返回区间宽度
func (r RandRange) Span() float64 {
	return r.Max - r.Min
}

// TulipConfig 郁金香生成与绘制参数
//
// 所有长度单位都是逻辑像素。
type TulipConfig struct {
	StemHeight RandRange `yaml:"stemHeight"` // 目标茎高
	GrowthRate RandRange `yaml:"growthRate"` // 每帧生长量
	BloomSize  RandRange `yaml:"bloomSize"`  // 最大花苞尺寸

	TiltSpan      float64 `yaml:"tiltSpan"`      // 倾斜角总跨度（弧度）
	BloomStep     float64 `yaml:"bloomStep"`     // 每帧开花增量
	LeafThreshold float64 `yaml:"leafThreshold"` // 茎长超过该值才绘制叶子
	LeafAnchor    float64 `yaml:"leafAnchor"`    // 叶子在茎上的起点高度（只平移，不缩放叶片）
	StemBulge     float64 `yaml:"stemBulge"`     // 茎中点的横向弯曲量
	StemWidth     float64 `yaml:"stemWidth"`

	StemColor string `yaml:"stemColor"`
	LeafColor string `yaml:"leafColor"`

	// 花色为随机色相 + 固定饱和度/亮度
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`

	GlowBlur float64 `yaml:"glowBlur"` // 花苞发光模糊半径
}

// OverlayConfig 开场提示文字
type OverlayConfig struct {
	Text        string  `yaml:"text"`
	TouchText   string  `yaml:"touchText"` // 触摸设备上显示的文字
	FontSize    float64 `yaml:"fontSize"`
	Color       string  `yaml:"color"`
	FadeSeconds float64 `yaml:"fadeSeconds"`
}

// AudioConfig 背景音乐
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// MusicFile 为空时使用程序合成的环境音
	MusicFile  string  `yaml:"musicFile"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sampleRate"`
}

// Default 返回嵌入的默认配置
//
// defaults.yaml 随二进制发布，解析失败属于构建错误，因此直接 panic。
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return &cfg
}

// Load 加载配置
//
// 先解析嵌入默认值，再用指定文件覆盖。path 为空时只返回默认值。
//
// 参数:
//   - path: YAML 配置文件路径（可为空）
//
// 返回:
//   - *Config: 合并并校验后的配置
//   - error: 读取、解析或校验失败
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate 校验配置取值
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	ranges := []struct {
		key string
		r   RandRange
	}{
		{"tulip.stemHeight", c.Tulip.StemHeight},
		{"tulip.growthRate", c.Tulip.GrowthRate},
		{"tulip.bloomSize", c.Tulip.BloomSize},
	}
	for _, rr := range ranges {
		if rr.r.Min <= 0 {
			return fmt.Errorf("%s.min must be positive, got %.2f", rr.key, rr.r.Min)
		}
		if rr.r.Min > rr.r.Max {
			return fmt.Errorf("%s invalid: min(%.2f) > max(%.2f)", rr.key, rr.r.Min, rr.r.Max)
		}
	}

	t := c.Tulip
	if t.TiltSpan < 0 {
		return fmt.Errorf("tulip.tiltSpan must be >= 0, got %.2f", t.TiltSpan)
	}
	if t.BloomStep <= 0 {
		return fmt.Errorf("tulip.bloomStep must be positive, got %.2f", t.BloomStep)
	}
	if t.StemWidth <= 0 {
		return fmt.Errorf("tulip.stemWidth must be positive, got %.2f", t.StemWidth)
	}
	if t.GlowBlur < 0 {
		return fmt.Errorf("tulip.glowBlur must be >= 0, got %.2f", t.GlowBlur)
	}
	if t.Saturation < 0 || t.Saturation > 1 {
		return fmt.Errorf("tulip.saturation must be in [0, 1], got %.2f", t.Saturation)
	}
	if t.Lightness < 0 || t.Lightness > 1 {
		return fmt.Errorf("tulip.lightness must be in [0, 1], got %.2f", t.Lightness)
	}

	colors := map[string]string{
		"background":      c.Background,
		"tulip.stemColor": t.StemColor,
		"tulip.leafColor": t.LeafColor,
		"overlay.color":   c.Overlay.Color,
	}
	for key, hex := range colors {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	if c.Overlay.FontSize <= 0 {
		return fmt.Errorf("overlay.fontSize must be positive, got %.2f", c.Overlay.FontSize)
	}
	if c.Overlay.FadeSeconds < 0 {
		return fmt.Errorf("overlay.fadeSeconds must be >= 0, got %.2f", c.Overlay.FadeSeconds)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %.2f", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sampleRate must be positive, got %d", c.Audio.SampleRate)
	}

	return nil
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色，返回预乘 alpha 的 RGBA
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	// 十六进制写法是非预乘的，color.RGBA 要求预乘
	straight := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(straight).(color.RGBA), nil
}

// HexColor 解析已校验过的颜色，失败时返回不透明黑色
func HexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}
