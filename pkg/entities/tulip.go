// Package entities 定义花园中的可绘制实体
package entities

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/decker502/tulips/pkg/config"
	"github.com/decker502/tulips/pkg/graphics"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// TulipPhase 郁金香生命周期阶段
type TulipPhase int

const (
	// PhaseGrowing 茎在生长
	PhaseGrowing TulipPhase = iota
	// PhaseBlooming 茎已长满，花苞在张开
	PhaseBlooming
	// PhaseFullyBloomed 终态，不再变化
	PhaseFullyBloomed
)

// String 返回阶段名称（用于日志）
func (p TulipPhase) String() string {
	switch p {
	case PhaseGrowing:
		return "growing"
	case PhaseBlooming:
		return "blooming"
	case PhaseFullyBloomed:
		return "fully-bloomed"
	default:
		return "unknown"
	}
}

// LeafSide 叶子朝向
type LeafSide int

const (
	LeafLeft  LeafSide = -1
	LeafRight LeafSide = 1
)

// TulipParams 创建时一次性随机确定、之后不可变的属性
type TulipParams struct {
	StemHeight   float64    // 目标茎高
	GrowthRate   float64    // 每帧生长量
	Hue          float64    // 色相 [0, 360)
	Color        color.RGBA // 由色相和固定饱和度/亮度得到
	Tilt         float64    // 茎的倾斜角（弧度）
	MaxBloomSize float64
	LeafSide     LeafSide
}

// TulipStyle 所有郁金香共享的绘制常量
type TulipStyle struct {
	BloomStep     float64
	LeafThreshold float64
	LeafAnchor    float64
	StemBulge     float64
	StemWidth     float64
	StemColor     color.RGBA
	LeafColor     color.RGBA
	GlowBlur      float64
}

// NewTulipStyle 从配置构建绘制常量
func NewTulipStyle(cfg config.TulipConfig) TulipStyle {
	return TulipStyle{
		BloomStep:     cfg.BloomStep,
		LeafThreshold: cfg.LeafThreshold,
		LeafAnchor:    cfg.LeafAnchor,
		StemBulge:     cfg.StemBulge,
		StemWidth:     cfg.StemWidth,
		StemColor:     config.HexColor(cfg.StemColor),
		LeafColor:     config.HexColor(cfg.LeafColor),
		GlowBlur:      cfg.GlowBlur,
	}
}

// RandomTulipParams 按配置区间独立均匀抽取每个属性
//
// rng 由调用方注入，测试时可使用固定种子。
func RandomTulipParams(cfg config.TulipConfig, rng *rand.Rand) TulipParams {
	uniform := func(r config.RandRange) float64 {
		return r.Min + rng.Float64()*r.Span()
	}

	p := TulipParams{
		StemHeight:   uniform(cfg.StemHeight),
		GrowthRate:   uniform(cfg.GrowthRate),
		Hue:          float64(rng.IntN(360)),
		Tilt:         (rng.Float64() - 0.5) * cfg.TiltSpan,
		MaxBloomSize: uniform(cfg.BloomSize),
		LeafSide:     LeafRight,
	}
	if rng.Float64() < 0.5 {
		p.LeafSide = LeafLeft
	}
	p.Color = HueColor(p.Hue, cfg.Saturation, cfg.Lightness)
	return p
}

// HueColor 将 HSL 转换为不透明 RGBA
func HueColor(hue, saturation, lightness float64) color.RGBA {
	r, g, b := colorful.Hsl(hue, saturation, lightness).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Tulip 一株郁金香
//
// 除 growth 和 bloom 外所有属性在创建后不变；growth 和 bloom 只增不减。
type Tulip struct {
	x, y   float64
	params TulipParams
	style  *TulipStyle

	growth float64
	bloom  float64
}

// NewTulip 在 (x, y) 处创建一株新郁金香，初始 growth 与 bloom 均为 0
func NewTulip(x, y float64, params TulipParams, style *TulipStyle) *Tulip {
	return &Tulip{
		x:      x,
		y:      y,
		params: params,
		style:  style,
	}
}

// Position 返回茎的根部坐标
func (t *Tulip) Position() (float64, float64) {
	return t.x, t.y
}

// Params 返回创建时确定的属性
func (t *Tulip) Params() TulipParams {
	return t.params
}

// Growth 返回当前茎长
func (t *Tulip) Growth() float64 {
	return t.growth
}

// BloomSize 返回当前花苞尺寸
func (t *Tulip) BloomSize() float64 {
	return t.bloom
}

// Phase 返回当前生命周期阶段
func (t *Tulip) Phase() TulipPhase {
	switch {
	case t.growth < t.params.StemHeight:
		return PhaseGrowing
	case t.bloom < t.params.MaxBloomSize:
		return PhaseBlooming
	default:
		return PhaseFullyBloomed
	}
}

// Advance 推进一帧
//
// 先生长茎，茎长满后才开花；两者都截断在各自上限。
func (t *Tulip) Advance() {
	switch t.Phase() {
	case PhaseGrowing:
		t.growth = math.Min(t.growth+t.params.GrowthRate, t.params.StemHeight)
	case PhaseBlooming:
		t.bloom = math.Min(t.bloom+t.style.BloomStep, t.params.MaxBloomSize)
	}
}

// Render 在局部坐标系（根部为原点、按倾斜角旋转）中绘制茎、叶、花苞
//
// 结束时恢复变换，不影响其他郁金香。
func (t *Tulip) Render(s graphics.Surface) {
	s.Save()
	defer s.Restore()

	s.Translate(t.x, t.y)
	s.Rotate(t.params.Tilt)

	t.renderStem(s)
	if t.growth > t.style.LeafThreshold {
		t.renderLeaf(s)
	}
	if t.bloom > 0 {
		t.renderBloom(s)
	}
}

func (t *Tulip) renderStem(s graphics.Surface) {
	s.BeginPath()
	s.MoveTo(0, 0)
	s.QuadTo(t.style.StemBulge, -t.growth/2, 0, -t.growth)
	s.SetStroke(t.style.StemColor, t.style.StemWidth)
	s.Stroke()
}

// renderLeaf 从茎上 LeafAnchor 处斜向外伸出的细长叶片
//
// 叶片形状固定，LeafAnchor 只决定起点高度。
func (t *Tulip) renderLeaf(s graphics.Surface) {
	side := float64(t.params.LeafSide)
	a := t.style.LeafAnchor

	s.BeginPath()
	s.MoveTo(0, -a)
	s.QuadTo(30*side, -a-50, 40*side, -a-100)
	s.QuadTo(10*side, -a-50, 0, -a-30)
	s.SetFill(t.style.LeafColor)
	s.Fill()
}

// renderBloom 杯形花苞：两条三次曲线构成左右两侧，顶部为五点锯齿花瓣
func (t *Tulip) renderBloom(s graphics.Surface) {
	b := t.bloom

	s.Save()
	defer s.Restore()

	s.Translate(0, -t.growth)

	s.BeginPath()
	s.MoveTo(0, 0)
	s.CubicTo(-b, 0, -b, -b*1.5, -b*0.8, -b*2)
	s.LineTo(-b*0.4, -b*1.5)
	s.LineTo(0, -b*2.2)
	s.LineTo(b*0.4, -b*1.5)
	s.LineTo(b*0.8, -b*2)
	s.CubicTo(b, -b*1.5, b, 0, 0, 0)
	s.ClosePath()

	s.SetFill(t.params.Color)
	s.SetShadow(t.style.GlowBlur, t.params.Color)
	s.Fill()
}
