package graphics

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// surfaceState 可被 Save/Restore 的绘图状态
type surfaceState struct {
	geoM        ebiten.GeoM
	strokeColor color.Color
	strokeWidth float64
	fillColor   color.Color
	shadowBlur  float64
	shadowColor color.Color
}

func defaultState() surfaceState {
	return surfaceState{
		strokeColor: color.Black,
		strokeWidth: 1,
		fillColor:   color.Black,
		shadowColor: color.Transparent,
	}
}

// EbitenSurface 基于 ebiten.Image 的 Surface 实现
//
// 路径点在加入时就按当前变换映射到设备坐标，
// 所以旋转后的曲线由变换后的控制点精确表示。
type EbitenSurface struct {
	dst   *ebiten.Image
	cur   surfaceState
	stack []surfaceState
	path  devicePath
	glow  *glowRenderer

	strokeOpts vector.StrokeOptions
	drawOpts   vector.DrawPathOptions
}

// NewEbitenSurface 创建绘图表面，调用 Begin 绑定目标图像后使用
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{
		cur:  defaultState(),
		glow: newGlowRenderer(),
	}
}

// Begin 绑定本帧的目标图像并重置全部状态
func (s *EbitenSurface) Begin(dst *ebiten.Image) {
	s.dst = dst
	s.cur = defaultState()
	s.stack = s.stack[:0]
	s.path.reset()
}

// Depth 返回当前 Save 栈深度
func (s *EbitenSurface) Depth() int {
	return len(s.stack)
}

// Apply 将局部坐标映射到设备坐标
func (s *EbitenSurface) Apply(x, y float64) (float64, float64) {
	return s.cur.geoM.Apply(x, y)
}

// ClearRect 清空设备坐标下的矩形区域
func (s *EbitenSurface) ClearRect(x, y, width, height float64) {
	if s.dst == nil {
		return
	}
	b := s.dst.Bounds()
	r := image.Rect(int(x), int(y), int(x+width), int(y+height)).Intersect(b)
	if r.Empty() {
		return
	}
	if r == b {
		s.dst.Clear()
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *EbitenSurface) Save() {
	s.stack = append(s.stack, s.cur)
}

func (s *EbitenSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate 与 Canvas 一致：新变换先作用于点，再应用已有变换
func (s *EbitenSurface) Translate(dx, dy float64) {
	var m ebiten.GeoM
	m.Translate(dx, dy)
	m.Concat(s.cur.geoM)
	s.cur.geoM = m
}

func (s *EbitenSurface) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	m.Concat(s.cur.geoM)
	s.cur.geoM = m
}

func (s *EbitenSurface) BeginPath() {
	s.path.reset()
}

func (s *EbitenSurface) pt(x, y float64) [2]float64 {
	dx, dy := s.cur.geoM.Apply(x, y)
	return [2]float64{dx, dy}
}

func (s *EbitenSurface) MoveTo(x, y float64) {
	s.path.add(verbMoveTo, s.pt(x, y))
}

func (s *EbitenSurface) LineTo(x, y float64) {
	s.path.add(verbLineTo, s.pt(x, y))
}

func (s *EbitenSurface) QuadTo(cx, cy, x, y float64) {
	s.path.add(verbQuadTo, s.pt(cx, cy), s.pt(x, y))
}

func (s *EbitenSurface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.path.add(verbCubicTo, s.pt(c1x, c1y), s.pt(c2x, c2y), s.pt(x, y))
}

func (s *EbitenSurface) ClosePath() {
	s.path.add(verbClose)
}

func (s *EbitenSurface) SetStroke(c color.Color, width float64) {
	s.cur.strokeColor = c
	s.cur.strokeWidth = width
}

func (s *EbitenSurface) SetFill(c color.Color) {
	s.cur.fillColor = c
}

func (s *EbitenSurface) SetShadow(blur float64, c color.Color) {
	s.cur.shadowBlur = blur
	s.cur.shadowColor = c
}

func (s *EbitenSurface) Stroke() {
	if s.dst == nil || s.path.empty() {
		return
	}
	s.strokeOpts = vector.StrokeOptions{
		Width:      float32(s.cur.strokeWidth),
		MiterLimit: 10,
	}
	s.resetDrawOpts(s.cur.strokeColor)
	vector.StrokePath(s.dst, s.path.build(0, 0), &s.strokeOpts, &s.drawOpts)
}

func (s *EbitenSurface) Fill() {
	if s.dst == nil || s.path.empty() {
		return
	}
	if s.cur.shadowBlur > 0 && !isTransparent(s.cur.shadowColor) {
		s.glow.draw(s.dst, &s.path, s.cur.shadowColor, s.cur.shadowBlur)
	}
	s.resetDrawOpts(s.cur.fillColor)
	vector.FillPath(s.dst, s.path.build(0, 0), &vector.FillOptions{}, &s.drawOpts)
}

func (s *EbitenSurface) resetDrawOpts(c color.Color) {
	s.drawOpts = vector.DrawPathOptions{AntiAlias: true}
	s.drawOpts.ColorScale.ScaleWithColor(c)
}

func isTransparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}

var _ Surface = (*EbitenSurface)(nil)
