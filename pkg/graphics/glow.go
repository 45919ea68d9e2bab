package graphics

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowBucket 离屏缓冲尺寸对齐粒度，避免花苞每帧变大都重新分配
const glowBucket = 32

// glowRenderer 实现 Canvas shadowBlur 风格的发光
//
// 形状先画进带边距的离屏缓冲，模糊后合成到目标图像，
// 调用方随后在其上绘制清晰的填充。
type glowRenderer struct {
	blur    *kawaseBlur
	scratch *imageCache
	op      ebiten.DrawImageOptions
}

func newGlowRenderer() *glowRenderer {
	return &glowRenderer{
		blur:    newKawaseBlur(),
		scratch: newImageCache(),
	}
}

// glowExtent 返回发光缓冲的左上角和对齐后的尺寸
func glowExtent(minX, minY, maxX, maxY, blur float64) (x0, y0 float64, w, h int) {
	pad := math.Ceil(blur * 2)
	x0 = math.Floor(minX - pad)
	y0 = math.Floor(minY - pad)
	w = int(math.Ceil(maxX+pad) - x0)
	h = int(math.Ceil(maxY+pad) - y0)
	w = (w + glowBucket - 1) / glowBucket * glowBucket
	h = (h + glowBucket - 1) / glowBucket * glowBucket
	return x0, y0, w, h
}

func (g *glowRenderer) draw(dst *ebiten.Image, p *devicePath, clr color.Color, blur float64) {
	minX, minY, maxX, maxY, ok := p.bounds()
	if !ok {
		return
	}
	x0, y0, w, h := glowExtent(minX, minY, maxX, maxY, blur)

	src := g.scratch.cleared(0, w, h)
	var dop vector.DrawPathOptions
	dop.AntiAlias = true
	dop.ColorScale.ScaleWithColor(clr)
	vector.FillPath(src, p.build(-x0, -y0), &vector.FillOptions{}, &dop)

	blurred := g.scratch.cleared(1, w, h)
	g.blur.apply(src, blurred, blur)

	g.op.GeoM.Reset()
	g.op.ColorScale.Reset()
	g.op.Filter = ebiten.FilterLinear
	g.op.GeoM.Translate(x0, y0)
	dst.DrawImage(blurred, &g.op)
}
