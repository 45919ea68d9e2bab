package graphics

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// kawaseBlur 迭代降采样/升采样模糊
//
// 不需要 Kage shader，双线性过滤在 DrawImage 时完成模糊。
// 临时图像按 (降采样级数, 尺寸) 缓存，不同尺寸交替使用时不会重新分配。
type kawaseBlur struct {
	cache *imageCache
	temps []*ebiten.Image
	op    ebiten.DrawImageOptions
}

func newKawaseBlur() *kawaseBlur {
	return &kawaseBlur{cache: newImageCache()}
}

// chain 返回本次模糊的降采样链，第 i 级尺寸为上一级的一半（至少 1）
func (b *kawaseBlur) chain(w, h, passes int) []*ebiten.Image {
	b.temps = b.temps[:0]
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		img, _ := b.cache.get(i, w, h)
		b.temps = append(b.temps, img)
	}
	return b.temps
}

// blurPasses 根据模糊半径计算降采样次数
//
// Canvas 的 shadowBlur 约等于高斯标准差的两倍，
// 每次降采样大约把有效半径翻倍，因此取 log2(radius/2)，至少 1 次。
func blurPasses(radius float64) int {
	if radius <= 0 {
		return 0
	}
	passes := int(math.Ceil(math.Log2(radius / 2)))
	if passes < 1 {
		passes = 1
	}
	return passes
}

// apply 将 src 模糊后绘制到 dst（dst 与 src 尺寸相同）
func (b *kawaseBlur) apply(src, dst *ebiten.Image, radius float64) {
	op := &b.op
	passes := blurPasses(radius)
	if passes == 0 {
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.Filter = ebiten.FilterNearest
		dst.DrawImage(src, op)
		return
	}

	temps := b.chain(src.Bounds().Dx(), src.Bounds().Dy(), passes)

	// 降采样：每次减半
	current := src
	for _, tmp := range temps {
		tmp.Clear()
		b.scaleInto(current, tmp)
		current = tmp
	}

	// 升采样：沿降采样链逐级放大
	for i := passes - 2; i >= 0; i-- {
		temps[i].Clear()
		b.scaleInto(current, temps[i])
		current = temps[i]
	}

	b.scaleInto(current, dst)
}

func (b *kawaseBlur) scaleInto(src, dst *ebiten.Image) {
	op := &b.op
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sw := float64(src.Bounds().Dx())
	sh := float64(src.Bounds().Dy())
	tw := float64(dst.Bounds().Dx())
	th := float64(dst.Bounds().Dy())
	op.GeoM.Scale(tw/sw, th/sh)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}
