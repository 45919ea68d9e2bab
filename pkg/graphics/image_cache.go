package graphics

import "github.com/hajimehoshi/ebiten/v2"

// imageKey 离屏图像的缓存键；slot 区分同一尺寸下同时使用的多张图像
type imageKey struct {
	slot, w, h int
}

// imageCache 按 (slot, 尺寸) 复用离屏图像
//
// 不同郁金香的发光尺寸不同，同一帧内会交替请求多种尺寸，
// 每种尺寸只分配一次。
type imageCache struct {
	images map[imageKey]*ebiten.Image
	alloc  func(w, h int) *ebiten.Image
}

func newImageCache() *imageCache {
	return &imageCache{
		images: make(map[imageKey]*ebiten.Image),
		alloc:  ebiten.NewImage,
	}
}

// get 返回缓存的图像；fresh 为 true 表示刚分配（内容已为空）
func (c *imageCache) get(slot, w, h int) (img *ebiten.Image, fresh bool) {
	key := imageKey{slot: slot, w: w, h: h}
	if img, ok := c.images[key]; ok {
		return img, false
	}
	img = c.alloc(w, h)
	c.images[key] = img
	return img, true
}

// cleared 返回内容已清空的缓存图像
func (c *imageCache) cleared(slot, w, h int) *ebiten.Image {
	img, fresh := c.get(slot, w, h)
	if !fresh {
		img.Clear()
	}
	return img
}
