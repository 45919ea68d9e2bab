package game

import "log"

// Viewport 当前可绘制区域的像素尺寸
type Viewport struct {
	width, height int
}

// NewViewport 创建视口
func NewViewport(width, height int) *Viewport {
	return &Viewport{width: width, height: height}
}

// Size 返回宽高
func (v *Viewport) Size() (int, int) {
	return v.width, v.height
}

func (v *Viewport) Width() int {
	return v.width
}

func (v *Viewport) Height() int {
	return v.height
}

// Resize 更新尺寸，返回尺寸是否发生变化
//
// 窗口最小化时宿主可能报告 0 尺寸，此时保留原值。
func (v *Viewport) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == v.width && height == v.height {
		return false
	}
	log.Printf("[Viewport] Resize %dx%d -> %dx%d", v.width, v.height, width, height)
	v.width, v.height = width, height
	return true
}
