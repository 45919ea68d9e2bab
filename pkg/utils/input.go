// Package utils 提供通用工具函数
package utils

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerActivation 一次主指针激活（鼠标左键按下或触摸开始）
type PointerActivation struct {
	X, Y int
	// IsTouch 是否来自触摸输入
	IsTouch bool
}

// JustActivated 检查本帧是否发生主指针激活
//
// 触摸开始时与网页行为一致：取当前所有触摸点中的第一个，
// 同一帧多个手指落下也只产生一次激活。没有触摸时检查鼠标左键。
func JustActivated() (PointerActivation, bool) {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		if act, ok := FirstTouch(ebiten.AppendTouchIDs(nil), ebiten.TouchPosition); ok {
			return act, true
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return PointerActivation{X: x, Y: y}, true
	}

	return PointerActivation{}, false
}

// FirstTouch 返回 ID 最小（最早按下）的触摸点
//
// 参数：
//   - ids: 当前活动的触摸 ID
//   - position: 查询触摸位置的函数（通常为 ebiten.TouchPosition）
func FirstTouch(ids []ebiten.TouchID, position func(ebiten.TouchID) (int, int)) (PointerActivation, bool) {
	if len(ids) == 0 {
		return PointerActivation{}, false
	}
	first := slices.Min(ids)
	x, y := position(first)
	return PointerActivation{X: x, Y: y, IsTouch: true}, true
}
