package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a full-screen scene driven by the app loop.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one frame.
	// deltaTime is the nominal frame duration in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会在窗口尺寸变化时收到通知
type Resizable interface {
	// Resize 以逻辑像素通知新的屏幕尺寸
	Resize(width, height int)
}
