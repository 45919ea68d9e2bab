package systems

import (
	"log"

	"github.com/decker502/tulips/pkg/entities"
	"github.com/decker502/tulips/pkg/game"
	"github.com/decker502/tulips/pkg/utils"
)

// Overlay 首次交互后需要隐藏的提示层
type Overlay interface {
	Hide()
}

// MusicStarter 背景音乐启动器（由 game.AudioManager 实现）
type MusicStarter interface {
	StartAmbientMusic() error
}

// Spawner 在指定位置创建郁金香
type Spawner interface {
	Spawn(x, y float64) *entities.Tulip
}

// InputSystem 处理指针激活：隐藏提示、启动音乐、种下郁金香
type InputSystem struct {
	spawner  Spawner
	garden   *game.Garden
	viewport *game.Viewport
	overlay  Overlay
	music    MusicStarter

	// musicAttempted 音乐只尝试启动一次，无论成功与否
	musicAttempted bool

	// poll 读取本帧的指针激活，测试中可替换
	poll func() (utils.PointerActivation, bool)
}

// NewInputSystem 创建输入系统
//
// overlay 与 music 可以为 nil。
func NewInputSystem(spawner Spawner, garden *game.Garden, viewport *game.Viewport, overlay Overlay, music MusicStarter) *InputSystem {
	return &InputSystem{
		spawner:  spawner,
		garden:   garden,
		viewport: viewport,
		overlay:  overlay,
		music:    music,
		poll:     utils.JustActivated,
	}
}

// Update 轮询本帧输入，每帧最多一次激活
func (s *InputSystem) Update() {
	act, ok := s.poll()
	if !ok {
		return
	}
	s.Activate(float64(act.X))
}

// Activate 处理一次激活
//
// 郁金香种在视口底边上，只使用激活点的横坐标。
func (s *InputSystem) Activate(x float64) *entities.Tulip {
	if s.overlay != nil {
		s.overlay.Hide()
	}

	if !s.musicAttempted {
		s.musicAttempted = true
		if s.music != nil {
			if err := s.music.StartAmbientMusic(); err != nil {
				log.Printf("[Input] Audio playback failed: %v", err)
			}
		}
	}

	t := s.spawner.Spawn(x, float64(s.viewport.Height()))
	s.garden.Add(t)
	return t
}
