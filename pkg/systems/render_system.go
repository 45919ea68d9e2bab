package systems

import (
	"github.com/decker502/tulips/pkg/entities"
	"github.com/decker502/tulips/pkg/game"
	"github.com/decker502/tulips/pkg/graphics"
)

// RenderSystem 把花园绘制到画布上
type RenderSystem struct {
	garden *game.Garden
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(garden *game.Garden) *RenderSystem {
	return &RenderSystem{garden: garden}
}

// Draw 清空整个视口，再按种植顺序绘制每株郁金香
func (s *RenderSystem) Draw(surface graphics.Surface, viewport *game.Viewport) {
	w, h := viewport.Size()
	surface.ClearRect(0, 0, float64(w), float64(h))
	s.garden.Each(func(t *entities.Tulip) {
		t.Render(surface)
	})
}
