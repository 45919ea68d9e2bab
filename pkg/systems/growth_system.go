package systems

import (
	"github.com/decker502/tulips/pkg/entities"
	"github.com/decker502/tulips/pkg/game"
)

// GrowthSystem 每帧推进花园中所有郁金香的生长
type GrowthSystem struct {
	garden *game.Garden
}

// NewGrowthSystem 创建生长系统
func NewGrowthSystem(garden *game.Garden) *GrowthSystem {
	return &GrowthSystem{garden: garden}
}

// Update 按种植顺序对每株郁金香执行一步
func (s *GrowthSystem) Update() {
	s.garden.Each(func(t *entities.Tulip) {
		t.Advance()
	})
}
