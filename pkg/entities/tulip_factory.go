package entities

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/tulips/pkg/config"
)

// TulipFactory 按配置批量创建郁金香
//
// 所有郁金香共享同一份 TulipStyle；随机属性来自注入的 rng。
type TulipFactory struct {
	cfg   config.TulipConfig
	style *TulipStyle
	rng   *rand.Rand
}

// NewTulipFactory 创建郁金香工厂
func NewTulipFactory(cfg config.TulipConfig, rng *rand.Rand) *TulipFactory {
	style := NewTulipStyle(cfg)
	return &TulipFactory{
		cfg:   cfg,
		style: &style,
		rng:   rng,
	}
}

// Spawn 在 (x, y) 创建一株新的郁金香
func (f *TulipFactory) Spawn(x, y float64) *Tulip {
	params := RandomTulipParams(f.cfg, f.rng)
	log.Printf("[TulipFactory] Spawn at (%.0f, %.0f): height=%.1f rate=%.2f hue=%.0f bloom=%.1f",
		x, y, params.StemHeight, params.GrowthRate, params.Hue, params.MaxBloomSize)
	return NewTulip(x, y, params, f.style)
}
