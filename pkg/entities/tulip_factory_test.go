package entities

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/tulips/pkg/config"
)

func TestTulipFactorySpawn(t *testing.T) {
	f := NewTulipFactory(config.Default().Tulip, rand.New(rand.NewPCG(11, 12)))

	a := f.Spawn(400, 600)
	b := f.Spawn(100, 600)

	if x, y := a.Position(); x != 400 || y != 600 {
		t.Errorf("first tulip at (%f, %f), want (400, 600)", x, y)
	}
	if a.Growth() != 0 || a.BloomSize() != 0 {
		t.Error("spawned tulip should start with zero growth and bloom")
	}
	if a.Params() == b.Params() {
		t.Error("consecutive spawns should draw independent params")
	}
	if a.style != b.style {
		t.Error("tulips from one factory should share a style")
	}
}

func TestTulipFactoryDeterministic(t *testing.T) {
	cfg := config.Default().Tulip
	a := NewTulipFactory(cfg, rand.New(rand.NewPCG(9, 9))).Spawn(0, 0)
	b := NewTulipFactory(cfg, rand.New(rand.NewPCG(9, 9))).Spawn(0, 0)
	if a.Params() != b.Params() {
		t.Error("same seed should produce the same tulip")
	}
}
