package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestFirstTouchNoTouches(t *testing.T) {
	called := false
	_, ok := FirstTouch(nil, func(ebiten.TouchID) (int, int) {
		called = true
		return 0, 0
	})
	if ok {
		t.Error("expected no activation without touches")
	}
	if called {
		t.Error("position should not be queried without touches")
	}
}

func TestFirstTouchPicksEarliest(t *testing.T) {
	positions := map[ebiten.TouchID][2]int{
		7: {300, 10},
		3: {120, 40},
		5: {500, 90},
	}
	lookup := func(id ebiten.TouchID) (int, int) {
		p := positions[id]
		return p[0], p[1]
	}

	act, ok := FirstTouch([]ebiten.TouchID{7, 3, 5}, lookup)
	if !ok {
		t.Fatal("expected activation")
	}
	if act.X != 120 || act.Y != 40 {
		t.Errorf("activation at (%d, %d), want (120, 40)", act.X, act.Y)
	}
	if !act.IsTouch {
		t.Error("expected IsTouch to be true")
	}
}
