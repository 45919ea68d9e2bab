package scenes

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/decker502/tulips/pkg/config"
	"github.com/decker502/tulips/pkg/entities"
	"github.com/decker502/tulips/pkg/systems"
)

type stubMusic struct{ calls int }

func (m *stubMusic) StartAmbientMusic() error {
	m.calls++
	return errors.New("no audio device")
}

func newTestScene(t *testing.T, music systems.MusicStarter) *GardenScene {
	t.Helper()
	cfg := config.Default()
	cfg.Window.Width, cfg.Window.Height = 800, 600

	s, err := NewGardenScene(cfg, rand.New(rand.NewPCG(1, 2)), music)
	if err != nil {
		t.Fatalf("NewGardenScene failed: %v", err)
	}
	return s
}

// TestGardenScenePlantAndGrow 点击后每一步推进一次，直到开花
func TestGardenScenePlantAndGrow(t *testing.T) {
	music := &stubMusic{}
	s := newTestScene(t, music)

	if s.Garden().Len() != 0 {
		t.Fatalf("garden should start empty")
	}
	if s.Overlay().Alpha() != 1 {
		t.Fatalf("overlay should start visible")
	}

	tulip := s.Plant(400)
	if x, y := tulip.Position(); x != 400 || y != 600 {
		t.Errorf("tulip at (%.0f, %.0f), want (400, 600)", x, y)
	}

	s.step(1.0 / 60)
	if tulip.Growth() != tulip.Params().GrowthRate {
		t.Errorf("growth after one step = %f, want %f", tulip.Growth(), tulip.Params().GrowthRate)
	}

	for i := 0; i < 1000; i++ {
		s.step(1.0 / 60)
	}
	if tulip.Phase() != entities.PhaseFullyBloomed {
		t.Errorf("phase = %v, want fully bloomed", tulip.Phase())
	}
	if !s.Overlay().Hidden() {
		t.Error("overlay should be hidden after the first activation")
	}

	// 音频失败只尝试一次
	s.Plant(100)
	if music.calls != 1 {
		t.Errorf("music calls = %d, want 1", music.calls)
	}
}

func TestGardenSceneResizeKeepsTulips(t *testing.T) {
	s := newTestScene(t, nil)
	first := s.Plant(200)

	s.Resize(1024, 768)
	if w, h := s.Viewport().Size(); w != 1024 || h != 768 {
		t.Errorf("viewport = %dx%d, want 1024x768", w, h)
	}
	if !s.canvasDirty {
		t.Error("resize should mark the canvas for reallocation")
	}

	second := s.Plant(200)
	if _, y := first.Position(); y != 600 {
		t.Errorf("existing tulip moved to y=%.0f", y)
	}
	if _, y := second.Position(); y != 768 {
		t.Errorf("new tulip y=%.0f, want 768", y)
	}
}

func TestGardenSceneIgnoresEmptyResize(t *testing.T) {
	s := newTestScene(t, nil)
	s.canvasDirty = false

	s.Resize(0, 0)
	if w, h := s.Viewport().Size(); w != 800 || h != 600 {
		t.Errorf("viewport = %dx%d, want unchanged 800x600", w, h)
	}
	if s.canvasDirty {
		t.Error("zero-size resize should not reallocate the canvas")
	}
}
