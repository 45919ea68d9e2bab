package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/tulips/pkg/config"
	"github.com/decker502/tulips/pkg/entities"
	"github.com/decker502/tulips/pkg/game"
	"github.com/decker502/tulips/pkg/graphics"
	"github.com/decker502/tulips/pkg/modules"
	"github.com/decker502/tulips/pkg/systems"
	"github.com/decker502/tulips/pkg/utils"
)

// GardenScene is the single interactive scene: a dark field where every
// activation plants a tulip that grows, blooms and then stays forever.
type GardenScene struct {
	viewport *game.Viewport
	garden   *game.Garden
	overlay  *modules.IntroOverlayModule

	input  *systems.InputSystem
	growth *systems.GrowthSystem
	render *systems.RenderSystem

	background color.RGBA

	// Flowers are drawn to an offscreen canvas that matches the viewport;
	// the canvas is reallocated lazily after a resize.
	surface     *graphics.EbitenSurface
	canvas      *ebiten.Image
	canvasDirty bool
}

// NewGardenScene wires the garden, its systems and the intro overlay.
// music may be nil, in which case activations never start audio.
func NewGardenScene(cfg *config.Config, rng *rand.Rand, music systems.MusicStarter) (*GardenScene, error) {
	overlay, err := modules.NewIntroOverlayModule(cfg.Overlay, utils.IsMobile())
	if err != nil {
		return nil, fmt.Errorf("failed to create intro overlay: %w", err)
	}

	viewport := game.NewViewport(cfg.Window.Width, cfg.Window.Height)
	garden := game.NewGarden()
	factory := entities.NewTulipFactory(cfg.Tulip, rng)

	s := &GardenScene{
		viewport:    viewport,
		garden:      garden,
		overlay:     overlay,
		growth:      systems.NewGrowthSystem(garden),
		render:      systems.NewRenderSystem(garden),
		background:  config.HexColor(cfg.Background),
		surface:     graphics.NewEbitenSurface(),
		canvasDirty: true,
	}

	s.input = systems.NewInputSystem(factory, garden, viewport, overlay, music)

	log.Printf("[GardenScene] Created (%dx%d)", cfg.Window.Width, cfg.Window.Height)
	return s, nil
}

// Resize updates the viewport. Existing tulips keep their positions.
func (s *GardenScene) Resize(width, height int) {
	if s.viewport.Resize(width, height) {
		s.canvasDirty = true
	}
}

// Update polls input, then advances every tulip by one step.
func (s *GardenScene) Update(deltaTime float64) {
	s.input.Update()
	s.step(deltaTime)
}

func (s *GardenScene) step(deltaTime float64) {
	s.growth.Update()
	s.overlay.Update(deltaTime)
}

// Plant behaves as if the user activated the pointer at horizontal position x.
func (s *GardenScene) Plant(x float64) *entities.Tulip {
	return s.input.Activate(x)
}

// Garden exposes the tulip registry.
func (s *GardenScene) Garden() *game.Garden {
	return s.garden
}

// Viewport exposes the current drawable size.
func (s *GardenScene) Viewport() *game.Viewport {
	return s.viewport
}

// Overlay exposes the intro overlay.
func (s *GardenScene) Overlay() *modules.IntroOverlayModule {
	return s.overlay
}

// Draw clears the canvas, renders all tulips onto it and composites the
// result over the background, with the overlay on top.
func (s *GardenScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	s.ensureCanvas()
	s.surface.Begin(s.canvas)
	s.render.Draw(s.surface, s.viewport)
	screen.DrawImage(s.canvas, nil)

	s.overlay.Draw(screen)
}

func (s *GardenScene) ensureCanvas() {
	if !s.canvasDirty && s.canvas != nil {
		return
	}
	if s.canvas != nil {
		s.canvas.Deallocate()
	}
	w, h := s.viewport.Size()
	s.canvas = ebiten.NewImage(max(w, 1), max(h, 1))
	s.canvasDirty = false
}
