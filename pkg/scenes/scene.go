package scenes

import (
	"github.com/decker502/tulips/pkg/game"
)

// Scene is a type alias for game.Scene so callers can stay within this package.
type Scene = game.Scene

// Compile-time checks that every scene here satisfies the interfaces
// the scene manager relies on.
var (
	_ Scene          = (*GardenScene)(nil)
	_ game.Resizable = (*GardenScene)(nil)
)
