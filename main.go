package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/tulips/pkg/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg        app.Config
		fullscreen bool
	)

	cmd := &cobra.Command{
		Use:          "tulips",
		Short:        "Click anywhere to grow glowing tulips",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, fullscreen)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.ConfigPath, "config", "c", "", "YAML config file (overrides built-in defaults)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable verbose logging")
	flags.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 = time based)")
	flags.StringVar(&cfg.MusicFile, "music", "", "background music file (.mp3, .ogg, .wav, .au)")
	flags.BoolVar(&cfg.Mute, "mute", false, "disable background music")
	flags.BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen mode")

	return cmd
}

func run(cfg app.Config, fullscreen bool) error {
	gameApp, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	defer gameApp.Shutdown()

	win := gameApp.Settings().Window
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	if win.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(fullscreen)
	// 每次呈现推进一步
	ebiten.SetTPS(ebiten.SyncWithFPS)

	log.Printf("[Main] Starting %q (%dx%d)", win.Title, win.Width, win.Height)
	if err := ebiten.RunGame(gameApp); err != nil {
		return fmt.Errorf("game loop exited: %w", err)
	}
	return nil
}
