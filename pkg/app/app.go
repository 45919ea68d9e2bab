// Package app 提供郁金香花园应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/tulips/pkg/config"
	"github.com/decker502/tulips/pkg/game"
	"github.com/decker502/tulips/pkg/scenes"
)

// frameDelta 每个 tick 的名义时长；TPS 与帧率同步，一个 tick 即一帧
const frameDelta = 1.0 / 60.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath YAML 配置文件路径，为空则使用内置默认值
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// MusicFile 覆盖配置中的背景音乐文件
	MusicFile string
	// Mute 禁用背景音乐
	Mute bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	settings     *config.Config
	sceneManager *game.SceneManager
	audioManager *game.AudioManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	if cfg.MusicFile != "" {
		settings.Audio.MusicFile = cfg.MusicFile
	}
	if cfg.Mute {
		settings.Audio.Enabled = false
	}
	log.Printf("[Config] window=%dx%d audio=%v music=%q",
		settings.Window.Width, settings.Window.Height, settings.Audio.Enabled, settings.Audio.MusicFile)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Random seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	// 初始化音频上下文（整个进程只能创建一次）
	var audioContext *audio.Context
	if settings.Audio.Enabled {
		audioContext = audio.NewContext(settings.Audio.SampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settings.Audio, rng)
	log.Printf("[App] AudioManager initialized")

	garden, err := scenes.NewGardenScene(settings, rng, audioManager)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(garden)

	return &App{
		settings:     settings,
		sceneManager: sceneManager,
		audioManager: audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次；TPS 与帧率同步，因此每次呈现对应一步模拟
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.settings.Window.Width, a.settings.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.settings.Window.Width, a.settings.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(frameDelta)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 画布始终与窗口一样大，尺寸变化时通知场景
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Settings 返回合并后的配置
func (a *App) Settings() *config.Config {
	return a.settings
}

// Shutdown 停止背景音乐
func (a *App) Shutdown() {
	a.audioManager.StopMusic()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
