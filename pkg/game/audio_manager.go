package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	ambient "github.com/decker502/tulips/internal/audio"
	"github.com/decker502/tulips/pkg/config"
)

// ErrNoAudioContext 没有可用的音频上下文（例如设备初始化失败）
var ErrNoAudioContext = errors.New("audio context unavailable")

// ErrEmptyMusic 音乐文件不含任何采样
var ErrEmptyMusic = errors.New("music file contains no samples")

// AudioManager 背景音乐管理器
// 职责：
//   - 首次交互时启动循环背景音乐
//   - 配置了音乐文件时解码文件（mp3/ogg/wav/au），否则播放程序合成的环境音
//   - 音量取自 AudioConfig
type AudioManager struct {
	context *audio.Context
	cfg     config.AudioConfig
	rng     *rand.Rand

	currentMusic *audio.Player
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（可为 nil，此时 StartAmbientMusic 返回错误）
//   - cfg: 音频配置
//   - rng: 合成音乐使用的随机源
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig, rng *rand.Rand) *AudioManager {
	return &AudioManager{
		context: ctx,
		cfg:     cfg,
		rng:     rng,
	}
}

// StartAmbientMusic 开始播放背景音乐
//
// 只负责发起播放，不阻塞；返回的错误由调用方记录后忽略。
// 音乐已禁用时什么也不做。
func (am *AudioManager) StartAmbientMusic() error {
	if !am.cfg.Enabled {
		log.Printf("[AudioManager] Music disabled by config")
		return nil
	}
	if am.context == nil {
		return ErrNoAudioContext
	}
	if am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return nil
	}

	src, err := am.openMusic()
	if err != nil {
		return err
	}

	player, err := am.context.NewPlayer(src)
	if err != nil {
		return fmt.Errorf("failed to create music player: %w", err)
	}
	player.SetVolume(am.cfg.Volume)
	player.Play()

	am.currentMusic = player
	log.Printf("[AudioManager] Playing music (volume: %.2f)", am.cfg.Volume)
	return nil
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
	}
}

// IsPlaying 背景音乐是否正在播放
func (am *AudioManager) IsPlaying() bool {
	return am.currentMusic != nil && am.currentMusic.IsPlaying()
}

func (am *AudioManager) openMusic() (io.Reader, error) {
	sampleRate := am.context.SampleRate()
	if am.cfg.MusicFile == "" {
		log.Printf("[AudioManager] No music file configured, using synthesized ambience")
		music := ambient.NewAmbientMusic(beep.SampleRate(sampleRate), am.rng)
		return ambient.NewPCMReader(music, 1), nil
	}
	return OpenMusicFile(am.cfg.MusicFile, sampleRate)
}

// OpenMusicFile 读取并解码音乐文件，返回无限循环的 16 位立体声 PCM
//
// 支持的格式：MP3 (.mp3)、OGG Vorbis (.ogg)、WAV (.wav)、Sun AU (.au)。
//
// 参数：
//   - path: 音乐文件路径
//   - sampleRate: 目标采样率（音频上下文的采样率）
func OpenMusicFile(path string, sampleRate int) (io.Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3", ".ogg", ".wav", ".au":
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav, .au)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file: %w", err)
	}
	reader := bytes.NewReader(data)

	var (
		stream interface {
			io.ReadSeeker
			Length() int64
		}
		decodeErr error
	)

	switch ext {
	case ".mp3":
		stream, decodeErr = mp3.DecodeWithSampleRate(sampleRate, reader)
	case ".ogg":
		stream, decodeErr = vorbis.DecodeWithSampleRate(sampleRate, reader)
	case ".wav":
		stream, decodeErr = wav.DecodeWithSampleRate(sampleRate, reader)
	case ".au":
		au, err := ambient.DecodeAU(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		// 空音源会让 beep.Loop 空转
		if au.Len() == 0 {
			return nil, fmt.Errorf("failed to decode %s: %w", path, ErrEmptyMusic)
		}
		// AU 文件采样率通常为 8kHz，先循环再重采样到上下文采样率
		resampled := beep.Resample(4, au.SampleRate(), beep.SampleRate(sampleRate), beep.Loop(-1, au))
		return ambient.NewPCMReader(resampled, 1), nil
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, decodeErr)
	}

	return audio.NewInfiniteLoop(stream, stream.Length()), nil
}
