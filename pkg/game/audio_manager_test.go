package game

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/tulips/pkg/config"
)

func TestStartAmbientMusicDisabled(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false

	am := NewAudioManager(nil, cfg, rand.New(rand.NewPCG(1, 1)))
	if err := am.StartAmbientMusic(); err != nil {
		t.Errorf("disabled music should not fail, got %v", err)
	}
	if am.IsPlaying() {
		t.Error("disabled music should not be playing")
	}
}

func TestStartAmbientMusicWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, config.Default().Audio, rand.New(rand.NewPCG(1, 1)))

	err := am.StartAmbientMusic()
	if !errors.Is(err, ErrNoAudioContext) {
		t.Errorf("expected ErrNoAudioContext, got %v", err)
	}

	// 没有播放器时停止也是安全的
	am.StopMusic()
}

func TestOpenMusicFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := OpenMusicFile(filepath.Join(dir, "song.flac"), 48000); err == nil ||
		!strings.Contains(err.Error(), "unsupported audio format") {
		t.Errorf("expected unsupported format error, got %v", err)
	}

	if _, err := OpenMusicFile(filepath.Join(dir, "missing.mp3"), 48000); err == nil ||
		!strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.au")
	if err := os.WriteFile(bad, []byte("not an au file at all......"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenMusicFile(bad, 48000); err == nil || !strings.Contains(err.Error(), "failed to decode") {
		t.Errorf("expected decode error, got %v", err)
	}
}

// TestOpenMusicFileAU 验证 .au 文件被循环并重采样为 16 位立体声 PCM
func TestOpenMusicFileAU(t *testing.T) {
	var buf bytes.Buffer
	header := []uint32{0x2e736e64, 24, 4, 1, 8000, 1}
	for _, v := range header {
		binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write([]byte{0x00, 0x80, 0x00, 0x80})

	path := filepath.Join(t.TempDir(), "loop.au")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := OpenMusicFile(path, 48000)
	if err != nil {
		t.Fatalf("OpenMusicFile failed: %v", err)
	}

	// 源只有 4 帧，读取远多于此的数据说明已循环
	p := make([]byte, 4*1024)
	n, err := io.ReadFull(r, p)
	if err != nil || n != len(p) {
		t.Fatalf("ReadFull = (%d, %v)", n, err)
	}

	nonZero := false
	for _, b := range p {
		if b != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("decoded AU stream is silent")
	}
}

// TestOpenMusicFileEmptyAU 不含采样的 AU 文件直接报错，不进入无限循环
func TestOpenMusicFileEmptyAU(t *testing.T) {
	var buf bytes.Buffer
	// data size 为 0：头部合法但没有任何采样
	header := []uint32{0x2e736e64, 24, 0, 1, 8000, 1}
	for _, v := range header {
		binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write([]byte{0x00, 0x80, 0x00, 0x80})

	path := filepath.Join(t.TempDir(), "empty.au")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenMusicFile(path, 48000); !errors.Is(err, ErrEmptyMusic) {
		t.Errorf("expected ErrEmptyMusic, got %v", err)
	}
}
