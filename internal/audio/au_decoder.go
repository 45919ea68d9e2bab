// Package audio 提供背景音乐的解码与合成
//
// 所有音源都以 beep.Streamer 的形式输出立体声浮点帧，
// 再由 PCMReader 转成 ebiten 音频播放器需要的 16 位小端 PCM。
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gopxl/beep"
)

// AUStream 解码后的 Sun/NeXT (.au) 音频
//
// 支持 μ-law 与 16 位线性 PCM，单声道会复制到左右声道。
// 实现 beep.StreamSeeker，可以直接循环或重采样。
type AUStream struct {
	frames     [][2]float64
	sampleRate beep.SampleRate
	channels   int
	pos        int
}

// AU 文件头（至少 24 字节，大端序）
type auHeader struct {
	Magic      uint32 // 0x2e736e64 (".snd")
	DataOffset uint32 // 音频数据偏移（通常为 24）
	DataSize   uint32 // 数据长度，未知时为 0xFFFFFFFF
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

const (
	auMagic         = 0x2e736e64 // ".snd"
	auEncodingULaw  = 1          // 8 位 μ-law
	auEncodingPCM16 = 3          // 16 位线性 PCM
)

// μ-law decompression table (converts μ-law byte to 16-bit PCM)
var mulawTable = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// DecodeAU 从 r 读取并解码完整的 .au 文件
func DecodeAU(r io.Reader) (*AUStream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU file: %w", err)
	}

	if len(data) < 24 {
		return nil, fmt.Errorf("AU file too short: %d bytes (minimum 24)", len(data))
	}

	var header auHeader
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read AU header: %w", err)
	}

	if header.Magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic number: 0x%08x (expected 0x%08x)", header.Magic, auMagic)
	}

	if header.Channels < 1 || header.Channels > 2 {
		return nil, fmt.Errorf("unsupported channel count: %d (only 1-2 supported)", header.Channels)
	}

	if header.SampleRate == 0 {
		return nil, fmt.Errorf("invalid sample rate: 0")
	}

	offset := int(header.DataOffset)
	if offset < 24 || offset >= len(data) {
		return nil, fmt.Errorf("invalid data offset: %d (file size: %d)", offset, len(data))
	}

	payload := data[offset:]
	if header.DataSize != 0xFFFFFFFF && int(header.DataSize) < len(payload) {
		payload = payload[:header.DataSize]
	}

	var samples []float64
	switch header.Encoding {
	case auEncodingULaw:
		samples = make([]float64, len(payload))
		for i, b := range payload {
			samples[i] = float64(mulawTable[b]) / 32768
		}
	case auEncodingPCM16:
		samples = make([]float64, len(payload)/2)
		for i := range samples {
			v := int16(binary.BigEndian.Uint16(payload[i*2:]))
			samples[i] = float64(v) / 32768
		}
	default:
		return nil, fmt.Errorf("unsupported AU encoding: %d (only μ-law [1] and PCM16 [3] are supported)", header.Encoding)
	}

	channels := int(header.Channels)
	frames := make([][2]float64, len(samples)/channels)
	for i := range frames {
		if channels == 1 {
			frames[i] = [2]float64{samples[i], samples[i]}
		} else {
			frames[i] = [2]float64{samples[i*2], samples[i*2+1]}
		}
	}

	return &AUStream{
		frames:     frames,
		sampleRate: beep.SampleRate(header.SampleRate),
		channels:   channels,
	}, nil
}

// Stream 实现 beep.Streamer
func (s *AUStream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.frames) {
		return 0, false
	}
	n = copy(samples, s.frames[s.pos:])
	s.pos += n
	return n, true
}

// Err 实现 beep.Streamer
func (s *AUStream) Err() error {
	return nil
}

// Len 返回总帧数
func (s *AUStream) Len() int {
	return len(s.frames)
}

// Position 返回当前帧位置
func (s *AUStream) Position() int {
	return s.pos
}

// Seek 跳转到指定帧
func (s *AUStream) Seek(p int) error {
	if p < 0 || p > len(s.frames) {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, len(s.frames))
	}
	s.pos = p
	return nil
}

// SampleRate 返回原始采样率
func (s *AUStream) SampleRate() beep.SampleRate {
	return s.sampleRate
}

// Channels 返回原始声道数（1=单声道, 2=立体声）
func (s *AUStream) Channels() int {
	return s.channels
}
