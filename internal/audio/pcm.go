package audio

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gopxl/beep"
)

// bytesPerFrame 16 位立体声：每帧 4 字节
const bytesPerFrame = 4

// PCMReader 将 beep.Streamer 转为 16 位小端立体声 PCM
//
// ebiten 的 audio.Context.NewPlayer 按该格式读取数据。
type PCMReader struct {
	s      beep.Streamer
	volume float64
	buf    [][2]float64
}

// NewPCMReader 创建 PCM 适配器，volume 取值 [0, 1]
func NewPCMReader(s beep.Streamer, volume float64) *PCMReader {
	return &PCMReader{
		s:      s,
		volume: math.Max(0, math.Min(volume, 1)),
	}
}

// Read 实现 io.Reader
func (r *PCMReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, ok := r.s.Stream(buf)
	if n == 0 && !ok {
		if err := r.s.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(p[i*bytesPerFrame:], uint16(toInt16(buf[i][0]*r.volume)))
		binary.LittleEndian.PutUint16(p[i*bytesPerFrame+2:], uint16(toInt16(buf[i][1]*r.volume)))
	}
	return n * bytesPerFrame, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(v, 1))
	return int16(math.Round(v * 32767))
}
