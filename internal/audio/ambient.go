package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// 和弦进行：Cmaj7 - Am7 - Fmaj7 - G6，每个和弦的频率（Hz）
var padChords = [][]float64{
	{130.81, 196.00, 246.94, 329.63},
	{110.00, 164.81, 196.00, 261.63},
	{87.31, 130.81, 164.81, 220.00},
	{98.00, 146.83, 164.81, 246.94},
}

// C 大调五声音阶，用于风铃音
var chimeNotes = []float64{523.25, 587.33, 659.25, 783.99, 880.00, 1046.50}

const (
	padChordDuration = 8 * time.Second
	padCrossfade     = 2 * time.Second
	padDetune        = 0.6 // 左右声道失谐（Hz），制造立体声宽度
	padGain          = 0.18
	chimeGain        = 0.12
)

// PadGenerator 缓慢循环的和弦铺底
//
// 相邻和弦之间线性交叉淡化；相位由全局时间计算，保证连续无爆音。
type PadGenerator struct {
	sr        beep.SampleRate
	pos       int
	chordLen  int
	fadeLen   int
	chordList [][]float64
}

// NewPadGenerator 创建和弦铺底生成器
func NewPadGenerator(sr beep.SampleRate) *PadGenerator {
	return &PadGenerator{
		sr:        sr,
		chordLen:  sr.N(padChordDuration),
		fadeLen:   sr.N(padCrossfade),
		chordList: padChords,
	}
}

func (g *PadGenerator) chordSample(chord []float64, t float64) (l, r float64) {
	for _, f := range chord {
		l += math.Sin(2 * math.Pi * f * t)
		r += math.Sin(2 * math.Pi * (f + padDetune) * t)
	}
	n := float64(len(chord))
	return l / n, r / n
}

func (g *PadGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		idx := (g.pos / g.chordLen) % len(g.chordList)
		within := g.pos % g.chordLen

		l, r := g.chordSample(g.chordList[idx], t)

		// 和弦末尾淡入下一个和弦
		if fadeStart := g.chordLen - g.fadeLen; within >= fadeStart {
			mix := float64(within-fadeStart) / float64(g.fadeLen)
			next := g.chordList[(idx+1)%len(g.chordList)]
			nl, nr := g.chordSample(next, t)
			l = l*(1-mix) + nl*mix
			r = r*(1-mix) + nr*mix
		}

		// 0.1Hz 慢速颤音
		tremolo := 0.85 + 0.15*math.Sin(2*math.Pi*0.1*t)

		samples[i][0] = l * padGain * tremolo
		samples[i][1] = r * padGain * tremolo
		g.pos++
	}
	return len(samples), true
}

func (g *PadGenerator) Err() error {
	return nil
}

// ChimeGenerator 随机间隔出现的柔和风铃音
type ChimeGenerator struct {
	sr       beep.SampleRate
	rng      *rand.Rand
	pos      int
	noteFreq float64
	noteLen  int
	pan      float64 // -1 左 .. 1 右
	wait     int     // 距下一个音符的帧数
}

// NewChimeGenerator 创建风铃生成器，rng 决定音符和间隔
func NewChimeGenerator(sr beep.SampleRate, rng *rand.Rand) *ChimeGenerator {
	g := &ChimeGenerator{
		sr:      sr,
		rng:     rng,
		noteLen: sr.N(3 * time.Second),
	}
	g.wait = g.nextWait()
	g.pos = g.noteLen
	return g
}

func (g *ChimeGenerator) nextWait() int {
	return g.sr.N(time.Duration((2 + g.rng.Float64()*4) * float64(time.Second)))
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.noteLen {
			if g.wait > 0 {
				g.wait--
				samples[i] = [2]float64{}
				continue
			}
			g.noteFreq = chimeNotes[g.rng.IntN(len(chimeNotes))]
			g.pan = g.rng.Float64()*2 - 1
			g.pos = 0
			g.wait = g.nextWait()
		}

		t := float64(g.pos) / float64(g.sr)
		attack := math.Min(t/0.01, 1)
		env := attack * math.Exp(-t*1.8)
		v := chimeGain * env * math.Sin(2*math.Pi*g.noteFreq*t)

		samples[i][0] = v * (1 - g.pan) / 2
		samples[i][1] = v * (1 + g.pan) / 2
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// NewAmbientMusic 组合和弦铺底与风铃，输出无限长的环境音乐
func NewAmbientMusic(sr beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return beep.Mix(NewPadGenerator(sr), NewChimeGenerator(sr, rng))
}
