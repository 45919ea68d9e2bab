package graphics

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

type pathVerb int

const (
	verbMoveTo pathVerb = iota
	verbLineTo
	verbQuadTo
	verbCubicTo
	verbClose
)

// pathOp 设备坐标系下的一条路径指令
type pathOp struct {
	verb pathVerb
	pts  [3][2]float64
	n    int // pts 中有效点数
}

// devicePath 记录已变换到设备坐标的路径
//
// 保留指令列表而不是直接写入 vector.Path，
// 这样发光效果可以把同一路径平移后画进离屏缓冲。
type devicePath struct {
	ops []pathOp
}

func (p *devicePath) reset() {
	p.ops = p.ops[:0]
}

func (p *devicePath) add(verb pathVerb, pts ...[2]float64) {
	op := pathOp{verb: verb, n: len(pts)}
	copy(op.pts[:], pts)
	p.ops = append(p.ops, op)
}

func (p *devicePath) empty() bool {
	return len(p.ops) == 0
}

// bounds 返回所有端点与控制点的包围盒
//
// 贝塞尔曲线位于其控制点凸包内，因此该包围盒一定包含整条曲线。
func (p *devicePath) bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, op := range p.ops {
		for i := 0; i < op.n; i++ {
			x, y := op.pts[i][0], op.pts[i][1]
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
	}
	return minX, minY, maxX, maxY, !math.IsInf(minX, 1)
}

// build 生成平移 (dx, dy) 后的 vector.Path
func (p *devicePath) build(dx, dy float64) *vector.Path {
	var vp vector.Path
	f := func(i int, op *pathOp) (float32, float32) {
		return float32(op.pts[i][0] + dx), float32(op.pts[i][1] + dy)
	}
	for i := range p.ops {
		op := &p.ops[i]
		switch op.verb {
		case verbMoveTo:
			x, y := f(0, op)
			vp.MoveTo(x, y)
		case verbLineTo:
			x, y := f(0, op)
			vp.LineTo(x, y)
		case verbQuadTo:
			cx, cy := f(0, op)
			x, y := f(1, op)
			vp.QuadTo(cx, cy, x, y)
		case verbCubicTo:
			c1x, c1y := f(0, op)
			c2x, c2y := f(1, op)
			x, y := f(2, op)
			vp.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case verbClose:
			vp.Close()
		}
	}
	return &vp
}
