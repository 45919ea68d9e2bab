// Package graphics 提供即时模式 2D 绘图表面
//
// Surface 模仿 Canvas 2D 上下文的最小子集：路径构建、描边、填充、
// 发光阴影以及可保存/恢复的仿射变换栈。实体只依赖该接口，
// 因此既可以绘制到 ebiten 屏幕，也可以在测试中被记录。
package graphics

import "image/color"

// Surface 即时模式绘图表面
type Surface interface {
	// ClearRect 将矩形区域清空为透明（不受当前变换影响）
	ClearRect(x, y, width, height float64)

	// Save 压栈当前变换和样式
	Save()
	// Restore 恢复最近一次 Save 的状态，栈为空时不做任何事
	Restore()
	Translate(dx, dy float64)
	// Rotate 以弧度为单位顺时针旋转（屏幕坐标系 y 轴向下）
	Rotate(theta float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	SetStroke(c color.Color, width float64)
	SetFill(c color.Color)
	// SetShadow 设置后续填充的发光效果，blur 为 0 时关闭
	SetShadow(blur float64, c color.Color)

	Stroke()
	Fill()
}
