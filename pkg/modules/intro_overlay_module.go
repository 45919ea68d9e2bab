package modules

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/tulips/pkg/config"
	"github.com/decker502/tulips/pkg/utils"
)

// overlayMaxWidthRatio 提示文字最多占屏幕宽度的比例，超出时换行
const overlayMaxWidthRatio = 0.9

// IntroOverlayModule 开场提示文字模块
//
// 职责：
//   - 在屏幕中央显示"点击种花"提示
//   - 首次交互后淡出（gween 补间），之后不再出现
//
// Hide 是单向且幂等的：重复调用不会重启淡出。
type IntroOverlayModule struct {
	text  string
	face  *text.GoTextFace
	color color.RGBA

	fadeSeconds float64
	alpha       float64
	hiding      bool
	tween       *gween.Tween
}

// NewIntroOverlayModule 创建开场提示模块
//
// 参数:
//   - cfg: 提示文字配置
//   - touch: 是否为触摸设备（决定显示 TouchText 还是 Text）
func NewIntroOverlayModule(cfg config.OverlayConfig, touch bool) (*IntroOverlayModule, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load overlay font: %w", err)
	}

	msg := cfg.Text
	if touch && cfg.TouchText != "" {
		msg = cfg.TouchText
	}

	return &IntroOverlayModule{
		text:        msg,
		face:        &text.GoTextFace{Source: source, Size: cfg.FontSize},
		color:       config.HexColor(cfg.Color),
		fadeSeconds: cfg.FadeSeconds,
		alpha:       1,
	}, nil
}

// Hide 开始淡出，已在淡出或已隐藏时不做任何事
func (m *IntroOverlayModule) Hide() {
	if m.hiding {
		return
	}
	m.hiding = true
	log.Printf("[IntroOverlay] Hiding overlay (fade %.2fs)", m.fadeSeconds)

	if m.fadeSeconds <= 0 {
		m.alpha = 0
		return
	}
	m.tween = gween.New(float32(m.alpha), 0, float32(m.fadeSeconds), ease.OutQuad)
}

// Update 推进淡出补间
func (m *IntroOverlayModule) Update(deltaTime float64) {
	if m.tween == nil {
		return
	}
	v, finished := m.tween.Update(float32(deltaTime))
	m.alpha = float64(v)
	if finished {
		m.alpha = 0
		m.tween = nil
	}
}

// Alpha 返回当前不透明度 [0, 1]
func (m *IntroOverlayModule) Alpha() float64 {
	return m.alpha
}

// Hidden 是否已完全隐藏
func (m *IntroOverlayModule) Hidden() bool {
	return m.hiding && m.alpha <= 0
}

// Text 返回显示的文字
func (m *IntroOverlayModule) Text() string {
	return m.text
}

// Draw 在屏幕中央绘制提示文字
func (m *IntroOverlayModule) Draw(screen *ebiten.Image) {
	if m.alpha <= 0 {
		return
	}
	b := screen.Bounds()
	lines := utils.WrapText(m.text, m.face, float64(b.Dx())*overlayMaxWidthRatio)

	op := &text.DrawOptions{}
	op.LineSpacing = m.face.Size * 1.3
	op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(m.color)
	op.ColorScale.ScaleAlpha(float32(m.alpha))
	text.Draw(screen, strings.Join(lines, "\n"), m.face, op)
}
