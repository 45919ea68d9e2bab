package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行
//   - 单词本身超过最大宽度时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measureTextWidth(testLine, font) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
		}
		if measureTextWidth(word, font) <= maxWidth {
			currentLine = word
			continue
		}

		// 超长单词
		parts := splitRunes(word, font, maxWidth)
		lines = append(lines, parts[:len(parts)-1]...)
		currentLine = parts[len(parts)-1]
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// splitRunes 按字符切分，每段不超过 maxWidth（单个字符超宽时独占一段）
func splitRunes(s string, font *text.GoTextFace, maxWidth float64) []string {
	var parts []string
	current := ""
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]

		test := current + string(r)
		if current != "" && measureTextWidth(test, font) > maxWidth {
			parts = append(parts, current)
			current = string(r)
			continue
		}
		current = test
	}
	return append(parts, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
