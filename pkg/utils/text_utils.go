package utils

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// TruncateText 把文本截断到指定宽度以内，超出部分用 "..." 代替
// 参数:
//   - textStr: 原文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - string: 截断后的文本；未超宽时原样返回
func TruncateText(textStr string, font text.Face, maxWidth float64) string {
	if font == nil || maxWidth <= 0 || MeasureTextWidth(textStr, font) <= maxWidth {
		return textStr
	}

	const ellipsis = "..."
	runes := []rune(textStr)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + ellipsis
		if MeasureTextWidth(candidate, font) <= maxWidth {
			return candidate
		}
	}
	if utf8.RuneCountInString(textStr) == 0 {
		return textStr
	}
	return ellipsis
}
