package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ColorScaleFor 返回把白色纹理染成 c、透明度为 alpha 的 ColorScale
func ColorScaleFor(c color.RGBA, alpha float64) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	cs.ScaleAlpha(float32(Clamp01(alpha)))
	return cs
}

// WithAlpha 返回替换了 alpha 通道的颜色（非预乘）
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(Clamp01(alpha)*255 + 0.5)}
}
