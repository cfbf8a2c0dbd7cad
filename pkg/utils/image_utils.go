package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NewDiscImage 生成一张白色实心圆纹理
//
// 渲染系统用 ColorScale 给它着色、用 GeoM 缩放到目标半径，
// 因此所有圆形共用同一张纹理。
//
// 参数:
//   - radius: 纹理中圆的半径（像素），图片边长为 2*radius
func NewDiscImage(radius int) *ebiten.Image {
	if radius < 1 {
		radius = 1
	}
	size := radius * 2
	img := ebiten.NewImage(size, size)
	r := float32(radius)
	vector.DrawFilledCircle(img, r, r, r, color.White, true)
	return img
}

// NewSolidImage 生成 1x1 纯色纹理（用于面板背景等矩形填充）
func NewSolidImage(c color.Color) *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	return img
}
