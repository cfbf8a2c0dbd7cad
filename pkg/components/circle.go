package components

import (
	"image/color"

	"github.com/gonewx/shaperave/pkg/types"
)

// CircleComponent 圆形的外观数据
//
// 每个圆形由两层组成：
//   - 底色层：创建时随机选取的基础颜色，透明度在 [0.6, 0.9] 之间
//   - 遮罩层：被传播波次染色后的颜色，按全局混合模式叠加在底色之上
//
// 遮罩层在第一次被波次命中之前是透明的（MaskColor.A == 0）。
type CircleComponent struct {
	// Radius 逻辑半径（像素），渲染半径 = Radius * ScaleComponent.Scale
	Radius float64

	// Color 基础颜色（不含透明度）
	Color color.RGBA
	// Alpha 底色层透明度
	Alpha float64

	// MaskColor 遮罩颜色，由最近一次命中该圆的波次起点决定
	MaskColor color.RGBA
	// MaskAlpha 遮罩层透明度，取自波次起点的底色透明度
	MaskAlpha float64
	// BlendMode 遮罩层的混合模式
	BlendMode types.BlendMode
}

// RenderedRadius 返回考虑缩放后的实际渲染半径
func (c *CircleComponent) RenderedRadius(scale *ScaleComponent) float64 {
	if scale == nil {
		return c.Radius
	}
	return c.Radius * scale.Scale
}
