package systems

import (
	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/types"
	"github.com/gonewx/shaperave/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 绘制所有圆形
//
// 每个圆形画两层，共用一张白色圆形纹理：
//   - 底色层：基础颜色 + 自身透明度，普通 alpha 混合
//   - 遮罩层：最近一次命中它的波次颜色，按全局混合模式叠加
//
// 遮罩在第一次被命中前是透明的，跳过绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	disc          *ebiten.Image
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 按创建顺序绘制所有圆形
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	if s.disc == nil {
		s.disc = utils.NewDiscImage(config.DiscTextureRadius)
	}

	entities := ecs.GetEntitiesWith2[*components.CircleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		circle, _ := ecs.GetComponent[*components.CircleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		scale, _ := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)

		r := circle.RenderedRadius(scale)
		if r <= 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-config.DiscTextureRadius, -config.DiscTextureRadius)
		op.GeoM.Scale(r/config.DiscTextureRadius, r/config.DiscTextureRadius)
		op.GeoM.Translate(pos.X, pos.Y)
		op.Filter = ebiten.FilterLinear

		op.ColorScale = utils.ColorScaleFor(circle.Color, circle.Alpha)
		op.Blend = ebiten.BlendSourceOver
		screen.DrawImage(s.disc, op)

		if circle.MaskColor.A == 0 {
			continue
		}
		op.ColorScale = utils.ColorScaleFor(circle.MaskColor, MaskAlpha(circle))
		op.Blend = BlendFor(circle.BlendMode)
		screen.DrawImage(s.disc, op)
	}
}

// MaskAlpha 返回遮罩层的绘制透明度
// Replace 总是不透明，其他模式使用染色时记录的起点透明度
func MaskAlpha(circle *components.CircleComponent) float64 {
	if circle.BlendMode == types.BlendReplace {
		return 1
	}
	return circle.MaskAlpha
}

// BlendFor 把遮罩混合模式映射为 ebiten 的混合参数
//
// 纹理是预乘 alpha 的圆形，圆外像素为 (0,0,0,0)，
// 所有映射都保证圆外像素不改变目标。
// Replace 用不透明的 source-over 实现，只替换圆内的颜色。
func BlendFor(mode types.BlendMode) ebiten.Blend {
	switch mode {
	case types.BlendAdd:
		return ebiten.BlendLighter
	case types.BlendSubtract:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationReverseSubtract,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case types.BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case types.BlendMultiplyX2:
		// d*s + d：白色遮罩让目标加倍，黑色遮罩保持不变
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case types.BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		// BlendAlpha, BlendReplace
		return ebiten.BlendSourceOver
	}
}
