package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PanelRenderSystem 参数面板渲染系统
//
// 绘制顺序：面板背景 → 滑动条（标签、滑槽、滑块） → 复选框。
// 面板完全在屏幕外时不绘制任何内容。
type PanelRenderSystem struct {
	entityManager *ecs.EntityManager
	panelEntity   ecs.EntityID
	font          text.Face
}

// NewPanelRenderSystem 创建面板渲染系统
func NewPanelRenderSystem(em *ecs.EntityManager, panelEntity ecs.EntityID, font text.Face) *PanelRenderSystem {
	return &PanelRenderSystem{
		entityManager: em,
		panelEntity:   panelEntity,
		font:          font,
	}
}

// Draw 渲染面板
func (s *PanelRenderSystem) Draw(screen *ebiten.Image) {
	panel, ok := ecs.GetComponent[*components.PanelComponent](s.entityManager, s.panelEntity)
	if !ok || !panel.Visible() {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.panelEntity)
	if !ok {
		return
	}

	// 面板越接近打开位置越不透明
	progress := 1.0
	if panel.ClosedOffset != 0 {
		progress = utils.Clamp01(1 - panel.Offset/panel.ClosedOffset)
	}
	alpha := utils.EaseOutQuad(progress)

	bg := config.PanelBackgroundColor
	vector.DrawFilledRect(screen,
		float32(pos.X), float32(pos.Y+panel.Offset),
		float32(panel.Width), float32(panel.Height),
		scaleAlpha(bg, alpha), true)

	for _, id := range ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager) {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, id)
		sp, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.drawSlider(screen, slider, sp.X, sp.Y, alpha)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager) {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)
		cp, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.drawCheckbox(screen, checkbox, cp.X, cp.Y, alpha)
	}
}

// drawSlider 绘制标签、滑槽、已填充部分和滑块
func (s *PanelRenderSystem) drawSlider(screen *ebiten.Image, slider *components.SliderComponent, x, y, alpha float64) {
	label := slider.Label
	if slider.ValueText != "" {
		label = fmt.Sprintf("%s: %s", slider.Label, slider.ValueText)
	}
	s.drawLabel(screen, label, x, y-config.PanelLabelSize-10, alpha)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(slider.SlotWidth), float32(slider.SlotHeight),
		scaleAlpha(config.PanelSlotColor, alpha), true)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(slider.SlotWidth*slider.Value), float32(slider.SlotHeight),
		scaleAlpha(config.PanelAccentColor, alpha), true)

	knobColor := config.PanelTextColor
	if slider.IsDragging || slider.IsHovered {
		knobColor = config.PanelAccentColor
	}
	cx := x + slider.SlotWidth*slider.Value
	cy := y + slider.SlotHeight/2
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(slider.KnobWidth/2), scaleAlpha(knobColor, alpha), true)
}

// drawCheckbox 绘制方框、勾选填充和右侧标签
func (s *PanelRenderSystem) drawCheckbox(screen *ebiten.Image, checkbox *components.CheckboxComponent, x, y, alpha float64) {
	size := float32(checkbox.Size)
	vector.StrokeRect(screen, float32(x), float32(y), size, size, 2, scaleAlpha(config.PanelTextColor, alpha), true)
	if checkbox.IsChecked {
		vector.DrawFilledRect(screen, float32(x)+4, float32(y)+4, size-8, size-8, scaleAlpha(config.PanelAccentColor, alpha), true)
	}
	s.drawLabel(screen, checkbox.Label, x+checkbox.Size+10, y+(checkbox.Size-config.PanelLabelSize)/2-1, alpha)
}

func (s *PanelRenderSystem) drawLabel(screen *ebiten.Image, str string, x, y, alpha float64) {
	if s.font == nil || str == "" {
		return
	}
	str = utils.TruncateText(str, s.font, config.PanelWidth/2-20)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(config.PanelTextColor)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, s.font, op)
}

// scaleAlpha 按比例缩放预乘颜色的所有通道
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
