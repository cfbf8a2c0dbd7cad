package systems

import (
	"image/color"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 按钮由纯色矩形和居中文字组成
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	font          text.Face
}

// NewButtonRenderSystem 创建按钮渲染系统
// font 为 nil 时只绘制背景
func NewButtonRenderSystem(em *ecs.EntityManager, font text.Face) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		font:          font,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		s.drawButtonBackground(screen, button, pos.X, pos.Y)
		s.drawButtonText(screen, button, pos.X, pos.Y)
	}
}

// drawButtonBackground 渲染按钮背景，悬停和按下时提亮
func (s *ButtonRenderSystem) drawButtonBackground(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	bg := button.Background
	switch button.State {
	case components.UIHovered:
		bg = lighten(bg, 20)
	case components.UIClicked:
		bg = lighten(bg, 45)
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), bg, true)
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Text == "" || s.font == nil {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+1, centerY+1)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
	text.Draw(screen, button.Text, s.font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(button.TextColor)
	text.Draw(screen, button.Text, s.font, op)
}

// lighten 按预乘颜色提亮，不超过 alpha
func lighten(c color.RGBA, amount uint8) color.RGBA {
	add := func(v uint8) uint8 {
		n := int(v) + int(amount)
		if n > int(c.A) {
			n = int(c.A)
		}
		return uint8(n)
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}
