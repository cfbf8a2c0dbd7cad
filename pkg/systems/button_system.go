package systems

import (
	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonMouseInput 按钮系统鼠标输入接口
type ButtonMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
}

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测鼠标悬停（更新按钮状态为 UIHovered）
//   - 检测鼠标释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    ButtonMouseInput
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, input *InputSystem) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// NewButtonSystemWithInput 创建带自定义鼠标输入的按钮交互系统（用于测试）
func NewButtonSystemWithInput(em *ecs.EntityManager, input ButtonMouseInput) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新按钮交互状态
// 检测鼠标位置和释放，更新按钮状态并触发回调
func (s *ButtonSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.mouseInput.CursorPosition()
	mousePressed := s.mouseInput.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mouseReleased := s.mouseInput.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !s.ContainsPoint(entityID, float64(mouseX), float64(mouseY)) {
			button.State = components.UINormal
			continue
		}

		switch {
		case mousePressed:
			button.State = components.UIClicked
		case mouseReleased:
			// 释放瞬间触发回调
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}
}

// ContainsPoint 判断点是否落在按钮范围内
func (s *ButtonSystem) ContainsPoint(entityID ecs.EntityID, x, y float64) bool {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return false
	}
	return x >= pos.X &&
		x <= pos.X+button.Width &&
		y >= pos.Y &&
		y <= pos.Y+button.Height
}
