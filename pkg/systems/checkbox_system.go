package systems

import (
	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// CheckboxMouseInput 复选框系统鼠标输入接口
// 用于依赖注入，支持测试时 mock
type CheckboxMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
}

// CheckboxSystem 复选框交互系统
// 负责处理复选框的鼠标点击交互
//
// 职责：
//   - 检测鼠标是否在复选框区域内（方框加标签）
//   - 鼠标释放时切换 CheckboxComponent.IsChecked 状态
//   - 调用 OnToggle 回调
type CheckboxSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    CheckboxMouseInput
}

// NewCheckboxSystem 创建复选框交互系统
func NewCheckboxSystem(em *ecs.EntityManager, input *InputSystem) *CheckboxSystem {
	return &CheckboxSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// NewCheckboxSystemWithInput 创建带自定义鼠标输入的复选框交互系统（用于测试）
func NewCheckboxSystemWithInput(em *ecs.EntityManager, input CheckboxMouseInput) *CheckboxSystem {
	return &CheckboxSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新复选框交互状态
func (s *CheckboxSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.mouseInput.CursorPosition()
	mouseJustReleased := s.mouseInput.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if !mouseJustReleased {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if checkbox == nil || pos == nil {
			continue
		}

		if !s.isMouseInCheckbox(float64(mouseX), float64(mouseY), pos.X, pos.Y, checkbox.Size) {
			continue
		}

		checkbox.IsChecked = !checkbox.IsChecked
		if checkbox.OnToggle != nil {
			checkbox.OnToggle(checkbox.IsChecked)
		}
	}
}

// isMouseInCheckbox 检测鼠标是否在复选框区域内
func (s *CheckboxSystem) isMouseInCheckbox(mouseX, mouseY, checkboxX, checkboxY, size float64) bool {
	return mouseX >= checkboxX &&
		mouseX <= checkboxX+size &&
		mouseY >= checkboxY &&
		mouseY <= checkboxY+size
}
