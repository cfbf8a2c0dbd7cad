package entities

import (
	"image/color"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/ecs"
)

// NewPanelEntity 创建参数面板实体（初始为关闭状态，位于屏幕上方）
//
// 返回: 面板实体ID
func NewPanelEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: config.PanelX, Y: config.PanelY})
	ecs.AddComponent(em, id, &components.PanelComponent{
		Width:        config.PanelWidth,
		Height:       config.PanelHeight,
		ClosedOffset: -(config.PanelY + config.PanelHeight),
		Offset:       -(config.PanelY + config.PanelHeight),
	})

	return id
}

// NewSliderEntity 创建面板内的滑动条
//
// 参数：
//   - em: 实体管理器
//   - baseX, baseY: 相对面板左上角的布局坐标
//   - label: 标签文字
//   - min, max: 数值范围
//   - isRound: 是否为整数滑块
//   - onChange: 值改变回调（参数实际值）
//
// 返回：
//   - 滑动条实体ID
func NewSliderEntity(
	em *ecs.EntityManager,
	baseX, baseY float64,
	label string,
	min, max float64,
	isRound bool,
	onChange func(value float64),
) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: baseX, Y: baseY})
	ecs.AddComponent(em, id, &components.PanelChildComponent{BaseX: baseX, BaseY: baseY})
	ecs.AddComponent(em, id, &components.SliderComponent{
		SlotWidth:     config.PanelSlotWidth,
		SlotHeight:    config.PanelSlotHeight,
		KnobWidth:     config.PanelKnobSize,
		KnobHeight:    config.PanelKnobSize,
		Min:           min,
		Max:           max,
		IsRoundNumber: isRound,
		Label:         label,
		OnValueChange: onChange,
	})

	return id
}

// NewCheckboxEntity 创建面板内的复选框
//
// 返回：
//   - 复选框实体ID
func NewCheckboxEntity(
	em *ecs.EntityManager,
	baseX, baseY float64,
	label string,
	checked bool,
	onToggle func(isChecked bool),
) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: baseX, Y: baseY})
	ecs.AddComponent(em, id, &components.PanelChildComponent{BaseX: baseX, BaseY: baseY})
	ecs.AddComponent(em, id, &components.CheckboxComponent{
		Size:      config.PanelCheckboxSize,
		IsChecked: checked,
		Label:     label,
		OnToggle:  onToggle,
	})

	return id
}

// NewMenuButton 创建屏幕底部居中的菜单按钮
//
// 返回：
//   - 按钮实体ID
func NewMenuButton(em *ecs.EntityManager, onClick func()) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: config.MenuButtonX, Y: config.MenuButtonY})
	ecs.AddComponent(em, id, &components.ButtonComponent{
		Text:       "MENU",
		TextColor:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Background: config.PanelBackgroundColor,
		Width:      config.MenuButtonWidth,
		Height:     config.MenuButtonHeight,
		State:      components.UINormal,
		Enabled:    true,
		OnClick:    onClick,
	})

	return id
}
