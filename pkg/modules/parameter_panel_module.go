package modules

import (
	"fmt"
	"log"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/entities"
	"github.com/gonewx/shaperave/pkg/game"
	"github.com/gonewx/shaperave/pkg/systems"
	"github.com/gonewx/shaperave/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// panelSlider 滑动条实体与它控制的参数
type panelSlider struct {
	entity ecs.EntityID
	attr   types.Attribute
	format string // 空字符串表示文字滑块（混合模式）
}

// sliderSpec 滑动条布局定义
type sliderSpec struct {
	attr   types.Attribute
	label  string
	column float64
	row    int
	min    float64
	max    float64
	round  bool
	format string
}

// ParameterPanelModule 参数面板模块
//
// 职责：
//   - 创建面板、六个滑动条和"自动运动"复选框实体
//   - 每个控件只通过夹取 setter 写入一个参数
//   - 每帧从参数存储刷新标签文字和滑块位置
//   - 用弹簧动画把面板滑入/滑出屏幕
//
// 使用场景：
//   - RaveScene：菜单按钮、空格键打开/关闭
type ParameterPanelModule struct {
	entityManager *ecs.EntityManager
	params        *game.ParameterStore

	panelEntity    ecs.EntityID
	sliders        []panelSlider
	checkboxEntity ecs.EntityID

	sliderSystem   *systems.SliderSystem
	checkboxSystem *systems.CheckboxSystem
	renderSystem   *systems.PanelRenderSystem

	spring harmonica.Spring

	onAutomaticToggle func(enabled bool)
}

// NewParameterPanelModule 创建参数面板模块
//
// 参数:
//   - em: EntityManager 实例
//   - params: 参数存储
//   - input: 输入系统（提供每帧指针快照）
//   - font: 标签字体，nil 时不绘制文字
//   - automatic: 复选框初始状态
//   - onAutomaticToggle: 复选框切换回调
//
// 返回:
//   - *ParameterPanelModule: 新创建的模块实例（面板初始为关闭状态）
func NewParameterPanelModule(
	em *ecs.EntityManager,
	params *game.ParameterStore,
	input *systems.InputSystem,
	font text.Face,
	automatic bool,
	onAutomaticToggle func(enabled bool),
) *ParameterPanelModule {
	m := &ParameterPanelModule{
		entityManager:     em,
		params:            params,
		sliderSystem:      systems.NewSliderSystem(em, input),
		checkboxSystem:    systems.NewCheckboxSystem(em, input),
		spring:            harmonica.NewSpring(harmonica.FPS(ebiten.DefaultTPS), config.PanelSpringFrequency, config.PanelSpringDamping),
		onAutomaticToggle: onAutomaticToggle,
	}

	m.panelEntity = entities.NewPanelEntity(em)
	m.createControls(automatic)
	m.renderSystem = systems.NewPanelRenderSystem(em, m.panelEntity, font)
	m.layoutControls()

	log.Printf("[ParameterPanelModule] Created panel with %d sliders", len(m.sliders))
	return m
}

// SetSoundPlayer 设置滑块释放时播放音效的播放器
func (m *ParameterPanelModule) SetSoundPlayer(player systems.SoundPlayer) {
	m.sliderSystem.SetSoundPlayer(player)
}

// createControls 创建滑动条和复选框
func (m *ParameterPanelModule) createControls(automatic bool) {
	specs := []sliderSpec{
		{types.AttrPropagationQuantity, "Propagation Quantity", config.PanelColumnLeft, 0,
			config.MinPropagationQuantity, float64(m.params.MaxCircles()), true, "%.0f"},
		{types.AttrRotationSpeed, "Rotation Speed", config.PanelColumnRight, 0,
			0, config.MaxRotationSpeed, false, "%.2f"},
		{types.AttrKnockbackDistance, "Knockback Distance", config.PanelColumnLeft, 1,
			0, config.MaxKnockbackDistance, false, "%.2f"},
		{types.AttrKnockbackTime, "Knockback Time", config.PanelColumnRight, 1,
			0, config.MaxKnockbackTime, false, "%.2f"},
		{types.AttrResizeVariation, "Resize Variation", config.PanelColumnLeft, 2,
			0, config.MaxResizeVariation, false, "%.2f"},
		{types.AttrBlendMode, "Blend Mode", config.PanelColumnRight, 2,
			float64(types.BlendAlpha), float64(types.BlendReplace), true, ""},
	}

	for _, spec := range specs {
		attr := spec.attr
		baseY := config.PanelFirstRowY + float64(spec.row)*config.PanelRowHeight + sliderSlotOffset
		id := entities.NewSliderEntity(m.entityManager, spec.column, baseY, spec.label,
			spec.min, spec.max, spec.round, func(value float64) {
				m.params.UpdateAttribute(attr, value)
			})
		if slider, ok := ecs.GetComponent[*components.SliderComponent](m.entityManager, id); ok {
			slider.SetRawValue(m.params.Value(attr))
			slider.ClickSoundID = config.NoiseSoundID
		}
		m.sliders = append(m.sliders, panelSlider{entity: id, attr: attr, format: spec.format})
	}

	m.checkboxEntity = entities.NewCheckboxEntity(m.entityManager,
		config.PanelWidth/2-100, config.PanelCheckboxY, "Automatic Motion", automatic,
		func(checked bool) {
			log.Printf("[ParameterPanelModule] Automatic motion: %v", checked)
			if m.onAutomaticToggle != nil {
				m.onAutomaticToggle(checked)
			}
		})
	m.refreshLabels()
}

// sliderSlotOffset 滑槽相对行顶部的偏移（上方留给标签）
const sliderSlotOffset = 36.0

// Update 推进面板动画，面板打开时处理控件交互并刷新标签
func (m *ParameterPanelModule) Update(deltaTime float64) {
	panel, ok := ecs.GetComponent[*components.PanelComponent](m.entityManager, m.panelEntity)
	if !ok {
		return
	}

	target := panel.ClosedOffset
	if panel.IsOpen {
		target = 0
	}
	panel.Offset, panel.Velocity = m.spring.Update(panel.Offset, panel.Velocity, target)
	if math.Abs(panel.Offset-target) < 0.01 && math.Abs(panel.Velocity) < 0.01 {
		panel.Offset, panel.Velocity = target, 0
	}
	m.layoutControls()

	if panel.IsOpen {
		m.sliderSystem.Update(deltaTime)
		m.checkboxSystem.Update(deltaTime)
	}
	m.refreshLabels()
}

// layoutControls 按面板当前偏移计算控件屏幕坐标
func (m *ParameterPanelModule) layoutControls() {
	panel, ok := ecs.GetComponent[*components.PanelComponent](m.entityManager, m.panelEntity)
	if !ok {
		return
	}
	panelPos, ok := ecs.GetComponent[*components.PositionComponent](m.entityManager, m.panelEntity)
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PanelChildComponent, *components.PositionComponent](m.entityManager) {
		child, _ := ecs.GetComponent[*components.PanelChildComponent](m.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](m.entityManager, id)
		pos.X = panelPos.X + child.BaseX
		pos.Y = panelPos.Y + panel.Offset + child.BaseY
	}
}

// refreshLabels 从参数存储刷新标签和滑块位置
// 正在拖拽的滑块保持指针位置，只刷新文字
func (m *ParameterPanelModule) refreshLabels() {
	for _, s := range m.sliders {
		slider, ok := ecs.GetComponent[*components.SliderComponent](m.entityManager, s.entity)
		if !ok {
			continue
		}
		value := m.params.Value(s.attr)
		if s.attr == types.AttrPropagationQuantity {
			slider.Max = float64(m.params.MaxCircles())
		}
		if !slider.IsDragging {
			slider.SetRawValue(value)
		}
		slider.ValueText = FormatParameter(s.attr, value, s.format)
	}
}

// FormatParameter 生成参数的显示文字
// 混合模式显示名称，其余按 format 格式化
func FormatParameter(attr types.Attribute, value float64, format string) string {
	if attr == types.AttrBlendMode || format == "" {
		return types.BlendMode(int(value)).String()
	}
	return fmt.Sprintf(format, value)
}

// Draw 渲染面板
func (m *ParameterPanelModule) Draw(screen *ebiten.Image) {
	m.renderSystem.Draw(screen)
}

// Open 打开面板
func (m *ParameterPanelModule) Open() {
	m.setOpen(true)
}

// Close 关闭面板
func (m *ParameterPanelModule) Close() {
	m.setOpen(false)
}

// Toggle 切换面板开关
func (m *ParameterPanelModule) Toggle() {
	m.setOpen(!m.IsOpen())
}

func (m *ParameterPanelModule) setOpen(open bool) {
	panel, ok := ecs.GetComponent[*components.PanelComponent](m.entityManager, m.panelEntity)
	if !ok || panel.IsOpen == open {
		return
	}
	panel.IsOpen = open
	if !open {
		// 关闭时结束所有拖拽，避免面板外释放后滑块仍跟随指针
		for _, s := range m.sliders {
			if slider, ok := ecs.GetComponent[*components.SliderComponent](m.entityManager, s.entity); ok {
				slider.IsDragging = false
			}
		}
	}
	log.Printf("[ParameterPanelModule] Panel open=%v", open)
}

// IsOpen 面板目标状态是否为打开
func (m *ParameterPanelModule) IsOpen() bool {
	panel, ok := ecs.GetComponent[*components.PanelComponent](m.entityManager, m.panelEntity)
	return ok && panel.IsOpen
}

// Contains 判断点是否落在面板打开位置的区域内
func (m *ParameterPanelModule) Contains(x, y float64) bool {
	return x >= config.PanelX && x <= config.PanelX+config.PanelWidth &&
		y >= config.PanelY && y <= config.PanelY+config.PanelHeight
}

// IsDragging 是否有滑块正在被拖拽
func (m *ParameterPanelModule) IsDragging() bool {
	return m.sliderSystem.AnyDragging()
}

// SetAutomatic 同步复选框状态（键盘切换自动运动时调用，不触发回调）
func (m *ParameterPanelModule) SetAutomatic(enabled bool) {
	if checkbox, ok := ecs.GetComponent[*components.CheckboxComponent](m.entityManager, m.checkboxEntity); ok {
		checkbox.IsChecked = enabled
	}
}

// CheckboxEntity 返回"自动运动"复选框实体
func (m *ParameterPanelModule) CheckboxEntity() ecs.EntityID {
	return m.checkboxEntity
}
