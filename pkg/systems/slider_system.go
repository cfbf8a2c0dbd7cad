package systems

import (
	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// SliderMouseInput 滑块系统鼠标输入接口
// 用于依赖注入，支持测试时 mock
type SliderMouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
}

// SoundPlayer 播放短音效（由 AudioManager 实现）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// SliderSystem 滑块交互系统
// 负责处理滑块的鼠标拖拽交互
//
// 职责：
//   - 检测鼠标是否在滑槽区域内（垂直方向按滑块高度放宽）
//   - 检测鼠标左键按下/拖拽状态
//   - 计算点击位置并转换为 0.0~1.0 的 Value
//   - 更新 SliderComponent.Value 并以实际值调用 OnValueChange 回调
type SliderSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    SliderMouseInput
	sounds        SoundPlayer
}

// NewSliderSystem 创建滑块交互系统，鼠标输入来自输入系统的帧快照
func NewSliderSystem(em *ecs.EntityManager, input *InputSystem) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// NewSliderSystemWithInput 创建带自定义鼠标输入的滑块交互系统（用于测试）
func NewSliderSystemWithInput(em *ecs.EntityManager, input SliderMouseInput) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// SetSoundPlayer 设置拖拽结束时播放音效的播放器
func (s *SliderSystem) SetSoundPlayer(player SoundPlayer) {
	s.sounds = player
}

// Update 更新滑块交互状态
// 检测鼠标位置和按下状态，更新滑块值
func (s *SliderSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.mouseInput.CursorPosition()
	mousePressed := s.mouseInput.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if slider == nil || pos == nil {
			continue
		}

		isInSlot := s.isMouseInSlot(float64(mouseX), float64(mouseY), pos.X, pos.Y, slider)
		slider.IsHovered = isInSlot

		// 记录拖拽前的状态，用于检测释放
		wasDragging := slider.IsDragging

		if mousePressed {
			// 只有在滑槽内按下才开始拖拽，拖拽开始后离开滑槽仍然跟随
			if isInSlot || slider.IsDragging {
				slider.IsDragging = true

				newValue := s.calculateValue(float64(mouseX), pos.X, slider.SlotWidth)
				if newValue < 0.0 {
					newValue = 0.0
				}
				if newValue > 1.0 {
					newValue = 1.0
				}

				if newValue != slider.Value {
					slider.Value = newValue
					if slider.OnValueChange != nil {
						slider.OnValueChange(slider.RawValue())
					}
				}
			}
		} else {
			slider.IsDragging = false

			// 只在真正拖拽过后释放时播放音效
			if wasDragging && slider.ClickSoundID != "" && s.sounds != nil {
				s.sounds.PlaySound(slider.ClickSoundID)
			}
		}
	}
}

// AnyDragging 是否有滑块正在被拖拽
func (s *SliderSystem) AnyDragging() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.SliderComponent](s.entityManager) {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, id)
		if slider.IsDragging {
			return true
		}
	}
	return false
}

// isMouseInSlot 检测鼠标是否在滑槽区域内
func (s *SliderSystem) isMouseInSlot(mouseX, mouseY, slotX, slotY float64, slider *components.SliderComponent) bool {
	pad := (slider.KnobHeight - slider.SlotHeight) / 2
	if pad < 0 {
		pad = 0
	}
	return mouseX >= slotX &&
		mouseX <= slotX+slider.SlotWidth &&
		mouseY >= slotY-pad &&
		mouseY <= slotY+slider.SlotHeight+pad
}

// calculateValue 根据鼠标X坐标计算滑块值
func (s *SliderSystem) calculateValue(mouseX, slotX, slotWidth float64) float64 {
	if slotWidth <= 0 {
		return 0.0
	}
	return (mouseX - slotX) / slotWidth
}
