package systems

import (
	"github.com/gonewx/shaperave/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerInput 指针输入接口（鼠标或触摸）
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	// State 返回是否按下以及当前位置
	State() (pressed bool, x, y int)
	// JustPressed 返回本帧是否刚按下、按下位置以及是否来自触摸
	JustPressed() (pressed bool, x, y int, touch bool)
	// JustReleased 返回本帧是否刚释放以及释放位置
	JustReleased() (released bool, x, y int)
}

// ebitenPointerInput Ebitengine 默认实现
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) State() (bool, int, int) {
	utils.UpdateLastTouchPosition()
	return utils.GetPointerState()
}

func (e *ebitenPointerInput) JustPressed() (bool, int, int, bool) {
	return utils.IsPointerJustPressed()
}

func (e *ebitenPointerInput) JustReleased() (bool, int, int) {
	return utils.IsPointerJustReleased()
}

// NewEbitenPointerInput 返回读取 ebiten 鼠标和触摸状态的指针输入
func NewEbitenPointerInput() PointerInput {
	return &ebitenPointerInput{}
}

// PointerFrame 一帧的指针状态快照
type PointerFrame struct {
	X, Y         float64
	Pressed      bool // 当前是否按住
	JustPressed  bool // 本帧刚按下
	JustReleased bool // 本帧刚释放
	Touch        bool // 按下来自触摸
}

// InputSystem 每帧采样一次指针状态
//
// 场景和 UI 系统都读取同一份快照，避免同一帧内多次查询 ebiten 得到不一致的结果。
type InputSystem struct {
	input PointerInput
	frame PointerFrame
}

// NewInputSystem 创建输入系统
func NewInputSystem() *InputSystem {
	return &InputSystem{input: NewEbitenPointerInput()}
}

// NewInputSystemWithInput 创建带自定义指针输入的输入系统（用于测试）
func NewInputSystemWithInput(input PointerInput) *InputSystem {
	return &InputSystem{input: input}
}

// Update 采样本帧指针状态
func (s *InputSystem) Update(deltaTime float64) {
	pressed, x, y := s.input.State()
	frame := PointerFrame{X: float64(x), Y: float64(y), Pressed: pressed}

	if jp, px, py, touch := s.input.JustPressed(); jp {
		frame.JustPressed = true
		frame.Touch = touch
		frame.X, frame.Y = float64(px), float64(py)
	}
	if jr, rx, ry := s.input.JustReleased(); jr {
		frame.JustReleased = true
		if !pressed {
			frame.X, frame.Y = float64(rx), float64(ry)
		}
	}
	s.frame = frame
}

// Frame 返回最近一次采样的指针状态
func (s *InputSystem) Frame() PointerFrame {
	return s.frame
}

// CursorPosition 实现 SliderMouseInput / CheckboxMouseInput / ButtonMouseInput
func (s *InputSystem) CursorPosition() (int, int) {
	return int(s.frame.X), int(s.frame.Y)
}

// IsMouseButtonPressed 实现 SliderMouseInput
func (s *InputSystem) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return button == ebiten.MouseButtonLeft && s.frame.Pressed
}

// IsMouseButtonJustPressed 实现 ButtonMouseInput
func (s *InputSystem) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return button == ebiten.MouseButtonLeft && s.frame.JustPressed
}

// IsMouseButtonJustReleased 实现 CheckboxMouseInput / ButtonMouseInput
func (s *InputSystem) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return button == ebiten.MouseButtonLeft && s.frame.JustReleased
}
