package components

import "image/color"

// UIState 控件交互状态
type UIState int

const (
	UINormal   UIState = iota // 默认
	UIHovered                 // 指针悬停
	UIClicked                 // 按下未释放
	UIDisabled                // 禁用
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 按钮由纯色圆角矩形和居中文字组成，不依赖图片资源
//   - 支持点击回调
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string
	// TextColor 文字颜色
	TextColor color.RGBA
	// Background 背景颜色
	Background color.RGBA

	// Width 按钮总宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调函数
	OnClick func()
}
