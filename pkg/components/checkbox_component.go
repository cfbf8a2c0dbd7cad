package components

// CheckboxComponent 复选框组件
// 用于开关选项（如自动运动）
type CheckboxComponent struct {
	// 复选框边长
	Size float64

	// 当前状态
	IsChecked bool

	// 标签文字
	Label string

	// 回调函数
	OnToggle func(isChecked bool) // 状态切换时的回调
}
