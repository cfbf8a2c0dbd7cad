package components

// SliderComponent 滑动条组件
// 用于参数面板中调整数值的控件
//
// Value 是滑块在滑槽上的归一化位置（0.0 - 1.0），
// 实际参数值 = Min + Value*(Max-Min)，整数滑块会在回调前取整。
type SliderComponent struct {
	// 滑动条尺寸
	SlotWidth  float64 // 滑槽宽度
	SlotHeight float64 // 滑槽高度
	KnobWidth  float64 // 滑块宽度
	KnobHeight float64 // 滑块高度

	// 当前值（0.0 - 1.0）
	Value float64

	// 数值范围
	Min float64
	Max float64
	// IsRoundNumber 整数滑块（传播数量、混合模式）
	IsRoundNumber bool

	// 标签文字
	Label string
	// ValueText 数值显示文字，由面板模块每帧从参数存储刷新
	ValueText string

	// 状态
	IsDragging bool // 是否正在拖动
	IsHovered  bool // 是否鼠标悬停

	// 回调函数
	OnValueChange func(value float64) // 值改变时的回调（参数实际值）

	// 音效
	ClickSoundID string // 点击/开始拖拽时播放的音效ID
}

// RawValue 把归一化位置换算为参数实际值
func (s *SliderComponent) RawValue() float64 {
	v := s.Min + s.Value*(s.Max-s.Min)
	if s.IsRoundNumber {
		v = float64(int(v + 0.5))
	}
	return v
}

// SetRawValue 根据参数实际值设置滑块位置（超出范围时贴边）
func (s *SliderComponent) SetRawValue(v float64) {
	if s.Max <= s.Min {
		s.Value = 0
		return
	}
	n := (v - s.Min) / (s.Max - s.Min)
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}
	s.Value = n
}
