package components

// PanelComponent 可滑入/滑出的参数面板
//
// 面板打开时 Offset 趋向 0，关闭时趋向 ClosedOffset（滑出屏幕上方）。
// Offset/Velocity 由弹簧动画驱动，控件的屏幕坐标 = 布局坐标 + Offset。
type PanelComponent struct {
	Width  float64
	Height float64

	// IsOpen 目标状态
	IsOpen bool

	// ClosedOffset 关闭状态的偏移（面板完全位于屏幕外）
	ClosedOffset float64

	// Offset 当前垂直偏移
	Offset float64
	// Velocity 弹簧速度
	Velocity float64
}

// Visible 面板是否有任何部分在屏幕内
func (p *PanelComponent) Visible() bool {
	return p.Offset > p.ClosedOffset+0.5
}

// Contains 判断屏幕坐标是否落在面板当前区域内
func (p *PanelComponent) Contains(panelX, panelY, x, y float64) bool {
	top := panelY + p.Offset
	return x >= panelX && x <= panelX+p.Width && y >= top && y <= top+p.Height
}

// PanelChildComponent 标记实体属于某个面板
// 控件的 PositionComponent 是相对面板打开状态的布局坐标
type PanelChildComponent struct {
	BaseX float64
	BaseY float64
}
