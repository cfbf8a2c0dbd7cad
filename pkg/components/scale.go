package components

// ScaleComponent 存储实体级别的缩放因子
// 用于在渲染和命中检测时对整个圆形进行缩放（如波次命中时的放大回弹）
//
// Scale 为 1.0 时是原始大小，被 ActionComponent 的 ScaleTo 动作驱动。
type ScaleComponent struct {
	Scale float64
}
