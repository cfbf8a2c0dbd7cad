package types

// Attribute 标识一个可在运行时调整的场景参数
type Attribute int

const (
	// AttrMaxCircles 圆形数量（启动后锁定）
	AttrMaxCircles Attribute = iota
	// AttrPropagationQuantity 每批传播的圆形数量
	AttrPropagationQuantity
	// AttrRotationSpeed 轨道速度倍率
	AttrRotationSpeed
	// AttrKnockbackDistance 击退距离
	AttrKnockbackDistance
	// AttrKnockbackTime 击退单程时长（秒）
	AttrKnockbackTime
	// AttrResizeVariation 缩放峰值
	AttrResizeVariation
	// AttrBlendMode 遮罩混合模式
	AttrBlendMode
)

// String 返回参数的显示名称
func (a Attribute) String() string {
	switch a {
	case AttrMaxCircles:
		return "Circles"
	case AttrPropagationQuantity:
		return "Propagation Quantity"
	case AttrRotationSpeed:
		return "Rotation Speed"
	case AttrKnockbackDistance:
		return "Knockback Distance"
	case AttrKnockbackTime:
		return "Knockback Time"
	case AttrResizeVariation:
		return "Resize Variation"
	case AttrBlendMode:
		return "Blend Mode"
	default:
		return "Unknown"
	}
}

// TimerHandle 调度器任务句柄，0 表示无任务
type TimerHandle uint64

// NoTimer 空句柄
const NoTimer TimerHandle = 0
