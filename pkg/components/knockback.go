package components

import "github.com/gonewx/shaperave/pkg/types"

// KnockbackComponent 圆形的击退瞬态
//
// 不变量：RestX/RestY 为 (0,0) 当且仅当圆形未处于击退中。
// (0,0) 作为哨兵值，场景中不会有圆心真正位于原点。
type KnockbackComponent struct {
	// RestX, RestY 本轮击退开始前的位置（回弹目标）
	RestX float64
	RestY float64

	// PendingActionCount 本轮击退中叠加的击退动作数量
	PendingActionCount int

	// ResetTimer 当前存活的复位计时器，同一时间最多一个
	ResetTimer types.TimerHandle
}

// Displaced 是否处于击退中
func (k *KnockbackComponent) Displaced() bool {
	return k.RestX != 0 || k.RestY != 0
}

// ClearRest 清除哨兵位置
func (k *KnockbackComponent) ClearRest() {
	k.RestX = 0
	k.RestY = 0
}
