package components

import "math"

// OrbitDirection 轨道运动方向
type OrbitDirection int

const (
	// OrbitClockwise 顺时针
	OrbitClockwise OrbitDirection = iota
	// OrbitCounterClockwise 逆时针
	OrbitCounterClockwise
)

// Sign 返回方向对应的相位增量符号
func (d OrbitDirection) Sign() float64 {
	if d == OrbitClockwise {
		return -1
	}
	return 1
}

// OrbitComponent 圆形绕静止位置的椭圆运动
//
// 轨道中心是圆形的基线位置（CenterX, CenterY），半轴固定为 13×8。
// 暂停通过把 Speed 置 0 实现：相位保持不变，恢复速度后从原处继续。
type OrbitComponent struct {
	// CenterX, CenterY 轨道基线（静止位置）
	CenterX float64
	CenterY float64

	// RadiusX, RadiusY 椭圆半轴
	RadiusX float64
	RadiusY float64

	// CycleTime 一圈所需时间（秒，速度倍率为 1 时）
	CycleTime float64

	// Phase 当前相位，取值 [0, 2π)
	Phase float64

	// Direction 创建时随机决定，之后不可修改
	Direction OrbitDirection

	// Speed 播放速率（全局速度倍率的副本，击退期间为 0）
	Speed float64
}

// PointAt 返回指定相位在轨道上的坐标
func (o *OrbitComponent) PointAt(phase float64) (float64, float64) {
	return o.CenterX + o.RadiusX*math.Cos(phase), o.CenterY + o.RadiusY*math.Sin(phase)
}
