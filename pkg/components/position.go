package components

// PositionComponent 存储实体在场景中的当前世界坐标
// 圆形实体的坐标是圆心；UI 实体的坐标是左上角
type PositionComponent struct {
	X float64
	Y float64
}
