package systems

import (
	"math"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/ecs"
)

// OrbitSystem 驱动圆形绕静止位置做椭圆运动
//
// 相位按 dt / CycleTime * 2π * Speed 推进，方向由 OrbitComponent.Direction 决定。
// Speed 为 0 的圆形不会被写入位置，击退动作在此期间独占位置控制权；
// 相位保持不变，恢复速度后从暂停处继续。
type OrbitSystem struct {
	entityManager *ecs.EntityManager
}

// NewOrbitSystem 创建轨道系统
func NewOrbitSystem(em *ecs.EntityManager) *OrbitSystem {
	return &OrbitSystem{entityManager: em}
}

// Update 推进所有轨道的相位并写回位置
func (s *OrbitSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.OrbitComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if orbit.Speed <= 0 || orbit.CycleTime <= 0 {
			continue
		}

		orbit.Phase += deltaTime / orbit.CycleTime * 2 * math.Pi * orbit.Speed * orbit.Direction.Sign()
		orbit.Phase = math.Mod(orbit.Phase, 2*math.Pi)
		if orbit.Phase < 0 {
			orbit.Phase += 2 * math.Pi
		}

		pos.X, pos.Y = orbit.PointAt(orbit.Phase)
	}
}

// ApplyRotationSpeed 把全局速度倍率推送给所有圆形（包括正在击退中的圆形）
// 参数:
//   - speed: 新的播放速率，0 表示全部暂停
func (s *OrbitSystem) ApplyRotationSpeed(speed float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.OrbitComponent](s.entityManager) {
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](s.entityManager, id)
		orbit.Speed = speed
	}
}
