package entities

import (
	"math/rand"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/game"
)

// NewCircleEntity 创建一个圆形实体
//
// 参数:
//   - em: EntityManager 实例
//   - p: 初始布局
//   - rng: 随机源（颜色、透明度、轨道周期和方向）
//   - params: 参数存储（初始轨道速度和混合模式）
//
// 返回: 创建的实体ID
func NewCircleEntity(em *ecs.EntityManager, p Placement, rng *rand.Rand, params *game.ParameterStore) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.CircleComponent{
		Radius:    p.Radius,
		Color:     config.CirclePalette[rng.Intn(len(config.CirclePalette))],
		Alpha:     randomBetween(rng, config.MinCircleAlpha, config.MaxCircleAlpha),
		BlendMode: params.BlendMode(),
	})

	ecs.AddComponent(em, id, &components.ScaleComponent{Scale: 1})

	direction := components.OrbitCounterClockwise
	if rng.Intn(2) == 1 {
		direction = components.OrbitClockwise
	}
	orbit := &components.OrbitComponent{
		CenterX:   p.X,
		CenterY:   p.Y,
		RadiusX:   config.OrbitRadiusX,
		RadiusY:   config.OrbitRadiusY,
		CycleTime: randomBetween(rng, config.MinCycleTime, config.MaxCycleTime),
		Direction: direction,
		Speed:     params.RotationSpeed(),
	}
	ecs.AddComponent(em, id, orbit)

	// 初始位置就在轨道上，第一帧不会跳变
	x, y := orbit.PointAt(orbit.Phase)
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})

	ecs.AddComponent(em, id, &components.KnockbackComponent{})
	ecs.AddComponent(em, id, &components.ActionComponent{})

	return id
}

// CreateCircles 布局并创建全部圆形
// 圆形数量在这里读取一次，之后修改参数不会增减圆形
//
// 返回: 按创建顺序排列的实体ID
func CreateCircles(em *ecs.EntityManager, rng *rand.Rand, params *game.ParameterStore) []ecs.EntityID {
	placements := PlaceElements(
		params.MaxCircles(),
		Bounds{Width: config.SceneWidth, Height: config.SceneHeight},
		SizeRange{Min: config.MinCircleSize, Max: config.MaxCircleSize},
		rng,
	)

	ids := make([]ecs.EntityID, 0, len(placements))
	for _, p := range placements {
		ids = append(ids, NewCircleEntity(em, p, rng, params))
	}
	return ids
}
