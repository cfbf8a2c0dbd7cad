package systems

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/game"
	"github.com/gonewx/shaperave/pkg/types"
)

// ReleaseObserver 每释放一批圆形时的回调（调试工具使用）
// 参数:
//   - origin: 波次起点
//   - batch: 批次序号，从 1 开始
//   - targets: 本批次命中的圆形，按距离升序
type ReleaseObserver func(origin ecs.EntityID, batch int, targets []ecs.EntityID)

// PropagationSystem 处理交互波次
//
// 一次交互从起点圆形出发，把所有圆形按到起点的距离升序排列，
// 然后由调度器的周期任务每个 tick 释放一批（批大小 = 传播数量）。
// 每个被释放的圆形会：
//   - 放大到 resizeVariation 再缩回 1
//   - 沿远离起点的方向被击退 knockbackDistance，再回到静止位置
//   - 遮罩染成起点的颜色
//
// 击退期间轨道速度为 0；每个圆形同一时间只有一个复位计时器，
// 最后一次命中后 2*knockbackTime 秒复位。
type PropagationSystem struct {
	entityManager *ecs.EntityManager
	scheduler     *game.Scheduler
	params        *game.ParameterStore

	observer ReleaseObserver
}

// NewPropagationSystem 创建传播系统
func NewPropagationSystem(em *ecs.EntityManager, scheduler *game.Scheduler, params *game.ParameterStore) *PropagationSystem {
	return &PropagationSystem{
		entityManager: em,
		scheduler:     scheduler,
		params:        params,
	}
}

// SetReleaseObserver 设置批次释放回调，传 nil 取消
func (s *PropagationSystem) SetReleaseObserver(observer ReleaseObserver) {
	s.observer = observer
}

// HitTest 返回渲染区域包含点 (x, y) 的所有圆形（按创建顺序）
func (s *PropagationSystem) HitTest(x, y float64) []ecs.EntityID {
	var hits []ecs.EntityID
	entities := ecs.GetEntitiesWith2[*components.CircleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		circle, _ := ecs.GetComponent[*components.CircleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		scale, _ := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)

		r := circle.RenderedRadius(scale)
		dx, dy := x-pos.X, y-pos.Y
		if dx*dx+dy*dy <= r*r {
			hits = append(hits, id)
		}
	}
	return hits
}

// SortByDistance 返回所有圆形按到点 (x, y) 距离升序排列的结果
// 距离相同时保持创建顺序
func (s *PropagationSystem) SortByDistance(x, y float64) []ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.CircleComponent, *components.PositionComponent](s.entityManager)

	distances := make(map[ecs.EntityID]float64, len(entities))
	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		distances[id] = math.Hypot(x-pos.X, y-pos.Y)
	}

	sorted := make([]ecs.EntityID, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return distances[sorted[i]] < distances[sorted[j]]
	})
	return sorted
}

// Propagate 从 origin 发起一次波次
//
// 排序在调用时完成，之后每个调度 tick 释放一批，全部释放后周期任务自行取消。
//
// 返回:
//   - types.TimerHandle: 周期任务句柄；origin 不存在时返回 types.NoTimer
func (s *PropagationSystem) Propagate(origin ecs.EntityID) types.TimerHandle {
	originPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, origin)
	if !ok {
		return types.NoTimer
	}

	order := s.SortByDistance(originPos.X, originPos.Y)
	if len(order) == 0 {
		return types.NoTimer
	}

	log.Printf("[PropagationSystem] Wave from entity %d: %d targets, quantity=%d",
		origin, len(order), s.params.PropagationQuantity())

	next := 0
	batch := 0
	return s.scheduler.Every(config.PropagationTickInterval, func(handle types.TimerHandle) {
		if next >= len(order) {
			s.scheduler.Cancel(handle)
			return
		}

		// 批大小每个 tick 重新读取，面板调整在波次进行中也生效
		end := next + s.params.PropagationQuantity()
		if end > len(order) {
			end = len(order)
		}
		released := order[next:end]
		next = end
		batch++

		for _, target := range released {
			s.release(origin, target)
		}
		if s.observer != nil {
			s.observer(origin, batch, released)
		}

		if next >= len(order) {
			s.scheduler.Cancel(handle)
		}
	})
}

// release 对一个目标施加缩放、击退和染色
func (s *PropagationSystem) release(origin, target ecs.EntityID) {
	if !s.entityManager.Exists(target) {
		return
	}
	s.Rescale(target)
	s.ApplyKnockback(origin, target)
	s.Tint(origin, target)
}

// Rescale 让目标放大到 resizeVariation 后缩回 1，每段耗时 knockbackTime
func (s *PropagationSystem) Rescale(target ecs.EntityID) {
	actions, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, target)
	if !ok {
		return
	}
	kt := s.params.KnockbackTime()
	actions.Run("",
		components.ScaleTo(s.params.ResizeVariation(), kt),
		components.ScaleTo(1, kt),
	)
}

// Tint 把目标的遮罩染成起点的基础颜色，透明度也一并沿用起点的
func (s *PropagationSystem) Tint(origin, target ecs.EntityID) {
	src, ok := ecs.GetComponent[*components.CircleComponent](s.entityManager, origin)
	if !ok {
		return
	}
	dst, ok := ecs.GetComponent[*components.CircleComponent](s.entityManager, target)
	if !ok {
		return
	}
	dst.MaskColor = src.Color
	dst.MaskColor.A = 0xff
	dst.MaskAlpha = src.Alpha
}

// KnockbackVector 计算 origin 指向 target 反方向的击退向量
//
// 向量 = (E - T) * knockbackDistance / |E - T|，E 为起点位置，T 为目标位置。
// 目标沿 T - 向量 移动，即远离起点。两点重合时返回 NaN 分量。
func (s *PropagationSystem) KnockbackVector(originX, originY, targetX, targetY float64) (float64, float64) {
	dx := originX - targetX
	dy := originY - targetY
	dist := math.Sqrt(dx*dx + dy*dy)
	kd := s.params.KnockbackDistance()
	return dx * kd / dist, dy * kd / dist
}

// ApplyKnockback 对目标施加一次击退
//
// 流程：
//  1. 轨道速度置 0（暂停，相位保留）
//  2. 向量有效时：若未处于击退中则记录静止位置，叠加计数加 1，
//     运行 "knockback<N>"：移动到 当前位置-向量，再回到静止位置
//  3. 取消旧的复位计时器，新建一个 2*knockbackTime 后触发的复位计时器
//
// 起点自身（距离为 0）跳过第 2 步，但仍会暂停并刷新复位计时器。
func (s *PropagationSystem) ApplyKnockback(origin, target ecs.EntityID) {
	originPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, origin)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, target)
	if !ok {
		return
	}
	kb, ok := ecs.GetComponent[*components.KnockbackComponent](s.entityManager, target)
	if !ok {
		return
	}

	if orbit, ok := ecs.GetComponent[*components.OrbitComponent](s.entityManager, target); ok {
		orbit.Speed = 0
	}

	vx, vy := s.KnockbackVector(originPos.X, originPos.Y, pos.X, pos.Y)
	if !math.IsNaN(vx) && !math.IsNaN(vy) {
		if !kb.Displaced() {
			kb.RestX, kb.RestY = pos.X, pos.Y
		}
		kb.PendingActionCount++

		if actions, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, target); ok {
			kt := s.params.KnockbackTime()
			actions.Run(components.KnockbackActionKey(kb.PendingActionCount),
				components.MoveTo(pos.X-vx, pos.Y-vy, kt),
				components.MoveTo(kb.RestX, kb.RestY, kt),
			)
		}
	}

	s.scheduleReset(target, kb)
}

// scheduleReset 替换目标的复位计时器
func (s *PropagationSystem) scheduleReset(target ecs.EntityID, kb *components.KnockbackComponent) {
	if kb.ResetTimer != types.NoTimer {
		s.scheduler.Cancel(kb.ResetTimer)
	}
	key := fmt.Sprintf("reset-%d", target)
	kb.ResetTimer = s.scheduler.AfterKeyed(key, s.params.KnockbackTime()*2, func() {
		s.Reset(target)
	})
}

// Reset 结束目标的本轮击退
//
// 恢复全局轨道速度，清除静止位置哨兵，移除 knockback1..N 的残留动作，计数归零。
func (s *PropagationSystem) Reset(target ecs.EntityID) {
	kb, ok := ecs.GetComponent[*components.KnockbackComponent](s.entityManager, target)
	if !ok {
		return
	}

	if orbit, ok := ecs.GetComponent[*components.OrbitComponent](s.entityManager, target); ok {
		orbit.Speed = s.params.RotationSpeed()
	}
	kb.ClearRest()

	if actions, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, target); ok {
		for n := kb.PendingActionCount; n >= 1; n-- {
			actions.Remove(components.KnockbackActionKey(n))
		}
	}
	kb.PendingActionCount = 0
	kb.ResetTimer = types.NoTimer
}
