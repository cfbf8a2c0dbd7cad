package systems

import (
	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/utils"
)

// ActionSystem 执行实体上的顺序动作（移动、缩放）
//
// 执行规则：
//   - 每个动作的段按顺序执行，段在开始时才捕获起始值
//   - 线性插值；时长为 0 的段立即到达目标
//   - 一帧内剩余的时间会带入下一段
//   - 同一实体上的多个动作按添加顺序依次作用，后添加的动作覆盖先添加的写入
//   - 完成的动作从列表中移除
type ActionSystem struct {
	entityManager *ecs.EntityManager
}

// NewActionSystem 创建动作系统
func NewActionSystem(em *ecs.EntityManager) *ActionSystem {
	return &ActionSystem{entityManager: em}
}

// Update 推进所有动作
func (s *ActionSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ActionComponent](s.entityManager) {
		actions, _ := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
		if len(actions.Actions) == 0 {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		scale, _ := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)

		remaining := actions.Actions[:0]
		for _, action := range actions.Actions {
			advanceAction(action, deltaTime, pos, scale)
			if !action.Done() {
				remaining = append(remaining, action)
			}
		}
		for i := len(remaining); i < len(actions.Actions); i++ {
			actions.Actions[i] = nil
		}
		actions.Actions = remaining
	}
}

// advanceAction 把一个动作推进 dt 秒
func advanceAction(action *components.Action, dt float64, pos *components.PositionComponent, scale *components.ScaleComponent) {
	for !action.Done() {
		leg := &action.Legs[action.Current]
		if !leg.Started {
			startLeg(leg, pos, scale)
		}

		need := leg.Duration - leg.Elapsed
		if dt < need {
			leg.Elapsed += dt
			applyLeg(leg, utils.EaseLinear(leg.Elapsed/leg.Duration), pos, scale)
			return
		}

		dt -= need
		leg.Elapsed = leg.Duration
		applyLeg(leg, 1, pos, scale)
		action.Current++
	}
}

func startLeg(leg *components.ActionLeg, pos *components.PositionComponent, scale *components.ScaleComponent) {
	leg.Started = true
	switch leg.Kind {
	case components.LegMove:
		if pos != nil {
			leg.StartX, leg.StartY = pos.X, pos.Y
		}
	case components.LegScale:
		if scale != nil {
			leg.Start = scale.Scale
		}
	}
}

func applyLeg(leg *components.ActionLeg, t float64, pos *components.PositionComponent, scale *components.ScaleComponent) {
	switch leg.Kind {
	case components.LegMove:
		if pos != nil {
			pos.X = utils.Lerp(leg.StartX, leg.TargetX, t)
			pos.Y = utils.Lerp(leg.StartY, leg.TargetY, t)
		}
	case components.LegScale:
		if scale != nil {
			scale.Scale = utils.Lerp(leg.Start, leg.Target, t)
		}
	}
}
