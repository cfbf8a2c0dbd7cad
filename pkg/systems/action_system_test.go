package systems

import (
	"testing"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/ecs"
)

func newActionEntity(em *ecs.EntityManager, x, y float64) (ecs.EntityID, *components.ActionComponent) {
	id := em.CreateEntity()
	actions := &components.ActionComponent{}
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ScaleComponent{Scale: 1})
	ecs.AddComponent(em, id, actions)
	return id, actions
}

func TestActionSystem_SequenceCarriesLeftoverTime(t *testing.T) {
	em := ecs.NewEntityManager()
	id, actions := newActionEntity(em, 0, 0)
	system := NewActionSystem(em)

	actions.Run("", components.MoveTo(10, 0, 1), components.MoveTo(10, 20, 1))

	// 1.5 秒：第一段完成，第二段走一半
	system.Update(1.5)

	x, y := position(t, em, id)
	if !almostEqual(x, 10) || !almostEqual(y, 10) {
		t.Errorf("position = (%v,%v), want (10,10)", x, y)
	}

	system.Update(0.5)
	if len(actions.Actions) != 0 {
		t.Errorf("finished action should be removed, %d left", len(actions.Actions))
	}
}

// TestActionSystem_LegCapturesStartWhenItBegins 每段的起点是该段开始时的值
func TestActionSystem_LegCapturesStartWhenItBegins(t *testing.T) {
	em := ecs.NewEntityManager()
	id, actions := newActionEntity(em, 0, 0)
	system := NewActionSystem(em)

	actions.Run("", components.MoveTo(10, 0, 1))
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X = 6 // 动作开始前被外部修改

	system.Update(0.5)
	x, _ := position(t, em, id)
	if !almostEqual(x, 8) {
		t.Errorf("x = %v, want 8 (lerp from 6 to 10)", x)
	}
}

func TestActionSystem_ZeroDurationLeg(t *testing.T) {
	em := ecs.NewEntityManager()
	id, actions := newActionEntity(em, 5, 5)
	system := NewActionSystem(em)

	actions.Run("", components.MoveTo(40, 40, 0), components.ScaleTo(2, 0))
	system.Update(0)

	x, y := position(t, em, id)
	if x != 40 || y != 40 {
		t.Errorf("position = (%v,%v), want (40,40)", x, y)
	}
	scale, _ := ecs.GetComponent[*components.ScaleComponent](em, id)
	if scale.Scale != 2 {
		t.Errorf("scale = %v, want 2", scale.Scale)
	}
	if len(actions.Actions) != 0 {
		t.Error("zero duration action should finish in one update")
	}
}

// TestActionSystem_StackedActionsLastWriterWins 多个动作同时作用时后添加的覆盖写入
func TestActionSystem_StackedActionsLastWriterWins(t *testing.T) {
	em := ecs.NewEntityManager()
	id, actions := newActionEntity(em, 0, 0)
	system := NewActionSystem(em)

	actions.Run("knockback1", components.MoveTo(100, 0, 1))
	actions.Run("knockback2", components.MoveTo(0, 100, 1))

	system.Update(0.5)
	_, y := position(t, em, id)
	if y <= 0 {
		t.Errorf("later action should drive position, got y=%v", y)
	}
}

func TestActionSystem_RemovedActionStops(t *testing.T) {
	em := ecs.NewEntityManager()
	id, actions := newActionEntity(em, 0, 0)
	system := NewActionSystem(em)

	actions.Run("knockback1", components.MoveTo(100, 0, 1))
	system.Update(0.25)
	if !actions.Remove("knockback1") {
		t.Fatal("Remove returned false")
	}
	system.Update(0.5)

	x, _ := position(t, em, id)
	if !almostEqual(x, 25) {
		t.Errorf("x = %v, want 25 (frozen when removed)", x)
	}
}
