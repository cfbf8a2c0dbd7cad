package entities

import (
	"math/rand"
	"testing"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/game"
	"github.com/gonewx/shaperave/pkg/types"
)

func TestCreateCircles(t *testing.T) {
	em := ecs.NewEntityManager()
	params := game.NewParameterStore()
	params.SetMaxCircles(12)
	params.SetBlendMode(types.BlendAdd)
	params.SetRotationSpeed(2)

	ids := CreateCircles(em, rand.New(rand.NewSource(3)), params)
	if len(ids) != 12 {
		t.Fatalf("expected 12 circles, got %d", len(ids))
	}

	queried := ecs.GetEntitiesWith3[*components.CircleComponent, *components.OrbitComponent, *components.KnockbackComponent](em)
	if len(queried) != 12 {
		t.Fatalf("expected 12 queryable circles, got %d", len(queried))
	}
	for i := range ids {
		if ids[i] != queried[i] {
			t.Fatalf("query order should match creation order at %d", i)
		}
	}

	for _, id := range ids {
		circle, _ := ecs.GetComponent[*components.CircleComponent](em, id)
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		scale, _ := ecs.GetComponent[*components.ScaleComponent](em, id)
		kb, _ := ecs.GetComponent[*components.KnockbackComponent](em, id)

		if circle.Alpha < config.MinCircleAlpha || circle.Alpha > config.MaxCircleAlpha {
			t.Errorf("entity %d: alpha %f out of range", id, circle.Alpha)
		}
		if circle.BlendMode != types.BlendAdd {
			t.Errorf("entity %d: blend mode %v, want Add", id, circle.BlendMode)
		}
		if circle.MaskColor.A != 0 {
			t.Errorf("entity %d: mask should start transparent", id)
		}
		if orbit.CycleTime < config.MinCycleTime || orbit.CycleTime > config.MaxCycleTime {
			t.Errorf("entity %d: cycle time %f out of range", id, orbit.CycleTime)
		}
		if orbit.Speed != 2 {
			t.Errorf("entity %d: orbit speed %f, want 2", id, orbit.Speed)
		}
		if wantX, wantY := orbit.PointAt(orbit.Phase); pos.X != wantX || pos.Y != wantY {
			t.Errorf("entity %d: start (%f, %f), want orbit point (%f, %f)", id, pos.X, pos.Y, wantX, wantY)
		}
		if orbit.RadiusX != 13 || orbit.RadiusY != 8 {
			t.Errorf("entity %d: orbit half-axes %fx%f, want 13x8", id, orbit.RadiusX, orbit.RadiusY)
		}
		if scale.Scale != 1 {
			t.Errorf("entity %d: scale %f, want 1", id, scale.Scale)
		}
		if kb.Displaced() || kb.PendingActionCount != 0 || kb.ResetTimer != types.NoTimer {
			t.Errorf("entity %d: knockback state should start idle", id)
		}
		if !ecs.HasComponent[*components.ActionComponent](em, id) {
			t.Errorf("entity %d: missing action component", id)
		}
	}
}

func TestCreateCirclesLatchesCount(t *testing.T) {
	em := ecs.NewEntityManager()
	params := game.NewParameterStore()
	params.SetMaxCircles(5)

	CreateCircles(em, rand.New(rand.NewSource(1)), params)
	params.SetMaxCircles(40)

	if n := len(ecs.GetEntitiesWith1[*components.CircleComponent](em)); n != 5 {
		t.Errorf("changing the count after creation must not add circles, got %d", n)
	}
}

func TestNewCircleEntityStartsOnOrbit(t *testing.T) {
	em := ecs.NewEntityManager()
	params := game.NewParameterStore()

	id := NewCircleEntity(em, Placement{X: 200, Y: 150, Radius: 30}, rand.New(rand.NewSource(5)), params)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, id)

	if orbit.CenterX != 200 || orbit.CenterY != 150 {
		t.Errorf("orbit center = (%f, %f), want the placement (200, 150)", orbit.CenterX, orbit.CenterY)
	}
	// 相位 0 对应中心右侧 RadiusX 处
	if pos.X != 200+config.OrbitRadiusX || pos.Y != 150 {
		t.Errorf("start = (%f, %f), want (%f, 150)", pos.X, pos.Y, 200+config.OrbitRadiusX)
	}
}

func TestUIFactories(t *testing.T) {
	em := ecs.NewEntityManager()

	panel := NewPanelEntity(em)
	p, ok := ecs.GetComponent[*components.PanelComponent](em, panel)
	if !ok {
		t.Fatal("panel entity missing PanelComponent")
	}
	if p.IsOpen || p.Visible() {
		t.Error("panel should start closed and off screen")
	}

	var got float64
	slider := NewSliderEntity(em, 20, 40, "Rotation Speed", 0, 10, false, func(v float64) { got = v })
	s, _ := ecs.GetComponent[*components.SliderComponent](em, slider)
	s.OnValueChange(4)
	if got != 4 {
		t.Errorf("slider callback not wired, got %f", got)
	}
	if !ecs.HasComponent[*components.PanelChildComponent](em, slider) {
		t.Error("slider should be a panel child")
	}

	checkbox := NewCheckboxEntity(em, 120, 300, "Automatic Motion", true, nil)
	c, _ := ecs.GetComponent[*components.CheckboxComponent](em, checkbox)
	if !c.IsChecked {
		t.Error("checkbox should keep its initial state")
	}

	clicked := false
	button := NewMenuButton(em, func() { clicked = true })
	b, _ := ecs.GetComponent[*components.ButtonComponent](em, button)
	b.OnClick()
	if !clicked || !b.Enabled {
		t.Error("menu button should be enabled and wired")
	}
}
