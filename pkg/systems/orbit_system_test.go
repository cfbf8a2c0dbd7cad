package systems

import (
	"math"
	"testing"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/game"
	"github.com/gonewx/shaperave/pkg/types"
)

func TestOrbitSystem_QuarterCycle(t *testing.T) {
	tests := []struct {
		name      string
		direction components.OrbitDirection
		wantY     float64
	}{
		{"逆时针", components.OrbitCounterClockwise, 108},
		{"顺时针", components.OrbitClockwise, 92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := newTestCircle(em, 100, 100, 10)
			orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, id)
			orbit.Direction = tt.direction
			system := NewOrbitSystem(em)

			// CycleTime=4, 速度 1：1 秒走四分之一圈
			system.Update(1)

			x, y := position(t, em, id)
			if !almostEqual(x, 100) || !almostEqual(y, tt.wantY) {
				t.Errorf("position = (%v,%v), want (100,%v)", x, y, tt.wantY)
			}
		})
	}
}

func TestOrbitSystem_SpeedScalesPhase(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestCircle(em, 0, 0, 10)
	orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, id)
	orbit.Speed = 2
	system := NewOrbitSystem(em)

	system.Update(1)

	if !almostEqual(orbit.Phase, math.Pi) {
		t.Errorf("phase = %v, want π", orbit.Phase)
	}
}

// TestOrbitSystem_PausePreservesPhase 速度为 0 时相位和位置都不变
func TestOrbitSystem_PausePreservesPhase(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestCircle(em, 200, 200, 10)
	system := NewOrbitSystem(em)
	orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, id)

	system.Update(0.5)
	phase := orbit.Phase
	x0, y0 := position(t, em, id)

	system.ApplyRotationSpeed(0)
	for i := 0; i < 30; i++ {
		system.Update(0.1)
	}
	if orbit.Phase != phase {
		t.Errorf("phase changed while paused: %v -> %v", phase, orbit.Phase)
	}
	if x, y := position(t, em, id); x != x0 || y != y0 {
		t.Errorf("position changed while paused: (%v,%v) -> (%v,%v)", x0, y0, x, y)
	}

	system.ApplyRotationSpeed(1)
	system.Update(0.5)
	if !almostEqual(orbit.Phase, 2*phase) {
		t.Errorf("phase after resume = %v, want %v", orbit.Phase, 2*phase)
	}
}

func TestOrbitSystem_PhaseWraps(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestCircle(em, 0, 0, 10)
	orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, id)
	orbit.Direction = components.OrbitClockwise
	system := NewOrbitSystem(em)

	for i := 0; i < 50; i++ {
		system.Update(0.37)
		if orbit.Phase < 0 || orbit.Phase >= 2*math.Pi {
			t.Fatalf("phase %v outside [0, 2π)", orbit.Phase)
		}
	}
}

// TestBindParameters 速度和混合模式写入后立即作用到所有圆形
func TestBindParameters(t *testing.T) {
	em := ecs.NewEntityManager()
	params := game.NewParameterStore()
	orbits := NewOrbitSystem(em)
	ids := []ecs.EntityID{
		newTestCircle(em, 10, 10, 5),
		newTestCircle(em, 50, 50, 5),
		newTestCircle(em, 90, 90, 5),
	}
	// 第二个圆形处于击退中
	displaced, _ := ecs.GetComponent[*components.OrbitComponent](em, ids[1])
	displaced.Speed = 0

	unbind := BindParameters(em, params, orbits)

	params.SetRotationSpeed(3)
	params.SetBlendMode(types.BlendMultiply)

	for _, id := range ids {
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, id)
		if orbit.Speed != 3 {
			t.Errorf("entity %d speed = %v, want 3", id, orbit.Speed)
		}
		circle, _ := ecs.GetComponent[*components.CircleComponent](em, id)
		if circle.BlendMode != types.BlendMultiply {
			t.Errorf("entity %d blend = %v, want Multiply", id, circle.BlendMode)
		}
	}

	unbind()
	params.SetRotationSpeed(0.5)
	orbit, _ := ecs.GetComponent[*components.OrbitComponent](em, ids[0])
	if orbit.Speed != 3 {
		t.Errorf("speed pushed after unbind: %v", orbit.Speed)
	}
}
