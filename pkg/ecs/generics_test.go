package ecs

import "testing"

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Expected position component")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Expected (3,4), got (%v,%v)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity component should be missing")
	}
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent should report position")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Position should be removed")
	}
}

func TestGenericQueries(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	AddComponent(em, both, &testPositionComponent{})
	AddComponent(em, both, &testVelocityComponent{})

	posOnly := em.CreateEntity()
	AddComponent(em, posOnly, &testPositionComponent{})

	tests := []struct {
		name string
		got  []EntityID
		want []EntityID
	}{
		{"GetEntitiesWith1", GetEntitiesWith1[*testPositionComponent](em), []EntityID{both, posOnly}},
		{"GetEntitiesWith2", GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em), []EntityID{both}},
		{"GetEntitiesWith3", GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testPositionComponent](em), []EntityID{both}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, tt.got)
			}
			for i := range tt.want {
				if tt.got[i] != tt.want[i] {
					t.Errorf("index %d: expected %d, got %d", i, tt.want[i], tt.got[i])
				}
			}
		})
	}
}
