package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	disposed     bool
	deltaTime    float64
	seed         int64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// Dispose records that the scene was released.
func (m *MockScene) Dispose() {
	m.disposed = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("Expected deltaTime 0.016, got %f", mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update with no scene does not panic.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
}

// TestSceneManagerSwitchDisposes verifies that the previous scene is disposed.
func TestSceneManagerSwitchDisposes(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first)
	if first.disposed {
		t.Fatal("switching to the same scene must not dispose it")
	}

	sm.SwitchTo(second)
	if !first.disposed {
		t.Error("previous scene should be disposed")
	}
	if sm.GetCurrentScene() != second {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerRestart verifies that Restart uses the factory with the given seed.
func TestSceneManagerRestart(t *testing.T) {
	sm := NewSceneManager()

	// 未设置工厂时不应崩溃
	sm.Restart(1)
	if sm.GetCurrentScene() != nil {
		t.Fatal("Restart without factory should not set a scene")
	}

	sm.SetSceneFactory(func(seed int64) Scene {
		return &MockScene{seed: seed}
	})
	sm.Restart(42)

	scene, ok := sm.GetCurrentScene().(*MockScene)
	if !ok {
		t.Fatal("expected a MockScene after Restart")
	}
	if scene.seed != 42 {
		t.Errorf("expected seed 42, got %d", scene.seed)
	}
}
