package scenes

import (
	"testing"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/game"
	"github.com/gonewx/shaperave/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

const frameTime = 1.0 / 60

// mockPointerInput 用于测试的 mock 指针输入
type mockPointerInput struct {
	pressed      bool
	justPressed  bool
	justReleased bool
	x, y         int
}

func (m *mockPointerInput) State() (bool, int, int) { return m.pressed, m.x, m.y }

func (m *mockPointerInput) JustPressed() (bool, int, int, bool) {
	return m.justPressed, m.x, m.y, false
}

func (m *mockPointerInput) JustReleased() (bool, int, int) { return m.justReleased, m.x, m.y }

// press 模拟本帧按下
func (m *mockPointerInput) press(x, y int) {
	m.x, m.y = x, y
	m.pressed, m.justPressed, m.justReleased = true, true, false
}

// hold 模拟继续按住
func (m *mockPointerInput) hold() {
	m.pressed, m.justPressed, m.justReleased = true, false, false
}

// release 模拟本帧释放
func (m *mockPointerInput) release() {
	m.pressed, m.justPressed, m.justReleased = false, false, true
}

// idle 模拟无操作
func (m *mockPointerInput) idle() {
	m.pressed, m.justPressed, m.justReleased = false, false, false
}

// mockKeyInput 每次 Update 后清空的按键集合
type mockKeyInput struct {
	pressed map[ebiten.Key]bool
}

func (m *mockKeyInput) IsKeyJustPressed(key ebiten.Key) bool { return m.pressed[key] }

func (m *mockKeyInput) tap(keys ...ebiten.Key) {
	m.pressed = make(map[ebiten.Key]bool)
	for _, k := range keys {
		m.pressed[k] = true
	}
}

type sceneFixture struct {
	scene  *RaveScene
	params *game.ParameterStore
	mouse  *mockPointerInput
	keys   *mockKeyInput
	quit   int
}

func newSceneFixture(t *testing.T, circles int, automatic bool) *sceneFixture {
	t.Helper()
	f := &sceneFixture{
		params: game.NewParameterStore(),
		mouse:  &mockPointerInput{},
		keys:   &mockKeyInput{},
	}
	f.params.SetMaxCircles(circles)
	f.scene = NewRaveScene(RaveSceneOptions{
		Params:    f.params,
		Seed:      42,
		Automatic: automatic,
		Pointer:   f.mouse,
		Keys:      f.keys,
		OnQuit:    func() { f.quit++ },
	})
	return f
}

func (f *sceneFixture) step() {
	f.scene.Update(frameTime)
	f.keys.tap()
}

// pickCircle 返回一个圆心不在菜单按钮上的圆形及其圆心
func (f *sceneFixture) pickCircle(t *testing.T) (ecs.EntityID, int, int) {
	t.Helper()
	for _, id := range f.scene.circles {
		pos, _ := ecs.GetComponent[*components.PositionComponent](f.scene.entityManager, id)
		if !f.scene.buttonSystem.ContainsPoint(f.scene.menuButton, pos.X, pos.Y) {
			return id, int(pos.X), int(pos.Y)
		}
	}
	t.Fatal("no circle outside the menu button")
	return 0, 0, 0
}

func TestRaveScene_Creation(t *testing.T) {
	f := newSceneFixture(t, 12, false)

	if len(f.scene.circles) != 12 {
		t.Errorf("expected 12 circles, got %d", len(f.scene.circles))
	}
	if f.scene.panel.IsOpen() {
		t.Error("panel should start closed")
	}
	if _, ok := ecs.GetComponent[*components.ButtonComponent](f.scene.entityManager, f.scene.menuButton); !ok {
		t.Error("menu button missing")
	}
	if f.scene.scheduler.Pending() != 0 {
		t.Errorf("no tasks expected before any input, got %d", f.scene.scheduler.Pending())
	}
}

func TestRaveScene_PressStartsWave(t *testing.T) {
	f := newSceneFixture(t, 8, false)
	id, x, y := f.pickCircle(t)

	f.mouse.press(x, y)
	f.step()

	orbit, _ := ecs.GetComponent[*components.OrbitComponent](f.scene.entityManager, id)
	if orbit.Speed != 0 {
		t.Errorf("origin should be paused, speed=%v", orbit.Speed)
	}
	kb, _ := ecs.GetComponent[*components.KnockbackComponent](f.scene.entityManager, id)
	if kb.ResetTimer == types.NoTimer {
		t.Error("origin should have a reset timer")
	}
}

func TestRaveScene_HoldRepeatsHits(t *testing.T) {
	f := newSceneFixture(t, 6, false)
	_, x, y := f.pickCircle(t)

	waves := 0
	f.scene.propagationSystem.SetReleaseObserver(func(origin ecs.EntityID, batch int, targets []ecs.EntityID) {
		if batch == 1 {
			waves++
		}
	})

	f.mouse.press(x, y)
	f.step()
	f.mouse.hold()
	f.step()
	f.step()

	if waves < 3 {
		t.Errorf("expected at least one wave per held frame, got %d", waves)
	}

	f.mouse.release()
	f.step()
	f.mouse.idle()
	before := waves
	f.step()
	if waves != before {
		t.Errorf("no waves expected after release, got %d more", waves-before)
	}
}

func TestRaveScene_MenuButton(t *testing.T) {
	f := newSceneFixture(t, 10, false)
	bx := int(config.MenuButtonX + config.MenuButtonWidth/2)
	by := int(config.MenuButtonY + config.MenuButtonHeight/2)

	f.mouse.press(bx, by)
	f.step()
	if f.scene.scheduler.Pending() != 0 {
		t.Error("press on menu button should not hit circles")
	}

	f.mouse.release()
	f.step()
	if !f.scene.panel.IsOpen() {
		t.Fatal("release on menu button should open the panel")
	}

	f.mouse.press(bx, by)
	f.step()
	f.mouse.release()
	f.step()
	if f.scene.panel.IsOpen() {
		t.Error("second click should close the panel")
	}
}

func TestRaveScene_OpenPanelBlocksHits(t *testing.T) {
	tests := []struct {
		name       string
		automatic  bool
		wantOpen   bool
		wantTasks  bool
		pointOnTop bool
	}{
		{"自动关闭时面板外按压关闭面板", false, false, false, false},
		{"自动打开时面板外按压照常命中", true, true, true, false},
		{"面板内按压不命中圆形", false, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSceneFixture(t, 10, false)
			f.scene.automatic = tt.automatic
			f.scene.panel.Open()

			// 放大一个圆形覆盖整个场景，任何位置都能命中
			circle, _ := ecs.GetComponent[*components.CircleComponent](f.scene.entityManager, f.scene.circles[0])
			circle.Radius = 2000

			x, y := 5, 5
			if tt.pointOnTop {
				x, y = int(config.PanelX+config.PanelWidth/2), int(config.PanelY+config.PanelHeight-20)
			}
			// 避开自动运动的随机命中
			f.scene.elapsed = 0.1
			f.mouse.press(x, y)
			f.step()

			if got := f.scene.panel.IsOpen(); got != tt.wantOpen {
				t.Errorf("panel open: got %v, want %v", got, tt.wantOpen)
			}
			if got := f.scene.scheduler.Pending() > 0; got != tt.wantTasks {
				t.Errorf("circle hit: got %v, want %v", got, tt.wantTasks)
			}
		})
	}
}

func TestRaveScene_AutomaticMotion(t *testing.T) {
	tests := []struct {
		name      string
		automatic bool
		elapsed   float64
		wantHit   bool
	}{
		{"关闭", false, 0, false},
		{"打开且在节拍上", true, 0, true},
		{"打开但不在节拍上", true, 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSceneFixture(t, 3, tt.automatic)
			circle, _ := ecs.GetComponent[*components.CircleComponent](f.scene.entityManager, f.scene.circles[0])
			circle.Radius = 2000

			f.scene.elapsed = tt.elapsed
			f.step()

			if got := f.scene.scheduler.Pending() > 0; got != tt.wantHit {
				t.Errorf("automatic hit: got %v, want %v", got, tt.wantHit)
			}
		})
	}
}

func TestRaveScene_Keys(t *testing.T) {
	f := newSceneFixture(t, 5, false)

	f.keys.tap(ebiten.KeySpace)
	f.step()
	if !f.scene.panel.IsOpen() {
		t.Error("Space should open the panel")
	}

	f.keys.tap(ebiten.KeyA)
	f.step()
	if !f.scene.Automatic() {
		t.Error("A should turn automatic motion on")
	}
	checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](f.scene.entityManager, f.scene.panel.CheckboxEntity())
	if !checkbox.IsChecked {
		t.Error("checkbox should follow the keyboard toggle")
	}

	f.keys.tap(ebiten.KeyQ)
	f.step()
	f.keys.tap(ebiten.KeyEscape)
	f.step()
	if f.quit != 2 {
		t.Errorf("expected 2 quit requests, got %d", f.quit)
	}
}

func TestRaveScene_Restart(t *testing.T) {
	params := game.NewParameterStore()
	params.SetMaxCircles(4)
	keys := &mockKeyInput{}
	sm := game.NewSceneManager()

	var seeds []int64
	sm.SetSceneFactory(func(seed int64) game.Scene {
		seeds = append(seeds, seed)
		return NewRaveScene(RaveSceneOptions{
			SceneManager: sm,
			Params:       params,
			Seed:         seed,
			Pointer:      &mockPointerInput{},
			Keys:         keys,
		})
	})
	sm.Restart(1)
	first := sm.GetCurrentScene().(*RaveScene)

	keys.tap(ebiten.KeyR)
	sm.Update(frameTime)
	keys.tap()

	second, ok := sm.GetCurrentScene().(*RaveScene)
	if !ok || second == first {
		t.Fatal("R should replace the scene")
	}
	if len(seeds) != 2 {
		t.Fatalf("expected 2 factory calls, got %d", len(seeds))
	}
	if first.unbind != nil {
		t.Error("old scene should be disposed")
	}

	// 旧场景已取消订阅，混合模式只推送给新场景
	params.SetBlendMode(types.BlendAdd)
	oldCircle, _ := ecs.GetComponent[*components.CircleComponent](first.entityManager, first.circles[0])
	newCircle, _ := ecs.GetComponent[*components.CircleComponent](second.entityManager, second.circles[0])
	if oldCircle.BlendMode == types.BlendAdd {
		t.Error("disposed scene should not receive parameter pushes")
	}
	if newCircle.BlendMode != types.BlendAdd {
		t.Error("live scene should receive the new blend mode")
	}
}

func TestRaveScene_HitAtCountsOverlaps(t *testing.T) {
	f := newSceneFixture(t, 3, false)
	for _, id := range f.scene.circles {
		pos, _ := ecs.GetComponent[*components.PositionComponent](f.scene.entityManager, id)
		pos.X, pos.Y = 100, 100
	}

	if got := f.scene.HitAt(100, 100); got != 3 {
		t.Errorf("expected every overlapping circle to start a wave, got %d", got)
	}
	if got := f.scene.HitAt(-500, -500); got != 0 {
		t.Errorf("expected no hits outside the scene, got %d", got)
	}
}
