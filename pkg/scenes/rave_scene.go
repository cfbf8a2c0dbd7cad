package scenes

import (
	"log"
	"math/rand"

	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/entities"
	"github.com/gonewx/shaperave/pkg/game"
	"github.com/gonewx/shaperave/pkg/modules"
	"github.com/gonewx/shaperave/pkg/systems"
	"github.com/gonewx/shaperave/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// KeyInput 键盘输入接口
type KeyInput interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

type ebitenKeyInput struct{}

func (ebitenKeyInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// RaveSceneOptions 场景依赖
//
// 除 Params 外都可以为 nil：
//   - Audio 为 nil 时静音
//   - MusicPicker 为 nil 时 O 键无效
//   - Pointer / Keys 为 nil 时使用 ebiten 输入
type RaveSceneOptions struct {
	SceneManager *game.SceneManager
	Params       *game.ParameterStore
	Audio        *game.AudioManager
	MusicPicker  *game.MusicPicker
	Font         text.Face
	Seed         int64
	Automatic    bool
	Pointer      systems.PointerInput
	Keys         KeyInput
	OnQuit       func()
}

// RaveScene 圆形场景
//
// 场景持有一组沿椭圆轨道漂浮的圆形。按下指针时，所有包含该点的圆形
// 各自发起一次传播波次；按住时每帧重复命中。底部的菜单按钮打开参数面板。
//
// 每帧更新顺序：输入 → 键盘 → 按钮 → 指针命中 → 调度器 → 轨道 → 动作 → 面板
type RaveScene struct {
	sceneManager *game.SceneManager
	params       *game.ParameterStore
	audio        *game.AudioManager
	musicPicker  *game.MusicPicker
	keys         KeyInput
	onQuit       func()

	entityManager *ecs.EntityManager
	scheduler     *game.Scheduler
	rng           *rand.Rand

	inputSystem        *systems.InputSystem
	orbitSystem        *systems.OrbitSystem
	actionSystem       *systems.ActionSystem
	propagationSystem  *systems.PropagationSystem
	renderSystem       *systems.RenderSystem
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	panel      *modules.ParameterPanelModule
	menuButton ecs.EntityID
	circles    []ecs.EntityID

	unbind    func()
	automatic bool
	elapsed   float64

	// holding 当前按压是否会命中圆形（按在菜单按钮或面板上的按压不会）
	holding bool
}

// NewRaveScene 创建圆形场景
//
// 圆形数量在这里从参数存储读取一次，之后不再变化。
func NewRaveScene(opts RaveSceneOptions) *RaveScene {
	pointer := opts.Pointer
	if pointer == nil {
		pointer = systems.NewEbitenPointerInput()
	}
	keys := opts.Keys
	if keys == nil {
		keys = ebitenKeyInput{}
	}

	s := &RaveScene{
		sceneManager:  opts.SceneManager,
		params:        opts.Params,
		audio:         opts.Audio,
		musicPicker:   opts.MusicPicker,
		keys:          keys,
		onQuit:        opts.OnQuit,
		entityManager: ecs.NewEntityManager(),
		scheduler:     game.NewScheduler(),
		rng:           rand.New(rand.NewSource(opts.Seed)),
		automatic:     opts.Automatic,
	}

	s.inputSystem = systems.NewInputSystemWithInput(pointer)
	s.orbitSystem = systems.NewOrbitSystem(s.entityManager)
	s.actionSystem = systems.NewActionSystem(s.entityManager)
	s.propagationSystem = systems.NewPropagationSystem(s.entityManager, s.scheduler, s.params)
	s.renderSystem = systems.NewRenderSystem(s.entityManager)
	s.buttonSystem = systems.NewButtonSystem(s.entityManager, s.inputSystem)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(s.entityManager, opts.Font)

	s.circles = entities.CreateCircles(s.entityManager, s.rng, s.params)
	s.unbind = systems.BindParameters(s.entityManager, s.params, s.orbitSystem)

	s.panel = modules.NewParameterPanelModule(s.entityManager, s.params, s.inputSystem, opts.Font,
		s.automatic, func(enabled bool) {
			s.automatic = enabled
		})
	if s.audio != nil {
		s.panel.SetSoundPlayer(s.audio)
	}
	s.menuButton = entities.NewMenuButton(s.entityManager, s.panel.Toggle)

	log.Printf("[RaveScene] Created %d circles (seed=%d, automatic=%v)", len(s.circles), opts.Seed, s.automatic)
	return s
}

// Update 更新场景
func (s *RaveScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	s.inputSystem.Update(deltaTime)
	if !s.handleKeys() {
		return
	}
	s.pollMusicPicker()
	s.buttonSystem.Update(deltaTime)
	s.handlePointer()
	s.handleAutomaticMotion()

	s.scheduler.Update(deltaTime)
	s.orbitSystem.Update(deltaTime)
	s.actionSystem.Update(deltaTime)
	s.panel.Update(deltaTime)
}

// handleKeys 处理键盘快捷键
// 场景被重建时返回 false，本帧剩余逻辑不再执行
func (s *RaveScene) handleKeys() bool {
	if s.keys.IsKeyJustPressed(ebiten.KeyEscape) || s.keys.IsKeyJustPressed(ebiten.KeyQ) {
		log.Printf("[RaveScene] Quit requested")
		if s.onQuit != nil {
			s.onQuit()
		}
	}
	if s.keys.IsKeyJustPressed(ebiten.KeySpace) {
		s.panel.Toggle()
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyA) {
		s.SetAutomatic(!s.automatic)
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyO) && s.musicPicker != nil && !utils.IsMobile() {
		s.musicPicker.Open()
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyM) && s.audio != nil {
		s.audio.ToggleMusic()
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyR) && s.sceneManager != nil {
		s.sceneManager.Restart(s.rng.Int63())
		return false
	}
	return true
}

// pollMusicPicker 取走文件对话框的选择结果
func (s *RaveScene) pollMusicPicker() {
	if s.musicPicker == nil {
		return
	}
	if path, ok := s.musicPicker.Poll(); ok && s.audio != nil {
		s.audio.PlayPickedMusic(path)
	}
}

// handlePointer 处理指针按下和按住
//
// 规则：
//   - 按在菜单按钮上的按压交给按钮系统
//   - 面板打开时，按在面板内的按压交给面板控件
//   - 面板打开且自动运动关闭时，面板外的按压只关闭面板
//   - 其余按压命中包含该点的所有圆形，按住时每帧重复命中
func (s *RaveScene) handlePointer() {
	frame := s.inputSystem.Frame()
	x, y := frame.X, frame.Y

	if frame.JustPressed {
		s.holding = false
		s.playNoise()

		switch {
		case s.buttonSystem.ContainsPoint(s.menuButton, x, y):
		case s.panel.IsOpen() && s.panel.Contains(x, y):
		case s.panel.IsOpen() && !s.automatic:
			s.panel.Close()
		default:
			s.holding = true
			s.HitAt(x, y)
		}
		return
	}

	if !frame.Pressed {
		s.holding = false
		return
	}
	if s.holding && !s.panel.IsDragging() {
		s.HitAt(x, y)
	}
}

// handleAutomaticMotion 自动运动：在固定节拍上随机命中场景中的一点
func (s *RaveScene) handleAutomaticMotion() {
	if !s.automatic {
		return
	}
	if int(s.elapsed*10)%config.AutoMotionModulo != 0 {
		return
	}
	x := s.rng.Float64() * config.SceneWidth
	y := s.rng.Float64() * config.SceneHeight
	s.HitAt(x, y)
}

// playNoise 播放按压噪音
func (s *RaveScene) playNoise() {
	if s.audio != nil {
		s.audio.PlaySound(config.NoiseSoundID)
	}
}

// HitAt 从包含点 (x, y) 的每个圆形发起一次波次
//
// 返回:
//   - int: 发起的波次数量
func (s *RaveScene) HitAt(x, y float64) int {
	hits := s.propagationSystem.HitTest(x, y)
	for _, id := range hits {
		s.propagationSystem.Propagate(id)
	}
	return len(hits)
}

// SetAutomatic 切换自动运动，并同步面板复选框
func (s *RaveScene) SetAutomatic(enabled bool) {
	s.automatic = enabled
	s.panel.SetAutomatic(enabled)
	log.Printf("[RaveScene] Automatic motion: %v", enabled)
}

// Automatic 自动运动是否打开
func (s *RaveScene) Automatic() bool {
	return s.automatic
}

// Draw 渲染场景：背景 → 圆形 → 面板 → 菜单按钮
func (s *RaveScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderSystem.Draw(screen)
	s.panel.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
}

// Dispose 释放场景资源：取消参数订阅和所有调度任务
func (s *RaveScene) Dispose() {
	if s.unbind != nil {
		s.unbind()
		s.unbind = nil
	}
	s.scheduler.Clear()
	log.Printf("[RaveScene] Disposed")
}
