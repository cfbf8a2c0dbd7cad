package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按随机种子创建新场景，避免 game 包依赖 scenes 包
type SceneFactory func(seed int64) Scene

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于重建场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is disposed if it implements Disposable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if old, ok := sm.currentScene.(Disposable); ok && sm.currentScene != scene {
		old.Dispose()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restart 用新的随机种子重建场景
//
// 参数：
//   - seed: 新布局使用的随机种子
func (sm *SceneManager) Restart(seed int64) {
	log.Printf("[SceneManager] 重建场景: seed=%d", seed)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(seed)
	if newScene != nil {
		sm.SwitchTo(newScene)
	} else {
		log.Printf("[SceneManager] 错误: 无法创建场景: seed=%d", seed)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
