// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/embedded"
	"github.com/gonewx/shaperave/pkg/game"
	"github.com/gonewx/shaperave/pkg/scenes"
	"github.com/gonewx/shaperave/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "shaperave"

// EmbeddedSceneConfig 嵌入的默认场景配置路径
const EmbeddedSceneConfig = "data/scene.yaml"

// Config 定义应用启动配置
// 零值字段表示使用场景配置文件中的值
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的场景配置文件，为空时使用嵌入的 data/scene.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用配置文件的种子（仍为 0 时使用当前时间）
	Seed int64
	// Count 圆形数量，0 表示使用配置文件的值
	Count int
	// Music 背景音乐文件
	Music string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	verbose                  bool
	quit                     bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneCfg, err := LoadSceneConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	seed := sceneCfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	params := game.NewParameterStoreFromConfig(sceneCfg)

	// 初始化音频上下文
	audioContext := audio.NewContext(config.AudioSampleRate)
	resourceManager := game.NewResourceManager(audioContext)

	settingsManager := game.OpenSettingsManager(AppName)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PrepareNoise(rand.New(rand.NewSource(seed)))
	log.Printf("[App] AudioManager initialized")

	music := sceneCfg.Music
	if music == "" {
		music = audioManager.LastPickedMusic()
	}
	if music != "" {
		audioManager.PlayMusic(music)
	}

	var font text.Face
	if face, err := resourceManager.LoadDefaultFont(config.PanelLabelSize); err != nil {
		log.Printf("[App] Warning: Font unavailable, labels disabled: %v", err)
	} else {
		font = face
	}

	a := &App{verbose: cfg.Verbose}

	var picker *game.MusicPicker
	if !utils.IsMobile() {
		picker = game.NewMusicPicker()
	}

	// 创建场景管理器；重建场景时沿用当前的自动运动开关
	sceneManager := game.NewSceneManager()
	automatic := sceneCfg.AutomaticMotion
	sceneManager.SetSceneFactory(func(seed int64) game.Scene {
		if current, ok := sceneManager.GetCurrentScene().(*scenes.RaveScene); ok {
			automatic = current.Automatic()
		}
		return scenes.NewRaveScene(scenes.RaveSceneOptions{
			SceneManager: sceneManager,
			Params:       params,
			Audio:        audioManager,
			MusicPicker:  picker,
			Font:         font,
			Seed:         seed,
			Automatic:    automatic,
			OnQuit:       a.requestQuit,
		})
	})
	sceneManager.Restart(seed)
	a.sceneManager = sceneManager

	log.Printf("[App] Started: seed=%d circles=%d", seed, params.MaxCircles())
	return a, nil
}

// LoadSceneConfig 加载场景配置并应用命令行覆盖
//
// 参数:
//   - cfg: 启动配置（ConfigPath 为空时读取嵌入的配置）
//
// 返回:
//   - *config.SceneConfig: 合并后的配置
//   - error: 读取或解析失败时返回错误
func LoadSceneConfig(cfg Config) (*config.SceneConfig, error) {
	var sceneCfg *config.SceneConfig
	var err error

	if cfg.ConfigPath != "" {
		sceneCfg, err = config.LoadSceneConfig(cfg.ConfigPath)
	} else if embedded.IsInitialized() && embedded.Exists(EmbeddedSceneConfig) {
		var data []byte
		data, err = embedded.ReadFile(EmbeddedSceneConfig)
		if err == nil {
			sceneCfg, err = config.ParseSceneConfig(data)
		}
	} else {
		log.Printf("[App] No scene config found, using defaults")
		sceneCfg = config.DefaultSceneConfig()
	}
	if err != nil {
		return nil, err
	}

	if cfg.Seed != 0 {
		sceneCfg.Seed = cfg.Seed
	}
	if cfg.Count > 0 {
		sceneCfg.MaxCircles = cfg.Count
	}
	if cfg.Music != "" {
		sceneCfg.Music = cfg.Music
	}
	return sceneCfg, nil
}

// requestQuit 请求退出（移动端忽略）
func (a *App) requestQuit() {
	if utils.IsMobile() {
		return
	}
	a.quit = true
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.quit {
		log.Printf("[App] Quit")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.SceneWidth, config.SceneHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.SceneWidth, config.SceneHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.DefaultTPS)
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.SceneWidth, config.SceneHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
