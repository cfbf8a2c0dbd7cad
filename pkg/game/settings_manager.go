package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/shaperave/pkg/config"
)

// AudioSettings 音频偏好设置
// 只保存音频相关的偏好；圆形、参数等场景状态从不持久化
type AudioSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// LastMusicPath 上次通过文件对话框选择的背景音乐
	LastMusicPath string `yaml:"lastMusicPath"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *AudioSettings {
	return &AudioSettings{
		MusicVolume:  config.DefaultMusicVolume,
		SoundVolume:  config.DefaultSoundVolume,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// SettingsManager 设置管理器
// 负责音频偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *AudioSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "audio"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方统一处理（加载失败不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// OpenSettingsManager 打开 gdata 存储并创建设置管理器
// gdata 初始化失败时进入降级模式（仅内存设置）
func OpenSettingsManager(appName string) *SettingsManager {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		gm = nil
	}
	sm, _ := NewSettingsManager(gm)
	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始解码，旧版本文件缺少的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *AudioSettings {
	return sm.settings
}

// SetMusicVolume 设置音乐音量
//
// 音量值会被限制在 0.0 ~ 1.0 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 设置音效音量
//
// 音量值会被限制在 0.0 ~ 1.0 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetMusicEnabled 设置音乐开关
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetLastMusicPath 记录最近选择的背景音乐
func (sm *SettingsManager) SetLastMusicPath(path string) {
	sm.settings.LastMusicPath = path
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
