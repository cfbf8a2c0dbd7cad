package game

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/shaperave/pkg/config"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理点击音效和背景音乐的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 在没有音频设备时安静降级（所有方法都可安全调用）
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	currentMusic    *audio.Player            // 当前播放的背景音乐
	currentMusicID  string                   // 当前播放的背景音乐路径
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（可为 nil，此时所有播放请求都被忽略）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PrepareNoise 合成点击噪音并注册为音效
func (am *AudioManager) PrepareNoise(rng *rand.Rand) {
	if am.resourceManager == nil {
		return
	}
	pcm := SynthesizeNoise(config.AudioSampleRate, config.NoiseDuration, config.NoiseDecay, rng)
	player, err := am.resourceManager.RegisterSound(config.NoiseSoundID, pcm)
	if err != nil {
		log.Printf("[AudioManager] Warning: Noise sound unavailable: %v", err)
		return
	}
	am.soundPlayers[config.NoiseSoundID] = player
	log.Printf("[AudioManager] Noise sound prepared (%d bytes)", len(pcm))
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.soundPlayers[soundID]
	if player == nil && am.resourceManager != nil {
		player = am.resourceManager.GetAudioPlayer(soundID)
	}
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 播放背景音乐（循环）
// 同一时间只能播放一首背景音乐
//
// 参数：
//   - path: 音乐文件路径（mp3/ogg/wav）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayMusic(path string) bool {
	if path == "" || am.resourceManager == nil {
		return false
	}

	if am.currentMusicID == path && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	player, err := am.resourceManager.LoadAudio(path)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load music %s: %v", path, err)
		return false
	}

	am.StopMusic()
	am.currentMusic = player
	am.currentMusicID = path

	// 音乐关闭时只记录当前曲目，打开时再播放
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}

	player.SetVolume(am.getMusicVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", path, err)
	}
	player.Play()

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", path, am.getMusicVolume())
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// CurrentMusic 返回当前背景音乐路径
func (am *AudioManager) CurrentMusic() string {
	return am.currentMusicID
}

// ToggleMusic 切换音乐开关并持久化
// 返回切换后的开关状态
func (am *AudioManager) ToggleMusic() bool {
	enabled := true
	if am.settingsManager != nil {
		enabled = !am.settingsManager.GetSettings().MusicEnabled
		am.settingsManager.SetMusicEnabled(enabled)
		if err := am.settingsManager.Save(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
		}
	}

	if am.currentMusic != nil {
		if enabled {
			am.currentMusic.SetVolume(am.getMusicVolume())
			am.currentMusic.Play()
		} else {
			am.currentMusic.Pause()
		}
	}
	log.Printf("[AudioManager] Music enabled: %v", enabled)
	return enabled
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return config.DefaultMusicVolume
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return config.DefaultSoundVolume
}

// PlayPickedMusic 播放用户选择的背景音乐并记住它，下次启动时自动播放
func (am *AudioManager) PlayPickedMusic(path string) bool {
	ok := am.PlayMusic(path)
	if am.settingsManager != nil && am.currentMusicID == path {
		am.settingsManager.SetLastMusicPath(path)
		if err := am.settingsManager.Save(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
		}
	}
	return ok
}

// LastPickedMusic 返回上次选择的背景音乐路径
func (am *AudioManager) LastPickedMusic() string {
	if am.settingsManager == nil {
		return ""
	}
	return am.settingsManager.GetSettings().LastMusicPath
}
