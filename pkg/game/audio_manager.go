package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/stepslider/pkg/feedback"
)

// SoundTick 滑块每跨过一个刻度播放的咔哒声
const SoundTick = "SOUND_TICK"

// AudioSampleRate ebiten 音频上下文的采样率
const AudioSampleRate = 44100

// AudioManager 音频管理器
// 职责：
//   - 持有合成音效的 PCM 数据，按资源ID播放
//   - 从 SettingsManager 读取音量与开关
//
// audio.Context 可为 nil（无音频设备或测试），此时所有播放请求返回 false
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	sounds          map[string][]byte        // 资源ID -> PCM
	soundPlayers    map[string]*audio.Player // 资源ID -> 播放器
}

// NewAudioManager 创建音频管理器，并注册内置的咔哒声
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: SettingsManager 实例，可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		sounds:          make(map[string][]byte),
		soundPlayers:    make(map[string]*audio.Player),
	}

	rate := AudioSampleRate
	if ctx != nil {
		rate = ctx.SampleRate()
	}
	am.RegisterSound(SoundTick, feedback.TickPCM(rate))
	return am
}

// RegisterSound 注册一段 16 位立体声 PCM 音效，覆盖同名音效
func (am *AudioManager) RegisterSound(soundID string, pcm []byte) {
	am.sounds[soundID] = pcm
	delete(am.soundPlayers, soundID)
}

// HasSound 是否已注册该音效
func (am *AudioManager) HasSound(soundID string) bool {
	_, ok := am.sounds[soundID]
	return ok
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放（音效禁用、未注册或无音频上下文时为 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.soundEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量，同步到 SettingsManager 和所有缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	v := am.GetSoundVolume()
	for _, player := range am.soundPlayers {
		player.SetVolume(v)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundEnabled
	}
	return true
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.context == nil {
		return nil
	}

	pcm, ok := am.sounds[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}
