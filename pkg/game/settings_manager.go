package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SliderSettings 用户设置
// 与样式文件分开保存：样式描述外观，设置记录用户上次的状态
type SliderSettings struct {
	// LastValue 上次手势结束时的取值，nil 表示从未保存过
	LastValue *int `yaml:"lastValue,omitempty"`
	// StylePath 上次加载的样式文件，空字符串表示使用内置样式
	StylePath string `yaml:"stylePath,omitempty"`

	// 音效设置
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// PulseEnabled 是否显示拇指脉冲
	PulseEnabled bool `yaml:"pulseEnabled"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *SliderSettings {
	return &SliderSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
		PulseEnabled: true,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *SliderSettings
}

const (
	settingsObject   = "settings"
	settingsProperty = "slider"
)

// NewSettingsManager 创建设置管理器
// 加载失败不是致命错误：记录警告后使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或数据不存在时使用默认设置
func (sm *SettingsManager) Load() error {
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

	// 先填默认值，旧版本缺少的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// 降级模式下直接返回 nil
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

// IsPersistent 是否能持久化
func (sm *SettingsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *SliderSettings {
	return sm.settings
}

// LastValue 返回上次保存的取值
func (sm *SettingsManager) LastValue() (int, bool) {
	if sm.settings.LastValue == nil {
		return 0, false
	}
	return *sm.settings.LastValue, true
}

// SetLastValue 记录取值
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetLastValue(value int) {
	v := value
	sm.settings.LastValue = &v
}

// SetStylePath 记录样式文件路径，空字符串表示内置样式
func (sm *SettingsManager) SetStylePath(path string) {
	sm.settings.StylePath = path
}

// SetSoundVolume 设置音效音量，限制在 0.0 ~ 1.0
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetPulseEnabled 设置脉冲开关
func (sm *SettingsManager) SetPulseEnabled(enabled bool) {
	sm.settings.PulseEnabled = enabled
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
