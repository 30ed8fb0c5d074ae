package components

import "github.com/decker502/stepslider/pkg/slider"

// StepSliderComponent 分段滑动条组件
//
// 几何、拖拽状态和数值都由 Control 持有，组件只保存与 ECS 宿主相关的信息。
// Control 使用局部坐标，屏幕位置由同一实体上的 PositionComponent 提供。
type StepSliderComponent struct {
	Control *slider.Control

	// 标签文字（绘制在滑动条上方，为空则不绘制）
	Label string
	// ShowValue 是否在标签后显示当前值
	ShowValue bool

	// 状态
	IsHovered bool // 指针是否悬停在滑块上

	// 音效
	ClickSoundID string // 拖拽跨过刻度时播放的音效ID，为空则不播放
}
