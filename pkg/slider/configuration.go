package slider

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidRange 表示 MinimumValue >= MaximumValue
var ErrInvalidRange = errors.New("slider: minimum value must be less than maximum value")

// SpacingMode 决定刻度间距的计算方式
type SpacingMode int

const (
	// SpacingLegacy 间距 = trackWidth / maximumValue，滑块位置使用原始 value
	SpacingLegacy SpacingMode = iota
	// SpacingNormalized 间距 = trackWidth / (numberOfSteps - 1)，滑块位置使用 value - minimumValue
	SpacingNormalized
)

// String 返回模式名称（与 YAML 中的取值一致）
func (m SpacingMode) String() string {
	switch m {
	case SpacingLegacy:
		return "legacy"
	case SpacingNormalized:
		return "normalized"
	default:
		return fmt.Sprintf("SpacingMode(%d)", int(m))
	}
}

// 默认颜色
var (
	// DefaultTintColor 滑块填充/描边/脉冲的默认蓝色 (0.193, 0.577, 0.775)
	DefaultTintColor = color.RGBA{R: 49, G: 147, B: 198, A: 255}
	// DefaultTrackColor 滑槽和刻度的默认深灰色
	DefaultTrackColor = color.RGBA{R: 85, G: 85, B: 85, A: 255}
	// ShadowColor 滑块阴影颜色（黑色，30% 不透明度）
	ShadowColor = color.RGBA{R: 0, G: 0, B: 0, A: 77}
)

// 阴影参数
const (
	ShadowOffsetY = 2.0
	ShadowRadius  = 2.0
)

// Configuration 是滑动条的全部可配置属性
// 每次布局时视为不可变，宿主可随时通过 Control.SetConfiguration 整体替换
type Configuration struct {
	MinimumValue int
	MaximumValue int

	// 滑槽
	TrackHeight float64
	TrackColor  color.RGBA

	// 刻度
	TickWidth  float64
	TickHeight float64
	TickColor  color.RGBA

	// 滑块
	ThumbDimension   float64
	ThumbFillColor   color.RGBA
	ThumbStrokeColor color.RGBA
	ThumbStrokeWidth float64

	DisplayShadow bool

	// 脉冲
	PulseRadius float64
	PulseColor  color.RGBA

	Spacing SpacingMode
}

// DefaultConfiguration 返回默认配置
func DefaultConfiguration() Configuration {
	return Configuration{
		MinimumValue:     0,
		MaximumValue:     4,
		TrackHeight:      2,
		TrackColor:       DefaultTrackColor,
		TickWidth:        8,
		TickHeight:       8,
		TickColor:        DefaultTrackColor,
		ThumbDimension:   30,
		ThumbFillColor:   DefaultTintColor,
		ThumbStrokeColor: DefaultTintColor,
		ThumbStrokeWidth: 0.5,
		DisplayShadow:    false,
		PulseRadius:      30,
		PulseColor:       DefaultTintColor,
		Spacing:          SpacingLegacy,
	}
}

// DefaultValue 默认初始值
const DefaultValue = 2

// NumberOfSteps 返回刻度数量
func (c Configuration) NumberOfSteps() int {
	return c.MaximumValue - c.MinimumValue + 1
}

// Clamp 把 value 钳制到配置的范围内
func (c Configuration) Clamp(value int) int {
	return Clamp(value, c.MinimumValue, c.MaximumValue)
}

// Validate 检查配置不变量
func (c Configuration) Validate() error {
	if c.MinimumValue >= c.MaximumValue {
		return fmt.Errorf("%w: got [%d, %d]", ErrInvalidRange, c.MinimumValue, c.MaximumValue)
	}
	return nil
}
