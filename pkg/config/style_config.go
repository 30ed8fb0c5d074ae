package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/stepslider/pkg/slider"
)

// StyleConfig 滑动条样式配置（YAML 格式）
//
// 示例：
//
//	minimumValue: 0
//	maximumValue: 4
//	value: 2
//	track: { height: 2, color: "#555555" }
//	tick: { width: 8, height: 8, color: "#555555" }
//	thumb: { dimension: 30, fillColor: "#3193c6", strokeColor: "#3193c6", strokeWidth: 0.5, shadow: true }
//	pulse: { radius: 30, color: "#3193c6" }
//	spacing: legacy
type StyleConfig struct {
	MinimumValue *int `yaml:"minimumValue"`
	MaximumValue *int `yaml:"maximumValue"`
	Value        *int `yaml:"value"` // 初始值（无存档时使用）

	Track TrackStyle `yaml:"track"`
	Tick  TickStyle  `yaml:"tick"`
	Thumb ThumbStyle `yaml:"thumb"`
	Pulse PulseStyle `yaml:"pulse"`

	// Spacing 刻度间距模式："legacy"（默认）或 "normalized"
	Spacing string `yaml:"spacing"`
}

// TrackStyle 滑槽样式
type TrackStyle struct {
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// TickStyle 刻度样式
type TickStyle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// ThumbStyle 滑块样式
type ThumbStyle struct {
	Dimension   float64  `yaml:"dimension"`
	FillColor   string   `yaml:"fillColor"`
	StrokeColor string   `yaml:"strokeColor"`
	StrokeWidth *float64 `yaml:"strokeWidth"` // 允许显式设置为 0
	Shadow      bool     `yaml:"shadow"`
}

// PulseStyle 脉冲样式
type PulseStyle struct {
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
}

// LoadStyleConfig 从文件加载样式配置
func LoadStyleConfig(filepath string) (*StyleConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read style config file %s: %w", filepath, err)
	}
	return ParseStyleConfig(data, filepath)
}

// ParseStyleConfig 解析 YAML 数据，source 只用于错误信息
func ParseStyleConfig(data []byte, source string) (*StyleConfig, error) {
	var styleConfig StyleConfig
	if err := yaml.Unmarshal(data, &styleConfig); err != nil {
		return nil, fmt.Errorf("failed to parse style config YAML from %s: %w", source, err)
	}

	applyStyleDefaults(&styleConfig)

	if err := validateStyleConfig(&styleConfig); err != nil {
		return nil, fmt.Errorf("invalid style config in %s: %w", source, err)
	}
	return &styleConfig, nil
}

// DefaultStyleConfig 返回与 slider.DefaultConfiguration 等价的样式配置
func DefaultStyleConfig() *StyleConfig {
	var sc StyleConfig
	applyStyleDefaults(&sc)
	return &sc
}

// applyStyleDefaults 为缺失的字段设置默认值（与 slider.DefaultConfiguration 一致）
func applyStyleDefaults(sc *StyleConfig) {
	def := slider.DefaultConfiguration()

	if sc.MinimumValue == nil {
		v := def.MinimumValue
		sc.MinimumValue = &v
	}
	if sc.MaximumValue == nil {
		v := def.MaximumValue
		sc.MaximumValue = &v
	}
	if sc.Value == nil {
		v := slider.DefaultValue
		sc.Value = &v
	}

	if sc.Track.Height == 0 {
		sc.Track.Height = def.TrackHeight
	}
	if sc.Track.Color == "" {
		sc.Track.Color = FormatHexColor(def.TrackColor)
	}

	if sc.Tick.Width == 0 {
		sc.Tick.Width = def.TickWidth
	}
	if sc.Tick.Height == 0 {
		sc.Tick.Height = def.TickHeight
	}
	if sc.Tick.Color == "" {
		sc.Tick.Color = FormatHexColor(def.TickColor)
	}

	if sc.Thumb.Dimension == 0 {
		sc.Thumb.Dimension = def.ThumbDimension
	}
	if sc.Thumb.FillColor == "" {
		sc.Thumb.FillColor = FormatHexColor(def.ThumbFillColor)
	}
	if sc.Thumb.StrokeColor == "" {
		sc.Thumb.StrokeColor = FormatHexColor(def.ThumbStrokeColor)
	}
	if sc.Thumb.StrokeWidth == nil {
		w := def.ThumbStrokeWidth
		sc.Thumb.StrokeWidth = &w
	}

	if sc.Pulse.Radius == 0 {
		sc.Pulse.Radius = def.PulseRadius
	}
	if sc.Pulse.Color == "" {
		sc.Pulse.Color = FormatHexColor(def.PulseColor)
	}

	if sc.Spacing == "" {
		sc.Spacing = slider.SpacingLegacy.String()
	}
}

// validateStyleConfig 验证样式配置
func validateStyleConfig(sc *StyleConfig) error {
	if *sc.MinimumValue >= *sc.MaximumValue {
		return fmt.Errorf("%w: got [%d, %d]", slider.ErrInvalidRange, *sc.MinimumValue, *sc.MaximumValue)
	}
	if sc.Track.Height < 0 {
		return fmt.Errorf("track.height cannot be negative, got %v", sc.Track.Height)
	}
	if sc.Tick.Width < 0 || sc.Tick.Height < 0 {
		return fmt.Errorf("tick size cannot be negative, got %vx%v", sc.Tick.Width, sc.Tick.Height)
	}
	if sc.Thumb.Dimension < 0 {
		return fmt.Errorf("thumb.dimension cannot be negative, got %v", sc.Thumb.Dimension)
	}
	if *sc.Thumb.StrokeWidth < 0 {
		return fmt.Errorf("thumb.strokeWidth cannot be negative, got %v", *sc.Thumb.StrokeWidth)
	}
	if sc.Pulse.Radius < 0 {
		return fmt.Errorf("pulse.radius cannot be negative, got %v", sc.Pulse.Radius)
	}
	if _, err := parseSpacing(sc.Spacing); err != nil {
		return err
	}

	colors := map[string]string{
		"track.color":       sc.Track.Color,
		"tick.color":        sc.Tick.Color,
		"thumb.fillColor":   sc.Thumb.FillColor,
		"thumb.strokeColor": sc.Thumb.StrokeColor,
		"pulse.color":       sc.Pulse.Color,
	}
	for field, value := range colors {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	return nil
}

// Configuration 转换为 slider.Configuration
func (sc *StyleConfig) Configuration() (slider.Configuration, error) {
	cfg := slider.DefaultConfiguration()
	if sc.MinimumValue != nil {
		cfg.MinimumValue = *sc.MinimumValue
	}
	if sc.MaximumValue != nil {
		cfg.MaximumValue = *sc.MaximumValue
	}
	if sc.Track.Height != 0 {
		cfg.TrackHeight = sc.Track.Height
	}
	if sc.Tick.Width != 0 {
		cfg.TickWidth = sc.Tick.Width
	}
	if sc.Tick.Height != 0 {
		cfg.TickHeight = sc.Tick.Height
	}
	if sc.Thumb.Dimension != 0 {
		cfg.ThumbDimension = sc.Thumb.Dimension
	}
	if sc.Thumb.StrokeWidth != nil {
		cfg.ThumbStrokeWidth = *sc.Thumb.StrokeWidth
	}
	if sc.Pulse.Radius != 0 {
		cfg.PulseRadius = sc.Pulse.Radius
	}
	cfg.DisplayShadow = sc.Thumb.Shadow

	var err error
	targets := []struct {
		field string
		value string
		dst   *color.RGBA
	}{
		{"track.color", sc.Track.Color, &cfg.TrackColor},
		{"tick.color", sc.Tick.Color, &cfg.TickColor},
		{"thumb.fillColor", sc.Thumb.FillColor, &cfg.ThumbFillColor},
		{"thumb.strokeColor", sc.Thumb.StrokeColor, &cfg.ThumbStrokeColor},
		{"pulse.color", sc.Pulse.Color, &cfg.PulseColor},
	}
	for _, t := range targets {
		if t.value == "" {
			continue
		}
		if *t.dst, err = ParseHexColor(t.value); err != nil {
			return slider.Configuration{}, fmt.Errorf("%s: %w", t.field, err)
		}
	}

	if sc.Spacing != "" {
		if cfg.Spacing, err = parseSpacing(sc.Spacing); err != nil {
			return slider.Configuration{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return slider.Configuration{}, err
	}
	return cfg, nil
}

// InitialValue 返回配置的初始值
func (sc *StyleConfig) InitialValue() int {
	if sc.Value == nil {
		return slider.DefaultValue
	}
	return *sc.Value
}

func parseSpacing(s string) (slider.SpacingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", slider.SpacingLegacy.String():
		return slider.SpacingLegacy, nil
	case slider.SpacingNormalized.String():
		return slider.SpacingNormalized, nil
	default:
		return 0, fmt.Errorf("spacing must be one of: legacy, normalized, got %q", s)
	}
}

// ParseHexColor 解析 "#rgb"、"#rrggbb" 或 "#rrggbbaa" 格式的颜色
// 返回预乘 alpha 的 color.RGBA
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rgb, #rrggbb or #rrggbbaa", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	nrgba := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}

// FormatHexColor 把颜色格式化为 "#rrggbb"（不透明）或 "#rrggbbaa"
func FormatHexColor(c color.RGBA) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
