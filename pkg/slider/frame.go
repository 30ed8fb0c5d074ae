package slider

import "image/color"

// Shadow 滑块阴影的绘制参数
type Shadow struct {
	Center Point
	Radius float64
	Blur   float64
	Color  color.RGBA
}

// PulseFrame 脉冲在某一帧的绘制参数
type PulseFrame struct {
	Center  Point
	Radius  float64 // 未缩放的半径
	Scale   float64
	Opacity float64
	Color   color.RGBA
}

// EffectiveRadius 返回缩放后的半径
func (p PulseFrame) EffectiveRadius() float64 {
	return p.Radius * p.Scale
}

// EffectiveColor 返回乘上不透明度后的颜色（预乘 alpha）
func (p PulseFrame) EffectiveColor() color.RGBA {
	return ScaleAlpha(p.Color, p.Opacity)
}

// Visible 脉冲在这一帧是否有可见像素
func (p PulseFrame) Visible() bool {
	return p.EffectiveRadius() > 0 && p.Opacity > 0
}

// Frame 一帧完整的绘制指令，由宿主的渲染后端消费
// 绘制顺序：滑槽 → 刻度 → 阴影 → 脉冲 → 滑块填充 → 滑块描边
type Frame struct {
	Size  Size
	Value int

	Track      Rect
	TrackColor color.RGBA

	Ticks     []Rect
	TickColor color.RGBA

	Thumb            Rect
	ThumbFillColor   color.RGBA
	ThumbStrokeColor color.RGBA
	ThumbStrokeWidth float64

	// Shadow 未开启 DisplayShadow 时为 nil
	Shadow *Shadow

	Pulse PulseFrame
}

// ThumbRadius 返回滑块圆的半径
func (f Frame) ThumbRadius() float64 {
	return f.Thumb.Width / 2
}

// BuildFrame 根据布局、配置和脉冲状态生成绘制指令
func BuildFrame(layout Layout, cfg Configuration, pulse PulseSample, value int) Frame {
	f := Frame{
		Size:             layout.Bounds,
		Value:            value,
		Track:            layout.Track,
		TrackColor:       cfg.TrackColor,
		Ticks:            layout.Ticks,
		TickColor:        cfg.TickColor,
		Thumb:            layout.Thumb,
		ThumbFillColor:   cfg.ThumbFillColor,
		ThumbStrokeColor: cfg.ThumbStrokeColor,
		ThumbStrokeWidth: cfg.ThumbStrokeWidth,
		Pulse: PulseFrame{
			Center:  layout.ThumbCenter,
			Radius:  cfg.PulseRadius,
			Scale:   pulse.Scale,
			Opacity: pulse.Opacity,
			Color:   cfg.PulseColor,
		},
	}
	if cfg.DisplayShadow {
		f.Shadow = &Shadow{
			Center: Point{X: layout.ThumbCenter.X, Y: layout.ThumbCenter.Y + ShadowOffsetY},
			Radius: cfg.ThumbDimension / 2,
			Blur:   ShadowRadius,
			Color:  ShadowColor,
		}
	}
	return f
}

// ScaleAlpha 按比例缩放预乘颜色的所有通道
func ScaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	switch {
	case alpha <= 0:
		return color.RGBA{}
	case alpha >= 1:
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
