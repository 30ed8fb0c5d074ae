// Package render 把 slider.Frame 绘制到具体的渲染后端
//
// 后端只需要实现 Canvas 的三个基本图元，绘制顺序由 DrawFrame 统一决定：
// 滑槽 → 刻度 → 阴影 → 脉冲 → 滑块填充 → 滑块描边。
package render

import (
	"image/color"

	"github.com/decker502/stepslider/pkg/slider"
)

// Canvas 渲染后端需要提供的基本图元
type Canvas interface {
	// FillRect 填充矩形
	FillRect(r slider.Rect, c color.Color)
	// FillCircle 填充圆
	FillCircle(center slider.Point, radius float64, c color.Color)
	// StrokeCircle 描边圆
	StrokeCircle(center slider.Point, radius, width float64, c color.Color)
}

// DrawFrame 把一帧绘制到 canvas 上
// origin 是控件左上角在 canvas 中的位置，Frame 中的坐标都是局部坐标
func DrawFrame(cv Canvas, f slider.Frame, origin slider.Point) {
	if f.Track.Width > 0 {
		cv.FillRect(offsetRect(f.Track, origin), f.TrackColor)
	}

	for _, tick := range f.Ticks {
		cv.FillRect(offsetRect(tick, origin), f.TickColor)
	}

	if f.Shadow != nil {
		drawShadow(cv, *f.Shadow, origin)
	}

	if f.Pulse.Visible() {
		cv.FillCircle(offsetPoint(f.Pulse.Center, origin), f.Pulse.EffectiveRadius(), f.Pulse.EffectiveColor())
	}

	center := offsetPoint(f.Thumb.Center(), origin)
	radius := f.ThumbRadius()
	if radius <= 0 {
		return
	}
	cv.FillCircle(center, radius, f.ThumbFillColor)
	if f.ThumbStrokeWidth > 0 {
		cv.StrokeCircle(center, radius, f.ThumbStrokeWidth, f.ThumbStrokeColor)
	}
}

// drawShadow 用几层逐渐变淡的同心圆近似模糊阴影
func drawShadow(cv Canvas, s slider.Shadow, origin slider.Point) {
	center := offsetPoint(s.Center, origin)
	layers := int(s.Blur)
	if layers < 1 {
		cv.FillCircle(center, s.Radius, s.Color)
		return
	}
	for i := layers; i >= 0; i-- {
		alpha := 1 / float64(layers+1)
		cv.FillCircle(center, s.Radius+float64(i), slider.ScaleAlpha(s.Color, alpha*float64(layers+1-i)))
	}
}

func offsetRect(r slider.Rect, origin slider.Point) slider.Rect {
	r.X += origin.X
	r.Y += origin.Y
	return r
}

func offsetPoint(p, origin slider.Point) slider.Point {
	return slider.Point{X: p.X + origin.X, Y: p.Y + origin.Y}
}
