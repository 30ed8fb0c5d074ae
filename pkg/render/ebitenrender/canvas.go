// Package ebitenrender 使用 ebiten vector 包实现 render.Canvas
package ebitenrender

import (
	"image/color"

	"github.com/decker502/stepslider/pkg/slider"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas 绘制到一个 ebiten.Image 上（通常是 Draw 的 screen）
type Canvas struct {
	dst       *ebiten.Image
	antialias bool
}

// New 创建画布，默认开启抗锯齿
func New(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst, antialias: true}
}

// SetAntialias 设置是否抗锯齿
func (c *Canvas) SetAntialias(enabled bool) {
	c.antialias = enabled
}

// FillRect 填充矩形
func (c *Canvas) FillRect(r slider.Rect, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, c.antialias)
}

// FillCircle 填充圆
func (c *Canvas) FillCircle(center slider.Point, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), clr, c.antialias)
}

// StrokeCircle 描边圆
func (c *Canvas) StrokeCircle(center slider.Point, radius, width float64, clr color.Color) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), float32(width), clr, c.antialias)
}
