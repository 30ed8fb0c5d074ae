// Package rasterrender 使用 gg 把滑动条栅格化为图片（PNG 快照）
package rasterrender

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"

	"github.com/decker502/stepslider/pkg/slider"
)

// Canvas 实现 render.Canvas，绘制到内存中的 RGBA 图片
type Canvas struct {
	dc *gg.Context
}

// NewCanvas 创建 width x height 的画布
// background 为 nil 时保持透明
func NewCanvas(width, height int, background color.Color) *Canvas {
	dc := gg.NewContext(width, height)
	if background != nil {
		dc.SetColor(background)
		dc.Clear()
	}
	return &Canvas{dc: dc}
}

// FillRect 填充矩形
func (c *Canvas) FillRect(r slider.Rect, clr color.Color) {
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.dc.SetColor(clr)
	c.dc.Fill()
}

// FillCircle 填充圆
func (c *Canvas) FillCircle(center slider.Point, radius float64, clr color.Color) {
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.dc.SetColor(clr)
	c.dc.Fill()
}

// StrokeCircle 描边圆
func (c *Canvas) StrokeCircle(center slider.Point, radius, width float64, clr color.Color) {
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.dc.SetLineWidth(width)
	c.dc.SetColor(clr)
	c.dc.Stroke()
}

// Image 返回绘制结果
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG 把绘制结果编码为 PNG
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
