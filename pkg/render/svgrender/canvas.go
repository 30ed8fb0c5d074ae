// Package svgrender 使用 svgo 把滑动条输出为 SVG
package svgrender

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/decker502/stepslider/pkg/slider"
)

// precision svgo 只接受整数坐标，先放大再用 transform 缩回，保留 0.1px 精度
const precision = 10

// Canvas 实现 render.Canvas，写入 SVG 文档
type Canvas struct {
	doc    *svg.SVG
	closed bool
}

// NewCanvas 开始一个 width x height 的 SVG 文档
// background 为 nil 时不绘制背景
func NewCanvas(w io.Writer, width, height int, background color.Color) *Canvas {
	doc := svg.New(w)
	doc.Start(width, height)
	if background != nil {
		doc.Rect(0, 0, width, height, fillStyle(background))
	}
	doc.Gtransform(fmt.Sprintf("scale(%g)", 1.0/precision))
	return &Canvas{doc: doc}
}

// Close 结束 SVG 文档，重复调用无副作用
func (c *Canvas) Close() {
	if c.closed {
		return
	}
	c.doc.Gend()
	c.doc.End()
	c.closed = true
}

// FillRect 填充矩形
func (c *Canvas) FillRect(r slider.Rect, clr color.Color) {
	c.doc.Rect(scaled(r.X), scaled(r.Y), scaled(r.Width), scaled(r.Height), fillStyle(clr))
}

// FillCircle 填充圆
func (c *Canvas) FillCircle(center slider.Point, radius float64, clr color.Color) {
	c.doc.Circle(scaled(center.X), scaled(center.Y), scaled(radius), fillStyle(clr))
}

// StrokeCircle 描边圆
func (c *Canvas) StrokeCircle(center slider.Point, radius, width float64, clr color.Color) {
	c.doc.Circle(scaled(center.X), scaled(center.Y), scaled(radius), strokeStyle(clr, width))
}

func scaled(v float64) int {
	return int(math.Round(v * precision))
}

func fillStyle(clr color.Color) string {
	r, g, b, a := straight(clr)
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f", r, g, b, a)
}

func strokeStyle(clr color.Color, width float64) string {
	r, g, b, a := straight(clr)
	return fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-opacity:%.3f;stroke-width:%g", r, g, b, a, width*precision)
}

// straight 把预乘颜色转换为 SVG 需要的非预乘 rgb + opacity
func straight(clr color.Color) (r, g, b uint8, opacity float64) {
	nrgba := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return nrgba.R, nrgba.G, nrgba.B, float64(nrgba.A) / 255
}
