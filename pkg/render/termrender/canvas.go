// Package termrender 把滑动条绘制到终端（tcell）
//
// 每个终端单元格视为一个 CellWidth x CellHeight 的像素块，图元覆盖到的单元格
// 按 alpha 混合后的颜色作为背景色输出。
package termrender

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/stepslider/pkg/slider"
)

// 默认单元格尺寸（像素），终端字符大约是 1:2 的长方形
const (
	DefaultCellWidth  = 4.0
	DefaultCellHeight = 8.0
)

// Canvas 实现 render.Canvas，先绘制到颜色缓冲区，再由 Flush 输出到屏幕
type Canvas struct {
	cols, rows int
	cellW      float64
	cellH      float64
	background color.RGBA
	cells      []color.RGBA
}

// NewCanvas 创建 cols x rows 个单元格的画布
func NewCanvas(cols, rows int, cellW, cellH float64, background color.RGBA) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &Canvas{
		cols:       cols,
		rows:       rows,
		cellW:      cellW,
		cellH:      cellH,
		background: background,
		cells:      make([]color.RGBA, cols*rows),
	}
	c.Clear()
	return c
}

// PixelSize 返回画布对应的像素尺寸，用于设置控件 bounds
func (c *Canvas) PixelSize() slider.Size {
	return slider.Size{Width: float64(c.cols) * c.cellW, Height: float64(c.rows) * c.cellH}
}

// CellAt 把像素坐标转换为单元格坐标
func (c *Canvas) CellAt(p slider.Point) (col, row int) {
	return int(math.Floor(p.X / c.cellW)), int(math.Floor(p.Y / c.cellH))
}

// PointAt 返回单元格中心的像素坐标（终端鼠标事件只有单元格精度）
func (c *Canvas) PointAt(col, row int) slider.Point {
	return slider.Point{X: (float64(col) + 0.5) * c.cellW, Y: (float64(row) + 0.5) * c.cellH}
}

// Clear 用背景色填充所有单元格
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = c.background
	}
}

// Cell 返回单元格当前颜色，越界返回背景色
func (c *Canvas) Cell(col, row int) color.RGBA {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return c.background
	}
	return c.cells[row*c.cols+col]
}

// FillRect 填充与矩形有重叠的单元格
func (c *Canvas) FillRect(r slider.Rect, clr color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	c.each(func(cell slider.Rect) bool {
		return cell.X < r.MaxX() && r.X < cell.MaxX() && cell.Y < r.MaxY() && r.Y < cell.MaxY()
	}, clr)
}

// FillCircle 填充与圆有重叠的单元格
func (c *Canvas) FillCircle(center slider.Point, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	c.each(func(cell slider.Rect) bool {
		return nearest(cell, center) < radius
	}, clr)
}

// StrokeCircle 填充圆周经过的单元格
func (c *Canvas) StrokeCircle(center slider.Point, radius, width float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	half := width / 2
	c.each(func(cell slider.Rect) bool {
		return nearest(cell, center) <= radius+half && farthest(cell, center) >= radius-half
	}, clr)
}

// Flush 把缓冲区输出到屏幕左上角 (x0, y0)
func (c *Canvas) Flush(screen tcell.Screen, x0, y0 int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			clr := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
			screen.SetContent(x0+col, y0+row, ' ', nil, style)
		}
	}
}

func (c *Canvas) each(covers func(cell slider.Rect) bool, clr color.Color) {
	src := color.RGBAModel.Convert(clr).(color.RGBA)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cell := slider.Rect{X: float64(col) * c.cellW, Y: float64(row) * c.cellH, Width: c.cellW, Height: c.cellH}
			if covers(cell) {
				i := row*c.cols + col
				c.cells[i] = blend(src, c.cells[i])
			}
		}
	}
}

// blend 预乘 alpha 的 source-over 混合
func blend(src, dst color.RGBA) color.RGBA {
	inv := 255 - uint32(src.A)
	mix := func(s, d uint8) uint8 {
		return uint8(uint32(s) + uint32(d)*inv/255)
	}
	return color.RGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: mix(src.A, dst.A)}
}

// nearest 单元格上离 p 最近的点到 p 的距离
func nearest(cell slider.Rect, p slider.Point) float64 {
	dx := math.Max(math.Max(cell.X-p.X, 0), p.X-cell.MaxX())
	dy := math.Max(math.Max(cell.Y-p.Y, 0), p.Y-cell.MaxY())
	return math.Hypot(dx, dy)
}

// farthest 单元格上离 p 最远的点到 p 的距离
func farthest(cell slider.Rect, p slider.Point) float64 {
	dx := math.Max(math.Abs(p.X-cell.X), math.Abs(p.X-cell.MaxX()))
	dy := math.Max(math.Abs(p.Y-cell.Y), math.Abs(p.Y-cell.MaxY()))
	return math.Hypot(dx, dy)
}
