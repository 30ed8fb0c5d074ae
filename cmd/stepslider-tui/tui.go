package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/stepslider/pkg/render"
	"github.com/decker502/stepslider/pkg/render/termrender"
	"github.com/decker502/stepslider/pkg/slider"
)

// 滑动条在终端中占用的行数和左右留白
const (
	sliderRows   = 6
	sliderMargin = 2
)

var background = color.RGBA{R: 24, G: 24, B: 28, A: 255}

// clicker 播放步进提示音
type clicker interface {
	Click() bool
}

// tui 终端前端：把 tcell 事件转换为控件的指针事件，并把帧绘制到单元格
type tui struct {
	screen  tcell.Screen
	control *slider.Control
	canvas  *termrender.Canvas
	clicker clicker

	// 滑动条左上角所在的单元格
	x0, y0 int

	pressed    bool
	pulseOn    bool
	muted      bool
	lastChange slider.ValueChange
}

func newTUI(screen tcell.Screen, control *slider.Control, c clicker) *tui {
	t := &tui{
		screen:  screen,
		control: control,
		clicker: c,
		pulseOn: true,
	}
	control.Observe(t.onValueChanged)
	t.resize()
	return t
}

// resize 按屏幕尺寸重建画布并重新设置控件 bounds
func (t *tui) resize() {
	w, h := t.screen.Size()
	cols := w - 2*sliderMargin
	if cols < 0 {
		cols = 0
	}
	t.x0 = sliderMargin
	t.y0 = (h - sliderRows) / 2
	if t.y0 < 1 {
		t.y0 = 1
	}

	t.canvas = termrender.NewCanvas(cols, sliderRows, termrender.DefaultCellWidth, termrender.DefaultCellHeight, background)
	size := t.canvas.PixelSize()
	t.control.SetBounds(slider.Rect{Width: size.Width, Height: size.Height})
}

func (t *tui) onValueChanged(change slider.ValueChange) {
	t.lastChange = change
	log.Printf("[TUI] Value changed: %d (%s)", change.Value, change.Source)
	if change.Source == slider.SourceDrag && !t.muted && t.clicker != nil {
		t.clicker.Click()
	}
}

// toLocal 单元格坐标 -> 控件局部像素坐标（单元格中心）
func (t *tui) toLocal(x, y int) slider.Point {
	return t.canvas.PointAt(x-t.x0, y-t.y0)
}

// handleEvent 处理一个事件，返回 false 表示退出
func (t *tui) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'p':
				t.pulseOn = !t.pulseOn
			case 'm':
				t.muted = !t.muted
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		t.handleMouse(t.toLocal(x, y), ev.Buttons()&tcell.Button1 != 0)

	case *tcell.EventResize:
		// 尺寸变化会改变几何，进行中的手势作废
		if t.pressed {
			t.pressed = false
			t.control.HandlePointerCancel()
		}
		t.resize()
		t.screen.Sync()
	}
	return true
}

// handleMouse 把按键状态的变化转换为按下/移动/释放
func (t *tui) handleMouse(p slider.Point, down bool) {
	switch {
	case down && !t.pressed:
		t.pressed = true
		t.control.HandlePointerDown(p)
	case down && t.pressed:
		t.control.HandlePointerMove(p)
	case !down && t.pressed:
		t.pressed = false
		t.control.HandlePointerUp(p)
	}
}

// tick 推进脉冲动画
func (t *tui) tick(dt time.Duration) {
	if t.pulseOn {
		t.control.Tick(dt)
	}
}

func (t *tui) draw() {
	t.screen.Clear()

	t.canvas.Clear()
	render.DrawFrame(t.canvas, t.control.Frame(), slider.Point{})
	t.canvas.Flush(t.screen, t.x0, t.y0)
	t.control.MarkDisplayed()

	cfg := t.control.Configuration()
	t.drawText(t.x0, t.y0-1, fmt.Sprintf("Value: %d  [%d..%d]", t.control.Value(), cfg.MinimumValue, cfg.MaximumValue))
	t.drawText(t.x0, t.y0+sliderRows+1, t.statusLine())
	t.screen.Show()
}

func (t *tui) statusLine() string {
	pulse, sound := "on", "on"
	if !t.pulseOn {
		pulse = "off"
	}
	if t.muted || t.clicker == nil {
		sound = "off"
	}
	return fmt.Sprintf("drag the thumb | p: pulse %s | m: sound %s | q: quit", pulse, sound)
}

func (t *tui) drawText(x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.NewRGBColor(int32(background.R), int32(background.G), int32(background.B)))
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// run 事件循环，PollEvent 在独立 goroutine 中阻塞，事件通过通道交回主循环
func (t *tui) run(frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	t.draw()
	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
			t.draw()
		case now := <-ticker.C:
			t.tick(now.Sub(last))
			last = now
			t.draw()
		}
	}
}
