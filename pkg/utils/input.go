// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSample 某一帧的指针（鼠标或触摸）状态
type PointerSample struct {
	// Pressed 鼠标左键按下或有活动的触摸
	Pressed bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// IsTouch 是否来自触摸输入
	IsTouch bool
	// Interrupted 宿主中断了输入（例如窗口失去焦点）
	Interrupted bool
}

// ReadPointer 读取当前帧的指针状态
// 优先检测触摸，其次是鼠标
func ReadPointer() PointerSample {
	s := PointerSample{Interrupted: !ebiten.IsFocused()}

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		s.X, s.Y = ebiten.TouchPosition(touchIDs[0])
		s.Pressed = true
		s.IsTouch = true
		return s
	}

	s.X, s.Y = ebiten.CursorPosition()
	s.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return s
}

// PointerPhase 指针事件阶段
type PointerPhase int

const (
	// PointerNone 本帧没有需要处理的事件
	PointerNone PointerPhase = iota
	// PointerDown 刚按下
	PointerDown
	// PointerMove 按住并移动
	PointerMove
	// PointerUp 刚释放
	PointerUp
	// PointerCancel 按住期间输入被中断
	PointerCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "none"
	}
}

// PointerEvent 由连续两帧的采样推导出的指针事件
type PointerEvent struct {
	Phase PointerPhase
	X, Y  int
}

// PointerTracker 把逐帧的指针采样转换为按下/移动/释放/取消事件
//
// 触摸释放的那一帧已经拿不到触摸位置，释放事件使用最后一次已知的位置。
// 零值即可使用。
type PointerTracker struct {
	pressed      bool
	touch        bool // 当前手势由触摸发起
	lastX, lastY int
}

// Next 输入本帧采样，返回本帧的事件
func (pt *PointerTracker) Next(s PointerSample) PointerEvent {
	switch {
	case !pt.pressed && s.Pressed:
		if s.Interrupted {
			return PointerEvent{Phase: PointerNone, X: s.X, Y: s.Y}
		}
		pt.pressed = true
		pt.touch = s.IsTouch
		pt.lastX, pt.lastY = s.X, s.Y
		return PointerEvent{Phase: PointerDown, X: s.X, Y: s.Y}

	case pt.pressed && s.Interrupted:
		pt.pressed = false
		return PointerEvent{Phase: PointerCancel, X: pt.lastX, Y: pt.lastY}

	case pt.pressed && !s.Pressed:
		pt.pressed = false
		if !pt.touch {
			pt.lastX, pt.lastY = s.X, s.Y
		}
		return PointerEvent{Phase: PointerUp, X: pt.lastX, Y: pt.lastY}

	case pt.pressed && s.Pressed:
		if s.X == pt.lastX && s.Y == pt.lastY {
			return PointerEvent{Phase: PointerNone, X: s.X, Y: s.Y}
		}
		pt.lastX, pt.lastY = s.X, s.Y
		return PointerEvent{Phase: PointerMove, X: s.X, Y: s.Y}
	}
	return PointerEvent{Phase: PointerNone, X: s.X, Y: s.Y}
}

// Pressed 是否处于按下状态
func (pt *PointerTracker) Pressed() bool {
	return pt.pressed
}

// Reset 丢弃当前按下状态（不产生事件）
func (pt *PointerTracker) Reset() {
	*pt = PointerTracker{}
}
