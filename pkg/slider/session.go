package slider

// State 交互状态
type State int

const (
	// StateIdle 空闲，没有进行中的拖拽
	StateIdle State = iota
	// StateDragging 正在拖拽滑块
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// DragSession 一次拖拽会话的数据，只在 StateDragging 期间存在
type DragSession struct {
	// OriginalValue 拖拽开始时的值
	OriginalValue int
	// PreviousPosition 按下时的指针位置，位移总是相对它计算
	PreviousPosition Point
}

// Tracker 拖拽状态机：Idle → Dragging → Idle
//
// Tracker 只负责会话状态和数值计算，不持有当前值，也不发送通知；
// 这些由 Control 完成。零值即为 Idle 状态，可直接使用。
type Tracker struct {
	session *DragSession
}

// State 返回当前状态
func (t *Tracker) State() State {
	if t.session != nil {
		return StateDragging
	}
	return StateIdle
}

// Dragging 是否正在拖拽
func (t *Tracker) Dragging() bool {
	return t.session != nil
}

// Session 返回当前会话（拷贝）
func (t *Tracker) Session() (DragSession, bool) {
	if t.session == nil {
		return DragSession{}, false
	}
	return *t.session, true
}

// Begin 处理指针按下
//
// 只有按下点位于 thumb 内时才进入 Dragging 并返回 true（事件被控件认领）；
// 否则保持 Idle，返回 false，宿主可以把手势交给外层容器。
// 已经在拖拽中时忽略新的按下（不支持嵌套拖拽）。
func (t *Tracker) Begin(p Point, current int, thumb Rect) bool {
	if t.session != nil {
		return false
	}
	if !thumb.Contains(p) {
		return false
	}
	t.session = &DragSession{
		OriginalValue:    current,
		PreviousPosition: p,
	}
	return true
}

// Continue 处理拖拽中的指针移动，返回钳制后的新值
// 不在拖拽中时返回 (0, false)
func (t *Tracker) Continue(p Point, stepWidth float64, lo, hi int) (int, bool) {
	if t.session == nil {
		return 0, false
	}
	delta := p.X - t.session.PreviousPosition.X
	steps := StepsFor(delta, stepWidth)
	candidate := t.session.OriginalValue + steps
	if delta < 0 {
		candidate = t.session.OriginalValue - steps
	}
	return Clamp(candidate, lo, hi), true
}

// End 结束会话（抬起或取消），返回之前是否在拖拽
func (t *Tracker) End() bool {
	if t.session == nil {
		return false
	}
	t.session = nil
	return true
}
