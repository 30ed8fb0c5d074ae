package slider

import (
	"fmt"
	"time"
)

// ValueChangeSource 值变化的来源
type ValueChangeSource int

const (
	// SourceExternal 宿主直接调用 SetValue
	SourceExternal ValueChangeSource = iota
	// SourceDrag 拖拽过程中的移动
	SourceDrag
	// SourceGestureEnd 拖拽结束（手指/鼠标抬起）
	SourceGestureEnd
	// SourceConfiguration 新配置的范围迫使当前值被重新钳制
	SourceConfiguration
)

func (s ValueChangeSource) String() string {
	switch s {
	case SourceExternal:
		return "external"
	case SourceDrag:
		return "drag"
	case SourceGestureEnd:
		return "gesture-end"
	case SourceConfiguration:
		return "configuration"
	default:
		return fmt.Sprintf("ValueChangeSource(%d)", int(s))
	}
}

// ValueChange 值变化通知
type ValueChange struct {
	Value  int
	Source ValueChangeSource
}

// ValueChangedFunc 值变化回调
type ValueChangedFunc func(ValueChange)

// Control 分段滑动条的组合根
//
// 持有配置、当前值、bounds、拖拽状态机、脉冲动画和缓存的布局。
// 所有方法都必须在同一个线程（宿主的 UI/Update 线程）上调用。
//
// 通知策略：
//   - SetValue 总是通知（即使值没变）
//   - 拖拽移动只在钳制后的值变化时通知
//   - 抬起时无论值是否变化都恰好通知一次
//   - 取消拖拽只清理状态，不发送结束通知
type Control struct {
	cfg     Configuration
	bounds  Rect
	value   int
	tracker Tracker
	pulse   *Pulse

	layout       Layout
	needsDisplay bool

	observers []ValueChangedFunc
}

// NewControl 创建控件，value 会被钳制到配置的范围内
func NewControl(cfg Configuration, value int) (*Control, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Control{
		cfg:   cfg,
		value: cfg.Clamp(value),
		pulse: NewPulse(),
	}
	c.relayout()
	return c, nil
}

// Configuration 返回当前配置
func (c *Control) Configuration() Configuration {
	return c.cfg
}

// SetConfiguration 替换配置
//
// 违反 Min < Max 时返回 ErrInvalidRange 且保持原配置不变。
// 当前值不在新范围内时会被钳制并以 SourceConfiguration 通知。
func (c *Control) SetConfiguration(cfg Configuration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	if clamped := cfg.Clamp(c.value); clamped != c.value {
		c.value = clamped
		c.relayout()
		c.notify(SourceConfiguration)
		return nil
	}
	c.relayout()
	return nil
}

// Bounds 返回控件的 bounds
func (c *Control) Bounds() Rect {
	return c.bounds
}

// SetBounds 设置 bounds 并重新布局
// 几何计算使用局部坐标系，只取宽高
func (c *Control) SetBounds(r Rect) {
	c.bounds = r
	c.relayout()
}

// Size 返回 bounds 的尺寸
func (c *Control) Size() Size {
	return Size{Width: c.bounds.Width, Height: c.bounds.Height}
}

// Value 返回当前值
func (c *Control) Value() int {
	return c.value
}

// SetValue 由宿主设置当前值（先钳制），总是触发一次通知
func (c *Control) SetValue(v int) {
	c.value = c.cfg.Clamp(v)
	c.relayout()
	c.notify(SourceExternal)
}

// Observe 注册值变化回调
func (c *Control) Observe(fn ValueChangedFunc) {
	if fn == nil {
		return
	}
	c.observers = append(c.observers, fn)
}

// State 返回交互状态
func (c *Control) State() State {
	return c.tracker.State()
}

// Dragging 是否正在拖拽
func (c *Control) Dragging() bool {
	return c.tracker.Dragging()
}

// Session 返回进行中的拖拽会话
func (c *Control) Session() (DragSession, bool) {
	return c.tracker.Session()
}

// HandlePointerDown 处理指针按下，返回事件是否被认领（开始拖拽）
// 命中检测使用当前布局中的 thumb 矩形
func (c *Control) HandlePointerDown(p Point) bool {
	return c.tracker.Begin(p, c.value, c.layout.Thumb)
}

// HandlePointerMove 处理指针移动，返回是否在拖拽中
func (c *Control) HandlePointerMove(p Point) bool {
	next, ok := c.tracker.Continue(p, c.layout.Metrics.StepWidth, c.cfg.MinimumValue, c.cfg.MaximumValue)
	if !ok {
		return false
	}
	if next != c.value {
		c.value = next
		c.relayout()
		c.notify(SourceDrag)
	} else {
		c.needsDisplay = true
	}
	return true
}

// HandlePointerUp 结束拖拽并发送一次结束通知
// 不在拖拽中时什么也不做，返回 false
func (c *Control) HandlePointerUp(p Point) bool {
	if !c.tracker.End() {
		return false
	}
	c.needsDisplay = true
	c.notify(SourceGestureEnd)
	return true
}

// HandlePointerCancel 宿主中断跟踪时调用
// 与抬起一样清理会话，但保留当前值且不发送结束通知
func (c *Control) HandlePointerCancel() bool {
	if !c.tracker.End() {
		return false
	}
	c.needsDisplay = true
	return true
}

// Layout 返回缓存的布局
func (c *Control) Layout() Layout {
	return c.layout
}

// Metrics 返回缓存的派生几何量
func (c *Control) Metrics() Metrics {
	return c.layout.Metrics
}

// Pulse 返回脉冲动画
func (c *Control) Pulse() *Pulse {
	return c.pulse
}

// Tick 推进脉冲动画
func (c *Control) Tick(dt time.Duration) {
	c.pulse.Advance(dt)
}

// Frame 返回当前帧的绘制指令
func (c *Control) Frame() Frame {
	return BuildFrame(c.layout, c.cfg, c.pulse.Sample(), c.value)
}

// NeedsDisplay 布局或值变化后是否需要重绘
func (c *Control) NeedsDisplay() bool {
	return c.needsDisplay
}

// MarkDisplayed 宿主完成重绘后调用
func (c *Control) MarkDisplayed() {
	c.needsDisplay = false
}

func (c *Control) relayout() {
	c.layout = ComputeLayout(c.Size(), c.cfg, c.value)
	c.needsDisplay = true
}

func (c *Control) notify(source ValueChangeSource) {
	change := ValueChange{Value: c.value, Source: source}
	for _, fn := range c.observers {
		fn(change)
	}
}
