// Package slider 实现分段滑动条（step slider）的核心模型
//
// 包含四个互相独立的部分：
//   - 几何引擎：根据 (bounds, Configuration, value) 计算滑槽、刻度和滑块位置
//   - 数值映射：指针位移 → 步数，候选值钳制
//   - 交互状态机：Tracker，管理一次拖拽会话
//   - 脉冲动画：Pulse，滑块下方循环播放的缩放/淡出效果
//
// Control 是组合根，宿主（ebiten 系统、终端前端、快照工具）只与 Control 交互。
// 本包不依赖任何渲染框架，所有函数都在调用者的单一线程上运行。
package slider

// Point 表示控件局部坐标系中的一个点
type Point struct {
	X float64
	Y float64
}

// Size 表示宽高
type Size struct {
	Width  float64
	Height float64
}

// Rect 表示一个轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect 创建矩形
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// MaxX 返回右边界
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY 返回下边界
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center 返回矩形中心
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains 检查点是否在矩形内
// 左/上边界包含，右/下边界不包含，空矩形不包含任何点
func (r Rect) Contains(p Point) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Metrics 是由 bounds 和配置派生出来的几何量
type Metrics struct {
	NumberOfSteps int     // 刻度数量 = max - min + 1
	TrackWidth    float64 // 滑槽宽度，最小为 0
	TrackOffset   float64 // 滑槽左侧偏移（为滑块在两端留出半个滑块宽度）
	StepWidth     float64 // 相邻刻度间距
}

// ComputeMetrics 计算派生几何量
//
// 宽度不足一个滑块时 TrackWidth 钳制为 0，此时所有刻度重合于 TrackOffset。
// StepWidth 的分母取决于 Spacing：
//   - SpacingLegacy: trackWidth / maximumValue（maximumValue <= 0 时为 0）
//   - SpacingNormalized: trackWidth / (numberOfSteps - 1)
func ComputeMetrics(bounds Size, cfg Configuration) Metrics {
	trackWidth := bounds.Width - cfg.ThumbDimension
	if trackWidth < 0 {
		trackWidth = 0
	}

	m := Metrics{
		NumberOfSteps: cfg.NumberOfSteps(),
		TrackWidth:    trackWidth,
		TrackOffset:   (bounds.Width - trackWidth) / 2,
	}

	var denominator int
	switch cfg.Spacing {
	case SpacingNormalized:
		denominator = m.NumberOfSteps - 1
	default:
		denominator = cfg.MaximumValue
	}
	if denominator > 0 {
		m.StepWidth = trackWidth / float64(denominator)
	}
	return m
}

// stepIndex 把数值转换为刻度坐标系中的位置
func stepIndex(cfg Configuration, value int) float64 {
	if cfg.Spacing == SpacingNormalized {
		return float64(value - cfg.MinimumValue)
	}
	return float64(value)
}

// TrackRect 返回滑槽矩形
func TrackRect(bounds Size, cfg Configuration) Rect {
	m := ComputeMetrics(bounds, cfg)
	return Rect{
		X:      m.TrackOffset,
		Y:      (bounds.Height - cfg.TrackHeight) / 2,
		Width:  m.TrackWidth,
		Height: cfg.TrackHeight,
	}
}

// TickRects 返回每个刻度的矩形，按刻度索引排列
func TickRects(bounds Size, cfg Configuration) []Rect {
	m := ComputeMetrics(bounds, cfg)
	if m.NumberOfSteps <= 0 {
		return nil
	}

	ticks := make([]Rect, m.NumberOfSteps)
	midY := bounds.Height / 2
	for i := range ticks {
		centerX := m.TrackOffset + float64(i)*m.StepWidth
		ticks[i] = Rect{
			X:      centerX - cfg.TickWidth/2,
			Y:      midY - cfg.TickHeight/2,
			Width:  cfg.TickWidth,
			Height: cfg.TickHeight,
		}
	}
	return ticks
}

// ThumbCenter 返回给定数值时滑块的中心
//
// SpacingLegacy 模式下直接使用原始 value（而不是 value - min），
// 因此只有 minimumValue == 0 时滑块位置才与刻度对齐。
func ThumbCenter(bounds Size, cfg Configuration, value int) Point {
	m := ComputeMetrics(bounds, cfg)
	return Point{
		X: m.TrackOffset + stepIndex(cfg, value)*m.StepWidth,
		Y: bounds.Height / 2,
	}
}

// ThumbRect 返回以 ThumbCenter 为中心、边长为 ThumbDimension 的正方形
func ThumbRect(bounds Size, cfg Configuration, value int) Rect {
	c := ThumbCenter(bounds, cfg, value)
	d := cfg.ThumbDimension
	return Rect{X: c.X - d/2, Y: c.Y - d/2, Width: d, Height: d}
}

// Layout 是一次布局计算的完整结果
type Layout struct {
	Bounds      Size
	Metrics     Metrics
	Track       Rect
	Ticks       []Rect
	ThumbCenter Point
	Thumb       Rect
}

// ComputeLayout 一次性计算全部几何信息
// 纯函数：相同输入总是得到相同输出
func ComputeLayout(bounds Size, cfg Configuration, value int) Layout {
	return Layout{
		Bounds:      bounds,
		Metrics:     ComputeMetrics(bounds, cfg),
		Track:       TrackRect(bounds, cfg),
		Ticks:       TickRects(bounds, cfg),
		ThumbCenter: ThumbCenter(bounds, cfg, value),
		Thumb:       ThumbRect(bounds, cfg, value),
	}
}
