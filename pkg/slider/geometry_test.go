package slider

import (
	"reflect"
	"testing"
)

// testBounds 宽 110 = 滑槽 80 + 滑块 30，默认配置下 stepWidth = 20
var testBounds = Size{Width: 110, Height: 40}

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics(testBounds, DefaultConfiguration())

	if m.NumberOfSteps != 5 {
		t.Errorf("NumberOfSteps = %d, want 5", m.NumberOfSteps)
	}
	if m.TrackWidth != 80 {
		t.Errorf("TrackWidth = %v, want 80", m.TrackWidth)
	}
	if m.TrackOffset != 15 {
		t.Errorf("TrackOffset = %v, want 15", m.TrackOffset)
	}
	if m.StepWidth != 20 {
		t.Errorf("StepWidth = %v, want 20", m.StepWidth)
	}
}

func TestTrackRect(t *testing.T) {
	got := TrackRect(testBounds, DefaultConfiguration())
	want := Rect{X: 15, Y: 19, Width: 80, Height: 2}
	if got != want {
		t.Errorf("TrackRect = %+v, want %+v", got, want)
	}
}

// TestTickRects_EvenlySpaced [0,4] 范围有 5 个刻度，间距为 stepWidth
func TestTickRects_EvenlySpaced(t *testing.T) {
	cfg := DefaultConfiguration()
	ticks := TickRects(testBounds, cfg)

	if len(ticks) != 5 {
		t.Fatalf("len(ticks) = %d, want 5", len(ticks))
	}
	for i, tick := range ticks {
		wantCenter := 15 + float64(i)*20
		if c := tick.Center(); c.X != wantCenter || c.Y != 20 {
			t.Errorf("tick %d center = %+v, want (%v, 20)", i, c, wantCenter)
		}
		if tick.Width != cfg.TickWidth || tick.Height != cfg.TickHeight {
			t.Errorf("tick %d size = %vx%v, want %vx%v", i, tick.Width, tick.Height, cfg.TickWidth, cfg.TickHeight)
		}
	}
}

func TestThumbCenterAndRect(t *testing.T) {
	cfg := DefaultConfiguration()

	tests := []struct {
		value   int
		centerX float64
	}{
		{0, 15},
		{2, 55},
		{4, 95},
	}
	for _, tt := range tests {
		c := ThumbCenter(testBounds, cfg, tt.value)
		if c.X != tt.centerX || c.Y != 20 {
			t.Errorf("ThumbCenter(%d) = %+v, want (%v, 20)", tt.value, c, tt.centerX)
		}
		r := ThumbRect(testBounds, cfg, tt.value)
		want := Rect{X: tt.centerX - 15, Y: 5, Width: 30, Height: 30}
		if r != want {
			t.Errorf("ThumbRect(%d) = %+v, want %+v", tt.value, r, want)
		}
	}
}

// TestThumbCenter_LegacyUsesRawValue legacy 模式下滑块位置使用原始值
func TestThumbCenter_LegacyUsesRawValue(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.MinimumValue = 2
	cfg.MaximumValue = 4

	// stepWidth = 80 / 4 = 20，value 2 位于 offset + 40 而不是最左端
	if c := ThumbCenter(testBounds, cfg, 2); c.X != 55 {
		t.Errorf("legacy ThumbCenter(2) X = %v, want 55", c.X)
	}

	cfg.Spacing = SpacingNormalized
	// stepWidth = 80 / 2 = 40，value 2 是第一个刻度
	if c := ThumbCenter(testBounds, cfg, 2); c.X != 15 {
		t.Errorf("normalized ThumbCenter(2) X = %v, want 15", c.X)
	}
	if c := ThumbCenter(testBounds, cfg, 4); c.X != 95 {
		t.Errorf("normalized ThumbCenter(4) X = %v, want 95", c.X)
	}
}

// TestDegenerateBounds 宽度小于滑块时滑槽宽度为 0，刻度全部重合
func TestDegenerateBounds(t *testing.T) {
	cfg := DefaultConfiguration()
	bounds := Size{Width: 20, Height: 40}

	m := ComputeMetrics(bounds, cfg)
	if m.TrackWidth != 0 {
		t.Errorf("TrackWidth = %v, want 0", m.TrackWidth)
	}
	if m.StepWidth != 0 {
		t.Errorf("StepWidth = %v, want 0", m.StepWidth)
	}
	for i, tick := range TickRects(bounds, cfg) {
		if c := tick.Center(); c.X != m.TrackOffset {
			t.Errorf("tick %d center X = %v, want trackOffset %v", i, c.X, m.TrackOffset)
		}
	}
}

// TestLegacyNonPositiveMaximum 最大值 <= 0 时 legacy 模式步宽为 0，不会除零
func TestLegacyNonPositiveMaximum(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.MinimumValue = -4
	cfg.MaximumValue = 0

	m := ComputeMetrics(testBounds, cfg)
	if m.StepWidth != 0 {
		t.Errorf("StepWidth = %v, want 0", m.StepWidth)
	}
}

// TestComputeLayout_Idempotent 相同输入两次计算结果完全相同
func TestComputeLayout_Idempotent(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.DisplayShadow = true

	a := ComputeLayout(testBounds, cfg, 3)
	b := ComputeLayout(testBounds, cfg, 3)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("ComputeLayout not idempotent:\n%+v\n%+v", a, b)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 40, Y: 5, Width: 30, Height: 30}

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"中心", Point{55, 20}, true},
		{"左上角", Point{40, 5}, true},
		{"右边界不包含", Point{70, 20}, false},
		{"下边界不包含", Point{55, 35}, false},
		{"左侧外", Point{39.9, 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.expected {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.expected)
			}
		})
	}

	if (Rect{X: 0, Y: 0, Width: 0, Height: 10}).Contains(Point{0, 0}) {
		t.Error("empty rect should not contain any point")
	}
}
