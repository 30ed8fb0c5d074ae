package systems

import (
	"testing"

	"github.com/decker502/stepslider/pkg/components"
	"github.com/decker502/stepslider/pkg/ecs"
	"github.com/decker502/stepslider/pkg/slider"
	"github.com/decker502/stepslider/pkg/utils"
)

// mockPointerInput 用于测试的 mock 指针输入
type mockPointerInput struct {
	sample utils.PointerSample
}

func (m *mockPointerInput) Sample() utils.PointerSample {
	return m.sample
}

func (m *mockPointerInput) press(x, y int) {
	m.sample = utils.PointerSample{Pressed: true, X: x, Y: y}
}

func (m *mockPointerInput) release(x, y int) {
	m.sample = utils.PointerSample{X: x, Y: y}
}

// mockSoundPlayer 记录播放过的音效
type mockSoundPlayer struct {
	played []string
}

func (m *mockSoundPlayer) PlaySound(soundID string) bool {
	m.played = append(m.played, soundID)
	return true
}

// addTestSlider 在 (x, y) 处创建 110x40 的滑动条（stepWidth = 20，初始值 2）
// 屏幕上 thumb 中心为 (x+55, y+20)
func addTestSlider(t *testing.T, em *ecs.EntityManager, x, y float64) (ecs.EntityID, *slider.Control) {
	t.Helper()
	ctrl, err := slider.NewControl(slider.DefaultConfiguration(), slider.DefaultValue)
	if err != nil {
		t.Fatalf("NewControl() error: %v", err)
	}
	ctrl.SetBounds(slider.NewRect(0, 0, 110, 40))

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.StepSliderComponent{Control: ctrl, ClickSoundID: "SOUND_TICK"})
	return id, ctrl
}

func countSource(changes []slider.ValueChange, source slider.ValueChangeSource) int {
	n := 0
	for _, c := range changes {
		if c.Source == source {
			n++
		}
	}
	return n
}

// TestStepSliderSystem_Drag 按住 thumb 拖动两个刻度后释放
func TestStepSliderSystem_Drag(t *testing.T) {
	em := ecs.NewEntityManager()
	id, ctrl := addTestSlider(t, em, 100, 200)
	var changes []slider.ValueChange
	ctrl.Observe(func(c slider.ValueChange) { changes = append(changes, c) })

	input := &mockPointerInput{}
	sounds := &mockSoundPlayer{}
	sys := NewStepSliderSystemWithInput(em, input, sounds)

	input.press(155, 220)
	sys.Update(1.0 / 60)
	if active, ok := sys.ActiveEntity(); !ok || active != id {
		t.Fatalf("ActiveEntity() = (%d, %v), want (%d, true)", active, ok, id)
	}

	// +20px：一个刻度
	input.press(175, 220)
	sys.Update(1.0 / 60)
	if ctrl.Value() != 3 {
		t.Errorf("after first move Value() = %d, want 3", ctrl.Value())
	}

	// 再 +20px：到达最大值
	input.press(195, 220)
	sys.Update(1.0 / 60)
	if ctrl.Value() != 4 {
		t.Errorf("after second move Value() = %d, want 4", ctrl.Value())
	}

	// 超出范围：值保持在最大值，不再播放音效
	input.press(260, 220)
	sys.Update(1.0 / 60)
	if ctrl.Value() != 4 {
		t.Errorf("after overshoot Value() = %d, want 4", ctrl.Value())
	}

	input.release(260, 220)
	sys.Update(1.0 / 60)
	if _, ok := sys.ActiveEntity(); ok {
		t.Error("gesture should be released")
	}
	if ctrl.Dragging() {
		t.Error("control should not be dragging after release")
	}

	if got := len(sounds.played); got != 2 {
		t.Errorf("played %d sounds, want 2", got)
	}
	if got := countSource(changes, slider.SourceDrag); got != 2 {
		t.Errorf("drag notifications = %d, want 2", got)
	}
	if got := countSource(changes, slider.SourceGestureEnd); got != 1 {
		t.Errorf("gesture end notifications = %d, want 1", got)
	}
}

// TestStepSliderSystem_PressOutsideThumb 在 thumb 外按下不会开始拖拽
func TestStepSliderSystem_PressOutsideThumb(t *testing.T) {
	em := ecs.NewEntityManager()
	_, ctrl := addTestSlider(t, em, 100, 200)

	input := &mockPointerInput{}
	sys := NewStepSliderSystemWithInput(em, input, nil)

	tests := []struct {
		name string
		x, y int
	}{
		{"滑槽左端", 115, 220},
		{"控件外", 10, 10},
		{"thumb 右边界（开区间）", 170, 220},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input.press(tt.x, tt.y)
			sys.Update(1.0 / 60)
			if _, ok := sys.ActiveEntity(); ok {
				t.Error("press outside the thumb should not start a gesture")
			}

			input.press(tt.x+40, tt.y)
			sys.Update(1.0 / 60)
			if ctrl.Value() != 2 {
				t.Errorf("Value() = %d, want 2", ctrl.Value())
			}

			input.release(tt.x+40, tt.y)
			sys.Update(1.0 / 60)
		})
	}
}

// TestStepSliderSystem_SingleOwner 只有被按下的滑动条响应拖拽
func TestStepSliderSystem_SingleOwner(t *testing.T) {
	em := ecs.NewEntityManager()
	_, top := addTestSlider(t, em, 100, 100)
	bottomID, bottom := addTestSlider(t, em, 100, 200)

	input := &mockPointerInput{}
	sys := NewStepSliderSystemWithInput(em, input, nil)

	input.press(155, 220)
	sys.Update(1.0 / 60)
	if active, ok := sys.ActiveEntity(); !ok || active != bottomID {
		t.Fatalf("ActiveEntity() = (%d, %v), want (%d, true)", active, ok, bottomID)
	}

	// 指针经过上面的滑动条，只有拥有者变化
	input.press(135, 120)
	sys.Update(1.0 / 60)
	if bottom.Value() != 1 {
		t.Errorf("bottom Value() = %d, want 1", bottom.Value())
	}
	if top.Value() != 2 {
		t.Errorf("top Value() = %d, want 2", top.Value())
	}
	if top.Dragging() {
		t.Error("top slider should not be dragging")
	}
}

// TestStepSliderSystem_Cancel 输入中断时保留当前值且不发送结束通知
func TestStepSliderSystem_Cancel(t *testing.T) {
	em := ecs.NewEntityManager()
	_, ctrl := addTestSlider(t, em, 0, 0)
	var changes []slider.ValueChange
	ctrl.Observe(func(c slider.ValueChange) { changes = append(changes, c) })

	input := &mockPointerInput{}
	sys := NewStepSliderSystemWithInput(em, input, nil)

	input.press(55, 20)
	sys.Update(1.0 / 60)
	input.press(35, 20)
	sys.Update(1.0 / 60)

	input.sample = utils.PointerSample{Pressed: true, X: 35, Y: 20, Interrupted: true}
	sys.Update(1.0 / 60)

	if ctrl.Dragging() {
		t.Error("control should not be dragging after cancel")
	}
	if _, ok := sys.ActiveEntity(); ok {
		t.Error("gesture should be dropped after cancel")
	}
	if ctrl.Value() != 1 {
		t.Errorf("Value() = %d, want 1 (kept)", ctrl.Value())
	}
	if got := countSource(changes, slider.SourceGestureEnd); got != 0 {
		t.Errorf("gesture end notifications = %d, want 0", got)
	}
}

// TestStepSliderSystem_DestroyedOwner 拥有者被销毁后手势结束
func TestStepSliderSystem_DestroyedOwner(t *testing.T) {
	em := ecs.NewEntityManager()
	id, _ := addTestSlider(t, em, 0, 0)

	input := &mockPointerInput{}
	sys := NewStepSliderSystemWithInput(em, input, nil)

	input.press(55, 20)
	sys.Update(1.0 / 60)
	if _, ok := sys.ActiveEntity(); !ok {
		t.Fatal("gesture should have begun")
	}

	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	input.press(75, 20)
	sys.Update(1.0 / 60)
	if _, ok := sys.ActiveEntity(); ok {
		t.Error("gesture should end when its entity is destroyed")
	}
}

// TestStepSliderSystem_Hover 悬停状态跟随 thumb 命中
func TestStepSliderSystem_Hover(t *testing.T) {
	em := ecs.NewEntityManager()
	id, _ := addTestSlider(t, em, 100, 200)
	ss, _ := ecs.GetComponent[*components.StepSliderComponent](em, id)

	input := &mockPointerInput{}
	sys := NewStepSliderSystemWithInput(em, input, nil)

	input.release(155, 220)
	sys.Update(1.0 / 60)
	if !ss.IsHovered {
		t.Error("pointer over thumb should hover")
	}

	input.release(20, 20)
	sys.Update(1.0 / 60)
	if ss.IsHovered {
		t.Error("pointer away from thumb should not hover")
	}
}

func TestPulseSystem(t *testing.T) {
	tests := []struct {
		name    string
		pulse   *components.PulseComponent
		dt      float64
		wantSec float64
	}{
		{"默认速度", &components.PulseComponent{}, 0.5, 0.5},
		{"两倍速", &components.PulseComponent{TimeScale: 2}, 0.25, 0.5},
		{"暂停", &components.PulseComponent{Paused: true}, 0.5, 0},
		{"零间隔", &components.PulseComponent{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, ctrl := addTestSlider(t, em, 0, 0)
			ecs.AddComponent(em, id, tt.pulse)

			NewPulseSystem(em).Update(tt.dt)

			if got := ctrl.Pulse().Elapsed().Seconds(); got != tt.wantSec {
				t.Errorf("Elapsed() = %vs, want %vs", got, tt.wantSec)
			}
		})
	}
}

// TestPulseSystem_RequiresComponent 没有 PulseComponent 的滑动条不推进
func TestPulseSystem_RequiresComponent(t *testing.T) {
	em := ecs.NewEntityManager()
	_, ctrl := addTestSlider(t, em, 0, 0)

	NewPulseSystem(em).Update(0.5)
	if ctrl.Pulse().Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0", ctrl.Pulse().Elapsed())
	}
}

func TestLabelText(t *testing.T) {
	ctrl, _ := slider.NewControl(slider.DefaultConfiguration(), 3)

	tests := []struct {
		name string
		ss   *components.StepSliderComponent
		want string
	}{
		{"无标签", &components.StepSliderComponent{Control: ctrl}, ""},
		{"仅标签", &components.StepSliderComponent{Control: ctrl, Label: "Volume"}, "Volume"},
		{"标签和值", &components.StepSliderComponent{Control: ctrl, Label: "Volume", ShowValue: true}, "Volume: 3"},
		{"仅值", &components.StepSliderComponent{Control: ctrl, ShowValue: true}, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelText(tt.ss); got != tt.want {
				t.Errorf("LabelText() = %q, want %q", got, tt.want)
			}
		})
	}
}
