package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/stepslider/pkg/components"
	"github.com/decker502/stepslider/pkg/ecs"
	"github.com/decker502/stepslider/pkg/embedded"
	"github.com/decker502/stepslider/pkg/slider"
)

const testDefaultStyle = `
minimumValue: 0
maximumValue: 4
value: 2
`

const testVolumeStyle = `
minimumValue: 0
maximumValue: 10
value: 7
thumb:
  dimension: 24
`

func initTestEmbedded(t *testing.T) {
	t.Helper()
	embedded.Init(fstest.MapFS{
		"data/default_style.yaml": {Data: []byte(testDefaultStyle)},
		"data/styles/volume.yaml": {Data: []byte(testVolumeStyle)},
		"data/styles/README.txt":  {Data: []byte("not a style")},
	})
	t.Cleanup(func() { embedded.Init(nil) })
}

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	initTestEmbedded(t)
	cfg.Mute = true
	cfg.Ephemeral = true

	a, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func writeStyle(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return p
}

func intPtr(v int) *int { return &v }

func TestNewApp_Defaults(t *testing.T) {
	a := newTestApp(t, Config{})

	ctrl := a.Control()
	if ctrl == nil {
		t.Fatal("Control() returned nil")
	}
	if ctrl.Value() != 2 {
		t.Errorf("Value() = %d, want 2", ctrl.Value())
	}
	if a.StylePath() != "" {
		t.Errorf("StylePath() = %q, want built-in", a.StylePath())
	}
	if got := ctrl.Size(); got.Width != sliderWidth || got.Height != sliderHeight {
		t.Errorf("Size() = %+v, want %dx%d", got, sliderWidth, sliderHeight)
	}
	if w, h := a.Layout(1920, 1080); w != ScreenWidth || h != ScreenHeight {
		t.Errorf("Layout() = (%d, %d), want (%d, %d)", w, h, ScreenWidth, ScreenHeight)
	}
}

func TestNewApp_InitialValue(t *testing.T) {
	tests := []struct {
		name  string
		value *int
		want  int
	}{
		{"样式默认值", nil, 2},
		{"命令行参数", intPtr(1), 1},
		{"超出上限被钳制", intPtr(9), 4},
		{"低于下限被钳制", intPtr(-3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, Config{Value: tt.value})
			if got := a.Control().Value(); got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewApp_StyleFile(t *testing.T) {
	p := writeStyle(t, t.TempDir(), "style.yaml", testVolumeStyle)
	a := newTestApp(t, Config{StylePath: p})

	if a.StylePath() != p {
		t.Errorf("StylePath() = %q, want %q", a.StylePath(), p)
	}
	ctrl := a.Control()
	if ctrl.Configuration().MaximumValue != 10 {
		t.Errorf("MaximumValue = %d, want 10", ctrl.Configuration().MaximumValue)
	}
	if ctrl.Value() != 7 {
		t.Errorf("Value() = %d, want 7", ctrl.Value())
	}
	if a.watcher == nil {
		t.Error("style file should be watched")
	}
}

func TestNewApp_MissingStyleFile(t *testing.T) {
	initTestEmbedded(t)

	_, err := NewApp(Config{StylePath: filepath.Join(t.TempDir(), "missing.yaml"), Mute: true, Ephemeral: true})
	if err == nil {
		t.Fatal("NewApp() should fail for a missing explicit style file")
	}
}

func TestLoadStyleOrDefault_SavedPathFallsBack(t *testing.T) {
	initTestEmbedded(t)

	sc, p, err := loadStyleOrDefault(filepath.Join(t.TempDir(), "gone.yaml"), false)
	if err != nil {
		t.Fatalf("loadStyleOrDefault() error: %v", err)
	}
	if p != "" {
		t.Errorf("path = %q, want built-in", p)
	}
	if sc.InitialValue() != 2 {
		t.Errorf("InitialValue() = %d, want 2", sc.InitialValue())
	}
}

func TestApp_GestureEndSavesValue(t *testing.T) {
	a := newTestApp(t, Config{})
	ctrl := a.Control()

	start := ctrl.Layout().ThumbCenter
	step := ctrl.Metrics().StepWidth
	if !ctrl.HandlePointerDown(start) {
		t.Fatal("press on thumb should begin a gesture")
	}
	ctrl.HandlePointerMove(slider.Point{X: start.X + step, Y: start.Y})

	if _, ok := a.settingsManager.LastValue(); ok {
		t.Error("value should not be saved before the gesture ends")
	}

	ctrl.HandlePointerUp(slider.Point{X: start.X + step, Y: start.Y})
	if v, ok := a.settingsManager.LastValue(); !ok || v != 3 {
		t.Errorf("LastValue() = (%d, %v), want (3, true)", v, ok)
	}
}

func TestApp_NextPreset(t *testing.T) {
	a := newTestApp(t, Config{})

	presets, err := Presets()
	if err != nil {
		t.Fatalf("Presets() error: %v", err)
	}
	if len(presets) != 1 || presets[0] != "embedded:data/styles/volume.yaml" {
		t.Fatalf("Presets() = %v", presets)
	}

	if err := a.NextPreset(); err != nil {
		t.Fatalf("NextPreset() error: %v", err)
	}
	if a.StylePath() != presets[0] {
		t.Errorf("StylePath() = %q, want %q", a.StylePath(), presets[0])
	}
	if got := a.Control().Configuration().MaximumValue; got != 10 {
		t.Errorf("MaximumValue = %d, want 10", got)
	}
	if a.watcher != nil {
		t.Error("embedded presets should not be watched")
	}

	if err := a.NextPreset(); err != nil {
		t.Fatalf("NextPreset() error: %v", err)
	}
	if a.StylePath() != "" {
		t.Errorf("StylePath() = %q, want built-in after wrapping", a.StylePath())
	}
	if got := a.Control().Configuration().MaximumValue; got != 4 {
		t.Errorf("MaximumValue = %d, want 4", got)
	}
}

func TestApp_StyleHotReload(t *testing.T) {
	dir := t.TempDir()
	p := writeStyle(t, dir, "style.yaml", testDefaultStyle)
	a := newTestApp(t, Config{StylePath: p, Value: intPtr(4)})

	writeStyle(t, dir, "style.yaml", "minimumValue: 0\nmaximumValue: 2\n")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		a.drainStyleUpdates()
		if a.Control().Configuration().MaximumValue == 2 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := a.Control().Configuration().MaximumValue; got != 2 {
		t.Fatalf("MaximumValue = %d, want 2 after reload", got)
	}
	if got := a.Control().Value(); got != 2 {
		t.Errorf("Value() = %d, want 2 (clamped by reload)", got)
	}
}

func TestStyleDialog(t *testing.T) {
	d := newStyleDialog()
	release := make(chan struct{})
	d.choose = func() (string, error) {
		<-release
		return "/tmp/chosen.yaml", nil
	}

	if !d.Start() {
		t.Fatal("Start() should open the dialog")
	}
	if d.Start() {
		t.Error("Start() should refuse a second dialog")
	}
	if _, ok := d.Poll(); ok {
		t.Error("Poll() should report nothing before the user chooses")
	}

	close(release)
	var r dialogResult
	deadline := time.Now().Add(2 * time.Second)
	for {
		var ok bool
		if r, ok = d.Poll(); ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("dialog result never arrived")
		}
		time.Sleep(time.Millisecond)
	}
	if r.Path != "/tmp/chosen.yaml" || r.Err != nil {
		t.Errorf("result = %+v", r)
	}
	if d.Open() {
		t.Error("dialog should be closed after its result is taken")
	}
}

func TestApp_DialogLoadsStyle(t *testing.T) {
	p := writeStyle(t, t.TempDir(), "picked.yaml", testVolumeStyle)
	a := newTestApp(t, Config{})
	a.dialog.choose = func() (string, error) { return p, nil }

	a.openStyleDialog()
	deadline := time.Now().Add(2 * time.Second)
	for a.StylePath() != p && time.Now().Before(deadline) {
		a.drainDialog()
		time.Sleep(time.Millisecond)
	}

	if a.StylePath() != p {
		t.Fatalf("StylePath() = %q, want %q", a.StylePath(), p)
	}
	if a.settingsManager.GetSettings().StylePath != p {
		t.Error("chosen style should be remembered in settings")
	}
}

func TestApp_Toggles(t *testing.T) {
	a := newTestApp(t, Config{})
	pulse, _ := ecs.GetComponent[*components.PulseComponent](a.entityManager, a.sliderEntity)

	if pulse.Paused {
		t.Fatal("pulse should run by default")
	}
	a.TogglePulse()
	if !pulse.Paused || a.settingsManager.GetSettings().PulseEnabled {
		t.Error("TogglePulse() should pause the pulse")
	}
	a.TogglePulse()
	if pulse.Paused {
		t.Error("second TogglePulse() should resume the pulse")
	}

	a.ToggleSound()
	if a.settingsManager.GetSettings().SoundEnabled {
		t.Error("ToggleSound() should disable sound")
	}
}
