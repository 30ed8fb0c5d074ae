package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/stepslider/pkg/slider"
)

// TestParseStyleConfig_Defaults 空文件得到默认配置
func TestParseStyleConfig_Defaults(t *testing.T) {
	sc, err := ParseStyleConfig([]byte("{}"), "test")
	if err != nil {
		t.Fatalf("ParseStyleConfig() error: %v", err)
	}

	cfg, err := sc.Configuration()
	if err != nil {
		t.Fatalf("Configuration() error: %v", err)
	}
	if cfg != slider.DefaultConfiguration() {
		t.Errorf("Configuration() = %+v, want defaults %+v", cfg, slider.DefaultConfiguration())
	}
	if sc.InitialValue() != slider.DefaultValue {
		t.Errorf("InitialValue() = %d, want %d", sc.InitialValue(), slider.DefaultValue)
	}
}

func TestParseStyleConfig_Full(t *testing.T) {
	data := []byte(`
minimumValue: 1
maximumValue: 6
value: 3
track:
  height: 4
  color: "#112233"
tick:
  width: 6
  height: 10
  color: "#abc"
thumb:
  dimension: 24
  fillColor: "#ff000080"
  strokeColor: "#00ff00"
  strokeWidth: 0
  shadow: true
pulse:
  radius: 20
  color: "#0000ff"
spacing: normalized
`)
	sc, err := ParseStyleConfig(data, "test")
	if err != nil {
		t.Fatalf("ParseStyleConfig() error: %v", err)
	}
	cfg, err := sc.Configuration()
	if err != nil {
		t.Fatalf("Configuration() error: %v", err)
	}

	if cfg.MinimumValue != 1 || cfg.MaximumValue != 6 {
		t.Errorf("range = [%d, %d], want [1, 6]", cfg.MinimumValue, cfg.MaximumValue)
	}
	if sc.InitialValue() != 3 {
		t.Errorf("InitialValue() = %d, want 3", sc.InitialValue())
	}
	if cfg.TrackHeight != 4 || cfg.TickWidth != 6 || cfg.TickHeight != 10 || cfg.ThumbDimension != 24 || cfg.PulseRadius != 20 {
		t.Errorf("sizes not applied: %+v", cfg)
	}
	if cfg.ThumbStrokeWidth != 0 {
		t.Errorf("ThumbStrokeWidth = %v, want explicit 0", cfg.ThumbStrokeWidth)
	}
	if !cfg.DisplayShadow {
		t.Error("DisplayShadow = false, want true")
	}
	if cfg.Spacing != slider.SpacingNormalized {
		t.Errorf("Spacing = %v, want normalized", cfg.Spacing)
	}
	if cfg.TickColor != (color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}) {
		t.Errorf("TickColor = %v", cfg.TickColor)
	}
	if cfg.ThumbFillColor.A != 0x80 || cfg.ThumbFillColor.R != 0x80 {
		t.Errorf("ThumbFillColor = %v, want premultiplied half red", cfg.ThumbFillColor)
	}
}

func TestParseStyleConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"范围反转", "minimumValue: 5\nmaximumValue: 2\n"},
		{"范围相等", "minimumValue: 2\nmaximumValue: 2\n"},
		{"非法颜色", "track:\n  color: \"#12\"\n"},
		{"非法间距模式", "spacing: diagonal\n"},
		{"负尺寸", "thumb:\n  dimension: -1\n"},
		{"YAML 语法错误", "track: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseStyleConfig([]byte(tt.data), "test"); err == nil {
				t.Error("ParseStyleConfig() error = nil, want error")
			}
		})
	}

	_, err := ParseStyleConfig([]byte("minimumValue: 3\nmaximumValue: 1\n"), "test")
	if !errors.Is(err, slider.ErrInvalidRange) {
		t.Errorf("error = %v, want ErrInvalidRange", err)
	}
}

func TestLoadStyleConfig_MissingFile(t *testing.T) {
	if _, err := LoadStyleConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadStyleConfig() error = nil for missing file")
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	for _, s := range []string{"#3193c6", "#000000", "#ffffff", "#10203040"} {
		c, err := ParseHexColor(s)
		if err != nil {
			t.Fatalf("ParseHexColor(%q) error: %v", s, err)
		}
		if got := FormatHexColor(c); s != "#10203040" && got != s {
			t.Errorf("FormatHexColor(ParseHexColor(%q)) = %q", s, got)
		}
	}
	if _, err := ParseHexColor("#zzzzzz"); err == nil {
		t.Error("ParseHexColor(#zzzzzz) error = nil")
	}
}

// TestStyleWatcher_Reload 修改文件后通过 Updates() 收到新配置
func TestStyleWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	if err := os.WriteFile(path, []byte("maximumValue: 4\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	sw, err := NewStyleWatcher(path)
	if err != nil {
		t.Fatalf("NewStyleWatcher() error: %v", err)
	}
	defer sw.Close()

	if err := os.WriteFile(path, []byte("maximumValue: 8\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case u := <-sw.Updates():
			if u.Err != nil {
				// 写入过程中可能读到截断的文件，等下一次事件
				continue
			}
			if *u.Style.MaximumValue == 8 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for style reload")
		}
	}
}
