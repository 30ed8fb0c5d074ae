// stepslider-snapshot 把滑动条的一帧渲染成 SVG 或 PNG
//
// 用法：
//
//	go run ./cmd/stepslider-snapshot -style data/styles/volume.yaml -value 3 -pulse 0.5 -o slider.svg
//
// 输出格式由 -o 的扩展名决定（.svg 或 .png）。
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/decker502/stepslider/pkg/config"
	"github.com/decker502/stepslider/pkg/render"
	"github.com/decker502/stepslider/pkg/render/rasterrender"
	"github.com/decker502/stepslider/pkg/render/svgrender"
	"github.com/decker502/stepslider/pkg/slider"
)

var (
	stylePath = flag.String("style", "", "样式文件路径（YAML），为空则使用默认样式")
	value     = flag.Int("value", 0, "取值（不指定则使用样式中的值）")
	width     = flag.Float64("width", 300, "控件宽度（像素）")
	height    = flag.Float64("height", 40, "控件高度（像素）")
	margin    = flag.Float64("margin", 12, "四周留白（像素），需容纳阴影和脉冲")
	pulse     = flag.Float64("pulse", 0, "脉冲动画时间点（秒）")
	output    = flag.String("o", "slider.svg", "输出文件（.svg 或 .png）")
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
)

// ErrUnknownFormat 输出扩展名不受支持
var ErrUnknownFormat = errors.New("unknown output format")

// snapshot 一次渲染所需的全部参数
type snapshot struct {
	Config slider.Configuration
	Value  int
	Width  float64
	Height float64
	Margin float64
	Pulse  time.Duration
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stepslider-snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	style := config.DefaultStyleConfig()
	if *stylePath != "" {
		sc, err := config.LoadStyleConfig(*stylePath)
		if err != nil {
			return err
		}
		style = sc
	}
	cfg, err := style.Configuration()
	if err != nil {
		return err
	}

	s := snapshot{
		Config: cfg,
		Value:  style.InitialValue(),
		Width:  *width,
		Height: *height,
		Margin: *margin,
		Pulse:  time.Duration(*pulse * float64(time.Second)),
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "value" {
			s.Value = *value
		}
	})

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *output, err)
	}
	if err := s.render(f, formatOf(*output)); err != nil {
		f.Close()
		os.Remove(*output)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", *output, err)
	}

	log.Printf("[Snapshot] Wrote %s (value=%d, pulse=%v)", *output, s.Value, s.Pulse)
	return nil
}

func formatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// frame 构建控件并推进脉冲，返回要绘制的帧
func (s snapshot) frame() (slider.Frame, error) {
	ctrl, err := slider.NewControl(s.Config, s.Value)
	if err != nil {
		return slider.Frame{}, err
	}
	ctrl.SetBounds(slider.Rect{Width: s.Width, Height: s.Height})
	ctrl.Tick(s.Pulse)
	return ctrl.Frame(), nil
}

// render 按格式写出一帧
func (s snapshot) render(w io.Writer, format string) error {
	f, err := s.frame()
	if err != nil {
		return err
	}

	origin := slider.Point{X: s.Margin, Y: s.Margin}
	cw := int(s.Width + 2*s.Margin)
	ch := int(s.Height + 2*s.Margin)

	switch format {
	case "svg":
		cv := svgrender.NewCanvas(w, cw, ch, color.White)
		render.DrawFrame(cv, f, origin)
		cv.Close()
		return nil
	case "png":
		cv := rasterrender.NewCanvas(cw, ch, color.White)
		render.DrawFrame(cv, f, origin)
		if err := cv.EncodePNG(w); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q (want svg or png)", ErrUnknownFormat, format)
	}
}
