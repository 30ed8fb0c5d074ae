// stepslider-tui 在终端中运行分段滑动条
//
// 用法：
//
//	go run ./cmd/stepslider-tui [-style path] [-value n] [-mute] [-log file]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/stepslider/pkg/config"
	"github.com/decker502/stepslider/pkg/feedback"
	"github.com/decker502/stepslider/pkg/slider"
)

var (
	stylePath = flag.String("style", "", "样式文件路径（YAML），为空则使用默认样式")
	value     = flag.Int("value", 0, "初始值（不指定则使用样式中的值）")
	mute      = flag.Bool("mute", false, "关闭提示音")
	logPath   = flag.String("log", "", "日志文件（终端被界面占用，日志默认丢弃）")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stepslider-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	var initial *int
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "value" {
			initial = value
		}
	})

	control, err := newControl(*stylePath, initial)
	if err != nil {
		return err
	}

	var c clicker
	if !*mute {
		bc := feedback.NewBeepClicker(0.8)
		if err := bc.Init(); err != nil {
			// 没有音频设备时静音运行
			log.Printf("[TUI] Audio initialization failed: %v", err)
		} else {
			defer bc.Close()
			c = bc
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	newTUI(screen, control, c).run(33 * time.Millisecond)
	return nil
}

// newControl 加载样式并创建控件
// value 为 nil 时使用样式中的初始值
func newControl(path string, value *int) (*slider.Control, error) {
	style := config.DefaultStyleConfig()
	if path != "" {
		sc, err := config.LoadStyleConfig(path)
		if err != nil {
			return nil, err
		}
		style = sc
	}

	cfg, err := style.Configuration()
	if err != nil {
		return nil, err
	}
	v := style.InitialValue()
	if value != nil {
		v = *value
	}
	return slider.NewControl(cfg, v)
}
