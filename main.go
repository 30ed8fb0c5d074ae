package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/stepslider/pkg/app"
	"github.com/decker502/stepslider/pkg/embedded"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	stylePath = flag.String("style", "", "样式文件路径（YAML），为空则使用上次的样式或内置样式")
	value     = flag.Int("value", 0, "初始值（不指定则恢复上次保存的值）")
	mute      = flag.Bool("mute", false, "关闭音频")
	ephemeral = flag.Bool("ephemeral", false, "不读写本地设置")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose:   *verbose,
		StylePath: *stylePath,
		Mute:      *mute,
		Ephemeral: *ephemeral,
	}
	// 只有显式传入 -value 时才覆盖保存的值
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "value" {
			cfg.Value = value
		}
	})

	stepApp, err := app.NewApp(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}
	defer func() {
		if err := stepApp.Close(); err != nil {
			log.Printf("[Main] Warning: %v", err)
		}
	}()

	ebiten.SetWindowSize(app.ScreenWidth*2, app.ScreenHeight*2)
	ebiten.SetWindowTitle("Step Slider")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(stepApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("运行失败: %v", err)
	}
}
