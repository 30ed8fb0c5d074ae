// validate_style 检查样式文件能否被加载并转换成有效的滑动条配置
//
// 用法：
//
//	go run ./tools                       # 检查 data/ 下的所有样式
//	go run ./tools path/a.yaml path/b.yaml
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/stepslider/pkg/config"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{"data/default_style.yaml"}
		presets, err := filepath.Glob("data/styles/*.yaml")
		if err != nil {
			fmt.Printf("❌ 查找样式文件失败: %v\n", err)
			os.Exit(1)
		}
		paths = append(paths, presets...)
	}

	failed := 0
	for _, p := range paths {
		if err := validate(p); err != nil {
			fmt.Printf("❌ %s: %v\n", p, err)
			failed++
			continue
		}
	}

	if failed > 0 {
		fmt.Printf("❌ %d/%d 个样式文件无效\n", failed, len(paths))
		os.Exit(1)
	}
	fmt.Printf("✅ 全部 %d 个样式文件有效\n", len(paths))
}

func validate(path string) error {
	sc, err := config.LoadStyleConfig(path)
	if err != nil {
		return err
	}
	cfg, err := sc.Configuration()
	if err != nil {
		return err
	}
	v := cfg.Clamp(sc.InitialValue())
	fmt.Printf("✅ %s: 范围 [%d, %d]，%d 个刻度，初始值 %d，间距 %s\n",
		path, cfg.MinimumValue, cfg.MaximumValue, cfg.NumberOfSteps(), v, cfg.Spacing)
	return nil
}
