package app

import (
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/decker502/stepslider/pkg/config"
	"github.com/decker502/stepslider/pkg/embedded"
)

// embeddedPrefix 标记内置样式，例如 "embedded:data/styles/volume.yaml"
const embeddedPrefix = "embedded:"

// presetDir 内置预设样式目录
const presetDir = "data/styles"

// loadStyle 加载样式，空路径表示内置默认样式
func loadStyle(stylePath string) (*config.StyleConfig, error) {
	switch {
	case stylePath == "":
		return loadEmbeddedStyle(embedded.DefaultStylePath)
	case strings.HasPrefix(stylePath, embeddedPrefix):
		return loadEmbeddedStyle(strings.TrimPrefix(stylePath, embeddedPrefix))
	default:
		return config.LoadStyleConfig(stylePath)
	}
}

func loadEmbeddedStyle(name string) (*config.StyleConfig, error) {
	data, err := embedded.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded style %s: %w", name, err)
	}
	return config.ParseStyleConfig(data, embeddedPrefix+name)
}

// loadStyleOrDefault 加载样式
// explicit 为 false（来自上次的设置）时加载失败会回退到内置样式
func loadStyleOrDefault(stylePath string, explicit bool) (*config.StyleConfig, string, error) {
	sc, err := loadStyle(stylePath)
	if err == nil {
		return sc, stylePath, nil
	}
	if explicit || stylePath == "" {
		return nil, "", err
	}

	log.Printf("[App] Warning: Failed to load saved style %s: %v (using built-in style)", stylePath, err)
	sc, err = loadStyle("")
	if err != nil {
		return nil, "", err
	}
	return sc, "", nil
}

func displayStylePath(stylePath string) string {
	if stylePath == "" {
		return "built-in"
	}
	return stylePath
}

// isWatchable 只有磁盘上的样式文件需要监听
func isWatchable(stylePath string) bool {
	return stylePath != "" && !strings.HasPrefix(stylePath, embeddedPrefix)
}

// applyStyle 把样式应用到滑动条，当前值按新范围钳制
func (a *App) applyStyle(sc *config.StyleConfig) error {
	cfg, err := sc.Configuration()
	if err != nil {
		return err
	}
	ctrl := a.Control()
	if ctrl == nil {
		return fmt.Errorf("step slider entity %d is missing", a.sliderEntity)
	}
	return ctrl.SetConfiguration(cfg)
}

// LoadStyle 加载并应用样式，成功后记住路径并开始监听
func (a *App) LoadStyle(stylePath string) error {
	sc, err := loadStyle(stylePath)
	if err != nil {
		return err
	}
	if err := a.applyStyle(sc); err != nil {
		return fmt.Errorf("failed to apply style %s: %w", displayStylePath(stylePath), err)
	}

	a.stylePath = stylePath
	a.settingsManager.SetStylePath(stylePath)
	a.saveSettings()
	a.watchStyle(stylePath)

	log.Printf("[App] Style loaded: %s", displayStylePath(stylePath))
	return nil
}

// Presets 列出内置预设样式
func Presets() ([]string, error) {
	entries, err := embedded.ReadDir(presetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, embeddedPrefix+path.Join(presetDir, e.Name()))
	}
	return names, nil
}

// NextPreset 切换到下一个内置预设，最后一个之后回到内置默认样式
func (a *App) NextPreset() error {
	presets, err := Presets()
	if err != nil {
		return err
	}

	a.presetIndex++
	if a.presetIndex >= len(presets) {
		a.presetIndex = -1
		return a.LoadStyle("")
	}
	return a.LoadStyle(presets[a.presetIndex])
}

// watchStyle 重新开始监听，旧的 watcher 会被关闭
func (a *App) watchStyle(stylePath string) {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Warning: Failed to close style watcher: %v", err)
		}
		a.watcher = nil
	}
	if !isWatchable(stylePath) {
		return
	}

	w, err := config.NewStyleWatcher(stylePath)
	if err != nil {
		log.Printf("[App] Warning: Style hot reload disabled: %v", err)
		return
	}
	a.watcher = w
	log.Printf("[App] Watching style file %s", w.Path())
}

// drainStyleUpdates 在主循环线程上应用文件监听的结果
func (a *App) drainStyleUpdates() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case u := <-a.watcher.Updates():
			if u.Err != nil {
				log.Printf("[App] Warning: Style reload failed, keeping current style: %v", u.Err)
				continue
			}
			if err := a.applyStyle(u.Style); err != nil {
				log.Printf("[App] Warning: Style reload rejected: %v", err)
				continue
			}
			log.Printf("[App] Style reloaded from %s", u.Path)
		default:
			return
		}
	}
}
