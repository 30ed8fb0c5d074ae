// Package app 提供分段滑动条演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/stepslider/pkg/components"
	"github.com/decker502/stepslider/pkg/config"
	"github.com/decker502/stepslider/pkg/ecs"
	"github.com/decker502/stepslider/pkg/entities"
	"github.com/decker502/stepslider/pkg/game"
	"github.com/decker502/stepslider/pkg/slider"
	"github.com/decker502/stepslider/pkg/systems"
	"github.com/decker502/stepslider/pkg/utils"
)

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 480
	ScreenHeight = 240
)

// 滑动条尺寸（桌面端，移动端按 utils.TouchScale 放大）
const (
	sliderWidth  = 300
	sliderHeight = 40
)

// AppName gdata 存储使用的应用名
const AppName = "stepslider"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StylePath 样式文件路径，为空则使用上次的样式或内置样式
	StylePath string
	// Value 初始值，nil 则恢复上次保存的值
	Value *int
	// Mute 不创建音频上下文
	Mute bool
	// Ephemeral 不打开 gdata 存储，设置只保存在内存中
	Ephemeral bool
}

// App 实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager
	sliderSystem  *systems.StepSliderSystem
	pulseSystem   *systems.PulseSystem
	renderSystem  *systems.StepSliderRenderSystem

	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager

	sliderEntity ecs.EntityID
	stylePath    string // 空字符串表示内置样式
	presetIndex  int    // 内置预设的当前下标，-1 表示未使用预设
	watcher      *config.StyleWatcher

	dialog *styleDialog

	hintFace text.Face
	verbose  bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settingsManager, err := game.NewSettingsManager(openStorage(cfg.Ephemeral))
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}

	var audioContext *audio.Context
	if !cfg.Mute {
		audioContext = audio.NewContext(game.AudioSampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized (mute=%v)", cfg.Mute)

	stylePath := cfg.StylePath
	if stylePath == "" {
		stylePath = settingsManager.GetSettings().StylePath
	}
	style, stylePath, err := loadStyleOrDefault(stylePath, cfg.StylePath != "")
	if err != nil {
		return nil, fmt.Errorf("样式加载失败: %w", err)
	}
	sliderCfg, err := style.Configuration()
	if err != nil {
		return nil, fmt.Errorf("样式无效: %w", err)
	}

	em := ecs.NewEntityManager()
	a := &App{
		entityManager:   em,
		sliderSystem:    systems.NewStepSliderSystem(em, audioManager),
		pulseSystem:     systems.NewPulseSystem(em),
		renderSystem:    systems.NewStepSliderRenderSystem(em),
		settingsManager: settingsManager,
		audioManager:    audioManager,
		stylePath:       stylePath,
		presetIndex:     -1,
		dialog:          newStyleDialog(),
		hintFace:        text.NewGoXFace(basicfont.Face7x13),
		verbose:         cfg.Verbose,
	}

	value := initialValue(cfg.Value, settingsManager, style)
	if err := a.createSlider(sliderCfg, value); err != nil {
		return nil, err
	}
	a.watchStyle(stylePath)

	log.Printf("[App] Started with style %q, value=%d", displayStylePath(stylePath), a.Control().Value())
	return a, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级模式）
func openStorage(ephemeral bool) *gdata.Manager {
	if ephemeral {
		return nil
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
		return nil
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open storage: %v (settings will not persist)", err)
		return nil
	}
	return m
}

// initialValue 依次使用命令行参数、上次保存的值、样式中的初始值
func initialValue(flagValue *int, sm *game.SettingsManager, style *config.StyleConfig) int {
	if flagValue != nil {
		return *flagValue
	}
	if v, ok := sm.LastValue(); ok {
		return v
	}
	return style.InitialValue()
}

func (a *App) createSlider(cfg slider.Configuration, value int) error {
	scale := utils.TouchScale()
	w, h := sliderWidth*scale, sliderHeight*scale
	x := (ScreenWidth - w) / 2
	y := (ScreenHeight - h) / 2

	id, err := entities.NewStepSliderEntity(a.entityManager, x, y, slider.Size{Width: w, Height: h}, cfg, value)
	if err != nil {
		return fmt.Errorf("滑动条创建失败: %w", err)
	}
	a.sliderEntity = id

	ss, _ := entities.GetStepSlider(a.entityManager, id)
	ss.Label = "Value"
	ss.Control.Observe(a.onValueChanged)

	if pulse, ok := ecs.GetComponent[*components.PulseComponent](a.entityManager, id); ok {
		pulse.Paused = !a.settingsManager.GetSettings().PulseEnabled
	}
	return nil
}

// Control 返回演示滑动条的控件
func (a *App) Control() *slider.Control {
	ss, ok := entities.GetStepSlider(a.entityManager, a.sliderEntity)
	if !ok {
		return nil
	}
	return ss.Control
}

// StylePath 返回当前样式文件，空字符串表示内置样式
func (a *App) StylePath() string {
	return a.stylePath
}

// onValueChanged 手势结束时保存取值
func (a *App) onValueChanged(change slider.ValueChange) {
	log.Printf("[App] Value changed: %d (%s)", change.Value, change.Source)
	if change.Source != slider.SourceGestureEnd {
		return
	}
	a.settingsManager.SetLastValue(change.Value)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.handleKeys()
	a.drainStyleUpdates()
	a.drainDialog()

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sliderSystem.Update(deltaTime)
	a.pulseSystem.Update(deltaTime)
	a.entityManager.RemoveMarkedEntities()
	return nil
}

func (a *App) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		a.openStyleDialog()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		if err := a.NextPreset(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		a.TogglePulse()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.ToggleSound()
	case inpututil.IsKeyJustPressed(ebiten.KeyF11):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}

// TogglePulse 开关脉冲动画并保存
func (a *App) TogglePulse() {
	s := a.settingsManager.GetSettings()
	a.settingsManager.SetPulseEnabled(!s.PulseEnabled)
	if pulse, ok := ecs.GetComponent[*components.PulseComponent](a.entityManager, a.sliderEntity); ok {
		pulse.Paused = !s.PulseEnabled
	}
	a.saveSettings()
	log.Printf("[App] Pulse enabled: %v", s.PulseEnabled)
}

// ToggleSound 开关音效并保存
func (a *App) ToggleSound() {
	s := a.settingsManager.GetSettings()
	a.settingsManager.SetSoundEnabled(!s.SoundEnabled)
	a.saveSettings()
	log.Printf("[App] Sound enabled: %v", s.SoundEnabled)
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 246, G: 246, B: 246, A: 255})
	a.renderSystem.Draw(screen)
	a.drawHint(screen)
}

func (a *App) drawHint(screen *ebiten.Image) {
	hint := "L: load style  N: next preset  P: pulse  S: sound"
	if a.dialog.Open() {
		hint = "Choosing style file..."
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, ScreenHeight-20)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 120, G: 120, B: 120, A: 255})
	text.Draw(screen, hint, a.hintFace, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Close 停止文件监听并保存设置
func (a *App) Close() error {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			return fmt.Errorf("failed to close style watcher: %w", err)
		}
		a.watcher = nil
	}
	return a.settingsManager.Save()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
