package systems

import (
	"log"

	"github.com/decker502/stepslider/pkg/components"
	"github.com/decker502/stepslider/pkg/ecs"
	"github.com/decker502/stepslider/pkg/slider"
	"github.com/decker502/stepslider/pkg/utils"
)

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	Sample() utils.PointerSample
}

// ebitenPointerInput Ebitengine 默认实现（鼠标 + 触摸）
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) Sample() utils.PointerSample {
	return utils.ReadPointer()
}

// defaultPointerInput 默认指针输入实例
var defaultPointerInput PointerInput = &ebitenPointerInput{}

// SoundPlayer 按资源ID播放音效，*game.AudioManager 实现了该接口
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// StepSliderSystem 分段滑动条交互系统
//
// 职责：
//   - 把逐帧指针采样转换成按下/移动/释放/取消事件
//   - 把屏幕坐标换算成控件局部坐标并交给 slider.Control
//   - 同一时刻只有一个滑动条拥有手势
//   - 拖拽跨过刻度时播放音效
type StepSliderSystem struct {
	entityManager *ecs.EntityManager
	input         PointerInput
	sounds        SoundPlayer
	tracker       utils.PointerTracker

	// 当前拥有手势的实体
	active    ecs.EntityID
	hasActive bool
}

// NewStepSliderSystem 创建分段滑动条交互系统
// sounds 可为 nil（不播放音效）
func NewStepSliderSystem(em *ecs.EntityManager, sounds SoundPlayer) *StepSliderSystem {
	return NewStepSliderSystemWithInput(em, defaultPointerInput, sounds)
}

// NewStepSliderSystemWithInput 创建带自定义指针输入的交互系统（用于测试）
func NewStepSliderSystemWithInput(em *ecs.EntityManager, input PointerInput, sounds SoundPlayer) *StepSliderSystem {
	return &StepSliderSystem{
		entityManager: em,
		input:         input,
		sounds:        sounds,
	}
}

// ActiveEntity 返回当前拥有手势的实体
func (s *StepSliderSystem) ActiveEntity() (ecs.EntityID, bool) {
	return s.active, s.hasActive
}

// Update 读取本帧指针状态并分发给滑动条
func (s *StepSliderSystem) Update(deltaTime float64) {
	sample := s.input.Sample()
	ev := s.tracker.Next(sample)

	// 拥有手势的实体被销毁时，手势随之结束
	if s.hasActive && !s.entityManager.Exists(s.active) {
		log.Printf("[StepSliderSystem] Active entity %d destroyed, dropping gesture", s.active)
		s.hasActive = false
	}

	entities := ecs.GetEntitiesWith2[*components.StepSliderComponent, *components.PositionComponent](s.entityManager)
	s.updateHover(entities, sample)

	switch ev.Phase {
	case utils.PointerDown:
		s.handleDown(entities, ev)
	case utils.PointerMove:
		if ss, p, ok := s.activeSlider(ev); ok {
			before := ss.Control.Value()
			ss.Control.HandlePointerMove(p)
			if after := ss.Control.Value(); after != before {
				s.playClick(ss)
			}
		}
	case utils.PointerUp:
		if ss, p, ok := s.activeSlider(ev); ok {
			ss.Control.HandlePointerUp(p)
			log.Printf("[StepSliderSystem] Gesture ended on entity %d, value=%d", s.active, ss.Control.Value())
		}
		s.hasActive = false
	case utils.PointerCancel:
		if ss, _, ok := s.activeSlider(ev); ok {
			ss.Control.HandlePointerCancel()
			log.Printf("[StepSliderSystem] Gesture cancelled on entity %d, value=%d", s.active, ss.Control.Value())
		}
		s.hasActive = false
	}
}

// handleDown 按实体ID从大到小命中检测（后创建的在上层），第一个认领者获得手势
func (s *StepSliderSystem) handleDown(entities []ecs.EntityID, ev utils.PointerEvent) {
	for i := len(entities) - 1; i >= 0; i-- {
		id := entities[i]
		ss, pos := s.components(id)
		if ss == nil || pos == nil || ss.Control == nil {
			continue
		}
		if ss.Control.HandlePointerDown(toLocal(ev.X, ev.Y, pos)) {
			s.active = id
			s.hasActive = true
			log.Printf("[StepSliderSystem] Gesture began on entity %d, value=%d", id, ss.Control.Value())
			return
		}
	}
}

// activeSlider 返回拥有手势的滑动条和事件的局部坐标
func (s *StepSliderSystem) activeSlider(ev utils.PointerEvent) (*components.StepSliderComponent, slider.Point, bool) {
	if !s.hasActive {
		return nil, slider.Point{}, false
	}
	ss, pos := s.components(s.active)
	if ss == nil || pos == nil || ss.Control == nil {
		return nil, slider.Point{}, false
	}
	return ss, toLocal(ev.X, ev.Y, pos), true
}

func (s *StepSliderSystem) updateHover(entities []ecs.EntityID, sample utils.PointerSample) {
	for _, id := range entities {
		ss, pos := s.components(id)
		if ss == nil || pos == nil || ss.Control == nil {
			continue
		}
		p := toLocal(sample.X, sample.Y, pos)
		ss.IsHovered = ss.Control.Dragging() || ss.Control.Layout().Thumb.Contains(p)
	}
}

func (s *StepSliderSystem) playClick(ss *components.StepSliderComponent) {
	if s.sounds == nil || ss.ClickSoundID == "" {
		return
	}
	s.sounds.PlaySound(ss.ClickSoundID)
}

func (s *StepSliderSystem) components(id ecs.EntityID) (*components.StepSliderComponent, *components.PositionComponent) {
	ss, _ := ecs.GetComponent[*components.StepSliderComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	return ss, pos
}

// toLocal 屏幕坐标 -> 控件局部坐标
func toLocal(x, y int, pos *components.PositionComponent) slider.Point {
	return slider.Point{X: float64(x) - pos.X, Y: float64(y) - pos.Y}
}
