package systems

import (
	"time"

	"github.com/decker502/stepslider/pkg/components"
	"github.com/decker502/stepslider/pkg/ecs"
)

// PulseSystem 推进滑动条拇指的脉冲动画
type PulseSystem struct {
	entityManager *ecs.EntityManager
}

// NewPulseSystem 创建脉冲动画系统
func NewPulseSystem(em *ecs.EntityManager) *PulseSystem {
	return &PulseSystem{entityManager: em}
}

// Update 按帧间隔推进每个带 PulseComponent 的滑动条
func (s *PulseSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.StepSliderComponent, *components.PulseComponent](s.entityManager)
	for _, id := range entities {
		ss, _ := ecs.GetComponent[*components.StepSliderComponent](s.entityManager, id)
		pulse, _ := ecs.GetComponent[*components.PulseComponent](s.entityManager, id)
		if ss == nil || pulse == nil || ss.Control == nil || pulse.Paused {
			continue
		}

		scale := pulse.TimeScale
		if scale <= 0 {
			scale = 1
		}
		ss.Control.Tick(time.Duration(deltaTime * scale * float64(time.Second)))
	}
}
