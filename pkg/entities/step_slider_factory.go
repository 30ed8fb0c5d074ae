package entities

import (
	"fmt"

	"github.com/decker502/stepslider/pkg/components"
	"github.com/decker502/stepslider/pkg/ecs"
	"github.com/decker502/stepslider/pkg/game"
	"github.com/decker502/stepslider/pkg/slider"
)

// NewStepSliderEntity 创建分段滑动条实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 控件左上角（屏幕坐标）
//   - bounds: 控件尺寸
//   - cfg: 外观与取值范围
//   - value: 初始值（超出范围会被钳制）
//
// 返回：
//   - 实体ID
//   - 配置无效时返回错误，不会创建实体
//
// 实体带有 PositionComponent、StepSliderComponent 和 PulseComponent，
// 默认显示当前值并在跨过刻度时播放 game.SoundTick。
func NewStepSliderEntity(
	em *ecs.EntityManager,
	x, y float64,
	bounds slider.Size,
	cfg slider.Configuration,
	value int,
) (ecs.EntityID, error) {
	ctrl, err := slider.NewControl(cfg, value)
	if err != nil {
		return 0, fmt.Errorf("failed to create step slider: %w", err)
	}
	ctrl.SetBounds(slider.Rect{Width: bounds.Width, Height: bounds.Height})

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.StepSliderComponent{
		Control:      ctrl,
		ShowValue:    true,
		ClickSoundID: game.SoundTick,
	})
	ecs.AddComponent(em, entity, &components.PulseComponent{TimeScale: 1})

	return entity, nil
}

// GetStepSlider 返回实体上的滑动条组件
func GetStepSlider(em *ecs.EntityManager, entity ecs.EntityID) (*components.StepSliderComponent, bool) {
	ss, ok := ecs.GetComponent[*components.StepSliderComponent](em, entity)
	if !ok || ss == nil || ss.Control == nil {
		return nil, false
	}
	return ss, true
}
