package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/stepslider/pkg/components"
	"github.com/decker502/stepslider/pkg/ecs"
	"github.com/decker502/stepslider/pkg/render"
	"github.com/decker502/stepslider/pkg/render/ebitenrender"
	"github.com/decker502/stepslider/pkg/slider"
)

// labelGap 标签底部与控件顶部的间距
const labelGap = 6

// StepSliderRenderSystem 绘制分段滑动条及其标签
type StepSliderRenderSystem struct {
	entityManager *ecs.EntityManager
	labelFace     text.Face
	labelColor    color.Color
	hoverColor    color.Color
}

// NewStepSliderRenderSystem 创建渲染系统，标签使用内置位图字体
func NewStepSliderRenderSystem(em *ecs.EntityManager) *StepSliderRenderSystem {
	return &StepSliderRenderSystem{
		entityManager: em,
		labelFace:     text.NewGoXFace(basicfont.Face7x13),
		labelColor:    color.RGBA{60, 60, 60, 255},
		hoverColor:    slider.DefaultTintColor,
	}
}

// Draw 绘制所有滑动条
func (s *StepSliderRenderSystem) Draw(screen *ebiten.Image) {
	cv := ebitenrender.New(screen)

	entities := ecs.GetEntitiesWith2[*components.StepSliderComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		ss, _ := ecs.GetComponent[*components.StepSliderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if ss == nil || pos == nil || ss.Control == nil {
			continue
		}

		render.DrawFrame(cv, ss.Control.Frame(), slider.Point{X: pos.X, Y: pos.Y})
		s.drawLabel(screen, ss, pos)
		ss.Control.MarkDisplayed()
	}
}

func (s *StepSliderRenderSystem) drawLabel(screen *ebiten.Image, ss *components.StepSliderComponent, pos *components.PositionComponent) {
	label := LabelText(ss)
	if label == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y-labelGap-s.labelFace.Metrics().HAscent)
	clr := s.labelColor
	if ss.IsHovered {
		clr = s.hoverColor
	}
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, label, s.labelFace, op)
}

// LabelText 组合标签与当前值
func LabelText(ss *components.StepSliderComponent) string {
	if !ss.ShowValue || ss.Control == nil {
		return ss.Label
	}
	if ss.Label == "" {
		return fmt.Sprintf("%d", ss.Control.Value())
	}
	return fmt.Sprintf("%s: %d", ss.Label, ss.Control.Value())
}
