package systems

import (
	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/game"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// HoverSystem 悬停响应系统
// 用指针的屏幕坐标命中测试元素的屏幕矩形（布局矩形减去滚动距离）。
type HoverSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputSource
	signal        *game.ScrollSignal
}

// NewHoverSystem 创建悬停系统
func NewHoverSystem(em *ecs.EntityManager, input utils.InputSource, signal *game.ScrollSignal) *HoverSystem {
	return &HoverSystem{
		entityManager: em,
		input:         input,
		signal:        signal,
	}
}

// Update 更新悬停状态并补间 Hover 通道
func (s *HoverSystem) Update(deltaTime float64) {
	px, py := s.input.PointerPosition()
	scrollY := s.signal.Offset()

	entities := ecs.GetEntitiesWith3[*components.HoverComponent, *components.BoundsComponent, *components.VisualComponent](s.entityManager)
	for _, id := range entities {
		hover, _ := ecs.GetComponent[*components.HoverComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)

		// 未显现的元素不响应悬停
		if reveal, ok := ecs.GetComponent[*components.RevealComponent](s.entityManager, id); ok &&
			reveal.Presentation != components.PresentationCompleted {
			hover.IsHovered = false
		} else {
			screenRect := bounds.Rect.Offset(0, -scrollY)
			hover.IsHovered = screenRect.Contains(float64(px), float64(py))
		}

		step := 1.0
		if hover.Duration > 0 {
			step = deltaTime / hover.Duration
		}
		if hover.IsHovered {
			hover.Progress = utils.Clamp01(hover.Progress + step)
		} else {
			hover.Progress = utils.Clamp01(hover.Progress - step)
		}

		visual.Hover = components.LerpTransform(components.IdentityTransform, hover.Target, utils.EaseOut(hover.Progress))
	}
}
