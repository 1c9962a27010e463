package systems

import (
	"math"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
)

// LoopAnimationSystem 循环关键帧动画系统（滚动提示的弹跳、圆点闪烁）
type LoopAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewLoopAnimationSystem 创建循环动画系统
func NewLoopAnimationSystem(em *ecs.EntityManager) *LoopAnimationSystem {
	return &LoopAnimationSystem{entityManager: em}
}

// Update 推进所有循环动画
func (s *LoopAnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.LoopAnimationComponent, *components.VisualComponent](s.entityManager)
	for _, id := range entities {
		loop, _ := ecs.GetComponent[*components.LoopAnimationComponent](s.entityManager, id)
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)

		loop.Elapsed += deltaTime
		visual.Loop = EvaluateLoop(loop)
	}
}

// EvaluateLoop 计算循环动画当前的变换
func EvaluateLoop(loop *components.LoopAnimationComponent) components.Transform {
	t := components.IdentityTransform
	if loop.Duration <= 0 {
		return t
	}

	phase := math.Mod(loop.Elapsed, loop.Duration) / loop.Duration
	if loop.OffsetY != nil {
		t.OffsetY = loop.OffsetY.Evaluate(phase).Amount
	}
	if loop.Opacity != nil {
		t.Opacity = loop.Opacity.Evaluate(phase).Amount
	}
	return t
}
