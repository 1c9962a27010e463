package systems

import (
	"log"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/game"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// 弹簧视为静止的阈值（进度单位）
const (
	revealSpringRestDelta = 0.001
	revealSpringRestSpeed = 0.01
)

// IntersectionEvent 元素可见性变化事件（边沿触发）
type IntersectionEvent struct {
	Entity  ecs.EntityID
	Visible bool
}

// RevealSystem 视口显现控制系统
//
// 每个 tick 分三步：
//  1. 观测：计算每个元素布局矩形与视口的相交情况，可见性变化时产生事件
//  2. 分发：逐个事件调用 ApplyIntersection，首次可见时 Hidden → Revealed
//  3. 呈现：已显现的元素在延迟结束后播放补间/弹簧动画，写入 Reveal 通道
//
// 观测阶段只排队不修改状态，避免回调重入。
type RevealSystem struct {
	entityManager  *ecs.EntityManager
	signal         *game.ScrollSignal
	clock          *game.Clock
	viewportWidth  float64
	viewportHeight float64

	pending []IntersectionEvent
}

// NewRevealSystem 创建视口显现系统
func NewRevealSystem(em *ecs.EntityManager, signal *game.ScrollSignal, clock *game.Clock, viewportWidth, viewportHeight float64) *RevealSystem {
	return &RevealSystem{
		entityManager:  em,
		signal:         signal,
		clock:          clock,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// Viewport 返回当前视口在页面坐标中的矩形
func (s *RevealSystem) Viewport() utils.Rect {
	return utils.Rect{X: 0, Y: s.signal.Offset(), Width: s.viewportWidth, Height: s.viewportHeight}
}

// Update 观测、分发、推进呈现动画
func (s *RevealSystem) Update(deltaTime float64) {
	s.observe()
	s.dispatch()
	s.advance(deltaTime)
}

// observe 检测可见性变化并排队事件
func (s *RevealSystem) observe() {
	viewport := s.Viewport()
	entities := ecs.GetEntitiesWith1[*components.RevealComponent](s.entityManager)

	for _, id := range entities {
		reveal, _ := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)

		visible := false
		switch reveal.Trigger {
		case components.TriggerMount:
			visible = true
		default:
			bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
			if !ok {
				continue // 没有布局信息的元素无法观测，保持 Hidden
			}
			visible = bounds.Rect.Intersects(viewport)
		}

		if visible != reveal.Visible {
			s.pending = append(s.pending, IntersectionEvent{Entity: id, Visible: visible})
		}
	}
}

// dispatch 按顺序消费事件
func (s *RevealSystem) dispatch() {
	now := s.clock.Now()
	for _, ev := range s.pending {
		reveal, ok := ecs.GetComponent[*components.RevealComponent](s.entityManager, ev.Entity)
		if !ok {
			continue // 元素已销毁，忽略
		}
		if ApplyIntersection(reveal, ev.Visible, now) {
			log.Printf("[RevealSystem] 实体 %d 显现 (t=%.3f, delay=%.2f)", ev.Entity, now, reveal.Transition.Delay)
		}
	}
	s.pending = s.pending[:0]
}

// ApplyIntersection 显现状态转换函数
// 记录最新可见性；首次可见时翻转为 Revealed 并返回 true，其余情况返回 false。
// Revealed 之后的任何事件（包括再次不可见）都不会改变 State。
func ApplyIntersection(reveal *components.RevealComponent, visible bool, now float64) bool {
	reveal.Visible = visible
	if !visible || reveal.State == components.RevealRevealed {
		return false
	}
	reveal.State = components.RevealRevealed
	reveal.RevealedAt = now
	reveal.SinceReveal = 0
	return true
}

// advance 推进呈现动画并写入 Reveal 通道
func (s *RevealSystem) advance(deltaTime float64) {
	now := s.clock.Now()
	entities := ecs.GetEntitiesWith2[*components.RevealComponent, *components.VisualComponent](s.entityManager)

	for _, id := range entities {
		reveal, _ := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)

		visual.Reveal = AdvanceReveal(reveal, now, deltaTime)
	}
}

// AdvanceReveal 推进单个元素的呈现动画，返回当前 Reveal 通道变换
// 延迟只影响呈现开始时间，不影响 State 的翻转时间。
func AdvanceReveal(reveal *components.RevealComponent, now, deltaTime float64) components.Transform {
	if reveal.State != components.RevealRevealed {
		return reveal.Initial
	}
	if reveal.Presentation == components.PresentationCompleted {
		return reveal.Final
	}

	reveal.SinceReveal = now - reveal.RevealedAt
	active := reveal.SinceReveal - reveal.Transition.Delay
	if active < 0 {
		return reveal.Initial
	}
	reveal.Presentation = components.PresentationRunning

	tr := reveal.Transition
	switch tr.Kind {
	case components.TransitionSpring:
		reveal.Progress, reveal.Velocity = tr.Spring.Step(reveal.Progress, reveal.Velocity, 1, deltaTime)
		if tr.Spring.AtRest(reveal.Progress, reveal.Velocity, 1, revealSpringRestDelta, revealSpringRestSpeed) {
			reveal.Progress, reveal.Velocity = 1, 0
			reveal.Presentation = components.PresentationCompleted
		}
	default:
		linear := 1.0
		if tr.Duration > 0 {
			linear = utils.Clamp01(active / tr.Duration)
		}
		ease := tr.Ease
		if ease == nil {
			ease = utils.EaseLinear
		}
		reveal.Progress = ease(linear)
		if linear >= 1 {
			reveal.Progress = 1
			reveal.Presentation = components.PresentationCompleted
		}
	}

	if reveal.Presentation == components.PresentationCompleted {
		return reveal.Final
	}
	return components.LerpTransform(reveal.Initial, reveal.Final, reveal.Progress)
}
