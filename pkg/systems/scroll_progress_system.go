package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/game"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// ScrollProgressSystem 滚动进度映射系统
//
// 每个 tick 读取滚轮/键盘输入更新页面滚动距离，把归一化进度写入 ScrollSignal，
// 再把进度通过各属性独立的分段线性曲线映射到 VisualComponent.Scroll 通道。
type ScrollProgressSystem struct {
	entityManager  *ecs.EntityManager
	input          utils.InputSource
	signal         *game.ScrollSignal
	cfg            config.ScrollConfig
	viewportHeight float64
	pageHeight     float64

	scrollY  float64
	detached bool
}

// NewScrollProgressSystem 创建滚动进度系统
func NewScrollProgressSystem(em *ecs.EntityManager, input utils.InputSource, signal *game.ScrollSignal, cfg config.ScrollConfig, viewportHeight float64) *ScrollProgressSystem {
	return &ScrollProgressSystem{
		entityManager:  em,
		input:          input,
		signal:         signal,
		cfg:            cfg,
		viewportHeight: viewportHeight,
		pageHeight:     viewportHeight,
	}
}

// SetPageHeight 设置页面总高度（布局完成后调用）
func (s *ScrollProgressSystem) SetPageHeight(h float64) {
	s.pageHeight = h
	s.ScrollTo(s.scrollY)
}

// MaxScroll 返回最大滚动距离
func (s *ScrollProgressSystem) MaxScroll() float64 {
	if s.pageHeight <= s.viewportHeight {
		return 0
	}
	return s.pageHeight - s.viewportHeight
}

// ScrollY 返回当前滚动距离
func (s *ScrollProgressSystem) ScrollY() float64 {
	return s.scrollY
}

// ScrollTo 滚动到指定位置（钳制到页面范围内）并发布进度
func (s *ScrollProgressSystem) ScrollTo(y float64) {
	if s.detached {
		return
	}
	s.scrollY = utils.Clamp(y, 0, s.MaxScroll())

	progress := 0.0
	if limit := s.MaxScroll(); limit > 0 {
		progress = s.scrollY / limit
	}
	s.signal.Store(s.scrollY, progress)
}

// Detach 注销滚动监听：之后的输入和写入都被忽略
func (s *ScrollProgressSystem) Detach() {
	if s.detached {
		return
	}
	s.detached = true
	s.signal.Detach()
	log.Printf("[ScrollProgressSystem] 滚动监听已注销")
}

// Update 处理滚动输入并更新所有滚动关联元素
func (s *ScrollProgressSystem) Update(deltaTime float64) {
	if s.detached {
		return
	}

	if delta := s.readScrollDelta(); delta != 0 {
		s.ScrollTo(s.scrollY + delta)
	}

	progress := s.signal.Progress()
	entities := ecs.GetEntitiesWith2[*components.ScrollLinkedComponent, *components.VisualComponent](s.entityManager)
	for _, id := range entities {
		linked, _ := ecs.GetComponent[*components.ScrollLinkedComponent](s.entityManager, id)
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)

		height := 0.0
		if bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id); ok {
			height = bounds.Rect.Height
		}

		visual.Scroll = MapScrollProgress(linked, progress, height)
		linked.LastProgress = utils.Clamp01(progress)
	}
}

// readScrollDelta 汇总本帧的滚动输入（像素，正值向下）
func (s *ScrollProgressSystem) readScrollDelta() float64 {
	delta := 0.0

	_, wheelY := s.input.Wheel()
	delta -= wheelY * s.cfg.WheelSpeed

	// 输入框获得焦点时键盘归输入框使用
	if s.keyboardCaptured() {
		return delta
	}

	// 方向键：第1帧立即响应，之后每隔3帧响应一次（实现按住连续滚动）
	if d := s.input.KeyPressDuration(ebiten.KeyArrowDown); d == 1 || (d >= 30 && d%3 == 0) {
		delta += s.cfg.KeyStep
	}
	if d := s.input.KeyPressDuration(ebiten.KeyArrowUp); d == 1 || (d >= 30 && d%3 == 0) {
		delta -= s.cfg.KeyStep
	}

	page := s.viewportHeight * s.cfg.PageStep
	if s.input.IsKeyJustPressed(ebiten.KeyPageDown) || s.input.IsKeyJustPressed(ebiten.KeySpace) {
		delta += page
	}
	if s.input.IsKeyJustPressed(ebiten.KeyPageUp) {
		delta -= page
	}
	if s.input.IsKeyJustPressed(ebiten.KeyHome) {
		delta = -s.scrollY
	}
	if s.input.IsKeyJustPressed(ebiten.KeyEnd) {
		delta = s.MaxScroll() - s.scrollY
	}

	return delta
}

// keyboardCaptured 是否有获得焦点的输入框
func (s *ScrollProgressSystem) keyboardCaptured() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		if input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id); ok && input.IsFocused {
			return true
		}
	}
	return false
}

// MapScrollProgress 将进度 p 映射为滚动通道的变换
// p 先被钳制到 [0,1]，再由各曲线钳制到自身定义域；百分比偏移相对 height 计算。
func MapScrollProgress(linked *components.ScrollLinkedComponent, p, height float64) components.Transform {
	p = utils.Clamp01(p)
	t := components.IdentityTransform

	if linked.OffsetY != nil {
		t.OffsetY = linked.OffsetY.EvaluateFloat(p, height)
	}
	if linked.Opacity != nil {
		t.Opacity = linked.Opacity.Evaluate(p).Amount
	}
	if linked.Scale != nil {
		t.Scale = linked.Scale.Evaluate(p).Amount
	}
	return t
}
