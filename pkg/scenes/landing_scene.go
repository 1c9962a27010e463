package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/entities"
	"github.com/gonewx/huly-landing/pkg/game"
	"github.com/gonewx/huly-landing/pkg/systems"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// LandingScene 落地页场景
// 持有实体管理器、页面时钟、滚动信号和全部系统，按固定顺序驱动它们。
type LandingScene struct {
	entityManager *ecs.EntityManager
	clock         *game.Clock
	signal        *game.ScrollSignal
	page          *entities.Page

	scrollSystem   *systems.ScrollProgressSystem
	revealSystem   *systems.RevealSystem
	counterSystem  *systems.CounterSystem
	loopSystem     *systems.LoopAnimationSystem
	hoverSystem    *systems.HoverSystem
	followerSystem *systems.SpringFollowerSystem
	floatSystem    *systems.FloatSystem
	textInput      *systems.TextInputSystem
	renderSystem   *systems.RenderSystem // 无窗口运行时为 nil

	closed bool
}

// NewLandingScene 创建带渲染的落地页场景（读取真实输入）
func NewLandingScene(cfg *config.LandingConfig) (*LandingScene, error) {
	fonts, err := utils.LoadFontSet()
	if err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}
	return newLandingScene(cfg, utils.EbitenInput{}, fonts)
}

// NewHeadlessLandingScene 创建不渲染的落地页场景，输入由调用方驱动
// 用于测试和命令行校验工具。
func NewHeadlessLandingScene(cfg *config.LandingConfig, input utils.InputSource) (*LandingScene, error) {
	return newLandingScene(cfg, input, nil)
}

func newLandingScene(cfg *config.LandingConfig, input utils.InputSource, fonts *utils.FontSet) (*LandingScene, error) {
	em := ecs.NewEntityManager()
	clock := game.NewClock()
	signal := game.NewScrollSignal()

	page, err := entities.NewLandingPage(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("创建落地页失败: %w", err)
	}

	width := float64(cfg.Window.Width)
	height := float64(cfg.Window.Height)

	s := &LandingScene{
		entityManager:  em,
		clock:          clock,
		signal:         signal,
		page:           page,
		scrollSystem:   systems.NewScrollProgressSystem(em, input, signal, cfg.Scroll, height),
		revealSystem:   systems.NewRevealSystem(em, signal, clock, width, height),
		counterSystem:  systems.NewCounterSystem(em, clock),
		loopSystem:     systems.NewLoopAnimationSystem(em),
		hoverSystem:    systems.NewHoverSystem(em, input, signal),
		followerSystem: systems.NewSpringFollowerSystem(em, input),
		floatSystem:    systems.NewFloatSystem(em, clock),
		textInput:      systems.NewTextInputSystem(em, input, signal),
	}
	s.scrollSystem.SetPageHeight(page.Height)
	if fonts != nil {
		s.renderSystem = systems.NewRenderSystem(em, signal, clock, fonts)
	}

	log.Printf("[LandingScene] 场景创建完成, 最大滚动距离 %.0fpx", s.scrollSystem.MaxScroll())
	return s, nil
}

// Update 推进一帧
// 顺序：时钟 → 滚动 → 显现 → 计数器 → 循环动画 → 悬停 → 光标 → 浮动 → 输入框。
// 计数器排在显现之后，同一帧显现的卡片当帧就开始计数。
func (s *LandingScene) Update(deltaTime float64) {
	if s.closed {
		return
	}
	s.clock.Advance(deltaTime)

	s.scrollSystem.Update(deltaTime)
	s.revealSystem.Update(deltaTime)
	s.counterSystem.Update(deltaTime)
	s.loopSystem.Update(deltaTime)
	s.hoverSystem.Update(deltaTime)
	s.followerSystem.Update(deltaTime)
	s.floatSystem.Update(deltaTime)
	s.textInput.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制整页
func (s *LandingScene) Draw(screen *ebiten.Image) {
	if s.closed || s.renderSystem == nil {
		return
	}
	s.renderSystem.Draw(screen)
}

// Close 卸载页面：注销滚动监听，销毁所有实体（进行中的计数器随之停止），释放图片
// 可以重复调用。
func (s *LandingScene) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.scrollSystem.Detach()
	s.entityManager.DestroyAll()
	s.entityManager.RemoveMarkedEntities()
	if s.renderSystem != nil {
		s.renderSystem.Close()
	}
	log.Printf("[LandingScene] 场景已关闭")
}

// EntityManager 返回场景的实体管理器（校验工具读取组件状态）
func (s *LandingScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Page 返回页面实体索引
func (s *LandingScene) Page() *entities.Page {
	return s.page
}

// Clock 返回页面时钟
func (s *LandingScene) Clock() *game.Clock {
	return s.clock
}

// ScrollSignal 返回滚动进度信号
func (s *LandingScene) ScrollSignal() *game.ScrollSignal {
	return s.signal
}

// ScrollTo 直接滚动到指定位置（脚本化滚动）
func (s *LandingScene) ScrollTo(y float64) {
	s.scrollSystem.ScrollTo(y)
}

// MaxScroll 返回最大滚动距离
func (s *LandingScene) MaxScroll() float64 {
	return s.scrollSystem.MaxScroll()
}
