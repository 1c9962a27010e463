package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// Page 整页创建结果
type Page struct {
	Hero     *HeroEntities
	Stats    []StatCard
	Features []ecs.EntityID
	CTA      *CTAEntities
	// Follower 跟随光标，移动端为 0
	Follower ecs.EntityID
	// Height 页面总高度（像素）
	Height float64
}

// NewLandingPage 按配置自上而下创建整页实体
// 实体按文档顺序创建，渲染系统据此决定绘制顺序。
func NewLandingPage(em *ecs.EntityManager, cfg *config.LandingConfig) (*Page, error) {
	width := float64(cfg.Window.Width)
	height := float64(cfg.Window.Height)
	page := &Page{}

	hero, err := NewHeroSection(em, cfg, width, height)
	if err != nil {
		return nil, fmt.Errorf("创建首屏失败: %w", err)
	}
	page.Hero = hero
	y := hero.Height

	stats, y, err := NewStatsSection(em, cfg, width, y)
	if err != nil {
		return nil, fmt.Errorf("创建统计区失败: %w", err)
	}
	page.Stats = stats

	features, y, err := NewFeaturesSection(em, cfg, width, y)
	if err != nil {
		return nil, fmt.Errorf("创建特性区失败: %w", err)
	}
	page.Features = features

	cta, y, err := NewCTASection(em, cfg, width, y)
	if err != nil {
		return nil, fmt.Errorf("创建行动号召区失败: %w", err)
	}
	page.CTA = cta

	y, err = NewFooter(em, cfg, width, y)
	if err != nil {
		return nil, fmt.Errorf("创建页脚失败: %w", err)
	}
	page.Height = y

	// 触屏没有悬停指针
	if !utils.IsMobile() {
		page.Follower = NewSpringFollower(em, cfg.Follower)
	}

	log.Printf("[PageFactory] 页面创建完成: 高度 %.0fpx, %d 个实体", page.Height, em.EntityCount())
	return page, nil
}

// NewSpringFollower 创建跟随指针的弹簧光标
func NewSpringFollower(em *ecs.EntityManager, fc config.FollowerConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SpringFollowerComponent{
		Spring:  utils.Spring{Stiffness: fc.Stiffness, Damping: fc.Damping, Mass: 1},
		OffsetX: fc.Offset,
		OffsetY: fc.Offset,
		Radius:  fc.Radius,
		X:       -100,
		Y:       -100,
	})
	return id
}
