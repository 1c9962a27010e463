package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// 统计区布局
const (
	sectionPadding  = 120.0
	contentMaxWidth = 1100.0
	statCardHeight  = 190.0
	statCardGap     = 24.0
)

// StatCard 一张统计卡片
type StatCard struct {
	// Card 卡片本身（显现和悬停都作用于它，同时是计数器的门控）
	Card ecs.EntityID
	// Counter 显示数字的文本实体
	Counter ecs.EntityID
}

// sectionHeader 创建区块标题和副标题（整体作为一个视口显现元素），返回标题下方的 y
func sectionHeader(em *ecs.EntityManager, cfg *config.LandingConfig, width, y float64, title, subtitle string) (ecs.EntityID, float64, error) {
	header := newElement(em, centered(width, y, 900, 130), 0)
	reveal, err := NewRevealComponent(components.TriggerViewport, cfg.Reveal.Section, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("区块标题显现动画: %w", err)
	}
	ecs.AddComponent(em, header, reveal)

	newTextElement(em, centered(width, y, 900, 60), header, title, 48, true, colorWhite, components.AlignCenter)
	newTextElement(em, centered(width, y+76, 700, 54), header, subtitle, 19, false, colorMuted, components.AlignCenter)
	return header, y + 130 + 64, nil
}

// NewStatsSection 创建统计区，返回卡片和区块底部的 y
func NewStatsSection(em *ecs.EntityManager, cfg *config.LandingConfig, width, top float64) ([]StatCard, float64, error) {
	stats := cfg.Stats
	_, y, err := sectionHeader(em, cfg, width, top+sectionPadding, stats.Title, stats.Subtitle)
	if err != nil {
		return nil, 0, err
	}

	n := len(stats.Items)
	if n == 0 {
		return nil, y + sectionPadding, nil
	}

	rowWidth := min(contentMaxWidth, width-80)
	cardWidth := (rowWidth - float64(n-1)*statCardGap) / float64(n)
	left := (width - rowWidth) / 2

	cards := make([]StatCard, 0, n)
	for i, item := range stats.Items {
		rect := utils.Rect{X: left + float64(i)*(cardWidth+statCardGap), Y: y, Width: cardWidth, Height: statCardHeight}

		card := newElement(em, rect, 0)
		ecs.AddComponent(em, card, newGlassPanel(20))
		reveal, err := NewRevealComponent(components.TriggerViewport, cfg.Reveal.Stat, float64(i)*stats.Stagger)
		if err != nil {
			return nil, 0, fmt.Errorf("stats.items[%d] 显现动画: %w", i, err)
		}
		ecs.AddComponent(em, card, reveal)
		ecs.AddComponent(em, card, NewHoverComponent(cfg.Hover.Stat))

		counter := newTextElement(em, utils.Rect{X: rect.X, Y: rect.Y + 44, Width: rect.Width, Height: 60}, card,
			"0"+item.Suffix, 52, true, colorWhite, components.AlignCenter)
		ecs.AddComponent(em, counter, &components.CounterComponent{
			Target:   item.Number,
			Duration: stats.CounterDuration,
			Suffix:   item.Suffix,
			Gate:     card,
		})

		newTextElement(em, utils.Rect{X: rect.X, Y: rect.Y + 120, Width: rect.Width, Height: 24}, card,
			item.Label, 17, false, colorMuted, components.AlignCenter)

		cards = append(cards, StatCard{Card: card, Counter: counter})
	}

	log.Printf("[StatsFactory] 创建 %d 张统计卡片", len(cards))
	return cards, y + statCardHeight + sectionPadding, nil
}
