package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// 特性卡片网格布局
const (
	featureColumns    = 3
	featureCardHeight = 250.0
	featureCardGap    = 28.0
)

// NewFeaturesSection 创建特性区（三列网格），返回卡片和区块底部的 y
func NewFeaturesSection(em *ecs.EntityManager, cfg *config.LandingConfig, width, top float64) ([]ecs.EntityID, float64, error) {
	features := cfg.Features
	_, y, err := sectionHeader(em, cfg, width, top+sectionPadding, features.Title, features.Subtitle)
	if err != nil {
		return nil, 0, err
	}

	rowWidth := min(contentMaxWidth, width-80)
	cardWidth := (rowWidth - (featureColumns-1)*featureCardGap) / featureColumns
	left := (width - rowWidth) / 2

	cards := make([]ecs.EntityID, 0, len(features.Items))
	for i, item := range features.Items {
		col, row := i%featureColumns, i/featureColumns
		rect := utils.Rect{
			X:      left + float64(col)*(cardWidth+featureCardGap),
			Y:      y + float64(row)*(featureCardHeight+featureCardGap),
			Width:  cardWidth,
			Height: featureCardHeight,
		}

		card := newElement(em, rect, 0)
		ecs.AddComponent(em, card, newGlassPanel(24))
		reveal, err := NewRevealComponent(components.TriggerViewport, cfg.Reveal.Card, float64(i)*features.Stagger)
		if err != nil {
			return nil, 0, fmt.Errorf("features.items[%d] 显现动画: %w", i, err)
		}
		ecs.AddComponent(em, card, reveal)
		ecs.AddComponent(em, card, NewHoverComponent(cfg.Hover.Card))

		icon := newElement(em, utils.Rect{X: rect.X + 28, Y: rect.Y + 28, Width: 56, Height: 56}, card)
		panel := &components.PanelComponent{Radius: 14}
		if len(item.Gradient) == 2 {
			from, err := utils.ParseHexColor(item.Gradient[0])
			if err != nil {
				return nil, 0, fmt.Errorf("features.items[%d]: %w", i, err)
			}
			to, err := utils.ParseHexColor(item.Gradient[1])
			if err != nil {
				return nil, 0, fmt.Errorf("features.items[%d]: %w", i, err)
			}
			panel.GradientFrom, panel.GradientTo = from, to
		} else {
			panel.Fill = colorPurple
		}
		ecs.AddComponent(em, icon, panel)

		newTextElement(em, utils.Rect{X: rect.X + 28, Y: rect.Y + 104, Width: rect.Width - 56, Height: 30}, card,
			item.Title, 22, true, colorWhite, components.AlignLeft)
		newTextElement(em, utils.Rect{X: rect.X + 28, Y: rect.Y + 144, Width: rect.Width - 56, Height: 90}, card,
			item.Description, 15, false, colorSubtle, components.AlignLeft)

		cards = append(cards, card)
	}

	rows := (len(features.Items) + featureColumns - 1) / featureColumns
	bottom := y + float64(rows)*(featureCardHeight+featureCardGap) - featureCardGap + sectionPadding
	if rows == 0 {
		bottom = y + sectionPadding
	}

	log.Printf("[FeaturesFactory] 创建 %d 张特性卡片", len(cards))
	return cards, bottom, nil
}
