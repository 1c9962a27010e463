package entities

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// emailMaxLength 邮箱地址最大长度
const emailMaxLength = 254

// qrCodeSize 二维码生成尺寸（像素）
const qrCodeSize = 256

// CTAEntities 行动号召区的关键实体
type CTAEntities struct {
	Panel      ecs.EntityID
	EmailInput ecs.EntityID
	Button     ecs.EntityID
	QRCode     ecs.EntityID
}

// NewCTASection 创建行动号召区：标题、邮箱输入框、按钮、注册二维码、权益列表
func NewCTASection(em *ecs.EntityManager, cfg *config.LandingConfig, width, top float64) (*CTAEntities, float64, error) {
	cta := cfg.CTA
	y := top + sectionPadding/2

	panelRect := centered(width, y, min(contentMaxWidth, width-80), 440)
	panel := newElement(em, panelRect, 0)
	ecs.AddComponent(em, panel, &components.PanelComponent{
		GradientFrom: color.RGBA{R: 88, G: 28, B: 135, A: 140},
		GradientTo:   color.RGBA{R: 131, G: 24, B: 67, A: 140},
		Border:       colorGlassBorder,
	})
	reveal, err := NewRevealComponent(components.TriggerViewport, cfg.Reveal.Section, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("行动号召区显现动画: %w", err)
	}
	ecs.AddComponent(em, panel, reveal)

	result := &CTAEntities{Panel: panel}

	textWidth := panelRect.Width - 300
	x := panelRect.X + 56
	newTextElement(em, utils.Rect{X: x, Y: y + 56, Width: textWidth, Height: 56}, panel,
		cta.Title, 42, true, colorWhite, components.AlignLeft)
	newTextElement(em, utils.Rect{X: x, Y: y + 124, Width: textWidth - 40, Height: 56}, panel,
		cta.Subtitle, 18, false, colorMuted, components.AlignLeft)

	inputRect := utils.Rect{X: x, Y: y + 212, Width: textWidth - 250, Height: 56}
	input := newElement(em, inputRect, panel)
	ecs.AddComponent(em, input, newGlassPanel(28))
	ecs.AddComponent(em, input, &components.TextInputComponent{
		MaxLength:   emailMaxLength,
		Placeholder: cta.Placeholder,
		PaddingLeft: 22,
	})
	result.EmailInput = input

	result.Button = newButton(em, utils.Rect{X: inputRect.Right() + 16, Y: inputRect.Y, Width: 220, Height: 56}, panel,
		cta.Button, &components.PanelComponent{GradientFrom: colorPurple, GradientTo: colorPink, Radius: 28})

	newTextElement(em, utils.Rect{X: x, Y: y + 300, Width: textWidth, Height: 24}, panel,
		"•  "+strings.Join(cta.Perks, "     •  "), 15, false, colorSubtle, components.AlignLeft)

	if cta.SignupURL != "" {
		qrRect := utils.Rect{X: panelRect.Right() - 56 - 160, Y: y + 140, Width: 160, Height: 160}
		frame := newElement(em, utils.Rect{X: qrRect.X - 10, Y: qrRect.Y - 10, Width: qrRect.Width + 20, Height: qrRect.Height + 20}, panel)
		ecs.AddComponent(em, frame, &components.PanelComponent{Fill: colorWhite, Radius: 12})
		qr := newElement(em, qrRect, panel)
		ecs.AddComponent(em, qr, &components.QRCodeComponent{Content: cta.SignupURL, Size: qrCodeSize})
		result.QRCode = qr
	}

	return result, panelRect.Bottom() + sectionPadding/2, nil
}

// NewFooter 创建页脚，返回页面底部的 y
func NewFooter(em *ecs.EntityManager, cfg *config.LandingConfig, width, top float64) (float64, error) {
	footer := cfg.Footer

	divider := newElement(em, utils.Rect{X: 0, Y: top, Width: width, Height: 1}, 0)
	ecs.AddComponent(em, divider, &components.PanelComponent{Fill: colorGlassBorder})

	group := newElement(em, utils.Rect{X: 0, Y: top, Width: width, Height: 160}, 0)
	reveal, err := NewRevealComponent(components.TriggerViewport, cfg.Reveal.Section, 0)
	if err != nil {
		return 0, fmt.Errorf("页脚显现动画: %w", err)
	}
	ecs.AddComponent(em, group, reveal)

	newTextElement(em, centered(width, top+40, 400, 36), group, footer.Brand, 30, true, colorWhite, components.AlignCenter)
	newTextElement(em, centered(width, top+88, 700, 22), group,
		strings.Join(footer.Links, "        "), 15, false, colorMuted, components.AlignCenter)
	newTextElement(em, centered(width, top+122, 800, 20), group, footer.Copyright, 13, false, colorSubtle, components.AlignCenter)

	return top + 180, nil
}
