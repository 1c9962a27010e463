package entities

import (
	"image/color"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// 页面配色
var (
	colorWhite       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorMuted       = color.RGBA{R: 209, G: 213, B: 219, A: 255}
	colorSubtle      = color.RGBA{R: 156, G: 163, B: 175, A: 255}
	colorGlassFill   = color.RGBA{R: 255, G: 255, B: 255, A: 13}
	colorGlassBorder = color.RGBA{R: 255, G: 255, B: 255, A: 38}
	colorPurple      = color.RGBA{R: 168, G: 85, B: 247, A: 255}
	colorPink        = color.RGBA{R: 236, G: 72, B: 153, A: 255}
	colorBadgeFill   = color.RGBA{R: 168, G: 85, B: 247, A: 40}
	colorBadgeBorder = color.RGBA{R: 168, G: 85, B: 247, A: 90}
)

// newElement 创建带布局矩形和视觉组件的元素，parent 为 0 表示没有父元素
func newElement(em *ecs.EntityManager, rect utils.Rect, parent ecs.EntityID) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: rect})
	ecs.AddComponent(em, id, components.NewVisualComponent())
	if parent != 0 {
		ecs.AddComponent(em, id, &components.ParentComponent{Parent: parent})
	}
	return id
}

// newTextElement 创建文本元素
func newTextElement(em *ecs.EntityManager, rect utils.Rect, parent ecs.EntityID, text string, size float64, bold bool, clr color.RGBA, align components.TextAlign) ecs.EntityID {
	id := newElement(em, rect, parent)
	ecs.AddComponent(em, id, &components.TextComponent{
		Text:  text,
		Size:  size,
		Bold:  bold,
		Color: clr,
		Align: align,
	})
	return id
}

// newGlassPanel 创建半透明卡片
func newGlassPanel(radius float64) *components.PanelComponent {
	return &components.PanelComponent{Fill: colorGlassFill, Border: colorGlassBorder, Radius: radius}
}

// newButton 创建按钮（背景 + 居中文字）
func newButton(em *ecs.EntityManager, rect utils.Rect, parent ecs.EntityID, label string, panel *components.PanelComponent) ecs.EntityID {
	id := newElement(em, rect, parent)
	ecs.AddComponent(em, id, panel)

	textRect := utils.Rect{X: rect.X, Y: rect.CenterY() - 11, Width: rect.Width, Height: 22}
	newTextElement(em, textRect, id, label, 17, true, colorWhite, components.AlignCenter)
	return id
}

// centered 返回在 [0,pageWidth) 内水平居中、宽为 width 的矩形
func centered(pageWidth, y, width, height float64) utils.Rect {
	return utils.Rect{X: (pageWidth - width) / 2, Y: y, Width: width, Height: height}
}
