package entities

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// sceneUnit 几何体场景坐标的一个单位对应的像素数
const sceneUnit = 110.0

// starSeed 星空随机种子（固定，保证每次启动画面一致）
const starSeed = 20240601

// shapeKindByName 配置名 → 几何体类型
var shapeKindByName = map[string]components.ShapeKind{
	"sphere":     components.ShapeSphere,
	"torus":      components.ShapeTorus,
	"box":        components.ShapeBox,
	"octahedron": components.ShapeOctahedron,
}

// HeroEntities 首屏创建出的关键实体
type HeroEntities struct {
	// Content 随滚动位移/淡出/缩小的内容容器
	Content ecs.EntityID
	// Entrance 依次入场的元素（徽章、标题、副标题、按钮、勾选项）
	Entrance []ecs.EntityID
	// Indicator 滚动提示
	Indicator ecs.EntityID
	// Shapes 中心球体和浮动几何体
	Shapes []ecs.EntityID
	// Height 首屏高度
	Height float64
}

// NewHeroSection 创建首屏：背景星空、浮动几何体、随滚动变化的内容和滚动提示
func NewHeroSection(em *ecs.EntityManager, cfg *config.LandingConfig, width, height float64) (*HeroEntities, error) {
	hero := cfg.Hero
	result := &HeroEntities{Height: height}

	// 背景层（不随内容淡出）
	rng := rand.New(rand.NewPCG(starSeed, uint64(hero.Stars)))
	newStarField(em, utils.Rect{Width: width, Height: height}, hero.Stars, 0.6, 1.6, rng)
	newStarField(em, utils.Rect{Width: width, Height: height}, hero.Sparkles, 1.5, 3, rng)

	shapes, err := newHeroShapes(em, hero, width, height)
	if err != nil {
		return nil, err
	}
	result.Shapes = shapes

	// 内容容器：滚动曲线作用于它，子元素渲染时继承
	content := newElement(em, utils.Rect{Width: width, Height: height}, 0)
	linked, err := NewScrollLinkedComponent(hero.ScrollCurves)
	if err != nil {
		return nil, fmt.Errorf("首屏滚动曲线: %w", err)
	}
	ecs.AddComponent(em, content, linked)
	result.Content = content

	entrance, err := newHeroContent(em, cfg, content, width, height)
	if err != nil {
		return nil, err
	}
	result.Entrance = entrance

	indicator, err := newScrollIndicator(em, cfg, content, width, height)
	if err != nil {
		return nil, err
	}
	result.Indicator = indicator

	log.Printf("[HeroFactory] 创建首屏: %d 个入场元素, %d 个几何体, %d 颗星", len(entrance), len(shapes), hero.Stars+hero.Sparkles)
	return result, nil
}

// newStarField 在 rect 内随机撒 count 颗星
func newStarField(em *ecs.EntityManager, rect utils.Rect, count int, minSize, maxSize float64, rng *rand.Rand) ecs.EntityID {
	stars := make([]components.Star, count)
	for i := range stars {
		stars[i] = components.Star{
			X:          rng.Float64() * rect.Width,
			Y:          rng.Float64() * rect.Height,
			Size:       minSize + rng.Float64()*(maxSize-minSize),
			Phase:      rng.Float64() * 2 * math.Pi,
			Speed:      0.5 + rng.Float64()*1.5,
			Brightness: 1,
		}
	}

	id := newElement(em, rect, 0)
	ecs.AddComponent(em, id, &components.StarFieldComponent{Stars: stars})
	return id
}

// newHeroShapes 创建中心球体和四周的浮动几何体
func newHeroShapes(em *ecs.EntityManager, hero config.HeroConfig, width, height float64) ([]ecs.EntityID, error) {
	cx, cy := width/2, height/2
	var ids []ecs.EntityID

	sphereColor, err := utils.ParseHexColor(hero.CenterSphere.Color)
	if err != nil {
		return nil, fmt.Errorf("中心球体颜色: %w", err)
	}
	r := hero.CenterSphere.Radius
	sphere := newElement(em, utils.Rect{X: cx - r, Y: cy - r, Width: 2 * r, Height: 2 * r}, 0)
	ecs.AddComponent(em, sphere, &components.ShapeComponent{
		Kind:    components.ShapeSphere,
		Radius:  r,
		Color:   sphereColor,
		Distort: hero.CenterSphere.Distort,
	})
	ecs.AddComponent(em, sphere, &components.FloatingComponent{
		Speed:          hero.CenterSphere.Speed,
		Amplitude:      18,
		RotationAmount: 20,
	})
	ids = append(ids, sphere)

	for i, s := range hero.Shapes {
		kind, ok := shapeKindByName[s.Kind]
		if !ok {
			return nil, fmt.Errorf("hero.shapes[%d]: 未知几何体 %q", i, s.Kind)
		}
		clr, err := utils.ParseHexColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("hero.shapes[%d]: %w", i, err)
		}

		const radius = 42.0
		x := cx + s.X*sceneUnit
		y := cy - s.Y*sceneUnit // 场景坐标向上为正
		id := newElement(em, utils.Rect{X: x - radius, Y: y - radius, Width: 2 * radius, Height: 2 * radius}, 0)
		ecs.AddComponent(em, id, &components.ShapeComponent{Kind: kind, Radius: radius, Color: clr})
		ecs.AddComponent(em, id, &components.FloatingComponent{
			Speed:          s.Speed,
			Amplitude:      14,
			RotationAmount: 35,
			Phase:          float64(i) * 1.3,
		})
		ids = append(ids, id)
	}
	return ids, nil
}

// newHeroContent 创建首屏文字和按钮，每组按各自的延迟入场
func newHeroContent(em *ecs.EntityManager, cfg *config.LandingConfig, content ecs.EntityID, width, height float64) ([]ecs.EntityID, error) {
	hero := cfg.Hero
	delays := hero.EntranceDelays
	var ids []ecs.EntityID

	mount := func(id ecs.EntityID, delay float64) error {
		reveal, err := NewRevealComponent(components.TriggerMount, cfg.Reveal.Hero, delay)
		if err != nil {
			return fmt.Errorf("首屏入场动画: %w", err)
		}
		ecs.AddComponent(em, id, reveal)
		ids = append(ids, id)
		return nil
	}

	y := height*0.5 - 250

	badge := newElement(em, centered(width, y, 240, 36), content)
	ecs.AddComponent(em, badge, &components.PanelComponent{Fill: colorBadgeFill, Border: colorBadgeBorder, Radius: 18})
	newTextElement(em, centered(width, y+9, 240, 20), badge, hero.Badge, 15, false, colorWhite, components.AlignCenter)
	if err := mount(badge, delays.Badge); err != nil {
		return nil, err
	}
	y += 60

	headlineHeight := float64(len(hero.Headline)) * 72 * 1.05
	headline := newTextElement(em, centered(width, y, 900, headlineHeight), content,
		strings.Join(hero.Headline, "\n"), 72, true, colorWhite, components.AlignCenter)
	if txt, ok := ecs.GetComponent[*components.TextComponent](em, headline); ok {
		txt.LineSpacing = 1.05
	}
	if err := mount(headline, delays.Headline); err != nil {
		return nil, err
	}
	y += headlineHeight + 20

	subtitle := newTextElement(em, centered(width, y, 720, 84), content,
		hero.Subtitle, 20, false, colorMuted, components.AlignCenter)
	if err := mount(subtitle, delays.Subtitle); err != nil {
		return nil, err
	}
	y += 104

	buttons := newElement(em, centered(width, y, 440, 56), content)
	primary := &components.PanelComponent{GradientFrom: colorPurple, GradientTo: colorPink, Radius: 28}
	secondary := &components.PanelComponent{Fill: colorGlassFill, Border: colorGlassBorder, Radius: 28}
	left := centered(width, y, 440, 56)
	newButton(em, utils.Rect{X: left.X, Y: y, Width: 210, Height: 56}, buttons, hero.PrimaryButton, primary)
	newButton(em, utils.Rect{X: left.X + 230, Y: y, Width: 210, Height: 56}, buttons, hero.SecondaryButton, secondary)
	if err := mount(buttons, delays.Buttons); err != nil {
		return nil, err
	}
	y += 84

	checks := newTextElement(em, centered(width, y, 900, 24), content,
		"•  "+strings.Join(hero.Checks, "     •  "), 15, false, colorSubtle, components.AlignCenter)
	if err := mount(checks, delays.Checks); err != nil {
		return nil, err
	}

	return ids, nil
}

// newScrollIndicator 创建滚动提示：文字 + 鼠标轮廓（上下弹跳）+ 滚轮圆点（下滑淡出）
func newScrollIndicator(em *ecs.EntityManager, cfg *config.LandingConfig, content ecs.EntityID, width, height float64) (ecs.EntityID, error) {
	ind := cfg.Hero.Indicator
	y := height - 110

	group := newElement(em, centered(width, y, 200, 90), content)
	reveal, err := NewRevealComponent(components.TriggerMount, config.TransitionConfig{
		Kind:     "tween",
		Duration: 1,
		Initial:  config.TransformConfig{Opacity: new(float64)},
	}, ind.Delay)
	if err != nil {
		return 0, fmt.Errorf("滚动提示入场动画: %w", err)
	}
	ecs.AddComponent(em, group, reveal)

	newTextElement(em, centered(width, y, 200, 18), group, ind.Label, 13, false, colorSubtle, components.AlignCenter)

	mouse := newElement(em, centered(width, y+28, 24, 40), group)
	ecs.AddComponent(em, mouse, &components.PanelComponent{Border: colorSubtle, Radius: 12})
	if loop, err := NewLoopAnimationComponent(ind.Loop); err != nil {
		return 0, fmt.Errorf("滚动提示弹跳动画: %w", err)
	} else if loop.OffsetY != nil || loop.Opacity != nil {
		ecs.AddComponent(em, mouse, loop)
	}

	dot := newElement(em, centered(width, y+34, 4, 8), mouse)
	ecs.AddComponent(em, dot, &components.PanelComponent{Fill: colorWhite, Radius: 2})
	if loop, err := NewLoopAnimationComponent(ind.Dot); err != nil {
		return 0, fmt.Errorf("滚动提示圆点动画: %w", err)
	} else if loop.OffsetY != nil || loop.Opacity != nil {
		ecs.AddComponent(em, dot, loop)
	}

	return group, nil
}
