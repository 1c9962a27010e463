package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/huly-landing/pkg/utils"
)

// LandingConfig 落地页完整配置
//
// 配置文件位置: data/landing.yaml（已嵌入程序，可用 --config 覆盖）
type LandingConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Scroll   ScrollConfig   `yaml:"scroll"`
	Hero     HeroConfig     `yaml:"hero"`
	Stats    StatsConfig    `yaml:"stats"`
	Features FeaturesConfig `yaml:"features"`
	CTA      CTAConfig      `yaml:"cta"`
	Footer   FooterConfig   `yaml:"footer"`
	Reveal   RevealPresets  `yaml:"reveal"`
	Hover    HoverPresets   `yaml:"hover"`
	Follower FollowerConfig `yaml:"follower"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // 每秒更新次数
}

// ScrollConfig 滚动输入配置
type ScrollConfig struct {
	// WheelSpeed 每个滚轮刻度滚动的像素数
	WheelSpeed float64 `yaml:"wheelSpeed"`
	// KeyStep 方向键每次滚动的像素数
	KeyStep float64 `yaml:"keyStep"`
	// PageStep PageUp/PageDown/Space 滚动的视口高度比例
	PageStep float64 `yaml:"pageStep"`
}

// CurveConfig 分段线性曲线配置
// Input 与 Output 一一对应，Output 支持 "100%"、"15px"、"0.8" 写法。
type CurveConfig struct {
	Input  []float64 `yaml:"input"`
	Output []string  `yaml:"output"`
}

// IsZero 是否未配置
func (c CurveConfig) IsZero() bool {
	return len(c.Input) == 0 && len(c.Output) == 0
}

// Build 构造曲线，未配置时返回 nil
func (c CurveConfig) Build() (*utils.Curve, error) {
	if c.IsZero() {
		return nil, nil
	}
	outputs := make([]utils.Value, len(c.Output))
	for i, s := range c.Output {
		v, err := utils.ParseValue(s)
		if err != nil {
			return nil, fmt.Errorf("output[%d]: %w", i, err)
		}
		outputs[i] = v
	}
	return utils.NewCurveFromRanges(c.Input, outputs)
}

// ScrollCurvesConfig 滚动驱动的曲线组
type ScrollCurvesConfig struct {
	OffsetY CurveConfig `yaml:"offsetY"`
	Opacity CurveConfig `yaml:"opacity"`
	Scale   CurveConfig `yaml:"scale"`
}

// LoopConfig 循环关键帧动画配置
type LoopConfig struct {
	Duration float64     `yaml:"duration"`
	Ease     string      `yaml:"ease"`
	OffsetY  CurveConfig `yaml:"offsetY"`
	Opacity  CurveConfig `yaml:"opacity"`
}

// IndicatorConfig 滚动提示配置
type IndicatorConfig struct {
	Label string     `yaml:"label"`
	Delay float64    `yaml:"delay"`
	Loop  LoopConfig `yaml:"loop"`
	Dot   LoopConfig `yaml:"dot"`
}

// EntranceDelays 首屏各元素的入场延迟（秒）
type EntranceDelays struct {
	Badge    float64 `yaml:"badge"`
	Headline float64 `yaml:"headline"`
	Subtitle float64 `yaml:"subtitle"`
	Buttons  float64 `yaml:"buttons"`
	Checks   float64 `yaml:"checks"`
}

// ShapeConfig 浮动几何体配置
// X/Y 为以首屏中心为原点的场景单位（向上为正）。
type ShapeConfig struct {
	Kind  string  `yaml:"kind"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"`
	Speed float64 `yaml:"speed"`
}

// SphereConfig 中心球体配置
type SphereConfig struct {
	Color   string  `yaml:"color"`
	Radius  float64 `yaml:"radius"`
	Speed   float64 `yaml:"speed"`
	Distort float64 `yaml:"distort"`
}

// HeroConfig 首屏配置
type HeroConfig struct {
	ScrollCurves    ScrollCurvesConfig `yaml:"scrollCurves"`
	Badge           string             `yaml:"badge"`
	Headline        []string           `yaml:"headline"`
	Subtitle        string             `yaml:"subtitle"`
	PrimaryButton   string             `yaml:"primaryButton"`
	SecondaryButton string             `yaml:"secondaryButton"`
	Checks          []string           `yaml:"checks"`
	EntranceDelays  EntranceDelays     `yaml:"entranceDelays"`
	Indicator       IndicatorConfig    `yaml:"indicator"`
	CenterSphere    SphereConfig       `yaml:"centerSphere"`
	Shapes          []ShapeConfig      `yaml:"shapes"`
	Stars           int                `yaml:"stars"`
	Sparkles        int                `yaml:"sparkles"`
}

// StatItem 统计数字
type StatItem struct {
	Number float64 `yaml:"number"`
	Suffix string  `yaml:"suffix"`
	Label  string  `yaml:"label"`
}

// StatsConfig 统计区配置
type StatsConfig struct {
	Title           string     `yaml:"title"`
	Subtitle        string     `yaml:"subtitle"`
	CounterDuration float64    `yaml:"counterDuration"`
	Stagger         float64    `yaml:"stagger"`
	Items           []StatItem `yaml:"items"`
}

// FeatureItem 特性卡片
type FeatureItem struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Gradient    []string `yaml:"gradient"`
}

// FeaturesConfig 特性区配置
type FeaturesConfig struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Stagger  float64       `yaml:"stagger"`
	Items    []FeatureItem `yaml:"items"`
}

// CTAConfig 行动号召区配置
type CTAConfig struct {
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle"`
	Placeholder string   `yaml:"placeholder"`
	Button      string   `yaml:"button"`
	SignupURL   string   `yaml:"signupURL"`
	Perks       []string `yaml:"perks"`
}

// FooterConfig 页脚配置
type FooterConfig struct {
	Brand     string   `yaml:"brand"`
	Links     []string `yaml:"links"`
	Copyright string   `yaml:"copyright"`
}

// TransformConfig 视觉变换配置（未写的字段使用恒等值）
type TransformConfig struct {
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
	Scale   *float64 `yaml:"scale"`
	Opacity *float64 `yaml:"opacity"`
	RotateX float64  `yaml:"rotateX"`
	RotateY float64  `yaml:"rotateY"`
}

// TransitionConfig 显现动画配置
type TransitionConfig struct {
	Kind      string          `yaml:"kind"` // "tween" 或 "spring"
	Duration  float64         `yaml:"duration"`
	Ease      string          `yaml:"ease"`
	Stiffness float64         `yaml:"stiffness"`
	Damping   float64         `yaml:"damping"`
	Mass      float64         `yaml:"mass"`
	Initial   TransformConfig `yaml:"initial"`
}

// RevealPresets 各类元素的显现动画预设
type RevealPresets struct {
	Hero    TransitionConfig `yaml:"hero"`
	Section TransitionConfig `yaml:"section"`
	Stat    TransitionConfig `yaml:"stat"`
	Card    TransitionConfig `yaml:"card"`
}

// HoverConfig 悬停目标变换
type HoverConfig struct {
	TransformConfig `yaml:",inline"`
	Duration        float64 `yaml:"duration"`
}

// HoverPresets 悬停预设
type HoverPresets struct {
	Card HoverConfig `yaml:"card"`
	Stat HoverConfig `yaml:"stat"`
}

// FollowerConfig 弹簧光标配置
type FollowerConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	Offset    float64 `yaml:"offset"`
	Radius    float64 `yaml:"radius"`
}

// LoadLandingConfig 从文件加载落地页配置
func LoadLandingConfig(path string) (*LandingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return ParseLandingConfig(data)
}

// ParseLandingConfig 解析 YAML 配置，填充默认值并校验
func ParseLandingConfig(data []byte) (*LandingConfig, error) {
	var cfg LandingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateLandingConfig(&cfg); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}
	return &cfg, nil
}

// applyDefaults 设置默认值
func applyDefaults(cfg *LandingConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 1280
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 720
	}
	if cfg.Window.TPS == 0 {
		cfg.Window.TPS = 60
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Huly"
	}
	if cfg.Scroll.WheelSpeed == 0 {
		cfg.Scroll.WheelSpeed = 60
	}
	if cfg.Scroll.KeyStep == 0 {
		cfg.Scroll.KeyStep = 80
	}
	if cfg.Scroll.PageStep == 0 {
		cfg.Scroll.PageStep = 0.9
	}

	// 首屏滚动曲线默认值与设计稿一致
	curves := &cfg.Hero.ScrollCurves
	if curves.OffsetY.IsZero() {
		curves.OffsetY = CurveConfig{Input: []float64{0, 1}, Output: []string{"0%", "100%"}}
	}
	if curves.Opacity.IsZero() {
		curves.Opacity = CurveConfig{Input: []float64{0, 0.3}, Output: []string{"1", "0"}}
	}
	if curves.Scale.IsZero() {
		curves.Scale = CurveConfig{Input: []float64{0, 0.5}, Output: []string{"1", "0.8"}}
	}

	if cfg.Stats.CounterDuration == 0 {
		cfg.Stats.CounterDuration = 2
	}
	if cfg.Hero.CenterSphere.Radius == 0 {
		cfg.Hero.CenterSphere.Radius = 120
	}
	if cfg.Hero.CenterSphere.Speed == 0 {
		cfg.Hero.CenterSphere.Speed = 1.5
	}
	if cfg.Hero.CenterSphere.Color == "" {
		cfg.Hero.CenterSphere.Color = "#8b5cf6"
	}

	for _, p := range []*TransitionConfig{&cfg.Reveal.Hero, &cfg.Reveal.Section, &cfg.Reveal.Stat, &cfg.Reveal.Card} {
		if p.Kind == "" {
			p.Kind = "tween"
		}
		if p.Kind == "tween" && p.Duration == 0 {
			p.Duration = 0.8
		}
		if p.Kind == "spring" && p.Stiffness == 0 {
			p.Stiffness = 100
		}
		if p.Kind == "spring" && p.Damping == 0 {
			p.Damping = 10
		}
	}

	for _, h := range []*HoverConfig{&cfg.Hover.Card, &cfg.Hover.Stat} {
		if h.Duration == 0 {
			h.Duration = 0.3
		}
	}

	if cfg.Follower.Stiffness == 0 {
		cfg.Follower.Stiffness = 100
	}
	if cfg.Follower.Damping == 0 {
		cfg.Follower.Damping = 10
	}
	if cfg.Follower.Radius == 0 {
		cfg.Follower.Radius = 10
	}
}

// validateLandingConfig 校验配置合法性
func validateLandingConfig(cfg *LandingConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("窗口尺寸必须为正数: %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	curves := map[string]CurveConfig{
		"hero.scrollCurves.offsetY":   cfg.Hero.ScrollCurves.OffsetY,
		"hero.scrollCurves.opacity":   cfg.Hero.ScrollCurves.Opacity,
		"hero.scrollCurves.scale":     cfg.Hero.ScrollCurves.Scale,
		"hero.indicator.loop.offsetY": cfg.Hero.Indicator.Loop.OffsetY,
		"hero.indicator.dot.offsetY":  cfg.Hero.Indicator.Dot.OffsetY,
		"hero.indicator.dot.opacity":  cfg.Hero.Indicator.Dot.Opacity,
	}
	for name, c := range curves {
		if _, err := c.Build(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	for name, loop := range map[string]LoopConfig{"loop": cfg.Hero.Indicator.Loop, "dot": cfg.Hero.Indicator.Dot} {
		if loop.OffsetY.IsZero() && loop.Opacity.IsZero() {
			continue
		}
		if loop.Duration <= 0 {
			return fmt.Errorf("hero.indicator.%s.duration 必须大于 0", name)
		}
		if _, ok := utils.EasingByName(loop.Ease); !ok {
			return fmt.Errorf("hero.indicator.%s.ease 未知: %q", name, loop.Ease)
		}
	}

	presets := map[string]TransitionConfig{
		"hero": cfg.Reveal.Hero, "section": cfg.Reveal.Section,
		"stat": cfg.Reveal.Stat, "card": cfg.Reveal.Card,
	}
	for name, p := range presets {
		switch p.Kind {
		case "tween":
			if p.Duration <= 0 {
				return fmt.Errorf("reveal.%s.duration 必须大于 0", name)
			}
		case "spring":
			if p.Stiffness <= 0 || p.Damping < 0 {
				return fmt.Errorf("reveal.%s 弹簧参数无效: stiffness=%v damping=%v", name, p.Stiffness, p.Damping)
			}
		default:
			return fmt.Errorf("reveal.%s.kind 未知: %q", name, p.Kind)
		}
		if _, ok := utils.EasingByName(p.Ease); !ok {
			return fmt.Errorf("reveal.%s.ease 未知: %q", name, p.Ease)
		}
	}

	if cfg.Stats.CounterDuration <= 0 {
		return fmt.Errorf("stats.counterDuration 必须大于 0")
	}
	for i, item := range cfg.Stats.Items {
		if item.Number < 0 {
			return fmt.Errorf("stats.items[%d].number 不能为负数", i)
		}
	}

	for i, item := range cfg.Features.Items {
		for j, c := range item.Gradient {
			if _, err := utils.ParseHexColor(c); err != nil {
				return fmt.Errorf("features.items[%d].gradient[%d]: %w", i, j, err)
			}
		}
	}

	for i, s := range cfg.Hero.Shapes {
		if _, ok := shapeKinds[s.Kind]; !ok {
			return fmt.Errorf("hero.shapes[%d].kind 未知: %q", i, s.Kind)
		}
		if _, err := utils.ParseHexColor(s.Color); err != nil {
			return fmt.Errorf("hero.shapes[%d].color: %w", i, err)
		}
	}
	if _, err := utils.ParseHexColor(cfg.Hero.CenterSphere.Color); err != nil {
		return fmt.Errorf("hero.centerSphere.color: %w", err)
	}

	return nil
}

// shapeKinds 支持的几何体类型
var shapeKinds = map[string]struct{}{
	"sphere": {}, "torus": {}, "box": {}, "octahedron": {},
}
