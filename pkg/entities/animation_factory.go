package entities

import (
	"fmt"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// TransformFromConfig 将配置中的变换转换为组件变换，未写的缩放/透明度取 1
func TransformFromConfig(tc config.TransformConfig) components.Transform {
	t := components.IdentityTransform
	t.OffsetX = tc.X
	t.OffsetY = tc.Y
	t.RotateX = tc.RotateX
	t.RotateY = tc.RotateY
	if tc.Scale != nil {
		t.Scale = *tc.Scale
	}
	if tc.Opacity != nil {
		t.Opacity = *tc.Opacity
	}
	return t
}

// TransitionFromConfig 构造显现动画参数
func TransitionFromConfig(tc config.TransitionConfig, delay float64) (components.RevealTransition, error) {
	ease, ok := utils.EasingByName(tc.Ease)
	if !ok {
		return components.RevealTransition{}, fmt.Errorf("未知缓动函数: %q", tc.Ease)
	}

	tr := components.RevealTransition{
		Duration: tc.Duration,
		Delay:    delay,
		Ease:     ease,
	}
	switch tc.Kind {
	case "", "tween":
		tr.Kind = components.TransitionTween
	case "spring":
		tr.Kind = components.TransitionSpring
		tr.Spring = utils.Spring{Stiffness: tc.Stiffness, Damping: tc.Damping, Mass: tc.Mass}
	default:
		return components.RevealTransition{}, fmt.Errorf("未知过渡类型: %q", tc.Kind)
	}
	return tr, nil
}

// NewRevealComponent 按预设创建显现组件（从预设的 initial 过渡到恒等变换）
func NewRevealComponent(trigger components.RevealTrigger, tc config.TransitionConfig, delay float64) (*components.RevealComponent, error) {
	tr, err := TransitionFromConfig(tc, delay)
	if err != nil {
		return nil, err
	}
	return &components.RevealComponent{
		Trigger:    trigger,
		Transition: tr,
		Initial:    TransformFromConfig(tc.Initial),
		Final:      components.IdentityTransform,
	}, nil
}

// NewHoverComponent 按预设创建悬停组件
func NewHoverComponent(hc config.HoverConfig) *components.HoverComponent {
	return &components.HoverComponent{
		Target:   TransformFromConfig(hc.TransformConfig),
		Duration: hc.Duration,
	}
}

// NewLoopAnimationComponent 按配置创建循环动画组件，曲线按配置的缓动逐段插值
func NewLoopAnimationComponent(lc config.LoopConfig) (*components.LoopAnimationComponent, error) {
	ease, ok := utils.EasingByName(lc.Ease)
	if !ok {
		return nil, fmt.Errorf("未知缓动函数: %q", lc.Ease)
	}

	offsetY, err := lc.OffsetY.Build()
	if err != nil {
		return nil, fmt.Errorf("offsetY 曲线: %w", err)
	}
	opacity, err := lc.Opacity.Build()
	if err != nil {
		return nil, fmt.Errorf("opacity 曲线: %w", err)
	}
	if offsetY != nil {
		offsetY = offsetY.WithEasing(ease)
	}
	if opacity != nil {
		opacity = opacity.WithEasing(ease)
	}

	return &components.LoopAnimationComponent{
		Duration: lc.Duration,
		OffsetY:  offsetY,
		Opacity:  opacity,
	}, nil
}

// NewScrollLinkedComponent 按配置创建滚动曲线组件
func NewScrollLinkedComponent(sc config.ScrollCurvesConfig) (*components.ScrollLinkedComponent, error) {
	offsetY, err := sc.OffsetY.Build()
	if err != nil {
		return nil, fmt.Errorf("offsetY 曲线: %w", err)
	}
	opacity, err := sc.Opacity.Build()
	if err != nil {
		return nil, fmt.Errorf("opacity 曲线: %w", err)
	}
	scale, err := sc.Scale.Build()
	if err != nil {
		return nil, fmt.Errorf("scale 曲线: %w", err)
	}
	return &components.ScrollLinkedComponent{OffsetY: offsetY, Opacity: opacity, Scale: scale}, nil
}
