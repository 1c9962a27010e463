package components

import "github.com/gonewx/huly-landing/pkg/utils"

// RevealState 元素显现状态
// 只允许 Hidden → Revealed 一次转换，之后永不回退。
type RevealState int

const (
	RevealHidden RevealState = iota
	RevealRevealed
)

// String 返回状态名
func (s RevealState) String() string {
	if s == RevealRevealed {
		return "revealed"
	}
	return "hidden"
}

// PresentationState 一次性动画的播放状态
// NotStarted → Running → Completed，单调推进，没有取消路径。
type PresentationState int

const (
	PresentationNotStarted PresentationState = iota
	PresentationRunning
	PresentationCompleted
)

// String 返回状态名
func (s PresentationState) String() string {
	switch s {
	case PresentationRunning:
		return "running"
	case PresentationCompleted:
		return "completed"
	}
	return "notStarted"
}

// RevealTrigger 触发显现的条件
type RevealTrigger int

const (
	// TriggerViewport 元素首次进入视口时显现
	TriggerViewport RevealTrigger = iota
	// TriggerMount 元素创建后的第一帧即显现（首屏入场动画）
	TriggerMount
)

// TransitionKind 显现动画的插值方式
type TransitionKind int

const (
	TransitionTween TransitionKind = iota
	TransitionSpring
)

// RevealTransition 显现动画参数
type RevealTransition struct {
	Kind TransitionKind
	// Duration 补间时长（秒），弹簧模式忽略
	Duration float64
	// Delay 状态翻转后延迟多久开始播放（秒）
	Delay float64
	// Ease 补间缓动，nil 表示线性
	Ease utils.EasingFunc
	// Spring 弹簧参数
	Spring utils.Spring
}

// RevealComponent 视口显现控制
type RevealComponent struct {
	Trigger    RevealTrigger
	Transition RevealTransition

	// Initial 隐藏时的视觉状态（如 opacity 0, y +50）
	Initial Transform
	// Final 显现完成后的视觉状态（通常为恒等变换）
	Final Transform

	// State 显现状态，由 RevealSystem 在首次相交时翻转
	State RevealState
	// Presentation 动画播放状态，延迟结束后才进入 Running
	Presentation PresentationState

	// Visible 最近一次观测到的相交结果（用于边沿检测）
	Visible bool
	// RevealedAt 状态翻转时的页面时钟（秒）
	RevealedAt float64
	// SinceReveal 状态翻转后经过的时间（秒）
	SinceReveal float64

	// Progress 动画进度，0 = Initial，1 = Final；弹簧可能短暂超过 1
	Progress float64
	// Velocity 弹簧模式下的进度速度
	Velocity float64
}
