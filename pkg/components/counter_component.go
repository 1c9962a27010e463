package components

import "github.com/gonewx/huly-landing/pkg/ecs"

// CounterComponent 数字计数动画
//
// 门控元素显现后，在 Duration 秒内从 0 递增到 Target。
// 中间值取 floor(progress × Target)，最后一帧精确赋值为 Target。
type CounterComponent struct {
	// Target 目标值（可以是小数，如 99.99）
	Target float64
	// Duration 动画时长（秒）
	Duration float64
	// Suffix 显示后缀，如 "M+"、"%"
	Suffix string

	// Gate 拥有 RevealComponent 的门控实体，0 表示计数器实体自身
	Gate ecs.EntityID

	// State 播放状态
	State PresentationState
	// StartTime 开始时的页面时钟（秒），HasStartTime 为 false 时无效
	StartTime    float64
	HasStartTime bool
	// StartTick 开始时的时钟 tick 数，已用时间按 tick 差计算
	StartTick int64

	// Value 当前显示的数值
	Value float64
}
