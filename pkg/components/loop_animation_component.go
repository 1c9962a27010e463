package components

import "github.com/gonewx/huly-landing/pkg/utils"

// LoopAnimationComponent 无限循环的关键帧动画（如滚动提示的上下弹跳）
// 曲线输入为循环内的时间比例 [0,1]。
type LoopAnimationComponent struct {
	Duration float64 // 单次循环时长（秒）
	Elapsed  float64 // 已播放时间（秒）

	OffsetY *utils.Curve
	Opacity *utils.Curve
}
