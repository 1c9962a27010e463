package components

import "github.com/gonewx/huly-landing/pkg/utils"

// ScrollLinkedComponent 滚动进度驱动的动画曲线
//
// 每个属性拥有独立的曲线，输入为页面滚动进度 p ∈ [0,1]。
// 为 nil 的曲线表示该属性不随滚动变化。
type ScrollLinkedComponent struct {
	// OffsetY 垂直偏移曲线（"%" 相对元素高度，"px" 为绝对像素）
	OffsetY *utils.Curve
	// Opacity 透明度曲线
	Opacity *utils.Curve
	// Scale 缩放曲线
	Scale *utils.Curve

	// LastProgress 最近一次计算所用的进度（调试显示用）
	LastProgress float64
}
