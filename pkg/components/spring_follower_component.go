package components

import "github.com/gonewx/huly-landing/pkg/utils"

// SpringFollowerComponent 跟随指针的弹簧光标（屏幕坐标）
type SpringFollowerComponent struct {
	Spring utils.Spring

	// OffsetX/OffsetY 目标相对指针的偏移（让圆点中心对准指针）
	OffsetX float64
	OffsetY float64

	X, Y   float64
	VX, VY float64

	Radius float64
}
