package components

import (
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// BoundsComponent 元素在页面坐标系中的布局矩形（不含动画变换）
// 视口相交检测和悬停检测都基于该矩形。
type BoundsComponent struct {
	Rect utils.Rect
}

// ParentComponent 父元素引用
// 子元素渲染时继承父元素的滚动变换（如首屏内容整体随滚动淡出）。
type ParentComponent struct {
	Parent ecs.EntityID
}
