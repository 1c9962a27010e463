package components

// HoverComponent 悬停响应
// 指针位于元素上时，Hover 通道从恒等变换补间到 Target，离开后补间回来。
type HoverComponent struct {
	// Target 完全悬停时的变换（如 y -10, rotateX 5）
	Target Transform
	// Duration 进入/离开的补间时长（秒）
	Duration float64

	// IsHovered 指针当前是否在元素上
	IsHovered bool
	// Progress 悬停进度（0.0 - 1.0）
	Progress float64
}
