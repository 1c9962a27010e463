package components

// Transform 一组可动画的视觉属性
//
// 偏移单位为像素，旋转单位为度。Scale/Opacity 为倍率（1.0 = 原样）。
type Transform struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
	Opacity float64
	RotateX float64
	RotateY float64
}

// IdentityTransform 不产生任何视觉变化的变换
var IdentityTransform = Transform{Scale: 1, Opacity: 1}

// Compose 叠加另一个变换：偏移与旋转相加，缩放与透明度相乘
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		OffsetX: t.OffsetX + o.OffsetX,
		OffsetY: t.OffsetY + o.OffsetY,
		Scale:   t.Scale * o.Scale,
		Opacity: t.Opacity * o.Opacity,
		RotateX: t.RotateX + o.RotateX,
		RotateY: t.RotateY + o.RotateY,
	}
}

// LerpTransform 在 a 和 b 之间逐属性插值（t 可以超出 [0,1]，用于弹簧过冲）
func LerpTransform(a, b Transform, t float64) Transform {
	lerp := func(x, y float64) float64 { return x + (y-x)*t }
	return Transform{
		OffsetX: lerp(a.OffsetX, b.OffsetX),
		OffsetY: lerp(a.OffsetY, b.OffsetY),
		Scale:   lerp(a.Scale, b.Scale),
		Opacity: lerp(a.Opacity, b.Opacity),
		RotateX: lerp(a.RotateX, b.RotateX),
		RotateY: lerp(a.RotateY, b.RotateY),
	}
}

// VisualComponent 元素最终呈现所需的变换，按来源分通道存放
//
// 每个通道只由一个系统写入：
//   - Scroll: ScrollProgressSystem
//   - Reveal: RevealSystem
//   - Hover:  HoverSystem
//   - Float:  FloatSystem
//   - Loop:   LoopAnimationSystem
//
// 渲染时由 Combined() 合成。
type VisualComponent struct {
	Scroll Transform
	Reveal Transform
	Hover  Transform
	Float  Transform
	Loop   Transform
}

// NewVisualComponent 创建所有通道均为恒等变换的视觉组件
func NewVisualComponent() *VisualComponent {
	return &VisualComponent{
		Scroll: IdentityTransform,
		Reveal: IdentityTransform,
		Hover:  IdentityTransform,
		Float:  IdentityTransform,
		Loop:   IdentityTransform,
	}
}

// Combined 合成所有通道
func (v *VisualComponent) Combined() Transform {
	return v.Scroll.Compose(v.Reveal).Compose(v.Hover).Compose(v.Float).Compose(v.Loop)
}
