package components

import "image/color"

// ShapeKind 几何体类型
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeTorus
	ShapeBox
	ShapeOctahedron
)

// ShapeComponent 伪 3D 几何体（以 2D 矢量绘制）
type ShapeComponent struct {
	Kind   ShapeKind
	Radius float64
	Color  color.RGBA
	// Distort 表面扭曲强度（0.0 - 1.0），渲染时让轮廓起伏
	Distort float64
}

// PanelComponent 卡片/区块背景
type PanelComponent struct {
	Fill         color.RGBA
	Border       color.RGBA
	GradientFrom color.RGBA
	GradientTo   color.RGBA
	Radius       float64
}

// TextAlign 文本对齐方式
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// TextComponent 文本
type TextComponent struct {
	Text  string
	Size  float64
	Bold  bool
	Color color.RGBA
	Align TextAlign
	// LineSpacing 多行文本行距倍率（0 = 1.3）
	LineSpacing float64
}

// QRCodeComponent 二维码
type QRCodeComponent struct {
	Content string
	Size    int
}
